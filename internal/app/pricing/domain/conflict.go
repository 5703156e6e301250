package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ConflictType classifies an existing entry that shadows a proposed price.
type ConflictType string

const (
	ConflictZoneOverride        ConflictType = "ZONE_OVERRIDE"
	ConflictSegmentOverride     ConflictType = "SEGMENT_OVERRIDE"
	ConflictZoneSegmentOverride ConflictType = "ZONE_SEGMENT_OVERRIDE"
)

// ResolutionStrategy selects how detected conflicts are resolved.
type ResolutionStrategy string

const (
	// ResolutionOverwrite deletes every conflicting entry, then writes the
	// new entry. Destructive; callers must confirm it explicitly.
	ResolutionOverwrite ResolutionStrategy = "OVERWRITE"
	// ResolutionPreserve writes only the new entry; conflicting overrides
	// keep shadowing it wherever they exist.
	ResolutionPreserve ResolutionStrategy = "PRESERVE"
	// ResolutionRelative rescales every conflicting entry by
	// newPrice / masterPrice before writing the new entry.
	ResolutionRelative ResolutionStrategy = "RELATIVE"
)

// ParseResolutionStrategy maps a caller-supplied strategy id. An unknown id
// is a client error and fails loudly; there is no default strategy.
func ParseResolutionStrategy(id string) (ResolutionStrategy, error) {
	switch ResolutionStrategy(id) {
	case ResolutionOverwrite, ResolutionPreserve, ResolutionRelative:
		return ResolutionStrategy(id), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResolutionStrategy, id)
}

// ResolutionStrategies lists the options offered to callers alongside a
// conflict report.
func ResolutionStrategies() []ResolutionStrategy {
	return []ResolutionStrategy{ResolutionOverwrite, ResolutionPreserve, ResolutionRelative}
}

// PriceConflict describes one existing entry shadowing the proposed price.
type PriceConflict struct {
	Type          ConflictType    `json:"type"`
	BookID        string          `json:"bookId"`
	GeoZoneID     string          `json:"geoZoneId,omitempty"`
	SegmentID     string          `json:"segmentId,omitempty"`
	ProductID     string          `json:"productId"`
	ExistingPrice decimal.Decimal `json:"existingPrice"`
	ProposedPrice decimal.Decimal `json:"proposedPrice"`
	AbsoluteDiff  decimal.Decimal `json:"absoluteDiff"`
	PercentDiff   decimal.Decimal `json:"percentDiff"`
}

// ClassifyOverride maps a book's scope to a conflict type. Master entries
// (no scope at all) are never conflicts: an override can shadow a general
// price, but nothing shadows upward.
func ClassifyOverride(book *PriceBook) (ConflictType, bool) {
	switch {
	case book.GeoZoneID != "" && book.SegmentID != "":
		return ConflictZoneSegmentOverride, true
	case book.GeoZoneID != "":
		return ConflictZoneOverride, true
	case book.SegmentID != "":
		return ConflictSegmentOverride, true
	}
	return "", false
}

// NewConflict builds the conflict record for one shadowing entry, with the
// absolute and percent difference of the existing price versus the proposal.
func NewConflict(kind ConflictType, book *PriceBook, entry *PriceBookEntry, proposed decimal.Decimal) PriceConflict {
	diff := entry.BasePrice.Sub(proposed)
	percent := decimal.Zero
	if !entry.BasePrice.IsZero() {
		percent = diff.Div(entry.BasePrice).Mul(hundred).Round(2)
	}
	return PriceConflict{
		Type:          kind,
		BookID:        book.ID,
		GeoZoneID:     book.GeoZoneID,
		SegmentID:     book.SegmentID,
		ProductID:     entry.ProductID,
		ExistingPrice: entry.BasePrice,
		ProposedPrice: proposed,
		AbsoluteDiff:  diff.Abs(),
		PercentDiff:   percent,
	}
}

// DetectConflicts classifies every entry for a product that lives outside
// the proposed (zone, segment) target. Entries at exactly the target scope
// are overwritten in place and are not conflicts.
func DetectConflicts(entries []EntryWithBook, targetZoneID, targetSegmentID string, proposed decimal.Decimal) []PriceConflict {
	conflicts := make([]PriceConflict, 0)
	for i := range entries {
		book := &entries[i].Book
		if book.MatchesScope(targetZoneID, targetSegmentID) {
			continue
		}
		kind, ok := ClassifyOverride(book)
		if !ok {
			continue
		}
		conflicts = append(conflicts, NewConflict(kind, book, &entries[i].Entry, proposed))
	}
	return conflicts
}
