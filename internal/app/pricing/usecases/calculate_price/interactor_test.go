package calculate_price

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
)

type fakeBooks struct {
	master *domain.PriceBook
	scoped map[string]*domain.PriceBook // key: zoneID + "|" + segmentID
}

func (f *fakeBooks) GetMasterBook(ctx context.Context) (*domain.PriceBook, error) {
	if f.master == nil {
		return nil, domain.ErrNoMasterBook
	}
	return f.master, nil
}

func (f *fakeBooks) GetBookForScope(ctx context.Context, zoneID, segmentID string) (*domain.PriceBook, error) {
	if book, ok := f.scoped[zoneID+"|"+segmentID]; ok {
		return book, nil
	}
	return nil, domain.ErrBookNotFound
}

func (f *fakeBooks) GetByID(ctx context.Context, bookID string) (*domain.PriceBook, error) {
	return nil, domain.ErrBookNotFound
}

func (f *fakeBooks) InsertMut(book *domain.PriceBook) *spanner.Mutation {
	return spanner.Delete("noop", spanner.Key{book.ID})
}

type fakeEntries struct {
	prices map[string]decimal.Decimal // key: bookID + "|" + productID
}

func (f *fakeEntries) Get(ctx context.Context, bookID, productID string) (*domain.PriceBookEntry, error) {
	price, ok := f.prices[bookID+"|"+productID]
	if !ok {
		return nil, domain.ErrEntryNotFound
	}
	return &domain.PriceBookEntry{BookID: bookID, ProductID: productID, BasePrice: price}, nil
}

func (f *fakeEntries) ListForProduct(ctx context.Context, productID string) ([]domain.EntryWithBook, error) {
	return nil, nil
}

func (f *fakeEntries) UpsertMut(entry *domain.PriceBookEntry) *spanner.Mutation {
	return spanner.Delete("noop", spanner.Key{entry.BookID})
}

func (f *fakeEntries) DeleteMut(bookID, productID string) *spanner.Mutation {
	return spanner.Delete("noop", spanner.Key{bookID})
}

type fakeAvailability struct {
	records map[string]*domain.ProductAvailability // key: productID + "|" + zoneID
}

func (f *fakeAvailability) Get(ctx context.Context, productID, zoneID string) (*domain.ProductAvailability, error) {
	return f.records[productID+"|"+zoneID], nil
}

type fakeModifiers struct {
	mods []*domain.PriceModifier
}

func (f *fakeModifiers) ListActive(ctx context.Context) ([]*domain.PriceModifier, error) {
	return f.mods, nil
}

func newTestInteractor(books *fakeBooks, entries *fakeEntries, avail *fakeAvailability, mods *fakeModifiers) *Interactor {
	if avail == nil {
		avail = &fakeAvailability{}
	}
	if mods == nil {
		mods = &fakeModifiers{}
	}
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(books, entries, avail, mods, zap.NewNop(), clk)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculatePrice(t *testing.T) {
	ctx := context.Background()

	books := &fakeBooks{
		master: &domain.PriceBook{ID: "book-master", IsMaster: true, IsActive: true},
		scoped: map[string]*domain.PriceBook{
			"zone-blr|": {ID: "book-blr", GeoZoneID: "zone-blr", IsActive: true},
		},
	}

	t.Run("no override and no modifiers yields the master price", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
		}}
		i := newTestInteractor(books, entries, nil, nil)

		calc, err := i.Execute(ctx, &Request{ProductID: "prod-1", GeoZoneID: "zone-del"})
		require.NoError(t, err)
		assert.True(t, calc.IsAvailable)
		assert.Equal(t, "100.00", calc.FinalPrice.StringFixed(2))
		assert.True(t, calc.FinalPrice.Equal(calc.MasterPrice))
		assert.Empty(t, calc.Adjustments)
		assert.Zero(t, calc.ModifiersApplied)
	})

	t.Run("zone override plus stackable segment modifier", func(t *testing.T) {
		// Master 100, zone book 90, 15% segment discount: 90 -> 76.5 -> 76.50.
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
			"book-blr|prod-1":    price("90"),
		}}
		mods := &fakeModifiers{mods: []*domain.PriceModifier{{
			ID:          "mod-seg",
			Name:        "wholesale discount",
			AppliesTo:   domain.AppliesSegment,
			Type:        domain.PercentDec,
			Value:       price("15"),
			IsStackable: true,
			SegmentID:   "seg-wholesale",
			IsActive:    true,
		}}}
		i := newTestInteractor(books, entries, nil, mods)

		calc, err := i.Execute(ctx, &Request{
			ProductID: "prod-1",
			GeoZoneID: "zone-blr",
			SegmentID: "seg-wholesale",
		})
		require.NoError(t, err)

		assert.Equal(t, "100.00", calc.MasterPrice.StringFixed(2))
		assert.Equal(t, "76.50", calc.FinalPrice.StringFixed(2))
		assert.Equal(t, 1, calc.ModifiersApplied)
		assert.Equal(t, "zone-blr", calc.UsedZoneID)

		require.Len(t, calc.Adjustments, 2)
		assert.Equal(t, domain.AdjustmentZoneOverride, calc.Adjustments[0].Kind)
		assert.Equal(t, "90", calc.Adjustments[0].After.String())
		assert.Equal(t, domain.AdjustmentModifier, calc.Adjustments[1].Kind)
		assert.Equal(t, "90", calc.Adjustments[1].Before.String())
		assert.Equal(t, "76.5", calc.Adjustments[1].After.String())
	})

	t.Run("unavailable product short-circuits with the stored reason", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
		}}
		avail := &fakeAvailability{records: map[string]*domain.ProductAvailability{
			"prod-1|zone-blr": {ProductID: "prod-1", ZoneID: "zone-blr", IsSellable: false, Reason: "Not compliant"},
		}}
		i := newTestInteractor(books, entries, avail, nil)

		calc, err := i.Execute(ctx, &Request{ProductID: "prod-1", GeoZoneID: "zone-blr"})
		require.NoError(t, err)
		assert.False(t, calc.IsAvailable)
		assert.Equal(t, "Not compliant", calc.UnavailableReason)
		assert.True(t, calc.FinalPrice.IsZero())
		assert.True(t, calc.MasterPrice.IsZero())
	})

	t.Run("missing master price is a hard failure", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{}}
		i := newTestInteractor(books, entries, nil, nil)

		_, err := i.Execute(ctx, &Request{ProductID: "prod-unknown"})
		assert.ErrorIs(t, err, domain.ErrNoMasterPrice)
	})

	t.Run("missing master book is a bootstrap failure", func(t *testing.T) {
		i := newTestInteractor(&fakeBooks{}, &fakeEntries{}, nil, nil)

		_, err := i.Execute(ctx, &Request{ProductID: "prod-1"})
		assert.ErrorIs(t, err, domain.ErrNoMasterBook)
	})

	t.Run("hierarchy walk takes the first priced zone", func(t *testing.T) {
		walkBooks := &fakeBooks{
			master: books.master,
			scoped: map[string]*domain.PriceBook{
				"zone-state|": {ID: "book-state", GeoZoneID: "zone-state", IsActive: true},
			},
		}
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
			"book-state|prod-1":  price("80"),
		}}
		i := newTestInteractor(walkBooks, entries, nil, nil)

		calc, err := i.Execute(ctx, &Request{
			ProductID: "prod-1",
			GeoZoneHierarchy: []domain.GeoZone{
				{ID: "zone-city", Level: "city", IsActive: true},
				{ID: "zone-state", Level: "state", IsActive: true},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "80.00", calc.FinalPrice.StringFixed(2))
		assert.Equal(t, "zone-state", calc.UsedZoneID)
		assert.Equal(t, "state", calc.UsedZoneLevel)
	})

	t.Run("hierarchy with no overrides falls back to master", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
		}}
		i := newTestInteractor(books, entries, nil, nil)

		calc, err := i.Execute(ctx, &Request{
			ProductID:        "prod-1",
			GeoZoneHierarchy: []domain.GeoZone{{ID: "zone-nowhere", Level: "city"}},
		})
		require.NoError(t, err)
		assert.Equal(t, "100.00", calc.FinalPrice.StringFixed(2))
		assert.Empty(t, calc.UsedZoneID)
	})

	t.Run("segment override falls back from zone+segment to segment-only", func(t *testing.T) {
		segBooks := &fakeBooks{
			master: books.master,
			scoped: map[string]*domain.PriceBook{
				"|seg-wholesale": {ID: "book-wholesale", SegmentID: "seg-wholesale", IsActive: true},
			},
		}
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1":    price("100"),
			"book-wholesale|prod-1": price("85"),
		}}
		i := newTestInteractor(segBooks, entries, nil, nil)

		calc, err := i.Execute(ctx, &Request{
			ProductID: "prod-1",
			GeoZoneID: "zone-blr",
			SegmentID: "seg-wholesale",
		})
		require.NoError(t, err)
		assert.Equal(t, "85.00", calc.FinalPrice.StringFixed(2))
		require.Len(t, calc.Adjustments, 1)
		assert.Equal(t, domain.AdjustmentSegmentOverride, calc.Adjustments[0].Kind)
	})

	t.Run("expired modifiers are skipped", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
		}}
		past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		mods := &fakeModifiers{mods: []*domain.PriceModifier{{
			ID:          "mod-expired",
			AppliesTo:   domain.AppliesGlobal,
			Type:        domain.PercentDec,
			Value:       price("50"),
			IsStackable: true,
			ValidTo:     &past,
			IsActive:    true,
		}}}
		i := newTestInteractor(books, entries, nil, mods)

		calc, err := i.Execute(ctx, &Request{ProductID: "prod-1"})
		require.NoError(t, err)
		assert.Equal(t, "100.00", calc.FinalPrice.StringFixed(2))
		assert.Zero(t, calc.ModifiersApplied)
	})

	t.Run("non-stackable modifiers compete and the best applies", func(t *testing.T) {
		entries := &fakeEntries{prices: map[string]decimal.Decimal{
			"book-master|prod-1": price("100"),
		}}
		mods := &fakeModifiers{mods: []*domain.PriceModifier{
			{ID: "ten", AppliesTo: domain.AppliesGlobal, Type: domain.PercentDec, Value: price("10"), IsActive: true},
			{ID: "fifteen", AppliesTo: domain.AppliesGlobal, Type: domain.PercentDec, Value: price("15"), IsActive: true},
		}}
		i := newTestInteractor(books, entries, nil, mods)

		calc, err := i.Execute(ctx, &Request{ProductID: "prod-1"})
		require.NoError(t, err)
		assert.Equal(t, "85.00", calc.FinalPrice.StringFixed(2))
		assert.Equal(t, 1, calc.ModifiersApplied)
	})
}
