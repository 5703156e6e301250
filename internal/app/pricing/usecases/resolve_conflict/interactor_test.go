package resolve_conflict

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
)

type fakeBooks struct {
	master   *domain.PriceBook
	scoped   map[string]*domain.PriceBook // key: zoneID + "|" + segmentID
	inserted []*domain.PriceBook
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
	f.inserted = append(f.inserted, book)
	return spanner.Delete("books", spanner.Key{book.ID})
}

type upsertCall struct {
	BookID string
	Price  decimal.Decimal
}

type fakeEntries struct {
	existing []domain.EntryWithBook
	upserts  []upsertCall
	deletes  []string
}

func (f *fakeEntries) Get(ctx context.Context, bookID, productID string) (*domain.PriceBookEntry, error) {
	for _, e := range f.existing {
		if e.Entry.BookID == bookID && e.Entry.ProductID == productID {
			entry := e.Entry
			return &entry, nil
		}
	}
	return nil, domain.ErrEntryNotFound
}

func (f *fakeEntries) ListForProduct(ctx context.Context, productID string) ([]domain.EntryWithBook, error) {
	return f.existing, nil
}

func (f *fakeEntries) UpsertMut(entry *domain.PriceBookEntry) *spanner.Mutation {
	f.upserts = append(f.upserts, upsertCall{entry.BookID, entry.BasePrice})
	return spanner.Delete("entries", spanner.Key{entry.BookID, entry.ProductID})
}

func (f *fakeEntries) DeleteMut(bookID, productID string) *spanner.Mutation {
	f.deletes = append(f.deletes, bookID)
	return spanner.Delete("entries", spanner.Key{bookID, productID})
}

type fakeOutbox struct {
	events []*contracts.OutboxEvent
}

func (f *fakeOutbox) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	f.events = append(f.events, event)
	return spanner.Delete("outbox", spanner.Key{event.EventID})
}

func (f *fakeOutbox) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     "evt-1",
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "PENDING",
	}
}

type historyCall struct {
	BookID   string
	OldPrice *decimal.Decimal
	NewPrice decimal.Decimal
	Reason   string
}

type fakeHistory struct {
	rows []historyCall
}

func (f *fakeHistory) InsertMut(historyID, bookID, productID string, oldPrice *decimal.Decimal, newPrice decimal.Decimal, changedBy, changedReason string, changedAt time.Time) *spanner.Mutation {
	f.rows = append(f.rows, historyCall{bookID, oldPrice, newPrice, changedReason})
	return spanner.Delete("history", spanner.Key{historyID})
}

func (f *fakeHistory) ListForProduct(ctx context.Context, productID string, limit int) ([]contracts.PriceHistoryRecord, error) {
	return nil, nil
}

type fakeCommitter struct {
	plans []*committer.CommitPlan
}

func (f *fakeCommitter) Apply(ctx context.Context, plan *committer.CommitPlan) error {
	f.plans = append(f.plans, plan)
	return nil
}

func entryWithBook(bookID string, price int64, book domain.PriceBook) domain.EntryWithBook {
	book.ID = bookID
	return domain.EntryWithBook{
		Entry: domain.PriceBookEntry{BookID: bookID, ProductID: "prod-1", BasePrice: decimal.NewFromInt(price)},
		Book:  book,
	}
}

// Fixture: master 100, zone override 90, segment override 85. Writing the
// master price conflicts with both overrides.
func fixtureEntries() *fakeEntries {
	return &fakeEntries{existing: []domain.EntryWithBook{
		entryWithBook("book-master", 100, domain.PriceBook{IsMaster: true}),
		entryWithBook("book-blr", 90, domain.PriceBook{GeoZoneID: "zone-blr"}),
		entryWithBook("book-wholesale", 85, domain.PriceBook{SegmentID: "seg-wholesale"}),
	}}
}

func newTestInteractor(books *fakeBooks, entries *fakeEntries, outbox *fakeOutbox, history *fakeHistory, cmt *fakeCommitter) *Interactor {
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	return NewInteractor(books, entries, outbox, history, cmt, zap.NewNop(), clk)
}

func TestResolveConflict(t *testing.T) {
	ctx := context.Background()
	master := &domain.PriceBook{ID: "book-master", IsMaster: true, IsActive: true}

	t.Run("unknown strategy fails before any read or write", func(t *testing.T) {
		entries := fixtureEntries()
		cmt := &fakeCommitter{}
		i := newTestInteractor(&fakeBooks{master: master}, entries, &fakeOutbox{}, &fakeHistory{}, cmt)

		_, err := i.Execute(ctx, &Request{
			ResolutionID: "MERGE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
		})
		assert.ErrorIs(t, err, domain.ErrUnknownResolutionStrategy)
		assert.Empty(t, cmt.plans)
	})

	t.Run("OVERWRITE deletes every conflicting entry and writes the target", func(t *testing.T) {
		entries := fixtureEntries()
		history := &fakeHistory{}
		cmt := &fakeCommitter{}
		i := newTestInteractor(&fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}, entries, &fakeOutbox{}, history, cmt)

		resp, err := i.Execute(ctx, &Request{
			ResolutionID: "OVERWRITE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
			ChangedBy:    "ops@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ResolutionOverwrite, resp.Action)
		assert.Equal(t, 2, resp.AffectedCount)
		assert.ElementsMatch(t, []string{"book-blr", "book-wholesale"}, entries.deletes)

		require.Len(t, entries.upserts, 1)
		assert.Equal(t, "book-master", entries.upserts[0].BookID)
		assert.True(t, entries.upserts[0].Price.Equal(decimal.NewFromInt(120)))

		// Old master price recorded against the target write.
		require.Len(t, history.rows, 1)
		require.NotNil(t, history.rows[0].OldPrice)
		assert.True(t, history.rows[0].OldPrice.Equal(decimal.NewFromInt(100)))

		require.Len(t, cmt.plans, 1)
		// 2 deletes + target upsert + history + outbox.
		assert.Equal(t, 5, cmt.plans[0].Count())
	})

	t.Run("PRESERVE leaves conflicting overrides untouched", func(t *testing.T) {
		entries := fixtureEntries()
		cmt := &fakeCommitter{}
		i := newTestInteractor(&fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}, entries, &fakeOutbox{}, &fakeHistory{}, cmt)

		resp, err := i.Execute(ctx, &Request{
			ResolutionID: "PRESERVE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
			ChangedBy:    "ops@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.ResolutionPreserve, resp.Action)
		assert.Zero(t, resp.AffectedCount)
		assert.Empty(t, entries.deletes)

		require.Len(t, entries.upserts, 1)
		assert.Equal(t, "book-master", entries.upserts[0].BookID)
	})

	t.Run("RELATIVE rescales every conflicting entry by the master ratio", func(t *testing.T) {
		// Master moves 100 -> 120; the 90 zone override follows to 108 and
		// the 85 segment override to 102.
		entries := fixtureEntries()
		history := &fakeHistory{}
		cmt := &fakeCommitter{}
		i := newTestInteractor(&fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}, entries, &fakeOutbox{}, history, cmt)

		resp, err := i.Execute(ctx, &Request{
			ResolutionID: "RELATIVE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
			ChangedBy:    "ops@example.com",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, resp.AffectedCount)

		rescaled := map[string]string{}
		for _, u := range entries.upserts {
			rescaled[u.BookID] = u.Price.StringFixed(2)
		}
		assert.Equal(t, "108.00", rescaled["book-blr"])
		assert.Equal(t, "102.00", rescaled["book-wholesale"])
		assert.Equal(t, "120.00", rescaled["book-master"])

		// One history row per rescale plus one for the target write.
		assert.Len(t, history.rows, 3)
		reasons := map[string]bool{}
		for _, r := range history.rows {
			reasons[r.Reason] = true
		}
		assert.True(t, reasons["relative conflict resolution"])
	})

	t.Run("RELATIVE without a master price fails", func(t *testing.T) {
		entries := &fakeEntries{existing: []domain.EntryWithBook{
			entryWithBook("book-blr", 90, domain.PriceBook{GeoZoneID: "zone-blr"}),
		}}
		i := newTestInteractor(&fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}, entries, &fakeOutbox{}, &fakeHistory{}, &fakeCommitter{})

		_, err := i.Execute(ctx, &Request{
			ResolutionID: "RELATIVE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
			ChangedBy:    "ops@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrNoMasterPrice)
	})

	t.Run("every resolution emits a conflict resolved event", func(t *testing.T) {
		entries := fixtureEntries()
		outbox := &fakeOutbox{}
		i := newTestInteractor(&fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}, entries, outbox, &fakeHistory{}, &fakeCommitter{})

		_, err := i.Execute(ctx, &Request{
			ResolutionID: "PRESERVE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(120),
			ChangedBy:    "ops@example.com",
		})
		require.NoError(t, err)

		require.Len(t, outbox.events, 1)
		assert.Equal(t, "price_conflict.resolved", outbox.events[0].EventType)
		assert.Equal(t, "prod-1", outbox.events[0].AggregateID)
	})

	t.Run("resolving into a scope without a book creates it in the same plan", func(t *testing.T) {
		books := &fakeBooks{master: master, scoped: map[string]*domain.PriceBook{}}
		entries := &fakeEntries{existing: []domain.EntryWithBook{
			entryWithBook("book-master", 100, domain.PriceBook{IsMaster: true}),
		}}
		cmt := &fakeCommitter{}
		i := newTestInteractor(books, entries, &fakeOutbox{}, &fakeHistory{}, cmt)

		_, err := i.Execute(ctx, &Request{
			ResolutionID: "OVERWRITE",
			ProductID:    "prod-1",
			ZoneID:       "zone-del",
			NewPrice:     decimal.NewFromInt(95),
			ChangedBy:    "ops@example.com",
		})
		require.NoError(t, err)

		require.Len(t, books.inserted, 1)
		assert.Equal(t, "zone-del", books.inserted[0].GeoZoneID)
		assert.Equal(t, "book-master", books.inserted[0].ParentBookID)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		i := newTestInteractor(&fakeBooks{master: master}, fixtureEntries(), &fakeOutbox{}, &fakeHistory{}, &fakeCommitter{})

		_, err := i.Execute(ctx, &Request{
			ResolutionID: "PRESERVE",
			ProductID:    "prod-1",
			NewPrice:     decimal.NewFromInt(-5),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidBasePrice)
	})
}
