package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_book_entry"
)

// PriceEntryRepo implements PriceEntryRepository for Spanner.
type PriceEntryRepo struct {
	client *spanner.Client
	model  *m_book_entry.Model
}

// NewPriceEntryRepo creates a new PriceEntryRepo.
func NewPriceEntryRepo(client *spanner.Client) contracts.PriceEntryRepository {
	return &PriceEntryRepo{
		client: client,
		model:  m_book_entry.NewModel(),
	}
}

// Get retrieves the entry for (book, product).
func (r *PriceEntryRepo) Get(ctx context.Context, bookID, productID string) (*domain.PriceBookEntry, error) {
	row, err := r.client.Single().ReadRow(ctx, m_book_entry.TableName, spanner.Key{bookID, productID}, []string{
		m_book_entry.BookID,
		m_book_entry.ProductID,
		m_book_entry.BasePrice,
		m_book_entry.CompareAtPrice,
		m_book_entry.CreatedAt,
		m_book_entry.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to read price entry: %w", err)
	}

	var data m_book_entry.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse price entry: %w", err)
	}
	return dataToEntry(&data), nil
}

// ListForProduct returns every entry for the product across all active
// books, joined with the owning book.
func (r *PriceEntryRepo) ListForProduct(ctx context.Context, productID string) ([]domain.EntryWithBook, error) {
	stmt := spanner.Statement{
		SQL: `
			SELECT
				e.book_id, e.product_id, e.base_price, e.compare_at_price,
				b.geo_zone_id, b.segment_id, b.is_master, b.parent_book_id
			FROM price_book_entries e
			JOIN price_books b ON e.book_id = b.book_id
			WHERE e.product_id = @productID AND b.is_active = TRUE
		`,
		Params: map[string]interface{}{
			"productID": productID,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var results []domain.EntryWithBook
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate product entries: %w", err)
		}

		var joined struct {
			BookID         string              `spanner:"book_id"`
			ProductID      string              `spanner:"product_id"`
			BasePrice      spanner.NullNumeric `spanner:"base_price"`
			CompareAtPrice spanner.NullNumeric `spanner:"compare_at_price"`
			GeoZoneID      spanner.NullString  `spanner:"geo_zone_id"`
			SegmentID      spanner.NullString  `spanner:"segment_id"`
			IsMaster       bool                `spanner:"is_master"`
			ParentBookID   spanner.NullString  `spanner:"parent_book_id"`
		}
		if err := row.ToStruct(&joined); err != nil {
			return nil, fmt.Errorf("failed to parse product entry: %w", err)
		}

		entry := domain.PriceBookEntry{
			BookID:         joined.BookID,
			ProductID:      joined.ProductID,
			BasePrice:      ratToDecimal(&joined.BasePrice.Numeric),
			CompareAtPrice: nullNumericToDecimal(joined.CompareAtPrice),
		}
		book := domain.PriceBook{
			ID:           joined.BookID,
			GeoZoneID:    joined.GeoZoneID.StringVal,
			SegmentID:    joined.SegmentID.StringVal,
			IsMaster:     joined.IsMaster,
			IsActive:     true,
			ParentBookID: joined.ParentBookID.StringVal,
		}
		results = append(results, domain.EntryWithBook{Entry: entry, Book: book})
	}
	return results, nil
}

// UpsertMut creates a mutation writing the entry.
func (r *PriceEntryRepo) UpsertMut(entry *domain.PriceBookEntry) *spanner.Mutation {
	data := &m_book_entry.Data{
		BookID:         entry.BookID,
		ProductID:      entry.ProductID,
		BasePrice:      decimalToRat(entry.BasePrice),
		CompareAtPrice: decimalToNullNumeric(entry.CompareAtPrice),
	}
	return r.model.UpsertMut(data)
}

// DeleteMut creates a mutation removing the entry.
func (r *PriceEntryRepo) DeleteMut(bookID, productID string) *spanner.Mutation {
	return r.model.DeleteMut(bookID, productID)
}

func dataToEntry(data *m_book_entry.Data) *domain.PriceBookEntry {
	return &domain.PriceBookEntry{
		BookID:         data.BookID,
		ProductID:      data.ProductID,
		BasePrice:      ratToDecimal(&data.BasePrice),
		CompareAtPrice: nullNumericToDecimal(data.CompareAtPrice),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
