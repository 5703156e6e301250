package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_price_book"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// PriceBookRepo implements PriceBookRepository for Spanner.
type PriceBookRepo struct {
	client *spanner.Client
	model  *m_price_book.Model
}

// NewPriceBookRepo creates a new PriceBookRepo.
func NewPriceBookRepo(client *spanner.Client) contracts.PriceBookRepository {
	return &PriceBookRepo{
		client: client,
		model:  m_price_book.NewModel(),
	}
}

var bookColumns = []string{
	m_price_book.BookID,
	m_price_book.GeoZoneID,
	m_price_book.SegmentID,
	m_price_book.IsMaster,
	m_price_book.IsActive,
	m_price_book.ParentBookID,
	m_price_book.CreatedAt,
	m_price_book.UpdatedAt,
}

// GetMasterBook returns the single active master book.
func (r *PriceBookRepo) GetMasterBook(ctx context.Context) (*domain.PriceBook, error) {
	stmt := query.From(m_price_book.TableName).
		Select(bookColumns...).
		Where(query.Eq(m_price_book.IsMaster, true)).
		Where(query.Eq(m_price_book.IsActive, true)).
		Limit(1).
		Build()

	book, err := r.queryOne(ctx, stmt)
	if err == domain.ErrBookNotFound {
		return nil, domain.ErrNoMasterBook
	}
	return book, err
}

// GetBookForScope returns the active non-master book scoped to exactly
// (zoneID, segmentID). The unscoped pair belongs to the master book and is
// never an override scope.
func (r *PriceBookRepo) GetBookForScope(ctx context.Context, zoneID, segmentID string) (*domain.PriceBook, error) {
	if zoneID == "" && segmentID == "" {
		return nil, domain.ErrBookNotFound
	}

	stmt := query.From(m_price_book.TableName).
		Select(bookColumns...).
		Where(query.EqOrNull(m_price_book.GeoZoneID, zoneID)).
		Where(query.EqOrNull(m_price_book.SegmentID, segmentID)).
		Where(query.Eq(m_price_book.IsMaster, false)).
		Where(query.Eq(m_price_book.IsActive, true)).
		Limit(1).
		Build()

	return r.queryOne(ctx, stmt)
}

// GetByID retrieves a book by id.
func (r *PriceBookRepo) GetByID(ctx context.Context, bookID string) (*domain.PriceBook, error) {
	row, err := r.client.Single().ReadRow(ctx, m_price_book.TableName, spanner.Key{bookID}, bookColumns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to read price book: %w", err)
	}

	var data m_price_book.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse price book: %w", err)
	}
	return dataToBook(&data), nil
}

// InsertMut creates a mutation for inserting a new book.
func (r *PriceBookRepo) InsertMut(book *domain.PriceBook) *spanner.Mutation {
	data := &m_price_book.Data{
		BookID:       book.ID,
		GeoZoneID:    nullString(book.GeoZoneID),
		SegmentID:    nullString(book.SegmentID),
		IsMaster:     book.IsMaster,
		IsActive:     book.IsActive,
		ParentBookID: nullString(book.ParentBookID),
	}
	return r.model.InsertMut(data)
}

func (r *PriceBookRepo) queryOne(ctx context.Context, stmt spanner.Statement) (*domain.PriceBook, error) {
	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err == iterator.Done {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query price book: %w", err)
	}

	var data m_price_book.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse price book: %w", err)
	}
	return dataToBook(&data), nil
}

func dataToBook(data *m_price_book.Data) *domain.PriceBook {
	return &domain.PriceBook{
		ID:           data.BookID,
		GeoZoneID:    data.GeoZoneID.StringVal,
		SegmentID:    data.SegmentID.StringVal,
		IsMaster:     data.IsMaster,
		IsActive:     data.IsActive,
		ParentBookID: data.ParentBookID.StringVal,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
