package repo

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/models/m_price_history"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// PriceHistoryRepo implements PriceHistoryRepository for Spanner.
type PriceHistoryRepo struct {
	client *spanner.Client
	model  *m_price_history.Model
}

// NewPriceHistoryRepo creates a new PriceHistoryRepo.
func NewPriceHistoryRepo(client *spanner.Client) contracts.PriceHistoryRepository {
	return &PriceHistoryRepo{
		client: client,
		model:  m_price_history.NewModel(),
	}
}

// InsertMut creates a mutation recording a price change.
func (r *PriceHistoryRepo) InsertMut(historyID, bookID, productID string, oldPrice *decimal.Decimal, newPrice decimal.Decimal, changedBy, changedReason string, changedAt time.Time) *spanner.Mutation {
	data := &m_price_history.Data{
		HistoryID:     historyID,
		BookID:        bookID,
		ProductID:     productID,
		OldPrice:      decimalToNullNumeric(oldPrice),
		NewPrice:      decimalToRat(newPrice),
		ChangedBy:     nullString(changedBy),
		ChangedReason: nullString(changedReason),
		ChangedAt:     changedAt,
	}
	return r.model.InsertMut(data)
}

// ListForProduct retrieves recent changes for a product, most recent first.
func (r *PriceHistoryRepo) ListForProduct(ctx context.Context, productID string, limit int) ([]contracts.PriceHistoryRecord, error) {
	stmt := query.From(m_price_history.TableName).
		Select(
			m_price_history.HistoryID,
			m_price_history.BookID,
			m_price_history.ProductID,
			m_price_history.OldPrice,
			m_price_history.NewPrice,
			m_price_history.ChangedBy,
			m_price_history.ChangedReason,
			m_price_history.ChangedAt,
		).
		Where(query.Eq(m_price_history.ProductID, productID)).
		OrderBy(m_price_history.ChangedAt, query.Desc).
		Limit(int64(limit)).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var records []contracts.PriceHistoryRecord
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list price history: %w", err)
		}

		var data m_price_history.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse price history: %w", err)
		}

		records = append(records, contracts.PriceHistoryRecord{
			HistoryID:     data.HistoryID,
			BookID:        data.BookID,
			ProductID:     data.ProductID,
			OldPrice:      nullNumericToDecimal(data.OldPrice),
			NewPrice:      ratToDecimal(&data.NewPrice),
			ChangedBy:     data.ChangedBy.StringVal,
			ChangedReason: data.ChangedReason.StringVal,
			ChangedAt:     data.ChangedAt,
		})
	}
	return records, nil
}
