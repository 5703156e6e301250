package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/models/m_modifier"
	"github.com/light-bringer/pricing-service/internal/pkg/query"
)

// ModifierRepo implements ModifierRepository for Spanner.
type ModifierRepo struct {
	client *spanner.Client
}

// NewModifierRepo creates a new ModifierRepo.
func NewModifierRepo(client *spanner.Client) contracts.ModifierRepository {
	return &ModifierRepo{client: client}
}

// ListActive returns all active modifiers ordered by priority ascending.
// A modifier with an unparsable condition tree is skipped rather than
// failing the whole read; it can never match anyway.
func (r *ModifierRepo) ListActive(ctx context.Context) ([]*domain.PriceModifier, error) {
	stmt := query.From(m_modifier.TableName).
		Select(
			m_modifier.ModifierID,
			m_modifier.Name,
			m_modifier.AppliesTo,
			m_modifier.ModifierType,
			m_modifier.Value,
			m_modifier.IsStackable,
			m_modifier.Priority,
			m_modifier.Conditions,
			m_modifier.GeoZoneID,
			m_modifier.SegmentID,
			m_modifier.ProductID,
			m_modifier.CategoryID,
			m_modifier.AttributeName,
			m_modifier.AttributeValue,
			m_modifier.ValidFrom,
			m_modifier.ValidTo,
			m_modifier.IsActive,
			m_modifier.CreatedAt,
			m_modifier.UpdatedAt,
		).
		Where(query.Eq(m_modifier.IsActive, true)).
		OrderBy(m_modifier.Priority, query.Asc).
		Build()

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var modifiers []*domain.PriceModifier
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list modifiers: %w", err)
		}

		var data m_modifier.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse modifier: %w", err)
		}

		mod, err := dataToModifier(&data)
		if err != nil {
			continue
		}
		modifiers = append(modifiers, mod)
	}
	return modifiers, nil
}

func dataToModifier(data *m_modifier.Data) (*domain.PriceModifier, error) {
	mod := &domain.PriceModifier{
		ID:             data.ModifierID,
		Name:           data.Name,
		AppliesTo:      domain.AppliesTo(data.AppliesTo),
		Type:           domain.ModifierType(data.ModifierType),
		Value:          ratToDecimal(&data.Value),
		IsStackable:    data.IsStackable,
		Priority:       data.Priority,
		GeoZoneID:      data.GeoZoneID.StringVal,
		SegmentID:      data.SegmentID.StringVal,
		ProductID:      data.ProductID.StringVal,
		CategoryID:     data.CategoryID.StringVal,
		AttributeName:  data.AttributeName.StringVal,
		AttributeValue: data.AttributeValue.StringVal,
		IsActive:       data.IsActive,
	}
	if data.ValidFrom.Valid {
		t := data.ValidFrom.Time
		mod.ValidFrom = &t
	}
	if data.ValidTo.Valid {
		t := data.ValidTo.Time
		mod.ValidTo = &t
	}
	if data.Conditions.Valid && data.Conditions.StringVal != "" {
		node, err := domain.ParseConditions([]byte(data.Conditions.StringVal))
		if err != nil {
			return nil, fmt.Errorf("modifier %s carries invalid conditions: %w", data.ModifierID, err)
		}
		mod.Conditions = node
	}
	return mod, nil
}
