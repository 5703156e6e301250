package smart_view

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pricing-service/internal/app/pricing/contracts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/domain"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/calculate_price"
)

// Shape names the layout a request resolves to, driven by which filters are
// present.
type Shape string

const (
	ShapeCell            Shape = "cell"
	ShapeZoneProducts    Shape = "zone_products"
	ShapeProductSegments Shape = "product_segments"
	ShapeMasterList      Shape = "master_list"
)

// Request narrows the view. All filters optional; the combination picks the
// shape.
type Request struct {
	ProductID string
	ZoneID    string
	SegmentID string
}

// Cell is one resolved price in the view.
type Cell struct {
	ProductID   string          `json:"productId"`
	ZoneID      string          `json:"zoneId,omitempty"`
	SegmentID   string          `json:"segmentId,omitempty"`
	MasterPrice decimal.Decimal `json:"masterPrice"`
	FinalPrice  decimal.Decimal `json:"finalPrice"`
}

// Response is the smart view: a shape tag plus its cells. Products that
// fail the availability gate or carry no master price are omitted.
type Response struct {
	Shape Shape  `json:"shape"`
	Cells []Cell `json:"cells"`
}

// Query assembles price matrices for the admin pricing screen.
type Query struct {
	catalog    contracts.CatalogReadModel
	calculator *calculate_price.Interactor
}

// NewQuery creates a new smart view query.
func NewQuery(catalog contracts.CatalogReadModel, calculator *calculate_price.Interactor) *Query {
	return &Query{
		catalog:    catalog,
		calculator: calculator,
	}
}

// Execute picks the view shape from the present filters:
// product+zone → a single cell, zone only → that zone's full product
// column, product only → that product across every segment, nothing →
// the plain master list.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	switch {
	case req.ProductID != "" && req.ZoneID != "":
		return q.singleCell(ctx, req)
	case req.ZoneID != "":
		return q.zoneProducts(ctx, req)
	case req.ProductID != "":
		return q.productSegments(ctx, req)
	}
	return q.masterList(ctx)
}

func (q *Query) singleCell(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{Shape: ShapeCell, Cells: []Cell{}}
	cell, ok, err := q.resolveCell(ctx, req.ProductID, req.ZoneID, req.SegmentID)
	if err != nil {
		return nil, err
	}
	if ok {
		resp.Cells = append(resp.Cells, cell)
	}
	return resp, nil
}

func (q *Query) zoneProducts(ctx context.Context, req *Request) (*Response, error) {
	masters, err := q.catalog.ListMasterEntries(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{Shape: ShapeZoneProducts, Cells: []Cell{}}
	for _, m := range masters {
		cell, ok, err := q.resolveCell(ctx, m.ProductID, req.ZoneID, req.SegmentID)
		if err != nil {
			return nil, err
		}
		if ok {
			resp.Cells = append(resp.Cells, cell)
		}
	}
	return resp, nil
}

func (q *Query) productSegments(ctx context.Context, req *Request) (*Response, error) {
	segments, err := q.catalog.ListSegments(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{Shape: ShapeProductSegments, Cells: []Cell{}}
	for _, seg := range segments {
		cell, ok, err := q.resolveCell(ctx, req.ProductID, "", seg.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			resp.Cells = append(resp.Cells, cell)
		}
	}
	return resp, nil
}

func (q *Query) masterList(ctx context.Context) (*Response, error) {
	masters, err := q.catalog.ListMasterEntries(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{Shape: ShapeMasterList, Cells: make([]Cell, 0, len(masters))}
	for _, m := range masters {
		resp.Cells = append(resp.Cells, Cell{
			ProductID:   m.ProductID,
			MasterPrice: m.MasterPrice,
			FinalPrice:  domain.RoundPrice(m.MasterPrice),
		})
	}
	return resp, nil
}

// resolveCell runs the calculator for one coordinate. Unavailable products
// and products without a master price drop out of the view rather than
// failing it.
func (q *Query) resolveCell(ctx context.Context, productID, zoneID, segmentID string) (Cell, bool, error) {
	calc, err := q.calculator.Execute(ctx, &calculate_price.Request{
		ProductID: productID,
		GeoZoneID: zoneID,
		SegmentID: segmentID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNoMasterPrice) {
			return Cell{}, false, nil
		}
		return Cell{}, false, err
	}
	if !calc.IsAvailable {
		return Cell{}, false, nil
	}
	return Cell{
		ProductID:   productID,
		ZoneID:      zoneID,
		SegmentID:   segmentID,
		MasterPrice: calc.MasterPrice,
		FinalPrice:  calc.FinalPrice,
	}, true, nil
}
