package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/check_conditions"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/list_events"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/resolve_hierarchy"
	"github.com/light-bringer/pricing-service/internal/app/pricing/queries/smart_view"
	"github.com/light-bringer/pricing-service/internal/app/pricing/repo"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/calculate_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/detect_conflicts"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/remove_price"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/resolve_conflict"
	"github.com/light-bringer/pricing-service/internal/app/pricing/usecases/set_price"
	"github.com/light-bringer/pricing-service/internal/pkg/clock"
	"github.com/light-bringer/pricing-service/internal/pkg/committer"
	httptransport "github.com/light-bringer/pricing-service/internal/transport/http"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	Handlers      *httptransport.Handlers
	Logger        *zap.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, logger *zap.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories
	bookRepo := repo.NewPriceBookRepo(spannerClient)
	entryRepo := repo.NewPriceEntryRepo(spannerClient)
	zoneRepo := repo.NewGeoZoneRepo(spannerClient)
	modifierRepo := repo.NewModifierRepo(spannerClient)
	availabilityRepo := repo.NewAvailabilityRepo(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	historyRepo := repo.NewPriceHistoryRepo(spannerClient)
	catalogReadModel := repo.NewCatalogReadModel(spannerClient)
	eventsReadModel := repo.NewEventsReadModel(spannerClient)

	// 4. Create command use cases (write operations)
	calculator := calculate_price.NewInteractor(bookRepo, entryRepo, availabilityRepo, modifierRepo, logger, clk)
	detector := detect_conflicts.NewInteractor(entryRepo)
	resolver := resolve_conflict.NewInteractor(bookRepo, entryRepo, outboxRepo, historyRepo, comm, logger, clk)
	setter := set_price.NewInteractor(bookRepo, entryRepo, outboxRepo, historyRepo, comm, clk)
	remover := remove_price.NewInteractor(bookRepo, entryRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	hierarchyQuery := resolve_hierarchy.NewQuery(zoneRepo)
	smartViewQuery := smart_view.NewQuery(catalogReadModel, calculator)
	conditionsQuery := check_conditions.NewQuery()
	eventsQuery := list_events.NewQuery(eventsReadModel)

	// 6. Create HTTP handlers
	handlers := &httptransport.Handlers{
		Price:      httptransport.NewPriceHandler(calculator, hierarchyQuery),
		Conflicts:  httptransport.NewConflictsHandler(detector, resolver),
		Admin:      httptransport.NewAdminHandler(setter, remover),
		SmartView:  httptransport.NewSmartViewHandler(smartViewQuery),
		GeoZones:   httptransport.NewGeoZonesHandler(hierarchyQuery),
		Conditions: httptransport.NewConditionsHandler(conditionsQuery),
		Events:     httptransport.NewEventsHandler(eventsQuery),
	}

	return &ServiceOptions{
		SpannerClient: spannerClient,
		Handlers:      handlers,
		Logger:        logger,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
