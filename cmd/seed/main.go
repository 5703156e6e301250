// Command seed loads a development fixture set into the pricing database:
// a master book with a handful of products, two zone overrides, a segment
// book, geo zones with postal ranges, user segments, and a few modifiers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/pricing-service/internal/models/m_availability"
	"github.com/light-bringer/pricing-service/internal/models/m_book_entry"
	"github.com/light-bringer/pricing-service/internal/models/m_geo_zone"
	"github.com/light-bringer/pricing-service/internal/models/m_modifier"
	"github.com/light-bringer/pricing-service/internal/models/m_price_book"
	"github.com/light-bringer/pricing-service/internal/models/m_segment"
	"github.com/light-bringer/pricing-service/internal/models/m_zone_mapping"
)

var databasePath = flag.String("database",
	getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/pricing-db"),
	"Full Spanner database path")

func main() {
	flag.Parse()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, *databasePath)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed data loaded successfully!")
}

func seed(ctx context.Context, client *spanner.Client) error {
	var muts []*spanner.Mutation

	bookModel := m_price_book.NewModel()
	entryModel := m_book_entry.NewModel()
	zoneModel := m_geo_zone.NewModel()
	mappingModel := m_zone_mapping.NewModel()
	segmentModel := m_segment.NewModel()
	availModel := m_availability.NewModel()

	// Zones: a country, a state inside it, a city zip band.
	zones := []m_geo_zone.Data{
		{ZoneID: "zone-country-in", Name: "India", Level: "country", Priority: 1, IsActive: true},
		{ZoneID: "zone-state-ka", Name: "Karnataka", Level: "state", Priority: 5, IsActive: true},
		{ZoneID: "zone-city-blr", Name: "Bengaluru", Level: "city", Priority: 10, IsActive: true},
	}
	for i := range zones {
		muts = append(muts, zoneModel.InsertMut(&zones[i]))
	}

	mappings := []m_zone_mapping.Data{
		{MappingID: uuid.New().String(), ZoneID: "zone-country-in", RangeStart: 100000, RangeEnd: 999999},
		{MappingID: uuid.New().String(), ZoneID: "zone-state-ka", RangeStart: 560000, RangeEnd: 599999},
		{MappingID: uuid.New().String(), ZoneID: "zone-city-blr", RangeStart: 560001, RangeEnd: 560100},
	}
	for i := range mappings {
		muts = append(muts, mappingModel.InsertMut(&mappings[i]))
	}

	// Segments.
	segments := []m_segment.Data{
		{SegmentID: "seg-retail", Name: "Retail", Priority: 10, PricingTier: "standard", IsDefault: true, IsSystem: true},
		{SegmentID: "seg-wholesale", Name: "Wholesale", Priority: 20, PricingTier: "bulk", IsDefault: false, IsSystem: false},
	}
	for i := range segments {
		muts = append(muts, segmentModel.InsertMut(&segments[i]))
	}

	// Books: one master, one city override, one wholesale override.
	masterID := "book-master"
	cityBookID := "book-zone-blr"
	wholesaleBookID := "book-seg-wholesale"

	muts = append(muts,
		bookModel.InsertMut(&m_price_book.Data{
			BookID:   masterID,
			IsMaster: true,
			IsActive: true,
		}),
		bookModel.InsertMut(&m_price_book.Data{
			BookID:       cityBookID,
			GeoZoneID:    spanner.NullString{StringVal: "zone-city-blr", Valid: true},
			IsActive:     true,
			ParentBookID: spanner.NullString{StringVal: masterID, Valid: true},
		}),
		bookModel.InsertMut(&m_price_book.Data{
			BookID:       wholesaleBookID,
			SegmentID:    spanner.NullString{StringVal: "seg-wholesale", Valid: true},
			IsActive:     true,
			ParentBookID: spanner.NullString{StringVal: masterID, Valid: true},
		}),
	)

	// Master prices plus a city override for the first product.
	prices := map[string]int64{
		"prod-basmati-5kg": 100,
		"prod-ghee-1l":     550,
		"prod-tea-500g":    240,
	}
	for productID, rupees := range prices {
		muts = append(muts, entryModel.UpsertMut(&m_book_entry.Data{
			BookID:    masterID,
			ProductID: productID,
			BasePrice: *big.NewRat(rupees, 1),
		}))
	}
	muts = append(muts,
		entryModel.UpsertMut(&m_book_entry.Data{
			BookID:    cityBookID,
			ProductID: "prod-basmati-5kg",
			BasePrice: *big.NewRat(90, 1),
		}),
		entryModel.UpsertMut(&m_book_entry.Data{
			BookID:    wholesaleBookID,
			ProductID: "prod-ghee-1l",
			BasePrice: *big.NewRat(495, 1),
		}),
	)

	// Modifiers: a stackable wholesale discount and a non-stackable
	// combination promo gated on zone + quantity.
	modifierModel := m_modifier.NewModel()
	muts = append(muts,
		modifierModel.InsertMut(&m_modifier.Data{
			ModifierID:   "mod-wholesale-5pct",
			Name:         "Wholesale 5% off",
			AppliesTo:    "SEGMENT",
			ModifierType: "PERCENT_DEC",
			Value:        *big.NewRat(5, 1),
			IsStackable:  true,
			Priority:     10,
			SegmentID:    spanner.NullString{StringVal: "seg-wholesale", Valid: true},
			IsActive:     true,
		}),
		modifierModel.InsertMut(&m_modifier.Data{
			ModifierID:   "mod-blr-bulk-promo",
			Name:         "Bengaluru bulk promo",
			AppliesTo:    "COMBINATION",
			ModifierType: "PERCENT_DEC",
			Value:        *big.NewRat(10, 1),
			Priority:     20,
			Conditions: spanner.NullString{
				StringVal: `{"AND":[{"field":"geo_zone","operator":"EQUALS","value":"zone-city-blr"},{"field":"quantity","operator":"GTE","value":10}]}`,
				Valid:     true,
			},
			IsActive: true,
		}),
	)

	// One product blocked in the city zone.
	muts = append(muts, availModel.UpsertMut(&m_availability.Data{
		ProductID:  "prod-tea-500g",
		ZoneID:     "zone-city-blr",
		IsSellable: false,
		Reason:     spanner.NullString{StringVal: "Not compliant", Valid: true},
	}))

	if _, err := client.Apply(ctx, muts); err != nil {
		return fmt.Errorf("failed to apply seed mutations: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
