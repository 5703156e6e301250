// Command cleanup_outbox purges delivered and permanently failed outbox
// events past their retention window. Intended to run as a scheduled job.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/pricing-service/internal/models/m_outbox"
)

type config struct {
	spannerDB          string
	completedRetention int
	failedRetention    int
	dryRun             bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.spannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&cfg.completedRetention, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&cfg.failedRetention, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&cfg.dryRun, "dry-run", false, "Count what would be deleted without deleting")
	flag.Parse()

	if cfg.spannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()
	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
}

func run(ctx context.Context, cfg config) error {
	client, err := spanner.NewClient(ctx, cfg.spannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	completedCutoff := now.AddDate(0, 0, -cfg.completedRetention)
	failedCutoff := now.AddDate(0, 0, -cfg.failedRetention)

	log.Printf("Outbox cleanup: completed before %s, failed before %s, dry-run=%v",
		completedCutoff.Format(time.RFC3339), failedCutoff.Format(time.RFC3339), cfg.dryRun)

	params := map[string]interface{}{
		"completedStatus": m_outbox.StatusCompleted,
		"failedStatus":    m_outbox.StatusFailed,
		"completedCutoff": completedCutoff,
		"failedCutoff":    failedCutoff,
	}
	where := fmt.Sprintf(
		"(%[1]s = @completedStatus AND %[2]s < @completedCutoff) OR (%[1]s = @failedStatus AND %[2]s < @failedCutoff)",
		m_outbox.Status, m_outbox.ProcessedAt,
	)

	if cfg.dryRun {
		stmt := spanner.Statement{
			SQL:    fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", m_outbox.TableName, where),
			Params: params,
		}
		iter := client.Single().Query(ctx, stmt)
		defer iter.Stop()

		row, err := iter.Next()
		if err != nil {
			return fmt.Errorf("failed to count events: %w", err)
		}
		var count int64
		if err := row.Columns(&count); err != nil {
			return fmt.Errorf("failed to parse count: %w", err)
		}
		log.Printf("DRY RUN: would delete %d events", count)
		return nil
	}

	stmt := spanner.Statement{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, where),
		Params: params,
	}
	deleted, err := client.PartitionedUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}
	log.Printf("Deleted %d events", deleted)
	return nil
}
