package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

const insertReviewBuildsQuery = `
INSERT INTO review_builds (
	network,
	classification,
	status,
	sections,
	transfers,
	guarantees,
	duration_ms,
	built_at
) VALUES`

// InsertReviewBuilds appends build records to the review audit trail.
func (r *Repository) InsertReviewBuilds(ctx context.Context, records []model.BuildRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_review_builds", firstNetwork(records).String(), err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertReviewBuildsQuery)
	if err != nil {
		return fmt.Errorf("prepare review builds batch: %w", err)
	}

	for _, record := range records {
		sections := record.Sections
		if sections == nil {
			sections = []string{}
		}
		if err = batch.Append(
			uint8(record.Network),
			record.Classification,
			record.Status,
			sections,
			uint32(record.Transfers),
			uint32(record.Guarantees),
			uint64(record.Duration.Milliseconds()),
			record.BuiltAt,
		); err != nil {
			return fmt.Errorf("append review build: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert review builds: %w", err)
	}
	return nil
}

func firstNetwork(records []model.BuildRecord) model.NetworkID {
	if len(records) == 0 {
		return 0
	}
	return records[0].Network
}
