// Package clickhouse reads ledger metadata replicated into ClickHouse and stores the review audit trail.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/samber/lo"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Exec(ctx context.Context, query string, args ...any) error
		PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error)
		Close() error
	}
	Rows interface {
		driver.Rows
	}
	Batch interface {
		driver.Batch
	}
	Metrics interface {
		Observe(operation, network string, err error, started time.Time)
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func toStrings[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string {
		return string(v)
	})
}

func metadata(name, symbol, description, iconURL string, tags []string) model.Metadata {
	return model.Metadata{
		Name:        name,
		Symbol:      symbol,
		Description: description,
		IconURL:     iconURL,
		Tags:        tags,
	}
}
