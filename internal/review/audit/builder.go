// Package audit records every review build to an asynchronous sink.
package audit

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"go.uber.org/zap"
)

const unclassifiedKind = "unclassified"

// AuditedBuilder decorates a Builder with a build record per call. Sink failures never fail the build.
type AuditedBuilder struct {
	next   Builder
	sink   Sink
	now    func() time.Time
	logger *zap.Logger
}

// NewAuditedBuilder wraps next so that every build is recorded into sink.
func NewAuditedBuilder(next Builder, sink Sink, logger *zap.Logger) (*AuditedBuilder, error) {
	if next == nil {
		return nil, errors.New("review builder is required")
	}
	if sink == nil {
		return nil, errors.New("audit sink is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditedBuilder{
		next:   next,
		sink:   sink,
		now:    time.Now,
		logger: logger.Named("audit"),
	}, nil
}

// BuildSections delegates to the wrapped builder and records the outcome.
func (b *AuditedBuilder) BuildSections(ctx context.Context, summary model.ExecutionSummary, network model.NetworkID) (*model.Review, error) {
	started := b.now()
	review, err := b.next.BuildSections(ctx, summary, network)

	record := model.BuildRecord{
		Network:        network,
		Classification: unclassifiedKind,
		Status:         model.BuildStatus(err),
		Duration:       b.now().Sub(started),
		BuiltAt:        started.UTC(),
	}
	if summary.Classification != nil {
		record.Classification = summary.Classification.Kind()
	}
	if err == nil && review != nil {
		record.Sections = review.Sections.Present()
		record.Transfers = review.Sections.TransferCount()
		record.Guarantees = len(review.Guarantees)
	}
	// the caller's cancellation must not drop the record of a finished build.
	if sinkErr := b.sink.Add(context.WithoutCancel(ctx), record); sinkErr != nil {
		b.logger.Warn("Failed to record review build",
			zap.String("classification", record.Classification),
			zap.String("status", record.Status),
			zap.Error(sinkErr),
		)
	}
	return review, err
}
