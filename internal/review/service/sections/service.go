// Package sections assembles the structured review of a classified execution summary.
package sections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/accounts"
	"github.com/goodnatureofminers/txreview-backend/internal/review/guarantee"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/goodnatureofminers/txreview-backend/internal/review/transfer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnclassified is returned instead of a review when the summary must be shown as a raw manifest.
	ErrUnclassified = model.ErrUnclassified
	// ErrUnknownNetwork is returned for network ids without an address encoding.
	ErrUnknownNetwork = errors.New("unknown network")
)

// Service builds reviews. It holds no per-review state and is safe for concurrent use.
type Service struct {
	repo        LedgerRepository
	accounts    AccountBook
	policy      GuaranteePolicy
	metrics     ReviewMetrics
	workerCount int
	newID       func() uuid.UUID
	logger      *zap.Logger
}

func NewService(
	repo LedgerRepository,
	accounts AccountBook,
	policy GuaranteePolicy,
	metrics ReviewMetrics,
	logger *zap.Logger,
) (*Service, error) {
	if repo == nil {
		return nil, errors.New("ledger repository is required")
	}
	if accounts == nil {
		return nil, errors.New("account book is required")
	}
	if policy == nil {
		return nil, errors.New("guarantee policy is required")
	}
	if metrics == nil {
		return nil, errors.New("review metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:        repo,
		accounts:    accounts,
		policy:      policy,
		metrics:     metrics,
		workerCount: defaultWorkerCount,
		newID:       uuid.New,
		logger:      logger.Named("sections"),
	}, nil
}

// BuildSections builds the review of one summary. ErrUnclassified means the summary has no
// structured review; any other error fails the whole review and no partial sections are returned.
func (s *Service) BuildSections(ctx context.Context, summary model.ExecutionSummary, network model.NetworkID) (review *model.Review, err error) {
	kind := unclassifiedKind
	if summary.Classification != nil {
		kind = summary.Classification.Kind()
	}
	started := time.Now()
	defer func() {
		s.metrics.ObserveBuild(kind, err, started)
	}()

	logger := s.logger.With(zap.String("classification", kind), zap.Stringer("network", network))

	b, ok := branchFor(summary)
	if !ok {
		logger.Debug("summary has no structured review")
		return nil, ErrUnclassified
	}
	info, ok := network.Info()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNetwork, network)
	}

	var (
		snapshot *resolver.LedgerSnapshot
		known    []model.WalletAccount
		ratio    decimal.Decimal
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		loader := resolver.NewSnapshotLoader(s.repo, network, s.workerCount, logger)
		loaded, err := loader.Load(egCtx, summary, b.request(summary))
		if err != nil {
			return err
		}
		snapshot = loaded
		return nil
	})
	eg.Go(func() error {
		wallet, err := s.accounts.KnownAccounts(egCtx, network)
		if err != nil {
			return fmt.Errorf("get known accounts: %w", err)
		}
		known = wallet
		return nil
	})
	eg.Go(func() error {
		r, err := s.policy.DefaultDepositGuaranteeRatio(egCtx)
		if err != nil {
			return fmt.Errorf("get default deposit guarantee ratio: %w", err)
		}
		ratio = r
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	calculator, err := guarantee.NewCalculator(ratio)
	if err != nil {
		return nil, err
	}

	a := &assembly{
		summary:  summary,
		snapshot: snapshot,
		builder:  transfer.NewBuilder(snapshot, summary, info.XRD, calculator, s.newID),
		accounts: accounts.NewClassifier(known),
		xrd:      info.XRD,
		logger:   logger,
	}
	sections, err := b.build(a)
	if err != nil {
		if errors.Is(err, ErrUnclassified) {
			return nil, err
		}
		return nil, fmt.Errorf("build %s review: %w", kind, err)
	}
	if sections.IsEmpty() {
		logger.Debug("review has no sections")
		return nil, ErrUnclassified
	}

	review = &model.Review{Sections: sections, Guarantees: a.builder.Guarantees()}
	logger.Debug("review built", zap.Int("guarantees", len(review.Guarantees)))
	return review, nil
}
