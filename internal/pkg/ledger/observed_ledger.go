// Package ledger wraps ledger metadata lookups with metrics and a request rate limit.
package ledger

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"go.uber.org/ratelimit"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		Resources(ctx context.Context, network model.NetworkID, addresses []model.ResourceAddress) (map[model.ResourceAddress]model.OnLedgerResource, error)
		NonFungibleData(ctx context.Context, network model.NetworkID, resource model.ResourceAddress, ids []model.NonFungibleLocalID) ([]model.NonFungibleData, error)
		DappDefinitions(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (map[model.EntityAddress]model.EntityAddress, error)
		DappMetadata(ctx context.Context, network model.NetworkID, definitions []model.EntityAddress) (map[model.EntityAddress]model.Metadata, error)
		Validators(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) ([]model.ValidatorInfo, error)
	}
	Metrics interface {
		Observe(operation, network string, size int, err error, started time.Time)
	}
)

type ObservedLedger struct {
	repo    Repository
	metrics Metrics
	limiter ratelimit.Limiter
}

// NewObservedLedger limits lookups to rps per second; rps <= 0 disables the limit.
func NewObservedLedger(repo Repository, metrics Metrics, rps int) *ObservedLedger {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedLedger{
		repo:    repo,
		metrics: metrics,
		limiter: limiter,
	}
}

func (l *ObservedLedger) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.limiter.Take()
	return ctx.Err()
}

func (l *ObservedLedger) Resources(ctx context.Context, network model.NetworkID, addresses []model.ResourceAddress) (res map[model.ResourceAddress]model.OnLedgerResource, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("resources", network.String(), len(addresses), err, started)
	}()
	if err = l.wait(ctx); err != nil {
		return nil, err
	}
	return l.repo.Resources(ctx, network, addresses)
}

func (l *ObservedLedger) NonFungibleData(ctx context.Context, network model.NetworkID, resource model.ResourceAddress, ids []model.NonFungibleLocalID) (data []model.NonFungibleData, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("non_fungible_data", network.String(), len(ids), err, started)
	}()
	if err = l.wait(ctx); err != nil {
		return nil, err
	}
	return l.repo.NonFungibleData(ctx, network, resource, ids)
}

func (l *ObservedLedger) DappDefinitions(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (defs map[model.EntityAddress]model.EntityAddress, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("dapp_definitions", network.String(), len(addresses), err, started)
	}()
	if err = l.wait(ctx); err != nil {
		return nil, err
	}
	return l.repo.DappDefinitions(ctx, network, addresses)
}

func (l *ObservedLedger) DappMetadata(ctx context.Context, network model.NetworkID, definitions []model.EntityAddress) (meta map[model.EntityAddress]model.Metadata, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("dapp_metadata", network.String(), len(definitions), err, started)
	}()
	if err = l.wait(ctx); err != nil {
		return nil, err
	}
	return l.repo.DappMetadata(ctx, network, definitions)
}

func (l *ObservedLedger) Validators(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (validators []model.ValidatorInfo, err error) {
	started := time.Now()
	defer func() {
		l.metrics.Observe("validators", network.String(), len(addresses), err, started)
	}()
	if err = l.wait(ctx); err != nil {
		return nil, err
	}
	return l.repo.Validators(ctx, network, addresses)
}
