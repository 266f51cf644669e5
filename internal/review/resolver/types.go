// Package resolver resolves the on-ledger data a review needs before its sections are built.
package resolver

import (
	"context"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// LedgerRepository describes the batch ledger lookups the review engine consumes.
type LedgerRepository interface {
	Resources(ctx context.Context, network model.NetworkID, addresses []model.ResourceAddress) (map[model.ResourceAddress]model.OnLedgerResource, error)
	NonFungibleData(ctx context.Context, network model.NetworkID, resource model.ResourceAddress, ids []model.NonFungibleLocalID) ([]model.NonFungibleData, error)
	DappDefinitions(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (map[model.EntityAddress]model.EntityAddress, error)
	DappMetadata(ctx context.Context, network model.NetworkID, definitions []model.EntityAddress) (map[model.EntityAddress]model.Metadata, error)
	Validators(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) ([]model.ValidatorInfo, error)
}
