package resolver

import (
	"context"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/samber/lo"
)

// resourceBatchSize controls how many addresses are fetched in one repository call.
// It is a var to allow overriding in tests.
var resourceBatchSize = 20

// ResolvedResources maps resource addresses to their resolution result.
type ResolvedResources map[model.ResourceAddress]model.ResourceInfo

// Lookup returns the resolved resource or a ResourceNotFoundError.
func (r ResolvedResources) Lookup(address model.ResourceAddress) (model.ResourceInfo, error) {
	info, ok := r[address]
	if !ok {
		return model.ResourceInfo{}, &ResourceNotFoundError{Address: address}
	}
	return info, nil
}

// ResourceResolver resolves resource addresses, preferring metadata of resources created in the transaction.
type ResourceResolver struct {
	repo    LedgerRepository
	network model.NetworkID
}

// NewResourceResolver constructs a ResourceResolver for a specific network.
func NewResourceResolver(repo LedgerRepository, network model.NetworkID) *ResourceResolver {
	return &ResourceResolver{repo: repo, network: network}
}

// Resolve returns resolved resources for the given addresses. Addresses found in newEntities are never
// looked up on ledger. Any failed lookup fails the whole resolution.
func (r *ResourceResolver) Resolve(
	ctx context.Context,
	newEntities map[model.ResourceAddress]model.NewEntityMetadata,
	addresses []model.ResourceAddress,
) (ResolvedResources, error) {
	result := make(ResolvedResources, len(addresses))

	missing := make([]model.ResourceAddress, 0, len(addresses))
	for _, address := range lo.Uniq(addresses) {
		if meta, ok := newEntities[address]; ok {
			result[address] = model.ResourceInfo{Address: address, NewEntity: &meta}
			continue
		}
		missing = append(missing, address)
	}
	slices.Sort(missing)

	size := resourceBatchSize
	if size <= 0 {
		size = 20
	}
	for _, chunk := range lo.Chunk(missing, size) {
		fromRepo, err := r.repo.Resources(ctx, r.network, chunk)
		if err != nil {
			return nil, fmt.Errorf("%w: query resources: %w", ErrResolutionFailure, err)
		}
		for _, address := range chunk {
			resource, ok := fromRepo[address]
			if !ok {
				continue
			}
			result[address] = model.ResourceInfo{Address: address, OnLedger: &resource}
		}
	}

	return result, nil
}
