package resolver

import (
	"context"
	"fmt"
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/pkg/workerpool"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// nonFungibleBatchSize controls how many token ids are fetched in one repository call.
// It is a var to allow overriding in tests.
var nonFungibleBatchSize = 100

const defaultWorkerCount = 4

// SnapshotRequest lists everything a review branch needs from the ledger.
type SnapshotRequest struct {
	Resources    []model.ResourceAddress
	NonFungibles map[model.ResourceAddress][]model.NonFungibleLocalID
	// DappEntities are components or pools whose dApp definition should be resolved.
	DappEntities []model.EntityAddress
	Validators   []model.EntityAddress
}

// LedgerSnapshot is the resolved ledger state one review is built from.
type LedgerSnapshot struct {
	Resources       ResolvedResources
	NonFungibleData map[model.ResourceAddress]map[model.NonFungibleLocalID]model.NonFungibleData
	// Dapps is keyed by the entity that referenced the dApp definition.
	Dapps      map[model.EntityAddress]model.Dapp
	Validators map[model.EntityAddress]model.ValidatorInfo
}

// SnapshotLoader issues the disjoint ledger lookups of a review concurrently.
type SnapshotLoader struct {
	repo        LedgerRepository
	network     model.NetworkID
	workerCount int
	logger      *zap.Logger
}

// NewSnapshotLoader constructs a SnapshotLoader for a specific network.
func NewSnapshotLoader(repo LedgerRepository, network model.NetworkID, workerCount int, logger *zap.Logger) *SnapshotLoader {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotLoader{
		repo:        repo,
		network:     network,
		workerCount: workerCount,
		logger:      logger,
	}
}

// Load resolves the request. Tokens of resources created by the transaction are not fetched.
// Any failed lookup fails the whole load and cancels the lookups still in flight.
func (l *SnapshotLoader) Load(ctx context.Context, summary model.ExecutionSummary, req SnapshotRequest) (*LedgerSnapshot, error) {
	snapshot := &LedgerSnapshot{}
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		resources, err := NewResourceResolver(l.repo, l.network).Resolve(egCtx, summary.NewEntities, req.Resources)
		if err != nil {
			return err
		}
		snapshot.Resources = resources
		return nil
	})
	eg.Go(func() error {
		data, err := l.loadNonFungibleData(egCtx, summary, req.NonFungibles)
		if err != nil {
			return err
		}
		snapshot.NonFungibleData = data
		return nil
	})
	eg.Go(func() error {
		dapps, err := l.loadDapps(egCtx, req.DappEntities)
		if err != nil {
			return err
		}
		snapshot.Dapps = dapps
		return nil
	})
	eg.Go(func() error {
		validators, err := l.loadValidators(egCtx, req.Validators)
		if err != nil {
			return err
		}
		snapshot.Validators = validators
		return nil
	})

	if err := eg.Wait(); err != nil {
		l.logger.Debug("ledger snapshot failed", zap.Error(err))
		return nil, err
	}
	return snapshot, nil
}

type nonFungibleBatch struct {
	resource model.ResourceAddress
	ids      []model.NonFungibleLocalID
}

func (l *SnapshotLoader) loadNonFungibleData(
	ctx context.Context,
	summary model.ExecutionSummary,
	requested map[model.ResourceAddress][]model.NonFungibleLocalID,
) (map[model.ResourceAddress]map[model.NonFungibleLocalID]model.NonFungibleData, error) {
	batches := make([]nonFungibleBatch, 0, len(requested))
	for _, resource := range sortedKeys(requested) {
		if summary.IsNewEntity(resource) {
			continue
		}
		size := nonFungibleBatchSize
		if size <= 0 {
			size = 100
		}
		ids := lo.Uniq(requested[resource])
		slices.Sort(ids)
		for _, chunk := range lo.Chunk(ids, size) {
			batches = append(batches, nonFungibleBatch{resource: resource, ids: chunk})
		}
	}

	fetched, err := workerpool.Map(ctx, l.workerCount, batches, func(ctx context.Context, b nonFungibleBatch) ([]model.NonFungibleData, error) {
		data, err := l.repo.NonFungibleData(ctx, l.network, b.resource, b.ids)
		if err != nil {
			return nil, fmt.Errorf("%w: query non-fungible data of %s: %w", ErrResolutionFailure, b.resource, err)
		}
		if len(data) != len(b.ids) {
			return nil, fmt.Errorf("%w: %s requested %d got %d", ErrFailedToGetDataForAllNFTs, b.resource, len(b.ids), len(data))
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}

	result := make(map[model.ResourceAddress]map[model.NonFungibleLocalID]model.NonFungibleData, len(requested))
	for i, b := range batches {
		byID, ok := result[b.resource]
		if !ok {
			byID = make(map[model.NonFungibleLocalID]model.NonFungibleData, len(fetched[i]))
			result[b.resource] = byID
		}
		for _, token := range fetched[i] {
			byID[token.LocalID] = token
		}
	}
	return result, nil
}

func (l *SnapshotLoader) loadDapps(ctx context.Context, entities []model.EntityAddress) (map[model.EntityAddress]model.Dapp, error) {
	result := make(map[model.EntityAddress]model.Dapp)
	entities = lo.Uniq(entities)
	slices.Sort(entities)
	if len(entities) == 0 {
		return result, nil
	}

	definitions, err := l.repo.DappDefinitions(ctx, l.network, entities)
	if err != nil {
		return nil, fmt.Errorf("%w: query dapp definitions: %w", ErrResolutionFailure, err)
	}
	if len(definitions) == 0 {
		return result, nil
	}

	unique := lo.Uniq(lo.Values(definitions))
	slices.Sort(unique)
	metadata, err := l.repo.DappMetadata(ctx, l.network, unique)
	if err != nil {
		return nil, fmt.Errorf("%w: query dapp metadata: %w", ErrResolutionFailure, err)
	}

	for entity, definition := range definitions {
		meta, ok := metadata[definition]
		if !ok {
			l.logger.Debug("dapp metadata not found", zap.String("definition", string(definition)))
			continue
		}
		result[entity] = model.Dapp{Definition: definition, Metadata: meta}
	}
	return result, nil
}

func (l *SnapshotLoader) loadValidators(ctx context.Context, addresses []model.EntityAddress) (map[model.EntityAddress]model.ValidatorInfo, error) {
	result := make(map[model.EntityAddress]model.ValidatorInfo)
	addresses = lo.Uniq(addresses)
	slices.Sort(addresses)
	if len(addresses) == 0 {
		return result, nil
	}

	validators, err := l.repo.Validators(ctx, l.network, addresses)
	if err != nil {
		return nil, fmt.Errorf("%w: query validators: %w", ErrResolutionFailure, err)
	}
	for _, validator := range validators {
		result[validator.Address] = validator
	}
	for _, address := range addresses {
		if _, ok := result[address]; !ok {
			return nil, fmt.Errorf("%w: requested %d got %d, %s missing", ErrMissingValidatorInformation, len(addresses), len(validators), address)
		}
	}
	return result, nil
}

func sortedKeys[V any](m map[model.ResourceAddress]V) []model.ResourceAddress {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
