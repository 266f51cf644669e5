package enrich

import (
	"fmt"
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Pools replaces fungible transfers of pool units with PoolUnitDetails carrying the underlying
// resources of the matching interaction, scaled by transferAmount / unitAmount.
// Interactions must already be aggregated per pool and unit resource.
func Pools(
	byAccount map[model.EntityAddress][]model.Transfer,
	interactions []model.TrackedPoolInteraction,
	snapshot *resolver.LedgerSnapshot,
) (map[model.EntityAddress][]model.Transfer, error) {
	byUnit := make(map[model.ResourceAddress]model.TrackedPoolInteraction, len(interactions))
	for _, interaction := range interactions {
		byUnit[interaction.UnitResource] = interaction
	}

	out := make(map[model.EntityAddress][]model.Transfer, len(byAccount))
	for account, transfers := range byAccount {
		enriched := make([]model.Transfer, 0, len(transfers))
		for _, t := range transfers {
			interaction, ok := byUnit[t.Resource.Address]
			fungible, isFungible := t.Details.(model.FungibleDetails)
			if !ok || !isFungible {
				enriched = append(enriched, t)
				continue
			}
			details, err := poolUnitDetails(fungible.Amount, interaction, snapshot)
			if err != nil {
				return nil, fmt.Errorf("pool %s: %w", interaction.Pool, err)
			}
			t.Details = details
			enriched = append(enriched, t)
		}
		out[account] = enriched
	}
	return out, nil
}

func poolUnitDetails(amount decimal.Decimal, interaction model.TrackedPoolInteraction, snapshot *resolver.LedgerSnapshot) (model.PoolUnitDetails, error) {
	pool := model.Pool{Address: interaction.Pool}
	if dapp, ok := snapshot.Dapps[interaction.Pool]; ok {
		pool.Dapp = &dapp
	}

	addresses := lo.Keys(interaction.Resources)
	slices.Sort(addresses)
	resources := make([]model.ResourceAmount, 0, len(addresses))
	for _, address := range addresses {
		info, err := snapshot.Resources.Lookup(address)
		if err != nil {
			return model.PoolUnitDetails{}, err
		}
		resources = append(resources, model.ResourceAmount{
			Resource: info,
			Amount:   scale(interaction.Resources[address], amount, interaction.UnitAmount, info.Divisibility()),
		})
	}

	return model.PoolUnitDetails{
		Amount:    amount,
		Pool:      pool,
		Resources: resources,
		Estimated: !amount.Equal(interaction.UnitAmount),
	}, nil
}

// PoolsSection lists the pools of the interactions in order, attributed to their dApps when known.
func PoolsSection(interactions []model.TrackedPoolInteraction, snapshot *resolver.LedgerSnapshot) *model.PoolsSection {
	seen := make(map[model.EntityAddress]struct{}, len(interactions))
	pools := make([]model.Pool, 0, len(interactions))
	for _, interaction := range interactions {
		if _, dup := seen[interaction.Pool]; dup {
			continue
		}
		seen[interaction.Pool] = struct{}{}
		pool := model.Pool{Address: interaction.Pool}
		if dapp, ok := snapshot.Dapps[interaction.Pool]; ok {
			pool.Dapp = &dapp
		}
		pools = append(pools, pool)
	}
	if len(pools) == 0 {
		return nil
	}
	return &model.PoolsSection{Pools: pools}
}
