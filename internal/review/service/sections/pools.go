package sections

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/enrich"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/samber/lo"
)

// poolsBranch builds pool contributions and redemptions. Contributed pool units are deposited,
// redeemed pool units are withdrawn.
type poolsBranch struct {
	contribution bool
	pools        []model.EntityAddress
	interactions []model.TrackedPoolInteraction
}

func (b poolsBranch) request(summary model.ExecutionSummary) resolver.SnapshotRequest {
	req := baseRequest(summary)
	req.DappEntities = append(req.DappEntities, b.pools...)
	for _, interaction := range b.interactions {
		req.Resources = append(req.Resources, interaction.UnitResource)
		req.Resources = append(req.Resources, lo.Keys(interaction.Resources)...)
		req.DappEntities = append(req.DappEntities, interaction.Pool)
	}
	return req
}

func (b poolsBranch) build(a *assembly) (model.Sections, error) {
	withdrawals, deposits, err := a.transfers(a.summary.Withdrawals, a.summary.Deposits)
	if err != nil {
		return model.Sections{}, err
	}

	var sections model.Sections
	if b.contribution {
		deposits, err = enrich.Pools(deposits, b.interactions, a.snapshot)
		sections.ContributingToPools = enrich.PoolsSection(b.interactions, a.snapshot)
	} else {
		withdrawals, err = enrich.Pools(withdrawals, b.interactions, a.snapshot)
		sections.RedeemingFromPools = enrich.PoolsSection(b.interactions, a.snapshot)
	}
	if err != nil {
		return model.Sections{}, err
	}

	sections.Withdrawals = a.accountsSection(withdrawals)
	sections.Deposits = a.accountsSection(deposits)
	sections.Proofs, err = a.proofsSection()
	if err != nil {
		return model.Sections{}, err
	}
	return sections, nil
}
