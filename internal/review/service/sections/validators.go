package sections

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/aggregate"
	"github.com/goodnatureofminers/txreview-backend/internal/review/enrich"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type validatorAction int

const (
	stake validatorAction = iota
	unstake
	claim
)

// validatorsBranch builds stakes, unstakes and claims. Liquid stake units and stake claim tokens
// are rewritten on both sides of the transaction.
type validatorsBranch struct {
	kind         validatorAction
	validators   []model.EntityAddress
	interactions []model.TrackedValidatorInteraction
}

func (b validatorsBranch) request(summary model.ExecutionSummary) resolver.SnapshotRequest {
	withdrawals, deposits := b.indicators(summary, nil)
	req := baseRequest(summary, withdrawals, deposits)
	req.Validators = append(req.Validators, b.validators...)
	for _, interaction := range b.interactions {
		req.Resources = append(req.Resources, interaction.UnitResource)
		req.Resources = append(req.Resources, lo.Keys(interaction.Resources)...)
		if interaction.ClaimResource != "" {
			req.Resources = append(req.Resources, interaction.ClaimResource)
		}
		req.Validators = append(req.Validators, interaction.Validator)
	}
	return req
}

// indicators merges the guaranteed indicators of claims, where many claim tokens of one
// resource redeem into a single amount of XRD.
func (b validatorsBranch) indicators(summary model.ExecutionSummary, logger *zap.Logger) (
	withdrawals, deposits map[model.EntityAddress][]model.ResourceIndicator,
) {
	if b.kind != claim {
		return summary.Withdrawals, summary.Deposits
	}
	return aggregate.Indicators(logger, summary.Withdrawals), aggregate.Indicators(logger, summary.Deposits)
}

func (b validatorsBranch) build(a *assembly) (model.Sections, error) {
	withdrawals, deposits := b.indicators(a.summary, a.logger)
	w, d, err := a.transfers(withdrawals, deposits)
	if err != nil {
		return model.Sections{}, err
	}

	enricher := enrich.NewValidatorEnricher(a.snapshot, a.xrd, a.summary.UnstakeClaims, a.builder.NewID)
	if w, err = enricher.Enrich(w, b.interactions); err != nil {
		return model.Sections{}, err
	}
	if d, err = enricher.Enrich(d, b.interactions); err != nil {
		return model.Sections{}, err
	}

	addresses := append([]model.EntityAddress{}, b.validators...)
	for _, interaction := range b.interactions {
		addresses = append(addresses, interaction.Validator)
	}
	validators, err := enrich.ValidatorsSection(addresses, a.snapshot)
	if err != nil {
		return model.Sections{}, err
	}

	sections := model.Sections{
		Withdrawals: a.accountsSection(w),
		Deposits:    a.accountsSection(d),
	}
	switch b.kind {
	case stake:
		sections.StakingToValidators = validators
	case unstake:
		sections.UnstakingFromValidators = validators
	case claim:
		sections.ClaimingFromValidators = validators
	}
	sections.Proofs, err = a.proofsSection()
	if err != nil {
		return model.Sections{}, err
	}
	return sections, nil
}
