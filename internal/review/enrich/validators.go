package enrich

import (
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/shopspring/decimal"
)

// ValidatorEnricher rewrites liquid stake unit and stake claim transfers of one review.
type ValidatorEnricher struct {
	snapshot      *resolver.LedgerSnapshot
	xrd           model.ResourceAddress
	unstakeClaims map[model.NonFungibleGlobalID]model.UnstakeData
	newID         func() model.TransferID
}

// NewValidatorEnricher constructs a ValidatorEnricher. Claim data of tokens minted by the
// transaction is taken from unstakeClaims, all other claim data from the fetched token data.
func NewValidatorEnricher(
	snapshot *resolver.LedgerSnapshot,
	xrd model.ResourceAddress,
	unstakeClaims map[model.NonFungibleGlobalID]model.UnstakeData,
	newID func() model.TransferID,
) *ValidatorEnricher {
	return &ValidatorEnricher{
		snapshot:      snapshot,
		xrd:           xrd,
		unstakeClaims: unstakeClaims,
		newID:         newID,
	}
}

// Enrich replaces liquid stake unit transfers with LiquidStakeUnitDetails and groups the stake
// claim tokens of each account into one StakeClaimDetails transfer per claim resource.
// Interactions must already be aggregated per validator and unit resource.
func (e *ValidatorEnricher) Enrich(
	byAccount map[model.EntityAddress][]model.Transfer,
	interactions []model.TrackedValidatorInteraction,
) (map[model.EntityAddress][]model.Transfer, error) {
	byUnit := make(map[model.ResourceAddress]model.TrackedValidatorInteraction, len(interactions))
	claimValidators := make(map[model.ResourceAddress]model.EntityAddress, len(interactions))
	for _, interaction := range interactions {
		byUnit[interaction.UnitResource] = interaction
		if claim := claimResource(interaction); claim != "" {
			claimValidators[claim] = interaction.Validator
		}
	}

	out := make(map[model.EntityAddress][]model.Transfer, len(byAccount))
	for account, transfers := range byAccount {
		enriched, err := e.account(transfers, byUnit, claimValidators)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", account, err)
		}
		out[account] = enriched
	}
	return out, nil
}

func (e *ValidatorEnricher) account(
	transfers []model.Transfer,
	byUnit map[model.ResourceAddress]model.TrackedValidatorInteraction,
	claimValidators map[model.ResourceAddress]model.EntityAddress,
) ([]model.Transfer, error) {
	out := make([]model.Transfer, 0, len(transfers))
	claimGroups := make(map[model.ResourceAddress]int)

	for _, t := range transfers {
		switch details := t.Details.(type) {
		case model.FungibleDetails:
			interaction, ok := byUnit[t.Resource.Address]
			if !ok {
				break
			}
			validator, err := e.validator(interaction.Validator)
			if err != nil {
				return nil, err
			}
			t.Details = model.LiquidStakeUnitDetails{
				Amount:    details.Amount,
				Validator: validator,
				WorthXRD:  scale(interaction.Resources[e.xrd], details.Amount, interaction.UnitAmount, model.DefaultDivisibility),
				Estimated: !details.Amount.Equal(interaction.UnitAmount),
			}
		case model.NonFungibleDetails:
			validatorAddress, ok := claimValidators[t.Resource.Address]
			if !ok || details.CountOnly() {
				break
			}
			claim := e.claim(t.Resource.Address, details)
			if idx, grouped := claimGroups[t.Resource.Address]; grouped {
				group := out[idx].Details.(model.StakeClaimDetails)
				group.Claims = append(group.Claims, claim)
				out[idx].Details = group
				continue
			}
			validator, err := e.validator(validatorAddress)
			if err != nil {
				return nil, err
			}
			claimGroups[t.Resource.Address] = len(out)
			out = append(out, model.Transfer{
				ID:       e.newID(),
				Resource: t.Resource,
				Details: model.StakeClaimDetails{
					Validator: validator,
					Claims:    []model.StakeClaim{claim},
				},
			})
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (e *ValidatorEnricher) claim(resource model.ResourceAddress, details model.NonFungibleDetails) model.StakeClaim {
	claim := model.StakeClaim{LocalID: details.LocalID, Data: details.Data, ClaimAmount: decimal.Zero}
	if details.Data != nil {
		if details.Data.ClaimAmount != nil {
			claim.ClaimAmount = *details.Data.ClaimAmount
		}
		if details.Data.ClaimEpoch != nil {
			claim.ClaimEpoch = *details.Data.ClaimEpoch
		}
		return claim
	}
	if data, ok := e.unstakeClaims[model.NonFungibleGlobalID{Resource: resource, LocalID: details.LocalID}]; ok {
		claim.ClaimAmount = data.ClaimAmount
		claim.ClaimEpoch = data.ClaimEpoch
	}
	return claim
}

func (e *ValidatorEnricher) validator(address model.EntityAddress) (model.ValidatorInfo, error) {
	validator, ok := e.snapshot.Validators[address]
	if !ok {
		return model.ValidatorInfo{}, fmt.Errorf("%w: %s", resolver.ErrMissingValidatorInformation, address)
	}
	return validator, nil
}

// claimResource returns the stake claim resource of an interaction. Claims use the claim token
// as their unit resource.
func claimResource(interaction model.TrackedValidatorInteraction) model.ResourceAddress {
	if interaction.ClaimResource != "" {
		return interaction.ClaimResource
	}
	if len(interaction.ClaimIDs) > 0 {
		return interaction.UnitResource
	}
	return ""
}

// ValidatorsSection lists the given validators in order.
func ValidatorsSection(addresses []model.EntityAddress, snapshot *resolver.LedgerSnapshot) (*model.ValidatorsSection, error) {
	seen := make(map[model.EntityAddress]struct{}, len(addresses))
	validators := make([]model.ValidatorInfo, 0, len(addresses))
	for _, address := range addresses {
		if _, dup := seen[address]; dup {
			continue
		}
		seen[address] = struct{}{}
		validator, ok := snapshot.Validators[address]
		if !ok {
			return nil, fmt.Errorf("%w: %s", resolver.ErrMissingValidatorInformation, address)
		}
		validators = append(validators, validator)
	}
	if len(validators) == 0 {
		return nil, nil
	}
	return &model.ValidatorsSection{Validators: validators}, nil
}
