package transport

import (
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

func (d decoder) classification(raw classificationDTO) (model.Classification, error) {
	switch raw.Kind {
	case model.General{}.Kind():
		return model.General{}, nil
	case model.TransferClassification{}.Kind():
		return model.TransferClassification{OneToOne: raw.OneToOne}, nil
	case model.PoolContribution{}.Kind(), model.PoolRedemption{}.Kind():
		pools, err := d.entities(raw.Pools)
		if err != nil {
			return nil, err
		}
		interactions, err := d.poolInteractions(raw.PoolInteractions)
		if err != nil {
			return nil, err
		}
		if raw.Kind == (model.PoolContribution{}).Kind() {
			return model.PoolContribution{Pools: pools, Contributions: interactions}, nil
		}
		return model.PoolRedemption{Pools: pools, Redemptions: interactions}, nil
	case model.ValidatorStake{}.Kind(), model.ValidatorUnstake{}.Kind(), model.ValidatorClaim{}.Kind():
		validators, err := d.entities(raw.Validators)
		if err != nil {
			return nil, err
		}
		interactions, err := d.validatorInteractions(raw.ValidatorInteractions)
		if err != nil {
			return nil, err
		}
		switch raw.Kind {
		case model.ValidatorStake{}.Kind():
			return model.ValidatorStake{Validators: validators, Stakes: interactions}, nil
		case model.ValidatorUnstake{}.Kind():
			return model.ValidatorUnstake{Validators: validators, Unstakes: interactions}, nil
		default:
			return model.ValidatorClaim{Validators: validators, Claims: interactions}, nil
		}
	case model.AccountDepositSettingsUpdate{}.Kind():
		return d.depositSettings(raw)
	case model.SecurifyEntity{}.Kind():
		entities, err := d.entities(raw.Entities)
		if err != nil {
			return nil, err
		}
		return model.SecurifyEntity{Entities: entities}, nil
	case model.AccessControllerRecovery{}.Kind():
		controllers, err := d.entities(raw.Entities)
		if err != nil {
			return nil, err
		}
		return model.AccessControllerRecovery{Controllers: controllers}, nil
	case model.AccessControllerStopTimedRecovery{}.Kind():
		controllers, err := d.entities(raw.Entities)
		if err != nil {
			return nil, err
		}
		return model.AccessControllerStopTimedRecovery{Controllers: controllers}, nil
	case model.Unclassified{}.Kind():
		return model.Unclassified{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown classification %q", ErrInvalidRequest, raw.Kind)
	}
}

func (d decoder) poolInteractions(raw []poolInteractionDTO) ([]model.TrackedPoolInteraction, error) {
	out := make([]model.TrackedPoolInteraction, 0, len(raw))
	for _, interaction := range raw {
		pool, err := d.entity(interaction.Pool)
		if err != nil {
			return nil, err
		}
		unit, err := d.resource(interaction.UnitResource)
		if err != nil {
			return nil, err
		}
		resources, err := d.amounts(interaction.Resources)
		if err != nil {
			return nil, err
		}
		out = append(out, model.TrackedPoolInteraction{
			Pool:         pool,
			UnitResource: unit,
			UnitAmount:   interaction.UnitAmount,
			Resources:    resources,
		})
	}
	return out, nil
}

func (d decoder) validatorInteractions(raw []validatorInteractionDTO) ([]model.TrackedValidatorInteraction, error) {
	out := make([]model.TrackedValidatorInteraction, 0, len(raw))
	for _, interaction := range raw {
		validator, err := d.entity(interaction.Validator)
		if err != nil {
			return nil, err
		}
		unit, err := d.resource(interaction.UnitResource)
		if err != nil {
			return nil, err
		}
		resources, err := d.amounts(interaction.Resources)
		if err != nil {
			return nil, err
		}
		tracked := model.TrackedValidatorInteraction{
			Validator:    validator,
			UnitResource: unit,
			UnitAmount:   interaction.UnitAmount,
			Resources:    resources,
		}
		if interaction.ClaimResource != "" {
			if tracked.ClaimResource, err = d.resource(interaction.ClaimResource); err != nil {
				return nil, err
			}
		}
		for _, id := range interaction.ClaimIDs {
			tracked.ClaimIDs = append(tracked.ClaimIDs, model.NonFungibleLocalID(id))
		}
		out = append(out, tracked)
	}
	return out, nil
}

func (d decoder) amounts(raw map[string]decimal.Decimal) (map[model.ResourceAddress]decimal.Decimal, error) {
	out := make(map[model.ResourceAddress]decimal.Decimal, len(raw))
	for rawResource, amount := range raw {
		resource, err := d.resource(rawResource)
		if err != nil {
			return nil, err
		}
		out[resource] = amount
	}
	return out, nil
}

func (d decoder) depositSettings(raw classificationDTO) (model.AccountDepositSettingsUpdate, error) {
	update := model.AccountDepositSettingsUpdate{
		ResourcePreferenceUpdates:   make(map[model.EntityAddress]map[model.ResourceAddress]model.ResourcePreferenceUpdate),
		DepositModeUpdates:          make(map[model.EntityAddress]model.DepositRule),
		AuthorizedDepositorsAdded:   make(map[model.EntityAddress][]model.ResourceOrNonFungible),
		AuthorizedDepositorsRemoved: make(map[model.EntityAddress][]model.ResourceOrNonFungible),
	}
	for rawAccount, preferences := range raw.ResourcePreferenceUpdates {
		account, err := d.entity(rawAccount)
		if err != nil {
			return update, err
		}
		decoded := make(map[model.ResourceAddress]model.ResourcePreferenceUpdate, len(preferences))
		for rawResource, preference := range preferences {
			resource, err := d.resource(rawResource)
			if err != nil {
				return update, err
			}
			switch p := model.ResourcePreferenceUpdate(preference); p {
			case model.ResourcePreferenceAllowed, model.ResourcePreferenceDisallowed, model.ResourcePreferenceRemove:
				decoded[resource] = p
			default:
				return update, fmt.Errorf("%w: unknown resource preference %q", ErrInvalidRequest, preference)
			}
		}
		update.ResourcePreferenceUpdates[account] = decoded
	}
	for rawAccount, rule := range raw.DepositModeUpdates {
		account, err := d.entity(rawAccount)
		if err != nil {
			return update, err
		}
		switch r := model.DepositRule(rule); r {
		case model.DepositRuleAcceptAll, model.DepositRuleAcceptKnown, model.DepositRuleDenyAll:
			update.DepositModeUpdates[account] = r
		default:
			return update, fmt.Errorf("%w: unknown deposit rule %q", ErrInvalidRequest, rule)
		}
	}
	var err error
	if update.AuthorizedDepositorsAdded, err = d.depositors(raw.AuthorizedDepositorsAdded); err != nil {
		return update, err
	}
	if update.AuthorizedDepositorsRemoved, err = d.depositors(raw.AuthorizedDepositorsRemoved); err != nil {
		return update, err
	}
	return update, nil
}

func (d decoder) depositors(raw map[string][]globalIDDTO) (map[model.EntityAddress][]model.ResourceOrNonFungible, error) {
	out := make(map[model.EntityAddress][]model.ResourceOrNonFungible, len(raw))
	for rawAccount, badges := range raw {
		account, err := d.entity(rawAccount)
		if err != nil {
			return nil, err
		}
		for _, badge := range badges {
			decoded, err := d.globalID(badge)
			if err != nil {
				return nil, err
			}
			out[account] = append(out[account], decoded)
		}
	}
	return out, nil
}
