package aggregate

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type interactionKey struct {
	entity model.EntityAddress
	unit   model.ResourceAddress
}

// PoolInteractions sums interactions of the same pool and unit resource in first-seen order.
// Interactions whose summed unit amount is not positive are dropped, as are zero resource amounts.
func PoolInteractions(interactions []model.TrackedPoolInteraction) []model.TrackedPoolInteraction {
	order := make([]interactionKey, 0, len(interactions))
	merged := make(map[interactionKey]model.TrackedPoolInteraction, len(interactions))
	for _, interaction := range interactions {
		key := interactionKey{entity: interaction.Pool, unit: interaction.UnitResource}
		current, ok := merged[key]
		if !ok {
			order = append(order, key)
			current = model.TrackedPoolInteraction{
				Pool:         interaction.Pool,
				UnitResource: interaction.UnitResource,
				UnitAmount:   decimal.Zero,
				Resources:    make(map[model.ResourceAddress]decimal.Decimal, len(interaction.Resources)),
			}
		}
		current.UnitAmount = current.UnitAmount.Add(interaction.UnitAmount)
		addAmounts(current.Resources, interaction.Resources)
		merged[key] = current
	}

	out := make([]model.TrackedPoolInteraction, 0, len(order))
	for _, key := range order {
		interaction := merged[key]
		if !interaction.UnitAmount.IsPositive() {
			continue
		}
		interaction.Resources = dropZero(interaction.Resources)
		out = append(out, interaction)
	}
	return out
}

// ValidatorInteractions sums interactions of the same validator and unit resource in first-seen order.
// Claim token ids are unioned. Interactions whose summed unit amount is not positive are dropped
// unless they carry claim ids, in which case the unit amount is the number of claim tokens.
func ValidatorInteractions(interactions []model.TrackedValidatorInteraction) []model.TrackedValidatorInteraction {
	order := make([]interactionKey, 0, len(interactions))
	merged := make(map[interactionKey]model.TrackedValidatorInteraction, len(interactions))
	for _, interaction := range interactions {
		key := interactionKey{entity: interaction.Validator, unit: interaction.UnitResource}
		current, ok := merged[key]
		if !ok {
			order = append(order, key)
			current = model.TrackedValidatorInteraction{
				Validator:    interaction.Validator,
				UnitResource: interaction.UnitResource,
				UnitAmount:   decimal.Zero,
				Resources:    make(map[model.ResourceAddress]decimal.Decimal, len(interaction.Resources)),
			}
		}
		current.UnitAmount = current.UnitAmount.Add(interaction.UnitAmount)
		addAmounts(current.Resources, interaction.Resources)
		if current.ClaimResource == "" {
			current.ClaimResource = interaction.ClaimResource
		}
		current.ClaimIDs = lo.Uniq(append(current.ClaimIDs, interaction.ClaimIDs...))
		merged[key] = current
	}

	out := make([]model.TrackedValidatorInteraction, 0, len(order))
	for _, key := range order {
		interaction := merged[key]
		if !interaction.UnitAmount.IsPositive() {
			if len(interaction.ClaimIDs) == 0 {
				continue
			}
			interaction.UnitAmount = decimal.NewFromInt(int64(len(interaction.ClaimIDs)))
		}
		interaction.Resources = dropZero(interaction.Resources)
		out = append(out, interaction)
	}
	return out
}

func addAmounts(dst, src map[model.ResourceAddress]decimal.Decimal) {
	for resource, amount := range src {
		if current, ok := dst[resource]; ok {
			dst[resource] = current.Add(amount)
			continue
		}
		dst[resource] = amount
	}
}

func dropZero(amounts map[model.ResourceAddress]decimal.Decimal) map[model.ResourceAddress]decimal.Decimal {
	for resource, amount := range amounts {
		if amount.IsZero() {
			delete(amounts, resource)
		}
	}
	return amounts
}
