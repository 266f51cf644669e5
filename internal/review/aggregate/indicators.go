// Package aggregate merges resource indicators and tracked interactions before they are displayed.
package aggregate

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Indicators merges indicators of the same resource per account.
// Two entries are merged only when both are guaranteed; predicted entries stay separate so that
// each remains addressable by the instruction that produced it. The input is not modified.
func Indicators(logger *zap.Logger, byAccount map[model.EntityAddress][]model.ResourceIndicator) map[model.EntityAddress][]model.ResourceIndicator {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := make(map[model.EntityAddress][]model.ResourceIndicator, len(byAccount))
	for account, indicators := range byAccount {
		out[account] = accountIndicators(logger.With(zap.String("account", string(account))), indicators)
	}
	return out
}

func accountIndicators(logger *zap.Logger, indicators []model.ResourceIndicator) []model.ResourceIndicator {
	result := make([]model.ResourceIndicator, 0, len(indicators))
	for _, indicator := range indicators {
		if indicator.IsGuaranteed() {
			_, idx, found := lo.FindIndexOf(result, func(existing model.ResourceIndicator) bool {
				return existing.IsGuaranteed() && mergeable(existing, indicator)
			})
			if found {
				result[idx] = merge(result[idx], indicator)
				continue
			}
		} else if lo.ContainsBy(result, func(existing model.ResourceIndicator) bool {
			return !existing.IsGuaranteed() && existing.Resource == indicator.Resource
		}) {
			logger.Warn("aggregation invariant violation: predicted amounts are never merged",
				zap.String("resource", string(indicator.Resource)),
			)
		}
		result = append(result, clone(indicator))
	}
	return result
}

func mergeable(a, b model.ResourceIndicator) bool {
	if a.Resource != b.Resource {
		return false
	}
	switch ak := a.Kind.(type) {
	case model.FungibleIndicator:
		_, ok := b.Kind.(model.FungibleIndicator)
		return ok
	case model.NonFungibleIndicator:
		bk, ok := b.Kind.(model.NonFungibleIndicator)
		// id sets and bare counts cannot be combined into one entry.
		return ok && (len(ak.IDs) == 0) == (len(bk.IDs) == 0)
	default:
		return false
	}
}

// merge assumes both indicators are guaranteed and mergeable.
func merge(existing, next model.ResourceIndicator) model.ResourceIndicator {
	switch ek := existing.Kind.(type) {
	case model.FungibleIndicator:
		a := ek.Source.(model.Guaranteed)
		b := next.Kind.(model.FungibleIndicator).Source.(model.Guaranteed)
		return model.ResourceIndicator{
			Resource: existing.Resource,
			Kind:     model.FungibleIndicator{Source: a.Add(b)},
		}
	case model.NonFungibleIndicator:
		nk := next.Kind.(model.NonFungibleIndicator)
		ids := lo.Uniq(append(append([]model.NonFungibleLocalID{}, ek.IDs...), nk.IDs...))
		return model.ResourceIndicator{
			Resource: existing.Resource,
			Kind: model.NonFungibleIndicator{
				IDs:        ids,
				Amount:     ek.Amount.Add(nk.Amount),
				Guaranteed: true,
			},
		}
	default:
		return existing
	}
}

func clone(indicator model.ResourceIndicator) model.ResourceIndicator {
	if nf, ok := indicator.Kind.(model.NonFungibleIndicator); ok && nf.IDs != nil {
		nf.IDs = append([]model.NonFungibleLocalID{}, nf.IDs...)
		indicator.Kind = nf
	}
	return indicator
}
