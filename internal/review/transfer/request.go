package transfer

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

// Addresses collects the resources referenced by indicators and the on-ledger token ids whose data
// must be fetched to build them.
func Addresses(
	summary model.ExecutionSummary,
	groups ...map[model.EntityAddress][]model.ResourceIndicator,
) ([]model.ResourceAddress, map[model.ResourceAddress][]model.NonFungibleLocalID) {
	var resources []model.ResourceAddress
	nonFungibles := make(map[model.ResourceAddress][]model.NonFungibleLocalID)
	for _, group := range groups {
		for _, indicators := range group {
			for _, indicator := range indicators {
				resources = append(resources, indicator.Resource)
				nf, ok := indicator.Kind.(model.NonFungibleIndicator)
				if !ok || len(nf.IDs) == 0 || summary.IsNewEntity(indicator.Resource) {
					continue
				}
				for _, id := range nf.IDs {
					if summary.IsNewToken(model.NonFungibleGlobalID{Resource: indicator.Resource, LocalID: id}) {
						continue
					}
					nonFungibles[indicator.Resource] = append(nonFungibles[indicator.Resource], id)
				}
			}
		}
	}
	return resources, nonFungibles
}
