package sections

import (
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/samber/lo"
)

// depositSettingsBranch lists default deposit rule changes and per-resource exception changes.
type depositSettingsBranch struct {
	update model.AccountDepositSettingsUpdate
}

func (b depositSettingsBranch) request(summary model.ExecutionSummary) resolver.SnapshotRequest {
	req := baseRequest(summary)
	for _, preferences := range b.update.ResourcePreferenceUpdates {
		req.Resources = append(req.Resources, lo.Keys(preferences)...)
	}
	for _, depositors := range []map[model.EntityAddress][]model.ResourceOrNonFungible{
		b.update.AuthorizedDepositorsAdded,
		b.update.AuthorizedDepositorsRemoved,
	} {
		for _, badges := range depositors {
			for _, badge := range badges {
				req.Resources = append(req.Resources, badge.Resource)
			}
		}
	}
	return req
}

func (b depositSettingsBranch) build(a *assembly) (model.Sections, error) {
	exceptions, err := b.exceptions(a)
	if err != nil {
		return model.Sections{}, err
	}
	proofs, err := a.proofsSection()
	if err != nil {
		return model.Sections{}, err
	}
	return model.Sections{
		AccountDepositSetting:    b.rules(a),
		AccountDepositExceptions: exceptions,
		Proofs:                   proofs,
	}, nil
}

func (b depositSettingsBranch) rules(a *assembly) *model.DepositSettingSection {
	if len(b.update.DepositModeUpdates) == 0 {
		return nil
	}
	addresses := lo.Keys(b.update.DepositModeUpdates)
	a.accounts.Sort(addresses)
	changes := make([]model.DepositRuleChange, 0, len(addresses))
	for _, address := range addresses {
		changes = append(changes, model.DepositRuleChange{
			Account: a.accounts.Classify(address),
			Rule:    b.update.DepositModeUpdates[address],
		})
	}
	return &model.DepositSettingSection{Changes: changes}
}

func (b depositSettingsBranch) exceptions(a *assembly) (*model.DepositExceptionsSection, error) {
	addresses := lo.Uniq(slices.Concat(
		lo.Keys(b.update.ResourcePreferenceUpdates),
		lo.Keys(b.update.AuthorizedDepositorsAdded),
		lo.Keys(b.update.AuthorizedDepositorsRemoved),
	))
	a.accounts.Sort(addresses)

	var out []model.AccountDepositExceptions
	for _, address := range addresses {
		entry := model.AccountDepositExceptions{Account: a.accounts.Classify(address)}

		preferences := b.update.ResourcePreferenceUpdates[address]
		resources := lo.Keys(preferences)
		slices.Sort(resources)
		for _, resource := range resources {
			info, err := a.builder.Resource(resource)
			if err != nil {
				return nil, err
			}
			entry.ResourcePreferences = append(entry.ResourcePreferences, model.ResourcePreferenceChange{
				Resource: info,
				Update:   preferences[resource],
			})
		}

		for _, change := range []struct {
			badges []model.ResourceOrNonFungible
			added  bool
		}{
			{badges: b.update.AuthorizedDepositorsAdded[address], added: true},
			{badges: b.update.AuthorizedDepositorsRemoved[address], added: false},
		} {
			for _, badge := range change.badges {
				info, err := a.builder.Resource(badge.Resource)
				if err != nil {
					return nil, err
				}
				entry.Depositors = append(entry.Depositors, model.DepositorChange{
					Resource: info,
					LocalID:  badge.LocalID,
					Added:    change.added,
				})
			}
		}

		if len(entry.ResourcePreferences) > 0 || len(entry.Depositors) > 0 {
			out = append(out, entry)
		}
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &model.DepositExceptionsSection{Accounts: out}, nil
}
