package sections

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/accounts"
	"github.com/goodnatureofminers/txreview-backend/internal/review/aggregate"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/goodnatureofminers/txreview-backend/internal/review/transfer"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// branch builds the sections of one classification.
type branch interface {
	request(summary model.ExecutionSummary) resolver.SnapshotRequest
	build(a *assembly) (model.Sections, error)
}

// branchFor picks the branch of a summary. It reports false when the summary must fall back to
// the raw manifest before any ledger lookup is made.
func branchFor(summary model.ExecutionSummary) (branch, bool) {
	switch c := summary.Classification.(type) {
	case model.General:
		return transfersBranch{dapps: true}, summary.HasTransfers()
	case model.TransferClassification:
		return transfersBranch{}, summary.HasTransfers()
	case model.SecurifyEntity, model.AccessControllerRecovery, model.AccessControllerStopTimedRecovery:
		return transfersBranch{dapps: true}, true
	case model.PoolContribution:
		return poolsBranch{
			contribution: true,
			pools:        c.Pools,
			interactions: aggregate.PoolInteractions(c.Contributions),
		}, true
	case model.PoolRedemption:
		return poolsBranch{
			pools:        c.Pools,
			interactions: aggregate.PoolInteractions(c.Redemptions),
		}, true
	case model.ValidatorStake:
		return validatorsBranch{
			kind:         stake,
			validators:   c.Validators,
			interactions: aggregate.ValidatorInteractions(c.Stakes),
		}, true
	case model.ValidatorUnstake:
		return validatorsBranch{
			kind:         unstake,
			validators:   c.Validators,
			interactions: aggregate.ValidatorInteractions(c.Unstakes),
		}, true
	case model.ValidatorClaim:
		return validatorsBranch{
			kind:         claim,
			validators:   c.Validators,
			interactions: aggregate.ValidatorInteractions(c.Claims),
		}, true
	case model.AccountDepositSettingsUpdate:
		return depositSettingsBranch{update: c}, true
	default:
		return nil, false
	}
}

// assembly carries the resolved state one review is built from.
type assembly struct {
	summary  model.ExecutionSummary
	snapshot *resolver.LedgerSnapshot
	builder  *transfer.Builder
	accounts *accounts.Classifier
	xrd      model.ResourceAddress
	logger   *zap.Logger
}

// transfers builds the withdrawals and deposits of the given indicator maps.
func (a *assembly) transfers(
	withdrawals, deposits map[model.EntityAddress][]model.ResourceIndicator,
) (map[model.EntityAddress][]model.Transfer, map[model.EntityAddress][]model.Transfer, error) {
	w, err := a.builder.Accounts(withdrawals, transfer.Withdrawal)
	if err != nil {
		return nil, nil, err
	}
	d, err := a.builder.Accounts(deposits, transfer.Deposit)
	if err != nil {
		return nil, nil, err
	}
	return w, d, nil
}

func (a *assembly) accountsSection(byAccount map[model.EntityAddress][]model.Transfer) *model.AccountsSection {
	grouped := a.accounts.Group(byAccount)
	if len(grouped) == 0 {
		return nil
	}
	return &model.AccountsSection{Accounts: grouped}
}

// dappsSection groups components by dApp definition in first-seen order. Components without a
// resolvable definition are only counted.
func (a *assembly) dappsSection(components []model.EntityAddress) *model.DappsSection {
	section := &model.DappsSection{}
	seen := make(map[model.EntityAddress]struct{})
	for _, component := range lo.Uniq(components) {
		dapp, ok := a.snapshot.Dapps[component]
		if !ok {
			section.UnknownComponents++
			continue
		}
		if _, dup := seen[dapp.Definition]; dup {
			continue
		}
		seen[dapp.Definition] = struct{}{}
		section.Dapps = append(section.Dapps, dapp)
	}
	if len(section.Dapps) == 0 && section.UnknownComponents == 0 {
		return nil
	}
	return section
}

// proofsSection groups presented proofs by resource in first-seen order.
func (a *assembly) proofsSection() (*model.ProofsSection, error) {
	if len(a.summary.PresentedProofs) == 0 {
		return nil, nil
	}
	index := make(map[model.ResourceAddress]int)
	var proofs []model.Proof
	for _, presented := range a.summary.PresentedProofs {
		idx, ok := index[presented.Resource]
		if !ok {
			info, err := a.builder.Resource(presented.Resource)
			if err != nil {
				return nil, err
			}
			idx = len(proofs)
			index[presented.Resource] = idx
			proofs = append(proofs, model.Proof{Resource: info})
		}
		if presented.LocalID != "" && !lo.Contains(proofs[idx].LocalIDs, presented.LocalID) {
			proofs[idx].LocalIDs = append(proofs[idx].LocalIDs, presented.LocalID)
		}
	}
	return &model.ProofsSection{Proofs: proofs}, nil
}

// baseRequest requests the resources and token data of all transfers and proofs of a summary.
func baseRequest(
	summary model.ExecutionSummary,
	groups ...map[model.EntityAddress][]model.ResourceIndicator,
) resolver.SnapshotRequest {
	if len(groups) == 0 {
		groups = append(groups, summary.Withdrawals, summary.Deposits)
	}
	resources, nonFungibles := transfer.Addresses(summary, groups...)
	for _, proof := range summary.PresentedProofs {
		resources = append(resources, proof.Resource)
	}
	return resolver.SnapshotRequest{
		Resources:    resources,
		NonFungibles: nonFungibles,
	}
}
