package sections

import (
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
)

// transfersBranch builds plain withdrawals and deposits. General manifests also list the dApps
// they interact with.
type transfersBranch struct {
	dapps bool
}

func (b transfersBranch) request(summary model.ExecutionSummary) resolver.SnapshotRequest {
	req := baseRequest(summary)
	if b.dapps {
		req.DappEntities = summary.EncounteredComponents
	}
	return req
}

func (b transfersBranch) build(a *assembly) (model.Sections, error) {
	withdrawals, deposits, err := a.transfers(a.summary.Withdrawals, a.summary.Deposits)
	if err != nil {
		return model.Sections{}, err
	}
	proofs, err := a.proofsSection()
	if err != nil {
		return model.Sections{}, err
	}

	sections := model.Sections{
		Withdrawals: a.accountsSection(withdrawals),
		Deposits:    a.accountsSection(deposits),
		Proofs:      proofs,
	}
	if b.dapps {
		sections.DappsUsed = a.dappsSection(a.summary.EncounteredComponents)
	}
	return sections, nil
}
