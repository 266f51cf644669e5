package transport

import (
	"cmp"
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	transferFungible        = "fungible"
	transferNonFungible     = "non_fungible"
	transferPoolUnit        = "pool_unit"
	transferLiquidStakeUnit = "liquid_stake_unit"
	transferStakeClaim      = "stake_claim"
)

type reviewResponse struct {
	Unclassified bool           `json:"unclassified"`
	Sections     *sectionsDTO   `json:"sections,omitempty"`
	Guarantees   []guaranteeDTO `json:"guarantees,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type sectionsDTO struct {
	Withdrawals              *accountsSectionDTO          `json:"withdrawals,omitempty"`
	DappsUsed                *dappsSectionDTO             `json:"dappsUsed,omitempty"`
	ContributingToPools      *poolsSectionDTO             `json:"contributingToPools,omitempty"`
	RedeemingFromPools       *poolsSectionDTO             `json:"redeemingFromPools,omitempty"`
	StakingToValidators      *validatorsSectionDTO        `json:"stakingToValidators,omitempty"`
	UnstakingFromValidators  *validatorsSectionDTO        `json:"unstakingFromValidators,omitempty"`
	ClaimingFromValidators   *validatorsSectionDTO        `json:"claimingFromValidators,omitempty"`
	Deposits                 *accountsSectionDTO          `json:"deposits,omitempty"`
	AccountDepositSetting    *depositSettingSectionDTO    `json:"accountDepositSetting,omitempty"`
	AccountDepositExceptions *depositExceptionsSectionDTO `json:"accountDepositExceptions,omitempty"`
	Proofs                   *proofsSectionDTO            `json:"proofs,omitempty"`
}

type reviewAccountDTO struct {
	Address  string `json:"address"`
	Label    string `json:"label,omitempty"`
	IsUser   bool   `json:"isUser"`
	Approved bool   `json:"approved,omitempty"`
}

type accountDTO struct {
	reviewAccountDTO
	Transfers []transferDTO `json:"transfers"`
}

type accountsSectionDTO struct {
	Accounts []accountDTO `json:"accounts"`
}

type dappDTO struct {
	Definition string      `json:"definition"`
	Metadata   metadataDTO `json:"metadata"`
}

type dappsSectionDTO struct {
	Dapps             []dappDTO `json:"dapps"`
	UnknownComponents int       `json:"unknownComponents"`
}

type poolDTO struct {
	Address string   `json:"address"`
	Name    string   `json:"name,omitempty"`
	Dapp    *dappDTO `json:"dapp,omitempty"`
}

type poolsSectionDTO struct {
	Pools []poolDTO `json:"pools"`
}

type validatorDTO struct {
	Address            string          `json:"address"`
	Metadata           metadataDTO     `json:"metadata"`
	StakeUnitResource  string          `json:"stakeUnitResource"`
	ClaimTokenResource string          `json:"claimTokenResource"`
	StakedXRD          decimal.Decimal `json:"stakedXrd"`
}

type validatorsSectionDTO struct {
	Validators []validatorDTO `json:"validators"`
}

type depositRuleChangeDTO struct {
	Account reviewAccountDTO `json:"account"`
	Rule    string           `json:"rule"`
}

type depositSettingSectionDTO struct {
	Changes []depositRuleChangeDTO `json:"changes"`
}

type resourcePreferenceChangeDTO struct {
	Resource resourceDTO `json:"resource"`
	Update   string      `json:"update"`
}

type depositorChangeDTO struct {
	Resource resourceDTO `json:"resource"`
	LocalID  string      `json:"localId,omitempty"`
	Added    bool        `json:"added"`
}

type accountDepositExceptionsDTO struct {
	Account             reviewAccountDTO              `json:"account"`
	ResourcePreferences []resourcePreferenceChangeDTO `json:"resourcePreferences,omitempty"`
	Depositors          []depositorChangeDTO          `json:"depositors,omitempty"`
}

type depositExceptionsSectionDTO struct {
	Accounts []accountDepositExceptionsDTO `json:"accounts"`
}

type proofDTO struct {
	Resource resourceDTO `json:"resource"`
	LocalIDs []string    `json:"localIds,omitempty"`
}

type proofsSectionDTO struct {
	Proofs []proofDTO `json:"proofs"`
}

type resourceDTO struct {
	Address      string      `json:"address"`
	Kind         string      `json:"kind,omitempty"`
	NewlyCreated bool        `json:"newlyCreated"`
	Divisibility uint8       `json:"divisibility"`
	Metadata     metadataDTO `json:"metadata"`
}

type resourceAmountDTO struct {
	Resource resourceDTO     `json:"resource"`
	Amount   decimal.Decimal `json:"amount"`
}

type nonFungibleDataDTO struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	KeyImageURL string           `json:"keyImageUrl,omitempty"`
	ClaimAmount *decimal.Decimal `json:"claimAmount,omitempty"`
	ClaimEpoch  *uint64          `json:"claimEpoch,omitempty"`
}

type stakeClaimDTO struct {
	LocalID     string              `json:"localId"`
	ClaimAmount decimal.Decimal     `json:"claimAmount"`
	ClaimEpoch  uint64              `json:"claimEpoch"`
	Data        *nonFungibleDataDTO `json:"data,omitempty"`
}

type transferDTO struct {
	ID        string              `json:"id"`
	Kind      string              `json:"kind"`
	Resource  resourceDTO         `json:"resource"`
	Amount    *decimal.Decimal    `json:"amount,omitempty"`
	IsXRD     bool                `json:"isXrd,omitempty"`
	LocalID   string              `json:"localId,omitempty"`
	Data      *nonFungibleDataDTO `json:"data,omitempty"`
	Pool      *poolDTO            `json:"pool,omitempty"`
	Resources []resourceAmountDTO `json:"resources,omitempty"`
	Estimated bool                `json:"estimated,omitempty"`
	Validator *validatorDTO       `json:"validator,omitempty"`
	WorthXRD  *decimal.Decimal    `json:"worthXrd,omitempty"`
	Claims    []stakeClaimDTO     `json:"claims,omitempty"`
}

type guaranteeDTO struct {
	TransferID       string          `json:"transferId"`
	Resource         string          `json:"resource"`
	InstructionIndex uint64          `json:"instructionIndex"`
	Amount           decimal.Decimal `json:"amount"`
	PredictedAmount  decimal.Decimal `json:"predictedAmount"`
	Divisibility     uint8           `json:"divisibility"`
}

func newReviewResponse(review *model.Review) reviewResponse {
	s := review.Sections
	sections := &sectionsDTO{
		Withdrawals:              newAccountsSection(s.Withdrawals),
		DappsUsed:                newDappsSection(s.DappsUsed),
		ContributingToPools:      newPoolsSection(s.ContributingToPools),
		RedeemingFromPools:       newPoolsSection(s.RedeemingFromPools),
		StakingToValidators:      newValidatorsSection(s.StakingToValidators),
		UnstakingFromValidators:  newValidatorsSection(s.UnstakingFromValidators),
		ClaimingFromValidators:   newValidatorsSection(s.ClaimingFromValidators),
		Deposits:                 newAccountsSection(s.Deposits),
		AccountDepositSetting:    newDepositSettingSection(s.AccountDepositSetting),
		AccountDepositExceptions: newDepositExceptionsSection(s.AccountDepositExceptions),
		Proofs:                   newProofsSection(s.Proofs),
	}

	guarantees := make([]guaranteeDTO, 0, len(review.Guarantees))
	for id, g := range review.Guarantees {
		guarantees = append(guarantees, guaranteeDTO{
			TransferID:       id.String(),
			Resource:         string(g.Resource),
			InstructionIndex: g.InstructionIndex,
			Amount:           g.Amount,
			PredictedAmount:  g.PredictedAmount,
			Divisibility:     g.Divisibility,
		})
	}
	slices.SortFunc(guarantees, func(a, b guaranteeDTO) int {
		return cmp.Or(
			cmp.Compare(a.InstructionIndex, b.InstructionIndex),
			cmp.Compare(a.Resource, b.Resource),
			cmp.Compare(a.TransferID, b.TransferID),
		)
	})
	return reviewResponse{Sections: sections, Guarantees: guarantees}
}

func newReviewAccount(a model.ReviewAccount) reviewAccountDTO {
	out := reviewAccountDTO{Address: string(a.Address), IsUser: a.IsUser(), Approved: a.Approved}
	if a.User != nil {
		out.Label = a.User.Label
	}
	return out
}

func newAccountsSection(s *model.AccountsSection) *accountsSectionDTO {
	if s == nil {
		return nil
	}
	return &accountsSectionDTO{Accounts: lo.Map(s.Accounts, func(a model.Account, _ int) accountDTO {
		return accountDTO{
			reviewAccountDTO: newReviewAccount(a.Account),
			Transfers:        lo.Map(a.Transfers, func(t model.Transfer, _ int) transferDTO { return newTransfer(t) }),
		}
	})}
}

func newMetadata(m model.Metadata) metadataDTO {
	return metadataDTO{
		Name:        m.Name,
		Symbol:      m.Symbol,
		Description: m.Description,
		IconURL:     m.IconURL,
		Tags:        m.Tags,
	}
}

func newDapp(d model.Dapp) dappDTO {
	return dappDTO{Definition: string(d.Definition), Metadata: newMetadata(d.Metadata)}
}

func newDappsSection(s *model.DappsSection) *dappsSectionDTO {
	if s == nil {
		return nil
	}
	return &dappsSectionDTO{
		Dapps:             lo.Map(s.Dapps, func(d model.Dapp, _ int) dappDTO { return newDapp(d) }),
		UnknownComponents: s.UnknownComponents,
	}
}

func newPool(p model.Pool) poolDTO {
	out := poolDTO{Address: string(p.Address), Name: p.Name()}
	if p.Dapp != nil {
		dapp := newDapp(*p.Dapp)
		out.Dapp = &dapp
	}
	return out
}

func newPoolsSection(s *model.PoolsSection) *poolsSectionDTO {
	if s == nil {
		return nil
	}
	return &poolsSectionDTO{Pools: lo.Map(s.Pools, func(p model.Pool, _ int) poolDTO { return newPool(p) })}
}

func newValidator(v model.ValidatorInfo) validatorDTO {
	return validatorDTO{
		Address:            string(v.Address),
		Metadata:           newMetadata(v.Metadata),
		StakeUnitResource:  string(v.StakeUnitResource),
		ClaimTokenResource: string(v.ClaimTokenResource),
		StakedXRD:          v.StakedXRD,
	}
}

func newValidatorsSection(s *model.ValidatorsSection) *validatorsSectionDTO {
	if s == nil {
		return nil
	}
	return &validatorsSectionDTO{Validators: lo.Map(s.Validators, func(v model.ValidatorInfo, _ int) validatorDTO { return newValidator(v) })}
}

func newDepositSettingSection(s *model.DepositSettingSection) *depositSettingSectionDTO {
	if s == nil {
		return nil
	}
	return &depositSettingSectionDTO{Changes: lo.Map(s.Changes, func(c model.DepositRuleChange, _ int) depositRuleChangeDTO {
		return depositRuleChangeDTO{Account: newReviewAccount(c.Account), Rule: string(c.Rule)}
	})}
}

func newDepositExceptionsSection(s *model.DepositExceptionsSection) *depositExceptionsSectionDTO {
	if s == nil {
		return nil
	}
	return &depositExceptionsSectionDTO{Accounts: lo.Map(s.Accounts, func(a model.AccountDepositExceptions, _ int) accountDepositExceptionsDTO {
		return accountDepositExceptionsDTO{
			Account: newReviewAccount(a.Account),
			ResourcePreferences: lo.Map(a.ResourcePreferences, func(p model.ResourcePreferenceChange, _ int) resourcePreferenceChangeDTO {
				return resourcePreferenceChangeDTO{Resource: newResource(p.Resource), Update: string(p.Update)}
			}),
			Depositors: lo.Map(a.Depositors, func(d model.DepositorChange, _ int) depositorChangeDTO {
				return depositorChangeDTO{Resource: newResource(d.Resource), LocalID: string(d.LocalID), Added: d.Added}
			}),
		}
	})}
}

func newProofsSection(s *model.ProofsSection) *proofsSectionDTO {
	if s == nil {
		return nil
	}
	return &proofsSectionDTO{Proofs: lo.Map(s.Proofs, func(p model.Proof, _ int) proofDTO {
		return proofDTO{Resource: newResource(p.Resource), LocalIDs: toStrings(p.LocalIDs)}
	})}
}

func newResource(r model.ResourceInfo) resourceDTO {
	out := resourceDTO{
		Address:      string(r.Address),
		NewlyCreated: r.IsNewlyCreated(),
		Divisibility: r.Divisibility(),
		Metadata:     newMetadata(r.Metadata()),
	}
	if r.OnLedger != nil {
		out.Kind = string(r.OnLedger.Kind)
	}
	return out
}

func newNonFungibleData(d *model.NonFungibleData) *nonFungibleDataDTO {
	if d == nil {
		return nil
	}
	return &nonFungibleDataDTO{
		Name:        d.Name,
		Description: d.Description,
		KeyImageURL: d.KeyImageURL,
		ClaimAmount: d.ClaimAmount,
		ClaimEpoch:  d.ClaimEpoch,
	}
}

func newTransfer(t model.Transfer) transferDTO {
	out := transferDTO{ID: t.ID.String(), Resource: newResource(t.Resource)}
	switch details := t.Details.(type) {
	case model.FungibleDetails:
		out.Kind = transferFungible
		out.Amount = &details.Amount
		out.IsXRD = details.IsXRD
	case model.NonFungibleDetails:
		out.Kind = transferNonFungible
		out.Amount = &details.Amount
		out.LocalID = string(details.LocalID)
		out.Data = newNonFungibleData(details.Data)
	case model.PoolUnitDetails:
		pool := newPool(details.Pool)
		out.Kind = transferPoolUnit
		out.Amount = &details.Amount
		out.Pool = &pool
		out.Estimated = details.Estimated
		out.Resources = lo.Map(details.Resources, func(r model.ResourceAmount, _ int) resourceAmountDTO {
			return resourceAmountDTO{Resource: newResource(r.Resource), Amount: r.Amount}
		})
	case model.LiquidStakeUnitDetails:
		validator := newValidator(details.Validator)
		out.Kind = transferLiquidStakeUnit
		out.Amount = &details.Amount
		out.Validator = &validator
		out.WorthXRD = &details.WorthXRD
		out.Estimated = details.Estimated
	case model.StakeClaimDetails:
		validator := newValidator(details.Validator)
		out.Kind = transferStakeClaim
		out.Validator = &validator
		out.Claims = lo.Map(details.Claims, func(c model.StakeClaim, _ int) stakeClaimDTO {
			return stakeClaimDTO{
				LocalID:     string(c.LocalID),
				ClaimAmount: c.ClaimAmount,
				ClaimEpoch:  c.ClaimEpoch,
				Data:        newNonFungibleData(c.Data),
			}
		})
	}
	return out
}

func toStrings[T ~string](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return string(v) })
}
