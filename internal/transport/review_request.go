package transport

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/pkg/safe"
	"github.com/shopspring/decimal"
)

// ErrInvalidRequest is returned for review requests that cannot be decoded into a summary.
var ErrInvalidRequest = errors.New("invalid review request")

const (
	indicatorFungible    = "fungible"
	indicatorNonFungible = "non_fungible"
)

type reviewRequest struct {
	NetworkID             int                `json:"networkId"`
	KnownAccounts         []walletAccountDTO `json:"knownAccounts"`
	DefaultGuaranteeRatio *decimal.Decimal   `json:"defaultGuaranteeRatio,omitempty"`
	Summary               summaryDTO         `json:"summary"`
	Guarantees            []guaranteeEditDTO `json:"guarantees,omitempty"`
}

type walletAccountDTO struct {
	Address string `json:"address"`
	Label   string `json:"label"`
}

type metadataDTO struct {
	Name        string   `json:"name,omitempty"`
	Symbol      string   `json:"symbol,omitempty"`
	Description string   `json:"description,omitempty"`
	IconURL     string   `json:"iconUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type indicatorDTO struct {
	Resource         string           `json:"resource"`
	Kind             string           `json:"kind"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Guaranteed       bool             `json:"guaranteed"`
	InstructionIndex int64            `json:"instructionIndex"`
	IDs              []string         `json:"ids,omitempty"`
}

type globalIDDTO struct {
	Resource string `json:"resource"`
	LocalID  string `json:"localId,omitempty"`
}

type unstakeClaimDTO struct {
	Resource    string          `json:"resource"`
	LocalID     string          `json:"localId"`
	Name        string          `json:"name"`
	ClaimEpoch  int64           `json:"claimEpoch"`
	ClaimAmount decimal.Decimal `json:"claimAmount"`
}

type poolInteractionDTO struct {
	Pool         string                     `json:"pool"`
	UnitResource string                     `json:"unitResource"`
	UnitAmount   decimal.Decimal            `json:"unitAmount"`
	Resources    map[string]decimal.Decimal `json:"resources"`
}

type validatorInteractionDTO struct {
	Validator     string                     `json:"validator"`
	UnitResource  string                     `json:"unitResource"`
	UnitAmount    decimal.Decimal            `json:"unitAmount"`
	Resources     map[string]decimal.Decimal `json:"resources,omitempty"`
	ClaimResource string                     `json:"claimResource,omitempty"`
	ClaimIDs      []string                   `json:"claimIds,omitempty"`
}

type classificationDTO struct {
	Kind                        string                       `json:"kind"`
	OneToOne                    bool                         `json:"oneToOne,omitempty"`
	Pools                       []string                     `json:"pools,omitempty"`
	Validators                  []string                     `json:"validators,omitempty"`
	PoolInteractions            []poolInteractionDTO         `json:"poolInteractions,omitempty"`
	ValidatorInteractions       []validatorInteractionDTO    `json:"validatorInteractions,omitempty"`
	ResourcePreferenceUpdates   map[string]map[string]string `json:"resourcePreferenceUpdates,omitempty"`
	DepositModeUpdates          map[string]string            `json:"depositModeUpdates,omitempty"`
	AuthorizedDepositorsAdded   map[string][]globalIDDTO     `json:"authorizedDepositorsAdded,omitempty"`
	AuthorizedDepositorsRemoved map[string][]globalIDDTO     `json:"authorizedDepositorsRemoved,omitempty"`
	Entities                    []string                     `json:"entities,omitempty"`
}

type summaryDTO struct {
	Withdrawals              map[string][]indicatorDTO `json:"withdrawals"`
	Deposits                 map[string][]indicatorDTO `json:"deposits"`
	NewEntities              map[string]metadataDTO    `json:"newEntities"`
	NewlyCreatedNonFungibles []globalIDDTO             `json:"newlyCreatedNonFungibles"`
	PresentedProofs          []globalIDDTO             `json:"presentedProofs"`
	EncounteredComponents    []string                  `json:"encounteredComponents"`
	UnstakeClaims            []unstakeClaimDTO         `json:"unstakeClaims"`
	Classification           *classificationDTO        `json:"classification"`
}

// guaranteeEditDTO replaces the default guarantee of the predicted deposit at (resource, instructionIndex).
// Exactly one of Amount and Ratio is set.
type guaranteeEditDTO struct {
	Resource         string           `json:"resource"`
	InstructionIndex int64            `json:"instructionIndex"`
	Amount           *decimal.Decimal `json:"amount,omitempty"`
	Ratio            *decimal.Decimal `json:"ratio,omitempty"`
}

// decoder validates addresses against one network while converting DTOs.
type decoder struct {
	network model.NetworkID
}

func (r reviewRequest) network() (model.NetworkID, error) {
	id, err := safe.Uint8(r.NetworkID)
	if err != nil {
		return 0, fmt.Errorf("%w: network id: %v", ErrInvalidRequest, err)
	}
	network := model.NetworkID(id)
	if _, ok := network.Info(); !ok {
		return 0, fmt.Errorf("%w: unknown network %d", ErrInvalidRequest, id)
	}
	return network, nil
}

// ratio returns the requested default guarantee ratio, fallback when absent.
func (r reviewRequest) ratio(fallback decimal.Decimal) decimal.Decimal {
	if r.DefaultGuaranteeRatio == nil {
		return fallback
	}
	return *r.DefaultGuaranteeRatio
}

func (d decoder) instructionIndex(raw int64) (uint64, error) {
	index, err := safe.Uint64(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: instruction index: %v", ErrInvalidRequest, err)
	}
	return index, nil
}

func (d decoder) resource(raw string) (model.ResourceAddress, error) {
	address, err := model.ParseResourceAddress(raw, d.network)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return address, nil
}

func (d decoder) entity(raw string) (model.EntityAddress, error) {
	address, err := model.ParseEntityAddress(raw, d.network)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return address, nil
}

func (d decoder) entities(raw []string) ([]model.EntityAddress, error) {
	out := make([]model.EntityAddress, 0, len(raw))
	for _, r := range raw {
		address, err := d.entity(r)
		if err != nil {
			return nil, err
		}
		out = append(out, address)
	}
	return out, nil
}

func (d decoder) accounts(raw []walletAccountDTO) ([]model.WalletAccount, error) {
	out := make([]model.WalletAccount, 0, len(raw))
	for _, account := range raw {
		address, err := d.entity(account.Address)
		if err != nil {
			return nil, err
		}
		out = append(out, model.WalletAccount{Address: address, Label: account.Label})
	}
	return out, nil
}

func (d decoder) summary(raw summaryDTO) (model.ExecutionSummary, error) {
	var (
		summary model.ExecutionSummary
		err     error
	)
	if summary.Withdrawals, err = d.indicatorGroups(raw.Withdrawals); err != nil {
		return summary, fmt.Errorf("withdrawals: %w", err)
	}
	if summary.Deposits, err = d.indicatorGroups(raw.Deposits); err != nil {
		return summary, fmt.Errorf("deposits: %w", err)
	}
	summary.NewEntities = make(map[model.ResourceAddress]model.NewEntityMetadata, len(raw.NewEntities))
	for rawAddress, meta := range raw.NewEntities {
		address, err := d.resource(rawAddress)
		if err != nil {
			return summary, fmt.Errorf("new entities: %w", err)
		}
		summary.NewEntities[address] = model.NewEntityMetadata{Metadata: meta.model()}
	}
	for _, id := range raw.NewlyCreatedNonFungibles {
		global, err := d.globalID(id)
		if err != nil {
			return summary, fmt.Errorf("newly created non-fungibles: %w", err)
		}
		summary.NewlyCreatedNonFungibles = append(summary.NewlyCreatedNonFungibles, model.NonFungibleGlobalID{
			Resource: global.Resource,
			LocalID:  global.LocalID,
		})
	}
	for _, proof := range raw.PresentedProofs {
		global, err := d.globalID(proof)
		if err != nil {
			return summary, fmt.Errorf("presented proofs: %w", err)
		}
		summary.PresentedProofs = append(summary.PresentedProofs, global)
	}
	if summary.EncounteredComponents, err = d.entities(raw.EncounteredComponents); err != nil {
		return summary, fmt.Errorf("encountered components: %w", err)
	}
	if summary.UnstakeClaims, err = d.unstakeClaims(raw.UnstakeClaims); err != nil {
		return summary, fmt.Errorf("unstake claims: %w", err)
	}
	if raw.Classification != nil {
		if summary.Classification, err = d.classification(*raw.Classification); err != nil {
			return summary, fmt.Errorf("classification: %w", err)
		}
	}
	return summary, nil
}

func (d decoder) indicatorGroups(raw map[string][]indicatorDTO) (map[model.EntityAddress][]model.ResourceIndicator, error) {
	out := make(map[model.EntityAddress][]model.ResourceIndicator, len(raw))
	for rawAccount, indicators := range raw {
		account, err := d.entity(rawAccount)
		if err != nil {
			return nil, err
		}
		for _, indicator := range indicators {
			decoded, err := d.indicator(indicator)
			if err != nil {
				return nil, fmt.Errorf("account %s: %w", account, err)
			}
			out[account] = append(out[account], decoded)
		}
	}
	return out, nil
}

func (d decoder) indicator(raw indicatorDTO) (model.ResourceIndicator, error) {
	resource, err := d.resource(raw.Resource)
	if err != nil {
		return model.ResourceIndicator{}, err
	}
	index, err := d.instructionIndex(raw.InstructionIndex)
	if err != nil {
		return model.ResourceIndicator{}, err
	}
	amount := decimal.Zero
	if raw.Amount != nil {
		amount = *raw.Amount
	}
	if amount.IsNegative() {
		return model.ResourceIndicator{}, fmt.Errorf("%w: negative amount %s of %s", ErrInvalidRequest, amount, resource)
	}

	switch raw.Kind {
	case indicatorFungible:
		if raw.Amount == nil {
			return model.ResourceIndicator{}, fmt.Errorf("%w: fungible indicator of %s has no amount", ErrInvalidRequest, resource)
		}
		if raw.Guaranteed {
			return model.NewGuaranteedFungible(resource, amount), nil
		}
		return model.NewPredictedFungible(resource, amount, index), nil
	case indicatorNonFungible:
		ids := make([]model.NonFungibleLocalID, 0, len(raw.IDs))
		for _, id := range raw.IDs {
			if id == "" {
				return model.ResourceIndicator{}, fmt.Errorf("%w: empty local id of %s", ErrInvalidRequest, resource)
			}
			ids = append(ids, model.NonFungibleLocalID(id))
		}
		return model.ResourceIndicator{
			Resource: resource,
			Kind: model.NonFungibleIndicator{
				IDs:              ids,
				Amount:           amount,
				Guaranteed:       raw.Guaranteed,
				InstructionIndex: index,
			},
		}, nil
	default:
		return model.ResourceIndicator{}, fmt.Errorf("%w: unknown indicator kind %q", ErrInvalidRequest, raw.Kind)
	}
}

func (d decoder) globalID(raw globalIDDTO) (model.ResourceOrNonFungible, error) {
	resource, err := d.resource(raw.Resource)
	if err != nil {
		return model.ResourceOrNonFungible{}, err
	}
	return model.ResourceOrNonFungible{Resource: resource, LocalID: model.NonFungibleLocalID(raw.LocalID)}, nil
}

func (d decoder) unstakeClaims(raw []unstakeClaimDTO) (map[model.NonFungibleGlobalID]model.UnstakeData, error) {
	out := make(map[model.NonFungibleGlobalID]model.UnstakeData, len(raw))
	for _, claim := range raw {
		resource, err := d.resource(claim.Resource)
		if err != nil {
			return nil, err
		}
		if claim.LocalID == "" {
			return nil, fmt.Errorf("%w: unstake claim of %s has no local id", ErrInvalidRequest, resource)
		}
		epoch, err := safe.Uint64(claim.ClaimEpoch)
		if err != nil {
			return nil, fmt.Errorf("%w: claim epoch: %v", ErrInvalidRequest, err)
		}
		out[model.NonFungibleGlobalID{Resource: resource, LocalID: model.NonFungibleLocalID(claim.LocalID)}] = model.UnstakeData{
			Name:        claim.Name,
			ClaimEpoch:  epoch,
			ClaimAmount: claim.ClaimAmount,
		}
	}
	return out, nil
}

func (m metadataDTO) model() model.Metadata {
	return model.Metadata{
		Name:        m.Name,
		Symbol:      m.Symbol,
		Description: m.Description,
		IconURL:     m.IconURL,
		Tags:        m.Tags,
	}
}
