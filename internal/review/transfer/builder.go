// Package transfer turns resolved resource indicators into review line items.
package transfer

import (
	"fmt"
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/guarantee"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Direction tells whether transfers leave or enter an account.
type Direction int

const (
	Withdrawal Direction = iota
	Deposit
)

func (d Direction) String() string {
	if d == Deposit {
		return "deposit"
	}
	return "withdrawal"
}

// Builder builds transfers for one review and collects the guarantees of predicted deposits.
// It is not safe for concurrent use.
type Builder struct {
	resources       resolver.ResolvedResources
	nonFungibleData map[model.ResourceAddress]map[model.NonFungibleLocalID]model.NonFungibleData
	newlyCreated    map[model.ResourceAddress][]model.NonFungibleLocalID
	newTokens       map[model.NonFungibleGlobalID]struct{}
	xrd             model.ResourceAddress
	calculator      *guarantee.Calculator
	newID           func() uuid.UUID
	guarantees      map[model.TransferID]model.TransactionGuarantee
}

// NewBuilder constructs a Builder over a resolved ledger snapshot.
func NewBuilder(
	snapshot *resolver.LedgerSnapshot,
	summary model.ExecutionSummary,
	xrd model.ResourceAddress,
	calculator *guarantee.Calculator,
	newID func() uuid.UUID,
) *Builder {
	if newID == nil {
		newID = uuid.New
	}
	newlyCreated := make(map[model.ResourceAddress][]model.NonFungibleLocalID)
	newTokens := make(map[model.NonFungibleGlobalID]struct{}, len(summary.NewlyCreatedNonFungibles))
	for _, id := range summary.NewlyCreatedNonFungibles {
		newlyCreated[id.Resource] = append(newlyCreated[id.Resource], id.LocalID)
		newTokens[id] = struct{}{}
	}
	return &Builder{
		resources:       snapshot.Resources,
		nonFungibleData: snapshot.NonFungibleData,
		newlyCreated:    newlyCreated,
		newTokens:       newTokens,
		xrd:             xrd,
		calculator:      calculator,
		newID:           newID,
		guarantees:      make(map[model.TransferID]model.TransactionGuarantee),
	}
}

// Guarantees returns the guarantees attached so far, keyed by transfer id.
func (b *Builder) Guarantees() map[model.TransferID]model.TransactionGuarantee {
	return b.guarantees
}

// Resource looks up a resolved resource.
func (b *Builder) Resource(address model.ResourceAddress) (model.ResourceInfo, error) {
	return b.resources.Lookup(address)
}

// NewID returns a fresh transfer id.
func (b *Builder) NewID() model.TransferID {
	return b.newID()
}

// Accounts builds the transfers of every account, visiting accounts in address order.
func (b *Builder) Accounts(byAccount map[model.EntityAddress][]model.ResourceIndicator, direction Direction) (map[model.EntityAddress][]model.Transfer, error) {
	out := make(map[model.EntityAddress][]model.Transfer, len(byAccount))
	accounts := lo.Keys(byAccount)
	slices.Sort(accounts)
	for _, account := range accounts {
		transfers := make([]model.Transfer, 0, len(byAccount[account]))
		for _, indicator := range byAccount[account] {
			built, err := b.Build(indicator, direction)
			if err != nil {
				return nil, fmt.Errorf("%s of account %s: %w", direction, account, err)
			}
			transfers = append(transfers, built...)
		}
		if len(transfers) > 0 {
			out[account] = transfers
		}
	}
	return out, nil
}

// Build converts one indicator into transfers.
func (b *Builder) Build(indicator model.ResourceIndicator, direction Direction) ([]model.Transfer, error) {
	info, err := b.resources.Lookup(indicator.Resource)
	if err != nil {
		return nil, err
	}

	switch kind := indicator.Kind.(type) {
	case model.FungibleIndicator:
		return []model.Transfer{b.fungible(info, kind, direction)}, nil
	case model.NonFungibleIndicator:
		return b.nonFungible(info, kind)
	default:
		return nil, fmt.Errorf("unsupported indicator kind %T for %s", indicator.Kind, indicator.Resource)
	}
}

func (b *Builder) fungible(info model.ResourceInfo, indicator model.FungibleIndicator, direction Direction) model.Transfer {
	t := model.Transfer{
		ID:       b.newID(),
		Resource: info,
		Details: model.FungibleDetails{
			Amount: indicator.Source.Value(),
			IsXRD:  !info.IsNewlyCreated() && info.Address == b.xrd,
		},
	}
	// A resource minted in the same transaction has no ledger history to guarantee against.
	if info.IsNewlyCreated() || direction != Deposit || b.calculator == nil {
		return t
	}
	if predicted, ok := indicator.Source.(model.Predicted); ok {
		b.guarantees[t.ID] = b.calculator.Calculate(info.Address, predicted, info.Divisibility())
	}
	return t
}

func (b *Builder) nonFungible(info model.ResourceInfo, indicator model.NonFungibleIndicator) ([]model.Transfer, error) {
	ids := indicator.IDs
	if len(ids) == 0 && info.IsNewlyCreated() {
		ids = b.newlyCreated[info.Address]
	}
	if len(ids) == 0 {
		return []model.Transfer{{
			ID:       b.newID(),
			Resource: info,
			Details:  model.NonFungibleDetails{Amount: indicator.Count()},
		}}, nil
	}

	transfers := make([]model.Transfer, 0, len(ids))
	for _, id := range ids {
		details := model.NonFungibleDetails{LocalID: id, Amount: decimalOne}
		_, minted := b.newTokens[model.NonFungibleGlobalID{Resource: info.Address, LocalID: id}]
		// tokens minted by the transaction have no ledger data yet.
		if !info.IsNewlyCreated() && !minted {
			data, ok := b.nonFungibleData[info.Address][id]
			if !ok {
				return nil, fmt.Errorf("%w: %s token %s", resolver.ErrFailedToGetDataForAllNFTs, info.Address, id)
			}
			details.Data = &data
		}
		transfers = append(transfers, model.Transfer{
			ID:       b.newID(),
			Resource: info,
			Details:  details,
		})
	}
	return transfers, nil
}
