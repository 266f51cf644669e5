package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferID identifies one review line item for its whole review session.
type TransferID = uuid.UUID

// Transfer is one line item of a review.
type Transfer struct {
	ID       TransferID
	Resource ResourceInfo
	Details  TransferDetails
}

// TransferDetails is one of FungibleDetails, NonFungibleDetails, PoolUnitDetails,
// LiquidStakeUnitDetails or StakeClaimDetails.
type TransferDetails interface {
	isTransferDetails()
}

// FungibleDetails is a plain fungible amount.
type FungibleDetails struct {
	Amount decimal.Decimal
	IsXRD  bool
}

// NonFungibleDetails is a single token, or a count of tokens when LocalID is empty.
// Data is nil for tokens that cannot be queried on ledger yet.
type NonFungibleDetails struct {
	LocalID NonFungibleLocalID
	Data    *NonFungibleData
	Amount  decimal.Decimal
}

// PoolUnitDetails is a pool unit amount with its estimated redeemable resources.
type PoolUnitDetails struct {
	Amount    decimal.Decimal
	Pool      Pool
	Resources []ResourceAmount
	Estimated bool
}

// LiquidStakeUnitDetails is a liquid stake unit amount with its estimated XRD worth.
type LiquidStakeUnitDetails struct {
	Amount    decimal.Decimal
	Validator ValidatorInfo
	WorthXRD  decimal.Decimal
	Estimated bool
}

// StakeClaim is one stake claim token and the XRD it can claim.
type StakeClaim struct {
	LocalID     NonFungibleLocalID
	ClaimAmount decimal.Decimal
	ClaimEpoch  uint64
	Data        *NonFungibleData
}

// StakeClaimDetails groups stake claim tokens of one validator.
type StakeClaimDetails struct {
	Validator ValidatorInfo
	Claims    []StakeClaim
}

func (FungibleDetails) isTransferDetails()        {}
func (NonFungibleDetails) isTransferDetails()     {}
func (PoolUnitDetails) isTransferDetails()        {}
func (LiquidStakeUnitDetails) isTransferDetails() {}
func (StakeClaimDetails) isTransferDetails()      {}

// CountOnly reports whether the details carry a token count instead of a token.
func (d NonFungibleDetails) CountOnly() bool {
	return d.LocalID == ""
}

// FungibleAmount returns the fungible amount carried by a transfer, if any.
func (t Transfer) FungibleAmount() (decimal.Decimal, bool) {
	switch details := t.Details.(type) {
	case FungibleDetails:
		return details.Amount, true
	case PoolUnitDetails:
		return details.Amount, true
	case LiquidStakeUnitDetails:
		return details.Amount, true
	default:
		return decimal.Zero, false
	}
}
