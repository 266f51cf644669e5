package model

import "github.com/shopspring/decimal"

// ResourceIndicator describes one resource movement of an account produced by the manifest analysis.
type ResourceIndicator struct {
	Resource ResourceAddress
	Kind     IndicatorKind
}

// IndicatorKind is either FungibleIndicator or NonFungibleIndicator.
type IndicatorKind interface {
	isIndicatorKind()
}

// FungibleIndicator carries the moved amount and whether it is guaranteed or predicted.
type FungibleIndicator struct {
	Source AmountSource
}

// NonFungibleIndicator carries the moved token ids. When the ids are not known in advance
// (e.g. a deposit of "whatever the vault returns") IDs is empty and Amount holds the count.
type NonFungibleIndicator struct {
	IDs              []NonFungibleLocalID
	Amount           decimal.Decimal
	Guaranteed       bool
	InstructionIndex uint64
}

func (FungibleIndicator) isIndicatorKind()    {}
func (NonFungibleIndicator) isIndicatorKind() {}

// Count returns the number of tokens moved.
func (n NonFungibleIndicator) Count() decimal.Decimal {
	if len(n.IDs) > 0 {
		return decimal.NewFromInt(int64(len(n.IDs)))
	}
	return n.Amount
}

// IsGuaranteed reports whether the indicator amount is ledger-certain.
func (i ResourceIndicator) IsGuaranteed() bool {
	switch kind := i.Kind.(type) {
	case FungibleIndicator:
		_, ok := kind.Source.(Guaranteed)
		return ok
	case NonFungibleIndicator:
		return kind.Guaranteed
	default:
		return false
	}
}

// NewGuaranteedFungible builds a guaranteed fungible indicator.
func NewGuaranteedFungible(resource ResourceAddress, amount decimal.Decimal) ResourceIndicator {
	return ResourceIndicator{
		Resource: resource,
		Kind:     FungibleIndicator{Source: Guaranteed{Amount: amount}},
	}
}

// NewPredictedFungible builds a predicted fungible indicator tied to an instruction.
func NewPredictedFungible(resource ResourceAddress, amount decimal.Decimal, instructionIndex uint64) ResourceIndicator {
	return ResourceIndicator{
		Resource: resource,
		Kind:     FungibleIndicator{Source: Predicted{Amount: amount, InstructionIndex: instructionIndex}},
	}
}

// NewGuaranteedNonFungible builds a guaranteed non-fungible indicator for known ids.
func NewGuaranteedNonFungible(resource ResourceAddress, ids ...NonFungibleLocalID) ResourceIndicator {
	return ResourceIndicator{
		Resource: resource,
		Kind:     NonFungibleIndicator{IDs: ids, Guaranteed: true},
	}
}
