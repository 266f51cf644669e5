package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrGuaranteeNotFound is returned when no guarantee is attached to a transfer.
	ErrGuaranteeNotFound = errors.New("guarantee not found")
	// ErrInvalidGuarantee is returned for negative guarantees or ratios outside (0, 1].
	ErrInvalidGuarantee = errors.New("invalid guarantee")
)

// TransactionGuarantee is the minimum amount a predicted deposit must reach for the transaction to succeed.
// Its (Resource, InstructionIndex) key never changes; only Amount is edited.
type TransactionGuarantee struct {
	Resource         ResourceAddress
	InstructionIndex uint64
	Amount           decimal.Decimal
	PredictedAmount  decimal.Decimal
	Divisibility     uint8
}

// Review is a built review: immutable sections plus the editable guarantees keyed by transfer.
type Review struct {
	Sections   Sections
	Guarantees map[TransferID]TransactionGuarantee
}

// Guarantee returns the current guarantee attached to a transfer.
func (r *Review) Guarantee(id TransferID) (TransactionGuarantee, bool) {
	g, ok := r.Guarantees[id]
	return g, ok
}

// ApplyGuarantee replaces the guaranteed amount of a transfer, rounded down to the resource divisibility.
func (r *Review) ApplyGuarantee(id TransferID, amount decimal.Decimal) error {
	g, ok := r.Guarantees[id]
	if !ok {
		return fmt.Errorf("transfer %s: %w", id, ErrGuaranteeNotFound)
	}
	if amount.IsNegative() {
		return fmt.Errorf("transfer %s amount %s: %w", id, amount, ErrInvalidGuarantee)
	}
	g.Amount = amount.RoundFloor(int32(g.Divisibility))
	r.Guarantees[id] = g
	return nil
}

// ApplyGuaranteeRatio sets the guaranteed amount of a transfer to ratio × predicted amount.
func (r *Review) ApplyGuaranteeRatio(id TransferID, ratio decimal.Decimal) error {
	g, ok := r.Guarantees[id]
	if !ok {
		return fmt.Errorf("transfer %s: %w", id, ErrGuaranteeNotFound)
	}
	if !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("transfer %s ratio %s: %w", id, ratio, ErrInvalidGuarantee)
	}
	return r.ApplyGuarantee(id, g.PredictedAmount.Mul(ratio))
}

// OrderedGuarantees returns guarantees ordered by instruction index.
func (r *Review) OrderedGuarantees() []TransactionGuarantee {
	out := make([]TransactionGuarantee, 0, len(r.Guarantees))
	for _, g := range r.Guarantees {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].InstructionIndex != out[j].InstructionIndex {
			return out[i].InstructionIndex < out[j].InstructionIndex
		}
		return out[i].Resource < out[j].Resource
	})
	return out
}
