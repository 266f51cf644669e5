package model

import "github.com/shopspring/decimal"

// AmountSource tells whether an amount is ledger-certain or predicted by simulation.
// It is sealed: the only implementations are Guaranteed and Predicted.
type AmountSource interface {
	Value() decimal.Decimal
	isAmountSource()
}

// Guaranteed is an exact amount, e.g. an explicit withdrawal.
type Guaranteed struct {
	Amount decimal.Decimal
}

// Predicted is an amount estimated by simulation for the instruction at InstructionIndex.
// Predicted amounts are never summed: each stays addressable by its instruction.
type Predicted struct {
	Amount           decimal.Decimal
	InstructionIndex uint64
}

func (g Guaranteed) Value() decimal.Decimal { return g.Amount }
func (Guaranteed) isAmountSource()          {}

// Add sums two guaranteed amounts.
func (g Guaranteed) Add(other Guaranteed) Guaranteed {
	return Guaranteed{Amount: g.Amount.Add(other.Amount)}
}

func (p Predicted) Value() decimal.Decimal { return p.Amount }
func (Predicted) isAmountSource()          {}
