// Package guarantee derives default guarantees for predicted deposits.
package guarantee

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

// ErrInvalidRatio is returned for default guarantee ratios outside (0, 1].
var ErrInvalidRatio = errors.New("guarantee ratio must be in (0, 1]")

// DefaultRatio is used when the wallet has no configured preference.
var DefaultRatio = decimal.RequireFromString("0.99")

// Calculator computes the default guarantee of a predicted fungible deposit.
type Calculator struct {
	ratio decimal.Decimal
}

// NewCalculator constructs a Calculator for the given default ratio.
func NewCalculator(ratio decimal.Decimal) (*Calculator, error) {
	if !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("ratio %s: %w", ratio, ErrInvalidRatio)
	}
	return &Calculator{ratio: ratio}, nil
}

// Ratio returns the configured default ratio.
func (c *Calculator) Ratio() decimal.Decimal {
	return c.ratio
}

// Calculate returns ratio × predicted amount rounded down to the resource divisibility.
func (c *Calculator) Calculate(resource model.ResourceAddress, predicted model.Predicted, divisibility uint8) model.TransactionGuarantee {
	return model.TransactionGuarantee{
		Resource:         resource,
		InstructionIndex: predicted.InstructionIndex,
		Amount:           predicted.Amount.Mul(c.ratio).RoundFloor(int32(divisibility)),
		PredictedAmount:  predicted.Amount,
		Divisibility:     divisibility,
	}
}
