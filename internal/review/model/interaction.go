package model

import "github.com/shopspring/decimal"

// TrackedPoolInteraction records one contribution to or redemption from a pool.
type TrackedPoolInteraction struct {
	Pool         EntityAddress
	UnitResource ResourceAddress
	UnitAmount   decimal.Decimal
	Resources    map[ResourceAddress]decimal.Decimal
}

// TrackedValidatorInteraction records one stake, unstake or claim against a validator.
// UnitResource is the liquid stake unit for stakes and unstakes and the claim token for claims.
type TrackedValidatorInteraction struct {
	Validator     EntityAddress
	UnitResource  ResourceAddress
	UnitAmount    decimal.Decimal
	Resources     map[ResourceAddress]decimal.Decimal
	ClaimResource ResourceAddress
	ClaimIDs      []NonFungibleLocalID
}

// UnstakeData is the data of a stake claim token minted by an unstake in the same transaction.
type UnstakeData struct {
	Name        string
	ClaimEpoch  uint64
	ClaimAmount decimal.Decimal
}
