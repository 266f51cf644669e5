package model

import "github.com/shopspring/decimal"

// Dapp is a resolved dApp definition with its metadata.
type Dapp struct {
	Definition EntityAddress
	Metadata   Metadata
}

// ValidatorInfo is the on-ledger description of a validator.
type ValidatorInfo struct {
	Address            EntityAddress
	Metadata           Metadata
	StakeUnitResource  ResourceAddress
	ClaimTokenResource ResourceAddress
	StakedXRD          decimal.Decimal
}

// Pool is a resource pool shown in a review, optionally attributed to a dApp.
type Pool struct {
	Address EntityAddress
	Dapp    *Dapp
}

// Name returns the dApp name behind the pool, "" when unknown.
func (p Pool) Name() string {
	if p.Dapp == nil {
		return ""
	}
	return p.Dapp.Metadata.Name
}

// WalletAccount is an account controlled by the wallet.
type WalletAccount struct {
	Address EntityAddress
	Label   string
}
