// Package wallet holds the per-request wallet state a review is built against.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/guarantee"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

// ErrNetworkMismatch is returned when accounts are requested for another network than the wallet's.
var ErrNetworkMismatch = errors.New("wallet network mismatch")

// Wallet is the set of accounts a wallet controls on one network plus its guarantee preference.
type Wallet struct {
	network  model.NetworkID
	accounts []model.WalletAccount
	ratio    decimal.Decimal
}

// New constructs a Wallet. A zero ratio falls back to guarantee.DefaultRatio.
func New(network model.NetworkID, accounts []model.WalletAccount, ratio decimal.Decimal) (*Wallet, error) {
	if ratio.IsZero() {
		ratio = guarantee.DefaultRatio
	}
	if !ratio.IsPositive() || ratio.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("default deposit guarantee ratio %s: %w", ratio, guarantee.ErrInvalidRatio)
	}
	seen := make(map[model.EntityAddress]struct{}, len(accounts))
	known := make([]model.WalletAccount, 0, len(accounts))
	for _, account := range accounts {
		if _, dup := seen[account.Address]; dup {
			continue
		}
		seen[account.Address] = struct{}{}
		known = append(known, account)
	}
	return &Wallet{network: network, accounts: known, ratio: ratio}, nil
}

// Network returns the network the wallet accounts live on.
func (w *Wallet) Network() model.NetworkID {
	return w.network
}

// KnownAccounts returns the wallet accounts in wallet order.
func (w *Wallet) KnownAccounts(ctx context.Context, network model.NetworkID) ([]model.WalletAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if network != w.network {
		return nil, fmt.Errorf("%w: wallet is on %s, requested %s", ErrNetworkMismatch, w.network, network)
	}
	out := make([]model.WalletAccount, len(w.accounts))
	copy(out, w.accounts)
	return out, nil
}

// DefaultDepositGuaranteeRatio returns the ratio applied to predicted deposits.
func (w *Wallet) DefaultDepositGuaranteeRatio(ctx context.Context) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	return w.ratio, nil
}
