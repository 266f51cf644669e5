// Package accounts classifies review addresses as wallet accounts or external addresses.
package accounts

import (
	"slices"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

// Classifier maps addresses to wallet accounts by exact address match.
// Classification is fixed for the lifetime of the Classifier.
type Classifier struct {
	known map[model.EntityAddress]int
	order []model.WalletAccount
}

// NewClassifier constructs a Classifier over the wallet's known accounts.
func NewClassifier(known []model.WalletAccount) *Classifier {
	c := &Classifier{
		known: make(map[model.EntityAddress]int, len(known)),
		order: known,
	}
	for i, account := range known {
		if _, dup := c.known[account.Address]; !dup {
			c.known[account.Address] = i
		}
	}
	return c
}

// Classify returns a user account for known addresses and an unapproved external account otherwise.
func (c *Classifier) Classify(address model.EntityAddress) model.ReviewAccount {
	if idx, ok := c.known[address]; ok {
		return model.UserAccount(c.order[idx])
	}
	return model.ExternalAccount(address)
}

// Group classifies every address and orders the result: wallet accounts in wallet order first,
// then external addresses sorted by address. Accounts without transfers are skipped.
func (c *Classifier) Group(byAccount map[model.EntityAddress][]model.Transfer) []model.Account {
	out := make([]model.Account, 0, len(byAccount))
	for address, transfers := range byAccount {
		if len(transfers) == 0 {
			continue
		}
		out = append(out, model.Account{Account: c.Classify(address), Transfers: transfers})
	}
	slices.SortFunc(out, func(a, b model.Account) int {
		return c.compare(a.Account.Address, b.Account.Address)
	})
	return out
}

// Sort orders addresses the same way Group orders accounts.
func (c *Classifier) Sort(addresses []model.EntityAddress) {
	slices.SortFunc(addresses, c.compare)
}

func (c *Classifier) compare(a, b model.EntityAddress) int {
	ia, aKnown := c.known[a]
	ib, bKnown := c.known[b]
	switch {
	case aKnown && bKnown:
		return ia - ib
	case aKnown:
		return -1
	case bKnown:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
