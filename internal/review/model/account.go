package model

// ReviewAccount is either a wallet account or an external address.
type ReviewAccount struct {
	Address EntityAddress
	// User is set for accounts controlled by the wallet.
	User *WalletAccount
	// Approved is only meaningful for external accounts and is owned by a later consent step.
	Approved bool
}

// UserAccount wraps a wallet account.
func UserAccount(account WalletAccount) ReviewAccount {
	return ReviewAccount{Address: account.Address, User: &account}
}

// ExternalAccount wraps an address that the wallet does not control.
func ExternalAccount(address EntityAddress) ReviewAccount {
	return ReviewAccount{Address: address}
}

// IsUser reports whether the account belongs to the wallet.
func (a ReviewAccount) IsUser() bool {
	return a.User != nil
}

// Account groups the transfers of one account within a section.
type Account struct {
	Account   ReviewAccount
	Transfers []Transfer
}
