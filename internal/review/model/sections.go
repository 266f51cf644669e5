package model

import "errors"

// Sections is the structured review of a transaction. A nil section is absent.
type Sections struct {
	Withdrawals              *AccountsSection
	DappsUsed                *DappsSection
	ContributingToPools      *PoolsSection
	RedeemingFromPools       *PoolsSection
	StakingToValidators      *ValidatorsSection
	UnstakingFromValidators  *ValidatorsSection
	ClaimingFromValidators   *ValidatorsSection
	Deposits                 *AccountsSection
	AccountDepositSetting    *DepositSettingSection
	AccountDepositExceptions *DepositExceptionsSection
	Proofs                   *ProofsSection
}

// IsEmpty reports whether no section is present.
func (s Sections) IsEmpty() bool {
	return s.Withdrawals == nil &&
		s.DappsUsed == nil &&
		s.ContributingToPools == nil &&
		s.RedeemingFromPools == nil &&
		s.StakingToValidators == nil &&
		s.UnstakingFromValidators == nil &&
		s.ClaimingFromValidators == nil &&
		s.Deposits == nil &&
		s.AccountDepositSetting == nil &&
		s.AccountDepositExceptions == nil &&
		s.Proofs == nil
}

// Present returns the names of the present sections in display order.
func (s Sections) Present() []string {
	var out []string
	for _, section := range []struct {
		name    string
		present bool
	}{
		{"withdrawals", s.Withdrawals != nil},
		{"dapps_used", s.DappsUsed != nil},
		{"contributing_to_pools", s.ContributingToPools != nil},
		{"redeeming_from_pools", s.RedeemingFromPools != nil},
		{"staking_to_validators", s.StakingToValidators != nil},
		{"unstaking_from_validators", s.UnstakingFromValidators != nil},
		{"claiming_from_validators", s.ClaimingFromValidators != nil},
		{"deposits", s.Deposits != nil},
		{"account_deposit_setting", s.AccountDepositSetting != nil},
		{"account_deposit_exceptions", s.AccountDepositExceptions != nil},
		{"proofs", s.Proofs != nil},
	} {
		if section.present {
			out = append(out, section.name)
		}
	}
	return out
}

// TransferCount returns the number of withdrawal and deposit line items.
func (s Sections) TransferCount() int {
	count := 0
	for _, section := range []*AccountsSection{s.Withdrawals, s.Deposits} {
		if section == nil {
			continue
		}
		for _, account := range section.Accounts {
			count += len(account.Transfers)
		}
	}
	return count
}

// AccountsSection lists per-account transfers.
type AccountsSection struct {
	Accounts []Account
}

// DappsSection lists the dApps a transaction interacts with.
type DappsSection struct {
	Dapps []Dapp
	// UnknownComponents counts components without a resolvable dApp definition.
	UnknownComponents int
}

// PoolsSection lists the pools a transaction contributes to or redeems from.
type PoolsSection struct {
	Pools []Pool
}

// ValidatorsSection lists the validators a transaction stakes to, unstakes from or claims from.
type ValidatorsSection struct {
	Validators []ValidatorInfo
}

// DepositRuleChange is a new default deposit rule of an account.
type DepositRuleChange struct {
	Account ReviewAccount
	Rule    DepositRule
}

// DepositSettingSection lists default deposit rule changes.
type DepositSettingSection struct {
	Changes []DepositRuleChange
}

// ResourcePreferenceChange is a change to the deposit exception for one resource.
type ResourcePreferenceChange struct {
	Resource ResourceInfo
	Update   ResourcePreferenceUpdate
}

// DepositorChange adds or removes an authorized depositor badge.
type DepositorChange struct {
	Resource ResourceInfo
	LocalID  NonFungibleLocalID
	Added    bool
}

// AccountDepositExceptions groups exception changes of one account.
type AccountDepositExceptions struct {
	Account             ReviewAccount
	ResourcePreferences []ResourcePreferenceChange
	Depositors          []DepositorChange
}

// DepositExceptionsSection lists per-account deposit exception changes.
type DepositExceptionsSection struct {
	Accounts []AccountDepositExceptions
}

// Proof is a presented proof of a resource or of specific tokens.
type Proof struct {
	Resource ResourceInfo
	LocalIDs []NonFungibleLocalID
}

// ProofsSection lists presented proofs.
type ProofsSection struct {
	Proofs []Proof
}

// ErrUnclassified signals that a summary has no recognised shape; callers show the raw manifest instead.
var ErrUnclassified = errors.New("manifest is not classified")
