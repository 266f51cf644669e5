package model

// Classification is the high-level shape of a manifest as tagged by the analysis engine.
type Classification interface {
	Kind() string
}

type (
	// General is an arbitrary manifest with conforming withdrawals and deposits.
	General struct{}
	// TransferClassification moves resources between accounts only.
	TransferClassification struct {
		OneToOne bool
	}
	// PoolContribution contributes resources to one or more pools in exchange for pool units.
	PoolContribution struct {
		Pools         []EntityAddress
		Contributions []TrackedPoolInteraction
	}
	// PoolRedemption redeems pool units for the underlying resources.
	PoolRedemption struct {
		Pools       []EntityAddress
		Redemptions []TrackedPoolInteraction
	}
	// ValidatorStake stakes XRD to validators in exchange for liquid stake units.
	ValidatorStake struct {
		Validators []EntityAddress
		Stakes     []TrackedValidatorInteraction
	}
	// ValidatorUnstake burns liquid stake units in exchange for stake claim tokens.
	ValidatorUnstake struct {
		Validators []EntityAddress
		Unstakes   []TrackedValidatorInteraction
	}
	// ValidatorClaim redeems stake claim tokens for XRD.
	ValidatorClaim struct {
		Validators []EntityAddress
		Claims     []TrackedValidatorInteraction
	}
	// AccountDepositSettingsUpdate changes account deposit rules and exceptions.
	AccountDepositSettingsUpdate struct {
		ResourcePreferenceUpdates   map[EntityAddress]map[ResourceAddress]ResourcePreferenceUpdate
		DepositModeUpdates          map[EntityAddress]DepositRule
		AuthorizedDepositorsAdded   map[EntityAddress][]ResourceOrNonFungible
		AuthorizedDepositorsRemoved map[EntityAddress][]ResourceOrNonFungible
	}
	// SecurifyEntity moves entities under access controller control.
	SecurifyEntity struct {
		Entities []EntityAddress
	}
	// AccessControllerRecovery initiates or confirms a recovery of an access controller.
	AccessControllerRecovery struct {
		Controllers []EntityAddress
	}
	// AccessControllerStopTimedRecovery cancels a pending timed recovery.
	AccessControllerStopTimedRecovery struct {
		Controllers []EntityAddress
	}
	// Unclassified marks a manifest the analysis engine could not classify.
	Unclassified struct{}
)

func (General) Kind() string                      { return "general" }
func (TransferClassification) Kind() string       { return "transfer" }
func (PoolContribution) Kind() string             { return "pool_contribution" }
func (PoolRedemption) Kind() string               { return "pool_redemption" }
func (ValidatorStake) Kind() string               { return "validator_stake" }
func (ValidatorUnstake) Kind() string             { return "validator_unstake" }
func (ValidatorClaim) Kind() string               { return "validator_claim" }
func (AccountDepositSettingsUpdate) Kind() string { return "account_deposit_settings_update" }
func (SecurifyEntity) Kind() string               { return "securify_entity" }
func (AccessControllerRecovery) Kind() string     { return "access_controller_recovery" }
func (AccessControllerStopTimedRecovery) Kind() string {
	return "access_controller_stop_timed_recovery"
}
func (Unclassified) Kind() string { return "unclassified" }

// DepositRule is the default deposit rule of an account.
type DepositRule string

const (
	DepositRuleAcceptAll   DepositRule = "accept_all"
	DepositRuleAcceptKnown DepositRule = "accept_known"
	DepositRuleDenyAll     DepositRule = "deny_all"
)

// ResourcePreferenceUpdate sets or removes a per-resource deposit exception.
type ResourcePreferenceUpdate string

const (
	ResourcePreferenceAllowed    ResourcePreferenceUpdate = "allowed"
	ResourcePreferenceDisallowed ResourcePreferenceUpdate = "disallowed"
	ResourcePreferenceRemove     ResourcePreferenceUpdate = "remove"
)

// ResourceOrNonFungible names either a whole resource or one token of it. LocalID is empty for resources.
type ResourceOrNonFungible struct {
	Resource ResourceAddress
	LocalID  NonFungibleLocalID
}
