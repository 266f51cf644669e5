package model

import "github.com/shopspring/decimal"

// DefaultDivisibility applies to fungible resources whose divisibility is unknown.
const DefaultDivisibility uint8 = 18

// ResourceKind distinguishes fungible and non-fungible resources.
type ResourceKind string

const (
	ResourceFungible    ResourceKind = "fungible"
	ResourceNonFungible ResourceKind = "non_fungible"
)

// Metadata holds the display metadata of an entity.
type Metadata struct {
	Name        string
	Symbol      string
	Description string
	IconURL     string
	Tags        []string
}

// OnLedgerResource is a resource already committed to the ledger.
type OnLedgerResource struct {
	Address      ResourceAddress
	Kind         ResourceKind
	Metadata     Metadata
	Divisibility *uint8
}

// NewEntityMetadata is the metadata of a resource created by the reviewed transaction itself.
type NewEntityMetadata struct {
	Metadata
}

// ResourceInfo is the resolution result of one address. Exactly one of OnLedger and NewEntity is set.
type ResourceInfo struct {
	Address   ResourceAddress
	OnLedger  *OnLedgerResource
	NewEntity *NewEntityMetadata
}

// IsNewlyCreated reports whether the resource is created within the reviewed transaction.
func (r ResourceInfo) IsNewlyCreated() bool {
	return r.NewEntity != nil
}

// Metadata returns display metadata regardless of origin.
func (r ResourceInfo) Metadata() Metadata {
	switch {
	case r.OnLedger != nil:
		return r.OnLedger.Metadata
	case r.NewEntity != nil:
		return r.NewEntity.Metadata
	default:
		return Metadata{}
	}
}

// Divisibility returns the resource divisibility, DefaultDivisibility when unknown.
func (r ResourceInfo) Divisibility() uint8 {
	if r.OnLedger != nil && r.OnLedger.Divisibility != nil {
		return *r.OnLedger.Divisibility
	}
	return DefaultDivisibility
}

// NonFungibleData is the on-ledger data of one non-fungible token.
type NonFungibleData struct {
	LocalID     NonFungibleLocalID
	Name        string
	Description string
	KeyImageURL string
	// ClaimAmount and ClaimEpoch are set for validator stake claim tokens.
	ClaimAmount *decimal.Decimal
	ClaimEpoch  *uint64
}

// NonFungibleGlobalID addresses one token globally.
type NonFungibleGlobalID struct {
	Resource ResourceAddress
	LocalID  NonFungibleLocalID
}

// ResourceAmount pairs a resolved resource with an amount.
type ResourceAmount struct {
	Resource ResourceInfo
	Amount   decimal.Decimal
}
