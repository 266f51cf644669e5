package model

// ExecutionSummary is the classified analysis of a not-yet-signed transaction.
type ExecutionSummary struct {
	Withdrawals              map[EntityAddress][]ResourceIndicator
	Deposits                 map[EntityAddress][]ResourceIndicator
	NewEntities              map[ResourceAddress]NewEntityMetadata
	NewlyCreatedNonFungibles []NonFungibleGlobalID
	PresentedProofs          []ResourceOrNonFungible
	EncounteredComponents    []EntityAddress
	// UnstakeClaims holds the data of claim tokens minted by unstakes, keyed by token id.
	UnstakeClaims  map[NonFungibleGlobalID]UnstakeData
	Classification Classification
}

// HasTransfers reports whether any account withdraws or deposits anything.
func (s ExecutionSummary) HasTransfers() bool {
	for _, indicators := range s.Withdrawals {
		if len(indicators) > 0 {
			return true
		}
	}
	for _, indicators := range s.Deposits {
		if len(indicators) > 0 {
			return true
		}
	}
	return false
}

// IsNewEntity reports whether the resource is created by the transaction itself.
func (s ExecutionSummary) IsNewEntity(resource ResourceAddress) bool {
	_, ok := s.NewEntities[resource]
	return ok
}

// IsNewToken reports whether the token is minted by the transaction itself.
func (s ExecutionSummary) IsNewToken(id NonFungibleGlobalID) bool {
	if s.IsNewEntity(id.Resource) {
		return true
	}
	for _, created := range s.NewlyCreatedNonFungibles {
		if created == id {
			return true
		}
	}
	return false
}
