package resolver

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

var (
	// ErrResolutionFailure wraps any failed ledger lookup; the whole review fails with it.
	ErrResolutionFailure = errors.New("ledger resolution failed")
	// ErrResourceEntityNotFound is matched by ResourceNotFoundError.
	ErrResourceEntityNotFound = errors.New("resource entity not found")
	// ErrFailedToGetDataForAllNFTs is returned when the ledger returns data for fewer tokens than requested.
	ErrFailedToGetDataForAllNFTs = errors.New("failed to get data for all non-fungible tokens")
	// ErrMissingValidatorInformation is returned when the ledger does not describe every requested validator.
	ErrMissingValidatorInformation = errors.New("missing validator information")
)

// ResourceNotFoundError reports an address that is absent from the resolved resources.
type ResourceNotFoundError struct {
	Address model.ResourceAddress
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrResourceEntityNotFound, e.Address)
}

func (e *ResourceNotFoundError) Is(target error) bool {
	return target == ErrResourceEntityNotFound
}
