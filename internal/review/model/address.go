// Package model defines domain models for transaction review.
package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// ErrInvalidAddress is returned when an address cannot be decoded for the requested network.
var ErrInvalidAddress = errors.New("invalid address")

// ResourceAddress identifies a fungible or non-fungible resource on ledger.
type ResourceAddress string

// EntityAddress identifies any global entity: account, component, pool or validator.
type EntityAddress string

// NonFungibleLocalID identifies one token inside a non-fungible resource.
type NonFungibleLocalID string

const resourceEntityPrefix = "resource"

// ParseResourceAddress validates a Bech32m resource address for the given network.
func ParseResourceAddress(raw string, network NetworkID) (ResourceAddress, error) {
	entity, err := decodeAddress(raw, network)
	if err != nil {
		return "", err
	}
	if entity != resourceEntityPrefix {
		return "", fmt.Errorf("%w: %s is a %s address", ErrInvalidAddress, raw, entity)
	}
	return ResourceAddress(raw), nil
}

// ParseEntityAddress validates a Bech32m address of any entity type for the given network.
func ParseEntityAddress(raw string, network NetworkID) (EntityAddress, error) {
	if _, err := decodeAddress(raw, network); err != nil {
		return "", err
	}
	return EntityAddress(raw), nil
}

// decodeAddress returns the entity part of the human-readable prefix, e.g. "account".
func decodeAddress(raw string, network NetworkID) (string, error) {
	info, ok := network.Info()
	if !ok {
		return "", fmt.Errorf("%w: unknown network %d", ErrInvalidAddress, network)
	}
	hrp, _, version, err := bech32.DecodeGeneric(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode %q: %v", ErrInvalidAddress, raw, err)
	}
	if version != bech32.VersionM {
		return "", fmt.Errorf("%w: %q is not bech32m", ErrInvalidAddress, raw)
	}
	suffix := "_" + info.HRPSuffix
	entity := strings.TrimSuffix(hrp, suffix)
	if entity == hrp || entity == "" {
		return "", fmt.Errorf("%w: %q does not belong to network %s", ErrInvalidAddress, raw, info.Name)
	}
	return entity, nil
}
