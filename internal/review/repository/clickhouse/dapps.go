package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

const dappDefinitionsQuery = `
SELECT
	entity,
	definition
FROM ledger_dapp_definitions FINAL
WHERE network = ? AND entity IN ?`

const dappMetadataQuery = `
SELECT
	definition,
	name,
	description,
	icon_url,
	tags
FROM ledger_dapp_metadata FINAL
WHERE network = ? AND definition IN ?`

// DappDefinitions returns the dApp definition of each entity that declares one.
func (r *Repository) DappDefinitions(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (map[model.EntityAddress]model.EntityAddress, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("dapp_definitions", network.String(), err, start)
	}()

	result := make(map[model.EntityAddress]model.EntityAddress, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, dappDefinitionsQuery, uint8(network), toStrings(addresses))
	if err != nil {
		return nil, fmt.Errorf("query dapp definitions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var entity, definition string
		if err = rows.Scan(&entity, &definition); err != nil {
			return nil, fmt.Errorf("scan dapp definition: %w", err)
		}
		result[model.EntityAddress(entity)] = model.EntityAddress(definition)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dapp definitions: %w", err)
	}

	return result, nil
}

// DappMetadata returns the metadata of dApp definitions keyed by definition address.
func (r *Repository) DappMetadata(ctx context.Context, network model.NetworkID, definitions []model.EntityAddress) (map[model.EntityAddress]model.Metadata, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("dapp_metadata", network.String(), err, start)
	}()

	result := make(map[model.EntityAddress]model.Metadata, len(definitions))
	if len(definitions) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, dappMetadataQuery, uint8(network), toStrings(definitions))
	if err != nil {
		return nil, fmt.Errorf("query dapp metadata: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			definition, name, description, iconURL string
			tags                                   []string
		)
		if err = rows.Scan(&definition, &name, &description, &iconURL, &tags); err != nil {
			return nil, fmt.Errorf("scan dapp metadata: %w", err)
		}
		result[model.EntityAddress(definition)] = metadata(name, "", description, iconURL, tags)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dapp metadata: %w", err)
	}

	return result, nil
}
