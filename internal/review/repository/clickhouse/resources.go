package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

const resourcesQuery = `
SELECT
	address,
	kind,
	divisibility,
	name,
	symbol,
	description,
	icon_url,
	tags
FROM ledger_resources FINAL
WHERE network = ? AND address IN ?`

// Resources returns on-ledger resources keyed by address. Unknown addresses are absent.
func (r *Repository) Resources(ctx context.Context, network model.NetworkID, addresses []model.ResourceAddress) (map[model.ResourceAddress]model.OnLedgerResource, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("resources", network.String(), err, start)
	}()

	result := make(map[model.ResourceAddress]model.OnLedgerResource, len(addresses))
	if len(addresses) == 0 {
		return result, nil
	}

	rows, err := r.conn.Query(ctx, resourcesQuery, uint8(network), toStrings(addresses))
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var (
			address, kind                      string
			divisibility                       *uint8
			name, symbol, description, iconURL string
			tags                               []string
		)
		if err = rows.Scan(
			&address,
			&kind,
			&divisibility,
			&name,
			&symbol,
			&description,
			&iconURL,
			&tags,
		); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}

		result[model.ResourceAddress(address)] = model.OnLedgerResource{
			Address:      model.ResourceAddress(address),
			Kind:         model.ResourceKind(kind),
			Metadata:     metadata(name, symbol, description, iconURL, tags),
			Divisibility: divisibility,
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}

	return result, nil
}
