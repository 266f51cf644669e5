package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

const nonFungibleDataQuery = `
SELECT
	local_id,
	name,
	description,
	key_image_url,
	claim_amount,
	claim_epoch
FROM ledger_non_fungible_data FINAL
WHERE network = ? AND resource = ? AND local_id IN ?
ORDER BY local_id ASC`

// NonFungibleData returns the data of the requested tokens of one resource.
func (r *Repository) NonFungibleData(
	ctx context.Context,
	network model.NetworkID,
	resource model.ResourceAddress,
	ids []model.NonFungibleLocalID,
) ([]model.NonFungibleData, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("non_fungible_data", network.String(), err, start)
	}()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, nonFungibleDataQuery, uint8(network), string(resource), toStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("query non-fungible data: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	data := make([]model.NonFungibleData, 0, len(ids))
	for rows.Next() {
		var (
			localID, name, description, keyImageURL string
			claimAmount                             *decimal.Decimal
			claimEpoch                              *uint64
		)
		if err = rows.Scan(
			&localID,
			&name,
			&description,
			&keyImageURL,
			&claimAmount,
			&claimEpoch,
		); err != nil {
			return nil, fmt.Errorf("scan non-fungible data: %w", err)
		}

		data = append(data, model.NonFungibleData{
			LocalID:     model.NonFungibleLocalID(localID),
			Name:        name,
			Description: description,
			KeyImageURL: keyImageURL,
			ClaimAmount: claimAmount,
			ClaimEpoch:  claimEpoch,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate non-fungible data: %w", err)
	}

	return data, nil
}
