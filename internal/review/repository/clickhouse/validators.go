package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

const validatorsQuery = `
SELECT
	address,
	name,
	description,
	icon_url,
	stake_unit_resource,
	claim_token_resource,
	staked_xrd
FROM ledger_validators FINAL
WHERE network = ? AND address IN ?
ORDER BY address ASC`

// Validators returns the requested validators. Unknown addresses are absent.
func (r *Repository) Validators(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) ([]model.ValidatorInfo, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("validators", network.String(), err, start)
	}()

	if len(addresses) == 0 {
		return nil, nil
	}

	rows, err := r.conn.Query(ctx, validatorsQuery, uint8(network), toStrings(addresses))
	if err != nil {
		return nil, fmt.Errorf("query validators: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	validators := make([]model.ValidatorInfo, 0, len(addresses))
	for rows.Next() {
		var (
			address, name, description, iconURL string
			stakeUnit, claimToken               string
			stakedXRD                           decimal.Decimal
		)
		if err = rows.Scan(
			&address,
			&name,
			&description,
			&iconURL,
			&stakeUnit,
			&claimToken,
			&stakedXRD,
		); err != nil {
			return nil, fmt.Errorf("scan validator: %w", err)
		}

		validators = append(validators, model.ValidatorInfo{
			Address:            model.EntityAddress(address),
			Metadata:           metadata(name, "", description, iconURL, nil),
			StakeUnitResource:  model.ResourceAddress(stakeUnit),
			ClaimTokenResource: model.ResourceAddress(claimToken),
			StakedXRD:          stakedXRD,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validators: %w", err)
	}

	return validators, nil
}
