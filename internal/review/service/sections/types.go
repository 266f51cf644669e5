package sections

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LedgerRepository interface {
		Resources(ctx context.Context, network model.NetworkID, addresses []model.ResourceAddress) (map[model.ResourceAddress]model.OnLedgerResource, error)
		NonFungibleData(ctx context.Context, network model.NetworkID, resource model.ResourceAddress, ids []model.NonFungibleLocalID) ([]model.NonFungibleData, error)
		DappDefinitions(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) (map[model.EntityAddress]model.EntityAddress, error)
		DappMetadata(ctx context.Context, network model.NetworkID, definitions []model.EntityAddress) (map[model.EntityAddress]model.Metadata, error)
		Validators(ctx context.Context, network model.NetworkID, addresses []model.EntityAddress) ([]model.ValidatorInfo, error)
	}
	AccountBook interface {
		KnownAccounts(ctx context.Context, network model.NetworkID) ([]model.WalletAccount, error)
	}
	GuaranteePolicy interface {
		DefaultDepositGuaranteeRatio(ctx context.Context) (decimal.Decimal, error)
	}

	ReviewMetrics interface {
		ObserveBuild(classification string, err error, started time.Time)
	}
)
