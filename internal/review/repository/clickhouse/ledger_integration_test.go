package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/shopspring/decimal"
)

func (s *RepositorySuite) TestResources() {
	s.exec(`INSERT INTO ledger_resources (network, address, kind, divisibility, name, symbol, description, icon_url, tags)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uint8(model.Mainnet), "resource_rdx_a", "fungible", uint8(6), "Token", "TKN", "", "", []string{"defi"})
	s.exec(`INSERT INTO ledger_resources (network, address, kind, divisibility, name, symbol, description, icon_url, tags)
VALUES (?, ?, ?, NULL, ?, ?, ?, ?, ?)`,
		uint8(model.Mainnet), "resource_rdx_nft", "non_fungible", "Badge", "", "", "", []string{})
	s.exec(`INSERT INTO ledger_resources (network, address, kind, divisibility, name, symbol, description, icon_url, tags)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uint8(model.Stokenet), "resource_rdx_a", "fungible", uint8(18), "Other network", "", "", "", []string{})

	s.metrics.EXPECT().Observe("resources", "mainnet", gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.Resources(s.testCtx, model.Mainnet, []model.ResourceAddress{"resource_rdx_a", "resource_rdx_nft", "resource_rdx_missing"})
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	token := got["resource_rdx_a"]
	s.Equal(model.ResourceFungible, token.Kind)
	s.Equal("Token", token.Metadata.Name)
	s.Require().NotNil(token.Divisibility)
	s.Equal(uint8(6), *token.Divisibility)
	s.Equal([]string{"defi"}, token.Metadata.Tags)

	badge := got["resource_rdx_nft"]
	s.Equal(model.ResourceNonFungible, badge.Kind)
	s.Nil(badge.Divisibility)
}

func (s *RepositorySuite) TestNonFungibleData() {
	s.exec(`INSERT INTO ledger_non_fungible_data (network, resource, local_id, name, description, key_image_url, claim_amount, claim_epoch)
VALUES (?, ?, ?, ?, ?, ?, toDecimal256(?, 18), ?)`,
		uint8(model.Mainnet), "resource_rdx_claim", "#1#", "Stake Claim", "", "", "12.5", uint64(100))
	s.exec(`INSERT INTO ledger_non_fungible_data (network, resource, local_id, name, description, key_image_url, claim_amount, claim_epoch)
VALUES (?, ?, ?, ?, ?, ?, NULL, NULL)`,
		uint8(model.Mainnet), "resource_rdx_claim", "#2#", "Ticket", "", "")

	s.metrics.EXPECT().Observe("non_fungible_data", "mainnet", gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.NonFungibleData(s.testCtx, model.Mainnet, "resource_rdx_claim", []model.NonFungibleLocalID{"#1#", "#2#"})
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	s.Equal(model.NonFungibleLocalID("#1#"), got[0].LocalID)
	s.Require().NotNil(got[0].ClaimAmount)
	s.True(got[0].ClaimAmount.Equal(decimal.RequireFromString("12.5")))
	s.Require().NotNil(got[0].ClaimEpoch)
	s.Equal(uint64(100), *got[0].ClaimEpoch)

	s.Equal("Ticket", got[1].Name)
	s.Nil(got[1].ClaimAmount)
	s.Nil(got[1].ClaimEpoch)
}

func (s *RepositorySuite) TestDapps() {
	s.exec(`INSERT INTO ledger_dapp_definitions (network, entity, definition) VALUES (?, ?, ?)`,
		uint8(model.Mainnet), "pool_rdx_1", "account_rdx_dapp")
	s.exec(`INSERT INTO ledger_dapp_metadata (network, definition, name, description, icon_url, tags) VALUES (?, ?, ?, ?, ?, ?)`,
		uint8(model.Mainnet), "account_rdx_dapp", "Ociswap", "dex", "", []string{"dex"})

	s.metrics.EXPECT().Observe("dapp_definitions", "mainnet", gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("dapp_metadata", "mainnet", gomock.Nil(), gomock.Any()).Times(1)

	definitions, err := s.repo.DappDefinitions(s.testCtx, model.Mainnet, []model.EntityAddress{"pool_rdx_1", "component_rdx_unknown"})
	s.Require().NoError(err)
	s.Equal(map[model.EntityAddress]model.EntityAddress{"pool_rdx_1": "account_rdx_dapp"}, definitions)

	metadata, err := s.repo.DappMetadata(s.testCtx, model.Mainnet, []model.EntityAddress{"account_rdx_dapp"})
	s.Require().NoError(err)
	s.Equal("Ociswap", metadata["account_rdx_dapp"].Name)
	s.Equal("dex", metadata["account_rdx_dapp"].Description)
}

func (s *RepositorySuite) TestValidators() {
	s.exec(`INSERT INTO ledger_validators (network, address, name, description, icon_url, stake_unit_resource, claim_token_resource, staked_xrd)
VALUES (?, ?, ?, ?, ?, ?, ?, toDecimal256(?, 18))`,
		uint8(model.Mainnet), "validator_rdx_1", "Validator One", "", "", "resource_rdx_lsu", "resource_rdx_claim", "1000000.5")

	s.metrics.EXPECT().Observe("validators", "mainnet", gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.Validators(s.testCtx, model.Mainnet, []model.EntityAddress{"validator_rdx_1", "validator_rdx_missing"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(model.EntityAddress("validator_rdx_1"), got[0].Address)
	s.Equal(model.ResourceAddress("resource_rdx_lsu"), got[0].StakeUnitResource)
	s.True(got[0].StakedXRD.Equal(decimal.RequireFromString("1000000.5")))
}
