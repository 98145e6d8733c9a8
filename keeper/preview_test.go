package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/sharevault/types"
	"github.com/provlabs/sharevault/utils"
)

// TestPreviewsMatchOperations checks that each preview returns exactly the
// quantity the mutating operation then produces against the same state.
func (s *TestSuite) TestPreviewsMatchOperations() {
	holder := utils.TestAddress()
	vault := s.seedVault(7, 131, holder)
	trader := s.fundedAccount(10_000)

	previewShares, err := s.k.PreviewDeposit(s.ctx, vault.Id, sdkmath.NewInt(97))
	s.Require().NoError(err)
	shares, err := s.k.Deposit(s.ctx, vault.Id, trader, sdkmath.NewInt(97), trader)
	s.Require().NoError(err)
	s.Assert().Equal(previewShares.String(), shares.String(), "PreviewDeposit must match Deposit")

	previewAssets, err := s.k.PreviewMint(s.ctx, vault.Id, sdkmath.NewInt(3))
	s.Require().NoError(err)
	assets, err := s.k.Mint(s.ctx, vault.Id, trader, sdkmath.NewInt(3), trader)
	s.Require().NoError(err)
	s.Assert().Equal(previewAssets.String(), assets.String(), "PreviewMint must match Mint")

	previewShares, err = s.k.PreviewWithdraw(s.ctx, vault.Id, sdkmath.NewInt(50))
	s.Require().NoError(err)
	shares, err = s.k.Withdraw(s.ctx, vault.Id, trader, sdkmath.NewInt(50), trader, trader)
	s.Require().NoError(err)
	s.Assert().Equal(previewShares.String(), shares.String(), "PreviewWithdraw must match Withdraw")

	previewAssets, err = s.k.PreviewRedeem(s.ctx, vault.Id, sdkmath.NewInt(2))
	s.Require().NoError(err)
	assets, err = s.k.Redeem(s.ctx, vault.Id, trader, sdkmath.NewInt(2), trader, trader)
	s.Require().NoError(err)
	s.Assert().Equal(previewAssets.String(), assets.String(), "PreviewRedeem must match Redeem")
}

func (s *TestSuite) TestPreviewsDoNotMutate() {
	holder := utils.TestAddress()
	vault := s.seedVault(1_000, 2_000, holder)

	_, err := s.k.PreviewDeposit(s.ctx, vault.Id, sdkmath.NewInt(100))
	s.Require().NoError(err)
	_, err = s.k.PreviewWithdraw(s.ctx, vault.Id, sdkmath.NewInt(100))
	s.Require().NoError(err)

	stored := s.requireVault(vault.Id)
	s.Assert().Equal("1000", stored.TotalShares.String(), "previews must not change totals")
	s.Assert().Equal("2000", stored.TotalAssets.String(), "previews must not change totals")
}

func (s *TestSuite) TestConvertDirections() {
	holder := utils.TestAddress()
	vault := s.seedVault(1_000, 2_000, holder)

	shares, err := s.k.ConvertToShares(s.ctx, vault.Id, sdkmath.NewInt(100))
	s.Require().NoError(err)
	s.Assert().Equal("50", shares.String(), "100 assets at a 2:1 rate are 50 shares")

	assets, err := s.k.ConvertToAssets(s.ctx, vault.Id, sdkmath.NewInt(50))
	s.Require().NoError(err)
	s.Assert().Equal("100", assets.String(), "50 shares at a 2:1 rate are 100 assets")

	// Both directions round down.
	shares, err = s.k.ConvertToShares(s.ctx, vault.Id, sdkmath.NewInt(3))
	s.Require().NoError(err)
	s.Assert().Equal("1", shares.String())
	assets, err = s.k.ConvertToAssets(s.ctx, vault.Id, sdkmath.NewInt(1))
	s.Require().NoError(err)
	s.Assert().Equal("2", assets.String())
}

func (s *TestSuite) TestTotalsReads() {
	holder := utils.TestAddress()
	vault := s.seedVault(123, 456, holder)

	totalShares, err := s.k.TotalShares(s.ctx, vault.Id)
	s.Require().NoError(err)
	s.Assert().Equal("123", totalShares.String())

	totalAssets, err := s.k.TotalAssets(s.ctx, vault.Id)
	s.Require().NoError(err)
	s.Assert().Equal("456", totalAssets.String())

	_, err = s.k.TotalShares(s.ctx, vault.Id+99)
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestPreviewsOnMissingVault() {
	_, err := s.k.PreviewDeposit(s.ctx, 42, sdkmath.NewInt(100))
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)
	_, err = s.k.PreviewRedeem(s.ctx, 42, sdkmath.NewInt(100))
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)
}
