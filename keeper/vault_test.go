package keeper_test

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/sharevault/types"
	"github.com/provlabs/sharevault/utils"
)

func (s *TestSuite) TestCreateVault() {
	vault, err := s.k.CreateVault(s.ctx, s.adminAddr, underlyingDenom)
	s.Require().NoError(err, "CreateVault should succeed")
	s.Assert().Equal(uint64(0), vault.Id, "the first vault takes id 0")
	s.Assert().Equal(s.adminAddr.String(), vault.Admin)
	s.Assert().Equal(underlyingDenom, vault.UnderlyingAsset)
	s.Assert().True(vault.TotalShares.IsZero(), "a new vault starts with no shares")
	s.Assert().True(vault.TotalAssets.IsZero(), "a new vault starts with no accounted assets")
	s.Assert().True(vault.DepositsEnabled, "deposits start enabled")
	s.Assert().True(vault.WithdrawalsEnabled, "withdrawals start enabled")
	s.Assert().False(vault.Paused, "a new vault is not paused")
	s.Assert().Equal(types.GetVaultAddress(vault.Id).String(), vault.Address, "the address is derived from the id")

	s.assertEventEmitted(types.EventTypeVaultCreated, map[string]string{
		types.AttributeKeyVaultID: "0",
		types.AttributeKeyAdmin:   s.adminAddr.String(),
	})

	second, err := s.k.CreateVault(s.ctx, s.adminAddr, "otherdenom")
	s.Require().NoError(err)
	s.Assert().Equal(uint64(1), second.Id, "ids are allocated sequentially")
	s.Assert().NotEqual(vault.Address, second.Address, "each vault gets its own address")
}

func (s *TestSuite) TestCreateVault_InvalidDenom() {
	_, err := s.k.CreateVault(s.ctx, s.adminAddr, "")
	s.Require().Error(err, "an empty denom must be rejected")
	s.Assert().ErrorIs(err, types.ErrInvalidRequest)

	_, err = s.k.CreateVault(s.ctx, s.adminAddr, "not a denom!")
	s.Require().Error(err, "an invalid denom must be rejected")
	s.Assert().ErrorIs(err, types.ErrInvalidRequest)
}

func (s *TestSuite) TestGetVault_NotFound() {
	_, err := s.k.GetVault(s.ctx, 7)
	s.Require().Error(err)
	s.Assert().ErrorIs(err, types.ErrVaultNotFound)
}

func (s *TestSuite) TestVaultToggles_AdminGated() {
	vault := s.createVault()
	stranger := utils.TestAddress()

	err := s.k.SetPaused(s.ctx, vault.Id, stranger, true)
	s.Assert().ErrorIs(err, types.ErrUnauthorized, "only the admin may pause")
	err = s.k.SetDepositsEnabled(s.ctx, vault.Id, stranger, false)
	s.Assert().ErrorIs(err, types.ErrUnauthorized, "only the admin may toggle deposits")
	err = s.k.SetWithdrawalsEnabled(s.ctx, vault.Id, stranger, false)
	s.Assert().ErrorIs(err, types.ErrUnauthorized, "only the admin may toggle withdrawals")

	s.Require().NoError(s.k.SetPaused(s.ctx, vault.Id, s.adminAddr, true))
	stored := s.requireVault(vault.Id)
	s.Assert().True(stored.Paused)
	s.assertEventEmitted(types.EventTypeTogglePaused, map[string]string{
		types.AttributeKeyVaultID: "0",
		types.AttributeKeyEnabled: "true",
	})

	s.Require().NoError(s.k.SetDepositsEnabled(s.ctx, vault.Id, s.adminAddr, false))
	s.Require().NoError(s.k.SetWithdrawalsEnabled(s.ctx, vault.Id, s.adminAddr, false))
	stored = s.requireVault(vault.Id)
	s.Assert().False(stored.DepositsEnabled)
	s.Assert().False(stored.WithdrawalsEnabled)

	err = s.k.SetPaused(s.ctx, vault.Id+99, s.adminAddr, true)
	s.Assert().ErrorIs(err, types.ErrVaultNotFound, "toggling a missing vault must fail")
}

func (s *TestSuite) TestApproveWithdraw_Validation() {
	owner := utils.TestAddress()
	spender := utils.TestAddress()
	vault := s.createVault()

	err := s.k.ApproveWithdraw(s.ctx, vault.Id, owner, spender, sdkmath.NewInt(-1))
	s.Assert().ErrorIs(err, types.ErrInvalidRequest, "a negative allowance must be rejected")

	err = s.k.ApproveWithdraw(s.ctx, vault.Id, owner, owner, sdkmath.NewInt(10))
	s.Assert().ErrorIs(err, types.ErrInvalidRequest, "a self-allowance must be rejected")

	err = s.k.ApproveWithdraw(s.ctx, vault.Id+99, owner, spender, sdkmath.NewInt(10))
	s.Assert().ErrorIs(err, types.ErrVaultNotFound, "the vault must exist")

	s.Require().NoError(s.k.ApproveWithdraw(s.ctx, vault.Id, owner, spender, sdkmath.NewInt(10)))
	allowance, err := s.k.WithdrawAllowance(s.ctx, vault.Id, owner, spender)
	s.Require().NoError(err)
	s.Assert().Equal("10", allowance.String())

	// A later approval replaces, not adds.
	s.Require().NoError(s.k.ApproveWithdraw(s.ctx, vault.Id, owner, spender, sdkmath.NewInt(4)))
	allowance, err = s.k.WithdrawAllowance(s.ctx, vault.Id, owner, spender)
	s.Require().NoError(err)
	s.Assert().Equal("4", allowance.String())

	// Zero clears.
	s.Require().NoError(s.k.ApproveWithdraw(s.ctx, vault.Id, owner, spender, sdkmath.ZeroInt()))
	allowance, err = s.k.WithdrawAllowance(s.ctx, vault.Id, owner, spender)
	s.Require().NoError(err)
	s.Assert().True(allowance.IsZero())
}

func (s *TestSuite) TestParams() {
	params, err := s.k.GetParams(s.ctx)
	s.Require().NoError(err, "unset params fall back to defaults")
	s.Assert().Equal(types.DefaultParams().MinInitialDeposit.String(), params.MinInitialDeposit.String())

	authority := sdk.AccAddress(s.k.GetAuthority())
	stranger := utils.TestAddress()

	err = s.k.SetParams(s.ctx, stranger, types.Params{MinInitialDeposit: sdkmath.NewInt(5)})
	s.Assert().ErrorIs(err, types.ErrUnauthorized, "only the authority may set params")

	err = s.k.SetParams(s.ctx, authority, types.Params{MinInitialDeposit: sdkmath.ZeroInt()})
	s.Assert().ErrorIs(err, types.ErrInvalidRequest, "the minimum must be positive")

	s.Require().NoError(s.k.SetParams(s.ctx, authority, types.Params{MinInitialDeposit: sdkmath.NewInt(5)}))
	params, err = s.k.GetParams(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("5", params.MinInitialDeposit.String())
	s.assertEventEmitted(types.EventTypeParamsUpdated, nil)
}
