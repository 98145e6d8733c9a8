package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/sharevault/types"
	"github.com/provlabs/sharevault/utils"
)

func (s *TestSuite) TestGenesis_DefaultRoundTrip() {
	s.k.InitGenesis(s.ctx, types.DefaultGenesisState())

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NotNil(exported)
	s.Assert().Equal(types.DefaultParams(), exported.Params)
	s.Assert().Empty(exported.Vaults)
	s.Assert().Empty(exported.Balances)
	s.Assert().Empty(exported.Allowances)
}

func (s *TestSuite) TestGenesis_PopulatedRoundTrip() {
	holderA := utils.TestAddress()
	holderB := utils.TestAddress()
	spender := utils.TestAddress()

	vault0 := types.NewVault(0, s.adminAddr.String(), underlyingDenom)
	vault0.TotalShares = sdkmath.NewInt(800)
	vault0.TotalAssets = sdkmath.NewInt(1_600)
	vault3 := types.NewVault(3, s.adminAddr.String(), "otherdenom")

	genState := &types.GenesisState{
		Params: types.Params{MinInitialDeposit: sdkmath.NewInt(7)},
		Vaults: []types.Vault{vault0, vault3},
		Balances: []types.ShareBalance{
			{VaultId: 0, Holder: holderA.String(), Shares: sdkmath.NewInt(500)},
			{VaultId: 0, Holder: holderB.String(), Shares: sdkmath.NewInt(300)},
		},
		Allowances: []types.WithdrawAllowance{
			{VaultId: 0, Owner: holderA.String(), Spender: spender.String(), Shares: sdkmath.NewInt(50)},
		},
	}

	s.k.InitGenesis(s.ctx, genState)

	params, err := s.k.GetParams(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal("7", params.MinInitialDeposit.String())

	stored := s.requireVault(0)
	s.Assert().Equal("800", stored.TotalShares.String())
	s.Assert().Equal("1600", stored.TotalAssets.String())
	s.Assert().Equal("500", s.shareBalance(0, holderA).String())
	s.Assert().Equal("300", s.shareBalance(0, holderB).String())

	allowance, err := s.k.WithdrawAllowance(s.ctx, 0, holderA, spender)
	s.Require().NoError(err)
	s.Assert().Equal("50", allowance.String())

	// The sequence resumes after the highest imported id.
	next, err := s.k.CreateVault(s.ctx, s.adminAddr, "thirddenom")
	s.Require().NoError(err)
	s.Assert().Equal(uint64(4), next.Id, "new ids must not collide with imported vaults")

	exported := s.k.ExportGenesis(s.ctx)
	s.Require().NotNil(exported)
	s.Assert().Equal("7", exported.Params.MinInitialDeposit.String())
	s.Assert().Len(exported.Vaults, 3)
	s.Assert().Len(exported.Balances, 2)
	s.Assert().Len(exported.Allowances, 1)
	s.Assert().NoError(exported.Validate(), "an exported state must validate")
}

func (s *TestSuite) TestGenesis_InvalidStatePanics() {
	holder := utils.TestAddress()

	vault := types.NewVault(0, s.adminAddr.String(), underlyingDenom)
	vault.TotalShares = sdkmath.NewInt(100)
	vault.TotalAssets = sdkmath.NewInt(100)

	// Balances sum to 60, not the declared 100.
	genState := &types.GenesisState{
		Params: types.DefaultParams(),
		Vaults: []types.Vault{vault},
		Balances: []types.ShareBalance{
			{VaultId: 0, Holder: holder.String(), Shares: sdkmath.NewInt(60)},
		},
	}

	s.Require().Panics(func() {
		s.k.InitGenesis(s.ctx, genState)
	}, "a genesis state violating share conservation must be rejected")
}
