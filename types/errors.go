package types

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest = errors.Register(ModuleName, 2, "invalid request")
	// ErrZeroAmount indicates a zero quantity was supplied to an operation that
	// requires a positive amount.
	ErrZeroAmount = errors.Register(ModuleName, 3, "amount must be positive")
	// ErrZeroShares indicates a deposit would mint zero shares due to rounding.
	ErrZeroShares = errors.Register(ModuleName, 4, "deposit results in zero shares")
	// ErrZeroAssets indicates a redemption would pay out zero assets due to rounding.
	ErrZeroAssets = errors.Register(ModuleName, 5, "redemption results in zero assets")
	// ErrInsufficientShares indicates the owner does not hold the shares required.
	ErrInsufficientShares = errors.Register(ModuleName, 6, "insufficient shares")
	// ErrInsufficientAllowance indicates the caller's withdrawal allowance does not
	// cover the shares being burned on the owner's behalf.
	ErrInsufficientAllowance = errors.Register(ModuleName, 7, "insufficient withdrawal allowance")
	// ErrInsufficientAssets indicates the vault's accounted assets do not cover the
	// requested payout.
	ErrInsufficientAssets = errors.Register(ModuleName, 8, "insufficient vault assets")
	// ErrSlippageExceeded indicates the realized conversion violated the caller's bound.
	ErrSlippageExceeded = errors.Register(ModuleName, 9, "slippage bound exceeded")
	// ErrTransferFailed indicates the underlying asset transfer failed. The whole
	// operation is discarded when this is returned.
	ErrTransferFailed = errors.Register(ModuleName, 10, "asset transfer failed")
	// ErrReentrantCall indicates an operation re-entered a vault that is already
	// executing an operation.
	ErrReentrantCall = errors.Register(ModuleName, 11, "reentrant vault call")
	ErrVaultNotFound = errors.Register(ModuleName, 12, "vault not found")
	ErrVaultPaused   = errors.Register(ModuleName, 13, "vault is paused")
	// ErrDepositsDisabled indicates deposits and mints are currently disabled.
	ErrDepositsDisabled = errors.Register(ModuleName, 14, "deposits are disabled")
	// ErrWithdrawalsDisabled indicates withdrawals and redemptions are currently disabled.
	ErrWithdrawalsDisabled = errors.Register(ModuleName, 15, "withdrawals are disabled")
	// ErrBelowMinInitialDeposit indicates a first deposit below the configured minimum.
	ErrBelowMinInitialDeposit = errors.Register(ModuleName, 16, "first deposit below minimum")
	ErrUnauthorized           = errors.Register(ModuleName, 17, "unauthorized")
)
