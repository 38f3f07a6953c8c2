// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// AddressRepoFactory provides access to the address repository within a transaction.
	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// RefreshTokenRepoFactory provides access to the refresh token repository within a transaction.
	RefreshTokenRepoFactory interface {
		RefreshTokenRepository() ports.RefreshTokenRepository
	}

	// OrderUoW manages transactions for order placement and mutation.
	// Order creation snapshots catalog prices and verifies the shipping
	// address, so the order, menu and address repositories share one
	// transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
		AddressRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AddressUoW manages transactions for address book operations.
	AddressUoW interface {
		TxManager
		AddressRepoFactory
	}

	// AddressUoWFactory creates new address unit of work instances.
	AddressUoWFactory interface {
		Create() AddressUoW
	}

	// AccountUoW manages transactions for registration and token issuance.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		RefreshTokenRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
