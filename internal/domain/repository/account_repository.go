// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrMobileNoTaken is returned when the mobile number is already registered.
	ErrMobileNoTaken = errors.New("mobile number already registered")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByMobileNo retrieves a single account by its mobile number.
	FindByMobileNo(ctx context.Context, mobileNo string) (*entity.Account, error)

	// Create persists a new account. Returns ErrMobileNoTaken when the mobile
	// number is already registered.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account row. Role profiles are removed by the caller
	// first; this method touches only the accounts table.
	Delete(ctx context.Context, id uuid.UUID) error
}
