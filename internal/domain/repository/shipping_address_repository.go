package repository

import (
	"context"
	"errors"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShippingAddressNotFound is returned when a shipping address is not found.
var ErrShippingAddressNotFound = errors.New("shipping address not found")

// ShippingAddressRepository defines the operations for a buyer's shipping
// address book. The singleton-default invariant is enforced by the use case
// layer through ClearDefaults + MarkDefault inside one transaction.
type ShippingAddressRepository interface {
	// FindByID retrieves a shipping address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error)

	// FindByBuyer retrieves all addresses of a buyer, default first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error)

	// FindByBuyerForUpdate is FindByBuyer with a row-level lock on the
	// buyer's rows. Callers use it inside a transaction to serialize
	// concurrent default switches for the same buyer.
	FindByBuyerForUpdate(ctx context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error)

	// FindDefaultByBuyer retrieves the buyer's default address.
	// Returns ErrShippingAddressNotFound when none is marked default.
	FindDefaultByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.ShippingAddress, error)

	// Create persists a new shipping address.
	Create(ctx context.Context, address *entity.ShippingAddress) error

	// Update modifies an existing shipping address.
	Update(ctx context.Context, address *entity.ShippingAddress) error

	// Delete removes a shipping address by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBuyer removes every address of a buyer. Used by the account cascade.
	DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error

	// ClearDefaults unsets the default flag on every address of the buyer.
	ClearDefaults(ctx context.Context, buyerID uuid.UUID) error

	// MarkDefault sets the default flag on a single address.
	MarkDefault(ctx context.Context, id uuid.UUID) error
}
