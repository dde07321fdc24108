package repository

import (
	"context"
	"errors"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentMethodNotFound is returned when a payment method is not found.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository defines the operations for a buyer's saved payment
// methods. Mirrors ShippingAddressRepository, including the clear/mark pair
// used to move the singleton default flag.
type PaymentMethodRepository interface {
	// FindByID retrieves a payment method by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)

	// FindByBuyer retrieves all payment methods of a buyer, default first.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error)

	// FindByBuyerForUpdate is FindByBuyer with a row-level lock on the
	// buyer's rows.
	FindByBuyerForUpdate(ctx context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error)

	// FindDefaultByBuyer retrieves the buyer's default payment method.
	// Returns ErrPaymentMethodNotFound when none is marked default.
	FindDefaultByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.PaymentMethod, error)

	// Create persists a new payment method.
	Create(ctx context.Context, method *entity.PaymentMethod) error

	// Update modifies an existing payment method.
	Update(ctx context.Context, method *entity.PaymentMethod) error

	// Delete removes a payment method by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByBuyer removes every payment method of a buyer. Used by the account cascade.
	DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error

	// ClearDefaults unsets the default flag on every payment method of the buyer.
	ClearDefaults(ctx context.Context, buyerID uuid.UUID) error

	// MarkDefault sets the default flag on a single payment method.
	MarkDefault(ctx context.Context, id uuid.UUID) error
}
