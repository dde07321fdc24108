package repository

import (
	"context"
	"errors"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for role profile persistence.
var (
	// ErrBuyerNotFound is returned when a buyer profile is not found.
	ErrBuyerNotFound = errors.New("buyer profile not found")
	// ErrSellerNotFound is returned when a seller profile is not found.
	ErrSellerNotFound = errors.New("seller profile not found")
	// ErrShopNotFound is returned when a shop is not found.
	ErrShopNotFound = errors.New("shop not found")
	// ErrShopExists is returned when the seller already has a shop.
	ErrShopExists = errors.New("seller already has a shop")
)

// BuyerRepository defines the operations for buyer profile persistence.
type BuyerRepository interface {
	// FindByID retrieves a buyer by its unique ID, preloading the account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// FindByAccountID retrieves the buyer profile owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Buyer, error)

	// FindByIDForUpdate retrieves the buyer under a row-level lock. Writers
	// that switch the buyer's default address or payment method take this
	// lock first so they serialize even when the collection is still empty.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Buyer, error)

	// Create persists a new buyer profile referencing an existing account.
	Create(ctx context.Context, buyer *entity.Buyer) error

	// Update modifies an existing buyer profile.
	Update(ctx context.Context, buyer *entity.Buyer) error

	// Delete removes a buyer profile row.
	Delete(ctx context.Context, id uuid.UUID) error
}

// SellerRepository defines the operations for seller profile persistence.
type SellerRepository interface {
	// FindByID retrieves a seller by its unique ID, preloading the account.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error)

	// FindByAccountID retrieves the seller profile owned by the given account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Seller, error)

	// Create persists a new seller profile referencing an existing account.
	Create(ctx context.Context, seller *entity.Seller) error

	// Update modifies an existing seller profile.
	Update(ctx context.Context, seller *entity.Seller) error

	// Delete removes a seller profile row.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShopRepository defines the operations for shop persistence. A seller holds
// at most one shop, enforced by a unique constraint on the seller reference.
type ShopRepository interface {
	// FindByID retrieves a shop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)

	// FindBySellerID retrieves the shop owned by the given seller.
	// Returns ErrShopNotFound when the seller has no shop yet.
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) (*entity.Shop, error)

	// Create persists a new shop. Returns ErrShopExists when the seller
	// already has one.
	Create(ctx context.Context, shop *entity.Shop) error

	// Update modifies an existing shop.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete removes a shop. The owning seller is untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBySellerID removes the seller's shop if one exists. Used by the
	// account cascade; missing shop is not an error here.
	DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error
}
