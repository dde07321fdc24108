package usecase

import (
	"context"
	"time"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopUsecase defines the interface for shop provisioning and maintenance.
// All operations are scoped to the authenticated seller's account.
type ShopUsecase interface {
	// CreateShop provisions the seller's shop. Fails with a conflict when
	// the seller already has one.
	CreateShop(ctx context.Context, accountID uuid.UUID, input *ShopInput) (*entity.Shop, error)

	// GetShop retrieves the seller's shop.
	GetShop(ctx context.Context, accountID uuid.UUID) (*entity.Shop, error)

	// UpdateShop applies a partial update to the seller's shop.
	UpdateShop(ctx context.Context, accountID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)

	// UploadShopPicture stores the picture bytes in the named slot (1 to 3)
	// and persists the resulting path on the shop.
	UploadShopPicture(ctx context.Context, accountID uuid.UUID, slot int, filename string, content []byte) (*entity.Shop, error)

	// DeleteShop removes the seller's shop. The seller profile itself stays.
	DeleteShop(ctx context.Context, accountID uuid.UUID) error
}

// UpdateShopInput carries partial shop updates. Only non-nil fields are applied.
type UpdateShopInput struct {
	Type      *entity.ShopType `json:"shop_type,omitempty"`
	Name      *string          `json:"name,omitempty"`
	ShortName *string          `json:"short_name,omitempty"`

	Address1   *string    `json:"address1,omitempty"`
	Address2   *string    `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    *string    `json:"zip_code,omitempty"`

	ContactNumber       *string `json:"contact_number,omitempty"`
	ContactPerson       *string `json:"contact_person,omitempty"`
	ContactPersonNumber *string `json:"contact_person_number,omitempty"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Website             *string `json:"website,omitempty"`
	Facebook            *string `json:"facebook,omitempty"`
	Instagram           *string `json:"instagram,omitempty"`
	Youtube             *string `json:"youtube,omitempty"`
	Tiktok              *string `json:"tiktok,omitempty"`

	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankAccountName   *string `json:"bank_account_name,omitempty"`

	Geolocation   *string  `json:"geolocation,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleMapsURL *string  `json:"google_maps_url,omitempty"`

	BusinessPermitNumber *string    `json:"business_permit_number,omitempty"`
	BusinessPermitExpiry *time.Time `json:"business_permit_expiry,omitempty"`
	DTIPermitNumber      *string    `json:"dti_permit_number,omitempty"`
	DTIPermitExpiry      *time.Time `json:"dti_permit_expiry,omitempty"`
	IsPhilgepsRegistered *bool      `json:"is_philgeps_registered,omitempty"`
	PhilgepsPermitNumber *string    `json:"philgeps_permit_number,omitempty"`
	PhilgepsPermitExpiry *time.Time `json:"philgeps_permit_expiry,omitempty"`
}
