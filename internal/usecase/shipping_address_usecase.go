package usecase

import (
	"context"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// ShippingAddressUsecase manages the authenticated buyer's address book.
// At most one address per buyer carries the default flag; SetDefaultAddress
// moves the flag atomically.
type ShippingAddressUsecase interface {
	ListAddresses(ctx context.Context, accountID uuid.UUID) ([]*entity.ShippingAddress, error)
	GetDefaultAddress(ctx context.Context, accountID uuid.UUID) (*entity.ShippingAddress, error)
	CreateAddress(ctx context.Context, accountID uuid.UUID, input *ShippingAddressInput) (*entity.ShippingAddress, error)
	UpdateAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID, input *UpdateShippingAddressInput) (*entity.ShippingAddress, error)
	DeleteAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID) error
	SetDefaultAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID) error
}

// ShippingAddressInput defines the data for a new shipping address.
// SetAsDefault routes the create through the same default-switch path used by
// SetDefaultAddress.
type ShippingAddressInput struct {
	Address1   string     `json:"address1" validate:"required"`
	Address2   string     `json:"address2"`
	BarangayID *uuid.UUID `json:"barangay_id"`
	CityID     *uuid.UUID `json:"city_id"`
	ProvinceID *uuid.UUID `json:"province_id"`
	RegionID   *uuid.UUID `json:"region_id"`
	CountryID  *uuid.UUID `json:"country_id"`
	ZipCode    string     `json:"zip_code"`

	Geolocation   string   `json:"geolocation"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	GoogleMapsURL string   `json:"google_maps_url"`

	SetAsDefault bool `json:"set_as_default"`
}

// UpdateShippingAddressInput carries partial address updates. Only non-nil
// fields are applied. The default flag is deliberately absent; it moves only
// through SetDefaultAddress.
type UpdateShippingAddressInput struct {
	Address1   *string    `json:"address1,omitempty"`
	Address2   *string    `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    *string    `json:"zip_code,omitempty"`

	Geolocation   *string  `json:"geolocation,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleMapsURL *string  `json:"google_maps_url,omitempty"`
}
