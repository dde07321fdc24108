package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddress is one delivery address belonging to a buyer. At most one
// of a buyer's addresses carries IsDefault=true.
type ShippingAddress struct {
	ID      uuid.UUID `json:"id"`
	BuyerID uuid.UUID `json:"buyer_id"`

	Address1   string     `json:"address1,omitempty"`
	Address2   string     `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    string     `json:"zip_code,omitempty"`

	Geolocation   string   `json:"geolocation,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	GoogleMapsURL string   `json:"google_maps_url,omitempty"`

	IsDefault bool `json:"is_default"`

	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`
	IsDeleted  bool `json:"is_deleted"`
	IsApproved bool `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
