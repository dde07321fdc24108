package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShopType classifies the storefront's line of business.
type ShopType string

const (
	// ShopTypeWater is a water refilling station.
	ShopTypeWater ShopType = "water"
	// ShopTypeLaundry is a laundry shop.
	ShopTypeLaundry ShopType = "laundry"
	// ShopTypeRice is a rice dealer.
	ShopTypeRice ShopType = "rice"
	// ShopTypeGroceries is a grocery store.
	ShopTypeGroceries ShopType = "groceries"
	// ShopTypeOther covers everything else.
	ShopTypeOther ShopType = "other"
)

// IsValid checks if the ShopType is a valid value.
func (t ShopType) IsValid() bool {
	switch t {
	case ShopTypeWater, ShopTypeLaundry, ShopTypeRice, ShopTypeGroceries, ShopTypeOther:
		return true
	default:
		return false
	}
}

// Permit is one business permit record attached to a shop.
type Permit struct {
	Number    string     `json:"number,omitempty"`
	Expiry    *time.Time `json:"expiry,omitempty"`
	ImagePath string     `json:"image_path,omitempty"`
}

// Shop is a seller-owned storefront with its own address, contact and permit
// data, independent of the seller's account address.
type Shop struct {
	ID       uuid.UUID `json:"id"`
	SellerID uuid.UUID `json:"seller_id"`
	Type     ShopType  `json:"shop_type"`

	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`

	Address1   string     `json:"address1,omitempty"`
	Address2   string     `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    string     `json:"zip_code,omitempty"`

	ContactNumber       string `json:"contact_number,omitempty"`
	ContactPerson       string `json:"contact_person,omitempty"`
	ContactPersonNumber string `json:"contact_person_number,omitempty"`
	Email               string `json:"email,omitempty"`
	Website             string `json:"website,omitempty"`
	Facebook            string `json:"facebook,omitempty"`
	Instagram           string `json:"instagram,omitempty"`
	Youtube             string `json:"youtube,omitempty"`
	Tiktok              string `json:"tiktok,omitempty"`

	BankName          string `json:"bank_name,omitempty"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankAccountName   string `json:"bank_account_name,omitempty"`

	Geolocation     string   `json:"geolocation,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	GoogleMapsURL   string   `json:"google_maps_url,omitempty"`
	GoogleMapsImage string   `json:"google_maps_image,omitempty"`

	Picture1 string `json:"picture1,omitempty"`
	Picture2 string `json:"picture2,omitempty"`
	Picture3 string `json:"picture3,omitempty"`

	BusinessPermit       Permit `json:"business_permit"`
	DTIPermit            Permit `json:"dti_permit"`
	IsPhilgepsRegistered bool   `json:"is_philgeps_registered"`
	PhilgepsPermit       Permit `json:"philgeps_permit"`

	IsFeatured bool `json:"is_featured"`
	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`
	IsBlocked  bool `json:"is_blocked"`
	IsDeleted  bool `json:"is_deleted"`
	IsApproved bool `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
