package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressModel mirrors the 'shipping_addresses' table. The buyer
// reference is indexed because every query is scoped to one buyer.
type ShippingAddressModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuyerID uuid.UUID `gorm:"type:uuid;not null;index"`

	Address1   string     `gorm:"type:varchar(255)"`
	Address2   string     `gorm:"type:varchar(255)"`
	BarangayID *uuid.UUID `gorm:"type:uuid"`
	CityID     *uuid.UUID `gorm:"type:uuid"`
	ProvinceID *uuid.UUID `gorm:"type:uuid"`
	RegionID   *uuid.UUID `gorm:"type:uuid"`
	CountryID  *uuid.UUID `gorm:"type:uuid"`
	ZipCode    string     `gorm:"type:varchar(20)"`

	Geolocation   string `gorm:"type:varchar(255)"`
	Latitude      *float64
	Longitude     *float64
	GoogleMapsURL string `gorm:"type:varchar(500)"`

	IsDefault bool `gorm:"not null;default:false"`

	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`
	IsDeleted  bool `gorm:"not null;default:false"`
	IsApproved bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShippingAddressModel) TableName() string {
	return "shipping_addresses"
}
