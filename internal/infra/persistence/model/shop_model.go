package model

import (
	"time"

	"github.com/google/uuid"
)

// ShopModel mirrors the 'shops' table. SellerID is unique so a seller owns at
// most one shop. Permit records are flattened into prefixed columns.
type ShopModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SellerID uuid.UUID `gorm:"type:uuid;unique;not null"`
	ShopType string    `gorm:"type:varchar(20);not null;index"`

	Name      string `gorm:"type:varchar(255);not null"`
	ShortName string `gorm:"type:varchar(100)"`

	Address1   string     `gorm:"type:varchar(255)"`
	Address2   string     `gorm:"type:varchar(255)"`
	BarangayID *uuid.UUID `gorm:"type:uuid"`
	CityID     *uuid.UUID `gorm:"type:uuid"`
	ProvinceID *uuid.UUID `gorm:"type:uuid"`
	RegionID   *uuid.UUID `gorm:"type:uuid"`
	CountryID  *uuid.UUID `gorm:"type:uuid"`
	ZipCode    string     `gorm:"type:varchar(20)"`

	ContactNumber       string `gorm:"type:varchar(30)"`
	ContactPerson       string `gorm:"type:varchar(100)"`
	ContactPersonNumber string `gorm:"type:varchar(30)"`
	Email               string `gorm:"type:varchar(255)"`
	Website             string `gorm:"type:varchar(255)"`
	Facebook            string `gorm:"type:varchar(255)"`
	Instagram           string `gorm:"type:varchar(255)"`
	Youtube             string `gorm:"type:varchar(255)"`
	Tiktok              string `gorm:"type:varchar(255)"`

	BankName          string `gorm:"type:varchar(100)"`
	BankAccountNumber string `gorm:"type:varchar(50)"`
	BankAccountName   string `gorm:"type:varchar(100)"`

	Geolocation     string `gorm:"type:varchar(255)"`
	Latitude        *float64
	Longitude       *float64
	GoogleMapsURL   string `gorm:"type:varchar(500)"`
	GoogleMapsImage string `gorm:"type:varchar(255)"`

	Picture1 string `gorm:"type:varchar(255)"`
	Picture2 string `gorm:"type:varchar(255)"`
	Picture3 string `gorm:"type:varchar(255)"`

	BusinessPermitNumber string `gorm:"type:varchar(100)"`
	BusinessPermitExpiry *time.Time
	BusinessPermitImage  string `gorm:"type:varchar(255)"`

	DTIPermitNumber string `gorm:"type:varchar(100)"`
	DTIPermitExpiry *time.Time
	DTIPermitImage  string `gorm:"type:varchar(255)"`

	IsPhilgepsRegistered bool   `gorm:"not null;default:false"`
	PhilgepsPermitNumber string `gorm:"type:varchar(100)"`
	PhilgepsPermitExpiry *time.Time
	PhilgepsPermitImage  string `gorm:"type:varchar(255)"`

	IsFeatured bool `gorm:"not null;default:false"`
	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`
	IsBlocked  bool `gorm:"not null;default:false"`
	IsDeleted  bool `gorm:"not null;default:false"`
	IsApproved bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
