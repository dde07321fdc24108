// Package model holds the GORM persistence structs. They mirror the database
// tables and are mapped to and from the pure domain entities inside the
// postgres package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// gen_random_uuid(). The mobile number is the unique login credential.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MobileNo     string    `gorm:"type:varchar(11);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	MiddleName   string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255)"`
	DateOfBirth  *time.Time
	Sex          string `gorm:"type:varchar(10)"`
	Role         string `gorm:"type:varchar(20);not null;index"`

	Address1   string     `gorm:"type:varchar(255)"`
	Address2   string     `gorm:"type:varchar(255)"`
	BarangayID *uuid.UUID `gorm:"type:uuid"`
	CityID     *uuid.UUID `gorm:"type:uuid"`
	ProvinceID *uuid.UUID `gorm:"type:uuid"`
	RegionID   *uuid.UUID `gorm:"type:uuid"`
	CountryID  *uuid.UUID `gorm:"type:uuid"`
	ZipCode    string     `gorm:"type:varchar(20)"`

	PicturePath string `gorm:"type:varchar(255)"`

	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`
	IsBlocked  bool `gorm:"not null;default:false"`
	IsDeleted  bool `gorm:"not null;default:false"`
	IsApproved bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
