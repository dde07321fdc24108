package model

import (
	"time"

	"github.com/google/uuid"
)

// The five geography tables form a strict tree. Parent references carry FK
// constraints with RESTRICT so a parent cannot vanish under its children;
// cascading deletes are issued explicitly by the repository, deepest level
// first, inside the caller's transaction.

// CountryModel mirrors the 'countries' table.
type CountryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);not null;index"`
	Code      string    `gorm:"type:varchar(10)"`
	IsDefault bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// RegionModel mirrors the 'regions' table.
type RegionModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CountryID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Country   *CountryModel `gorm:"foreignKey:CountryID;constraint:OnDelete:RESTRICT"`
	Name      string        `gorm:"type:varchar(100);not null;index"`
	FullName  string        `gorm:"type:varchar(255)"`
	IsDefault bool          `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}

// ProvinceModel mirrors the 'provinces' table.
type ProvinceModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RegionID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Region    *RegionModel `gorm:"foreignKey:RegionID;constraint:OnDelete:RESTRICT"`
	Name      string       `gorm:"type:varchar(100);not null;index"`
	FullName  string       `gorm:"type:varchar(255)"`
	IsDefault bool         `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProvinceModel) TableName() string {
	return "provinces"
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProvinceID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Province   *ProvinceModel `gorm:"foreignKey:ProvinceID;constraint:OnDelete:RESTRICT"`
	Name       string         `gorm:"type:varchar(100);not null;index"`
	FullName   string         `gorm:"type:varchar(255)"`
	IsDefault  bool           `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// BarangayModel mirrors the 'barangays' table.
type BarangayModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CityID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	City      *CityModel `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	Name      string     `gorm:"type:varchar(100);not null;index"`
	FullName  string     `gorm:"type:varchar(255)"`
	IsDefault bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BarangayModel) TableName() string {
	return "barangays"
}
