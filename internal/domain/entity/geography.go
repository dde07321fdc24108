package entity

import (
	"time"

	"github.com/google/uuid"
)

// The geographic reference tree is a strict five-level hierarchy:
// Country → Region → Province → City → Barangay. Each non-country node has
// exactly one parent of the level above it. Deleting a node removes all of
// its descendants.

// Country is the root level of the geographic hierarchy.
type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	IsDefault bool      `json:"is_default"` // Pre-selected in UI pickers.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Region is an administrative region within a country.
type Region struct {
	ID        uuid.UUID `json:"id"`
	CountryID uuid.UUID `json:"country_id"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Province is a province within a region.
type Province struct {
	ID        uuid.UUID `json:"id"`
	RegionID  uuid.UUID `json:"region_id"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// City is a city or municipality within a province.
type City struct {
	ID         uuid.UUID `json:"id"`
	ProvinceID uuid.UUID `json:"province_id"`
	Name       string    `json:"name"`
	FullName   string    `json:"full_name,omitempty"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Barangay is the smallest administrative unit, within a city.
type Barangay struct {
	ID        uuid.UUID `json:"id"`
	CityID    uuid.UUID `json:"city_id"`
	Name      string    `json:"name"`
	FullName  string    `json:"full_name,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
