package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the core identity in the system, keyed by mobile number.
// It holds the credential hash, personal attributes and optional references
// into the geographic hierarchy. Role-specific data lives on the Buyer or
// Seller profile that owns this account 1:1.
type Account struct {
	ID           uuid.UUID `json:"id"`
	MobileNo     string    `json:"mobile_no"` // Unique login credential: 11 digits, leading zero.
	PasswordHash string    `json:"-"`         // Never serialized; only the derived hash is stored.
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	MiddleName   string    `json:"middle_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Sex          Sex        `json:"sex"`
	Role         Role       `json:"role"`

	// Free-text address lines plus independently-nullable references into the
	// location tree. The references are not required to be mutually consistent.
	Address1   string     `json:"address1,omitempty"`
	Address2   string     `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    string     `json:"zip_code,omitempty"`

	PicturePath string `json:"picture_path,omitempty"`

	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`
	IsBlocked  bool `json:"is_blocked"`
	IsDeleted  bool `json:"is_deleted"`
	IsApproved bool `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FullName joins the first and last name for display.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// CanAuthenticate reports whether the account is allowed to log in.
// Blocked, soft-deleted and deactivated accounts are all rejected.
func (a *Account) CanAuthenticate() bool {
	return a.IsActive && !a.IsBlocked && !a.IsDeleted
}
