// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AccountInput holds the identity fields shared by both registration flows.
type AccountInput struct {
	MobileNo    string     `json:"mobile_no" validate:"required"`
	Password    string     `json:"password" validate:"required"`
	FirstName   string     `json:"first_name" validate:"required"`
	LastName    string     `json:"last_name" validate:"required"`
	MiddleName  string     `json:"middle_name"`
	Email       string     `json:"email" validate:"omitempty,email"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Sex         entity.Sex `json:"sex"`

	Address1   string     `json:"address1"`
	Address2   string     `json:"address2"`
	BarangayID *uuid.UUID `json:"barangay_id"`
	CityID     *uuid.UUID `json:"city_id"`
	ProvinceID *uuid.UUID `json:"province_id"`
	RegionID   *uuid.UUID `json:"region_id"`
	CountryID  *uuid.UUID `json:"country_id"`
	ZipCode    string     `json:"zip_code"`
}

// RegisterBuyerInput defines the data required to register a buyer account.
type RegisterBuyerInput struct {
	Account                AccountInput             `json:"account"`
	PreferredPaymentMethod entity.PaymentMethodKind `json:"preferred_payment_method"`
}

// ShopInput defines the optional shop created together with a seller.
type ShopInput struct {
	Type      entity.ShopType `json:"shop_type" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	ShortName string          `json:"short_name"`

	Address1   string     `json:"address1"`
	Address2   string     `json:"address2"`
	BarangayID *uuid.UUID `json:"barangay_id"`
	CityID     *uuid.UUID `json:"city_id"`
	ProvinceID *uuid.UUID `json:"province_id"`
	RegionID   *uuid.UUID `json:"region_id"`
	CountryID  *uuid.UUID `json:"country_id"`
	ZipCode    string     `json:"zip_code"`

	ContactNumber       string `json:"contact_number"`
	ContactPerson       string `json:"contact_person"`
	ContactPersonNumber string `json:"contact_person_number"`
	Email               string `json:"email" validate:"omitempty,email"`
	Website             string `json:"website"`
	Facebook            string `json:"facebook"`
	Instagram           string `json:"instagram"`
	Youtube             string `json:"youtube"`
	Tiktok              string `json:"tiktok"`

	BankName          string `json:"bank_name"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`

	Geolocation   string   `json:"geolocation"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	GoogleMapsURL string   `json:"google_maps_url"`

	BusinessPermitNumber string     `json:"business_permit_number"`
	BusinessPermitExpiry *time.Time `json:"business_permit_expiry"`
	DTIPermitNumber      string     `json:"dti_permit_number"`
	DTIPermitExpiry      *time.Time `json:"dti_permit_expiry"`
	IsPhilgepsRegistered bool       `json:"is_philgeps_registered"`
	PhilgepsPermitNumber string     `json:"philgeps_permit_number"`
	PhilgepsPermitExpiry *time.Time `json:"philgeps_permit_expiry"`
}

// RegisterSellerInput defines the data required to register a seller account.
// The shop is optional; when present it is created in the same transaction.
type RegisterSellerInput struct {
	Account AccountInput `json:"account"`
	Shop    *ShopInput   `json:"shop,omitempty"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	MobileNo string `json:"mobile_no" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to change a password.
// The current password must verify before the new one is accepted.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// --- Output DTOs ---

// RegisterBuyerOutput returns the newly created buyer with its account.
type RegisterBuyerOutput struct {
	Buyer *entity.Buyer
}

// RegisterSellerOutput returns the newly created seller with its account and
// shop when one was provisioned.
type RegisterSellerOutput struct {
	Seller *entity.Seller
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AuthUsecase defines the interface for registration and authentication.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*RegisterBuyerOutput, error)
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*RegisterSellerOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, accountID uuid.UUID, input *ChangePasswordInput) error
}
