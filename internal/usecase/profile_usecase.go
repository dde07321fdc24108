package usecase

import (
	"context"
	"time"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetBuyerProfile(ctx context.Context, accountID uuid.UUID) (*entity.Buyer, error)
	GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.Seller, error)
	UpdateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *UpdateBuyerProfileInput) (*entity.Buyer, error)
	UpdateSellerProfile(ctx context.Context, accountID uuid.UUID, input *UpdateSellerProfileInput) (*entity.Seller, error)
	DeleteAccount(ctx context.Context, accountID uuid.UUID) error

	// UploadProfilePicture stores the picture bytes and persists the
	// resulting path on the account. Returns the stored path.
	UploadProfilePicture(ctx context.Context, accountID uuid.UUID, filename string, content []byte) (string, error)
}

// --- Input DTOs ---

// AccountPatch carries partial account updates. Only non-nil fields are
// applied; everything else keeps its stored value. Password is the lone
// write-only field and is hashed before it reaches the account record.
type AccountPatch struct {
	Password    *string     `json:"password,omitempty"`
	FirstName   *string     `json:"first_name,omitempty"`
	LastName    *string     `json:"last_name,omitempty"`
	MiddleName  *string     `json:"middle_name,omitempty"`
	Email       *string     `json:"email,omitempty" validate:"omitempty,email"`
	DateOfBirth *time.Time  `json:"date_of_birth,omitempty"`
	Sex         *entity.Sex `json:"sex,omitempty"`

	Address1   *string    `json:"address1,omitempty"`
	Address2   *string    `json:"address2,omitempty"`
	BarangayID *uuid.UUID `json:"barangay_id,omitempty"`
	CityID     *uuid.UUID `json:"city_id,omitempty"`
	ProvinceID *uuid.UUID `json:"province_id,omitempty"`
	RegionID   *uuid.UUID `json:"region_id,omitempty"`
	CountryID  *uuid.UUID `json:"country_id,omitempty"`
	ZipCode    *string    `json:"zip_code,omitempty"`

	PicturePath *string `json:"picture_path,omitempty"`
}

// UpdateBuyerProfileInput defines the data for a partial buyer update.
type UpdateBuyerProfileInput struct {
	Account                *AccountPatch             `json:"account,omitempty"`
	PreferredPaymentMethod *entity.PaymentMethodKind `json:"preferred_payment_method,omitempty"`
	IsPremiumCustomer      *bool                     `json:"is_premium_customer,omitempty"`
	PremiumCustomerExpiry  *time.Time                `json:"premium_customer_expiry,omitempty"`
}

// UpdateSellerProfileInput defines the data for a partial seller update.
type UpdateSellerProfileInput struct {
	Account              *AccountPatch `json:"account,omitempty"`
	IsFreePlan           *bool         `json:"is_free_plan,omitempty"`
	IsPremiumPlan        *bool         `json:"is_premium_plan,omitempty"`
	PremiumPlanExpiry    *time.Time    `json:"premium_plan_expiry,omitempty"`
	PremiumPlanImagePath *string       `json:"premium_plan_image_path,omitempty"`
}
