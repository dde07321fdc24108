package model

import (
	"time"

	"github.com/google/uuid"
)

// BuyerModel mirrors the 'buyers' table. AccountID is unique so an account
// carries at most one buyer profile.
type BuyerModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID     `gorm:"type:uuid;unique;not null"`
	Account   *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`

	IsPremiumCustomer      bool `gorm:"not null;default:false"`
	PremiumCustomerExpiry  *time.Time
	PreferredPaymentMethod string `gorm:"type:varchar(30)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerModel) TableName() string {
	return "buyers"
}

// SellerModel mirrors the 'sellers' table. AccountID is unique so an account
// carries at most one seller profile.
type SellerModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AccountID uuid.UUID     `gorm:"type:uuid;unique;not null"`
	Account   *AccountModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Shop      *ShopModel    `gorm:"foreignKey:SellerID"`

	IsFreePlan           bool `gorm:"not null;default:true"`
	IsPremiumPlan        bool `gorm:"not null;default:false"`
	PremiumPlanExpiry    *time.Time
	PremiumPlanImagePath string `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
