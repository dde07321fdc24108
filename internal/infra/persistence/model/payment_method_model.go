package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodModel mirrors the 'payment_methods' table. Card details are
// flattened into prefixed columns and populated only for the bank_card kind.
type PaymentMethodModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BuyerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind    string    `gorm:"type:varchar(30);not null"`

	CardType     string `gorm:"type:varchar(30)"`
	CardBrand    string `gorm:"type:varchar(50)"`
	CardLast4    string `gorm:"type:varchar(4)"`
	CardExpMonth string `gorm:"type:varchar(2)"`
	CardExpYear  string `gorm:"type:varchar(4)"`
	CardName     string `gorm:"type:varchar(100)"`

	IsDefault bool `gorm:"not null;default:false"`

	IsActive   bool `gorm:"not null;default:true"`
	IsVerified bool `gorm:"not null;default:false"`
	IsDeleted  bool `gorm:"not null;default:false"`
	IsApproved bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentMethodModel) TableName() string {
	return "payment_methods"
}
