package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethodKind enumerates supported payment rails.
type PaymentMethodKind string

const (
	// PaymentGcash is a GCash wallet.
	PaymentGcash PaymentMethodKind = "gcash"
	// PaymentPaymaya is a PayMaya wallet.
	PaymentPaymaya PaymentMethodKind = "paymaya"
	// PaymentBankCard is a credit or debit card.
	PaymentBankCard PaymentMethodKind = "bank_card"
	// PaymentCashOnDelivery is cash on delivery.
	PaymentCashOnDelivery PaymentMethodKind = "cash_on_delivery"
)

// IsValid checks if the PaymentMethodKind is a valid value.
func (k PaymentMethodKind) IsValid() bool {
	switch k {
	case PaymentGcash, PaymentPaymaya, PaymentBankCard, PaymentCashOnDelivery:
		return true
	default:
		return false
	}
}

// BankCardType enumerates accepted card networks.
type BankCardType string

const (
	// CardVisa is a Visa card.
	CardVisa BankCardType = "visa"
	// CardMastercard is a Mastercard.
	CardMastercard BankCardType = "mastercard"
	// CardAmericanExpress is an American Express card.
	CardAmericanExpress BankCardType = "american_express"
)

// IsValid checks if the BankCardType is a valid value.
func (t BankCardType) IsValid() bool {
	switch t {
	case CardVisa, CardMastercard, CardAmericanExpress:
		return true
	default:
		return false
	}
}

// BankCard holds card details. Populated only when the owning payment
// method's Kind is PaymentBankCard.
type BankCard struct {
	Type     BankCardType `json:"type,omitempty"`
	Brand    string       `json:"brand,omitempty"`
	Last4    string       `json:"last4,omitempty"`
	ExpMonth string       `json:"exp_month,omitempty"`
	ExpYear  string       `json:"exp_year,omitempty"`
	Name     string       `json:"name,omitempty"`
}

// PaymentMethod is one saved payment option belonging to a buyer. At most one
// of a buyer's payment methods carries IsDefault=true.
type PaymentMethod struct {
	ID        uuid.UUID         `json:"id"`
	BuyerID   uuid.UUID         `json:"buyer_id"`
	Kind      PaymentMethodKind `json:"kind"`
	BankCard  BankCard          `json:"bank_card,omitempty"`
	IsDefault bool              `json:"is_default"`

	IsActive   bool `json:"is_active"`
	IsVerified bool `json:"is_verified"`
	IsDeleted  bool `json:"is_deleted"`
	IsApproved bool `json:"is_approved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
