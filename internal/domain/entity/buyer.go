package entity

import (
	"time"

	"github.com/google/uuid"
)

// Buyer is the buyer role profile. It owns exactly one Account.
type Buyer struct {
	ID                     uuid.UUID         `json:"id"`
	AccountID              uuid.UUID         `json:"account_id"`
	Account                *Account          `json:"account,omitempty"`
	IsPremiumCustomer      bool              `json:"is_premium_customer"`
	PremiumCustomerExpiry  *time.Time        `json:"premium_customer_expiry,omitempty"`
	PreferredPaymentMethod PaymentMethodKind `json:"preferred_payment_method"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
}
