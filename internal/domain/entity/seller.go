package entity

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the seller role profile. It owns exactly one Account and may hold
// at most one Shop (provisioned separately or together with registration).
type Seller struct {
	ID                   uuid.UUID  `json:"id"`
	AccountID            uuid.UUID  `json:"account_id"`
	Account              *Account   `json:"account,omitempty"`
	Shop                 *Shop      `json:"shop,omitempty"`
	IsFreePlan           bool       `json:"is_free_plan"`
	IsPremiumPlan        bool       `json:"is_premium_plan"`
	PremiumPlanExpiry    *time.Time `json:"premium_plan_expiry,omitempty"`
	PremiumPlanImagePath string     `json:"premium_plan_image_path,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}
