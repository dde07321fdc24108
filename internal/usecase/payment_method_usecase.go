package usecase

import (
	"context"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentMethodUsecase manages the authenticated buyer's saved payment
// methods. It mirrors ShippingAddressUsecase, including the atomic default
// switch.
type PaymentMethodUsecase interface {
	ListPaymentMethods(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error)
	GetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID) (*entity.PaymentMethod, error)
	CreatePaymentMethod(ctx context.Context, accountID uuid.UUID, input *PaymentMethodInput) (*entity.PaymentMethod, error)
	DeletePaymentMethod(ctx context.Context, accountID uuid.UUID, methodID uuid.UUID) error
	SetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID, methodID uuid.UUID) error
}

// BankCardInput defines the card details required for the bank_card kind.
type BankCardInput struct {
	Type     entity.BankCardType `json:"type" validate:"required"`
	Brand    string              `json:"brand"`
	Last4    string              `json:"last4" validate:"required,len=4"`
	ExpMonth string              `json:"exp_month" validate:"required"`
	ExpYear  string              `json:"exp_year" validate:"required"`
	Name     string              `json:"name" validate:"required"`
}

// PaymentMethodInput defines the data for a new payment method. BankCard must
// be present exactly when Kind is bank_card.
type PaymentMethodInput struct {
	Kind         entity.PaymentMethodKind `json:"kind" validate:"required"`
	BankCard     *BankCardInput           `json:"bank_card,omitempty"`
	SetAsDefault bool                     `json:"set_as_default"`
}
