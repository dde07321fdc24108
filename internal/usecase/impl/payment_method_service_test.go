package impl

import (
	"context"
	"testing"

	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentMethodServiceFixtures struct {
	service usecase.PaymentMethodUsecase
	store   *fakeStore
}

func createTestPaymentMethodService(t *testing.T) paymentMethodServiceFixtures {
	t.Helper()

	store := newFakeStore()
	service := NewPaymentMethodService(PaymentMethodServiceParams{
		TxManager:  &fakeTxManager{store: store},
		BuyerRepo:  &fakeBuyerRepo{store: store},
		MethodRepo: &fakePaymentMethodRepo{store: store},
		Logger:     newTestLogger(),
	})

	return paymentMethodServiceFixtures{service: service, store: store}
}

func countDefaultMethods(store *fakeStore, buyerID uuid.UUID) int {
	n := 0
	for _, method := range store.methods {
		if method.BuyerID == buyerID && method.IsDefault {
			n++
		}
	}

	return n
}

func TestPaymentMethodService_CreateWallet(t *testing.T) {
	f := createTestPaymentMethodService(t)
	buyer := seedBuyer(f.store, "09171234567")

	method, err := f.service.CreatePaymentMethod(context.Background(), buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentGcash,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentGcash, method.Kind)
	assert.False(t, method.IsDefault)
}

func TestPaymentMethodService_CreateBankCard(t *testing.T) {
	f := createTestPaymentMethodService(t)
	buyer := seedBuyer(f.store, "09171234567")

	method, err := f.service.CreatePaymentMethod(context.Background(), buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentBankCard,
		BankCard: &usecase.BankCardInput{
			Type:     entity.CardVisa,
			Last4:    "4242",
			ExpMonth: "12",
			ExpYear:  "2030",
			Name:     "JUAN DELA CRUZ",
		},
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CardVisa, method.BankCard.Type)
	assert.Equal(t, "4242", method.BankCard.Last4)
	assert.True(t, method.IsDefault)
}

func TestPaymentMethodService_BankCardDetailsRequired(t *testing.T) {
	f := createTestPaymentMethodService(t)
	buyer := seedBuyer(f.store, "09171234567")

	_, err := f.service.CreatePaymentMethod(context.Background(), buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentBankCard,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, f.store.methods)
}

func TestPaymentMethodService_BankCardDetailsRejectedForWallet(t *testing.T) {
	f := createTestPaymentMethodService(t)
	buyer := seedBuyer(f.store, "09171234567")

	_, err := f.service.CreatePaymentMethod(context.Background(), buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentPaymaya,
		BankCard: &usecase.BankCardInput{
			Type:  entity.CardMastercard,
			Last4: "4242",
		},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentMethodService_UnknownKind(t *testing.T) {
	f := createTestPaymentMethodService(t)
	buyer := seedBuyer(f.store, "09171234567")

	_, err := f.service.CreatePaymentMethod(context.Background(), buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentMethodKind("barter"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentMethodService_SetDefault_MovesFlag(t *testing.T) {
	f := createTestPaymentMethodService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	first, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentGcash,
		SetAsDefault: true,
	})
	require.NoError(t, err)
	second, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{
		Kind: entity.PaymentCashOnDelivery,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.SetDefaultPaymentMethod(ctx, buyer.AccountID, second.ID))

	assert.False(t, f.store.methods[first.ID].IsDefault)
	assert.True(t, f.store.methods[second.ID].IsDefault)
	assert.Equal(t, 1, countDefaultMethods(f.store, buyer.ID))

	got, err := f.service.GetDefaultPaymentMethod(ctx, buyer.AccountID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestPaymentMethodService_CreateDefault_EmptyWalletLocksBuyer(t *testing.T) {
	f := createTestPaymentMethodService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	// With no stored methods there are no rows to lock, so the create
	// anchors its default switch on the buyer row.
	first, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentGcash,
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.buyerLocks, "first default create locks the buyer row")

	second, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentPaymaya,
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.buyerLocks)

	assert.False(t, f.store.methods[first.ID].IsDefault)
	assert.True(t, f.store.methods[second.ID].IsDefault)
	assert.Equal(t, 1, countDefaultMethods(f.store, buyer.ID))
}

func TestPaymentMethodService_SetDefault_Foreign(t *testing.T) {
	f := createTestPaymentMethodService(t)
	ctx := context.Background()
	owner := seedBuyer(f.store, "09171234567")
	intruder := seedBuyer(f.store, "09179999999")

	method, err := f.service.CreatePaymentMethod(ctx, owner.AccountID, &usecase.PaymentMethodInput{Kind: entity.PaymentGcash})
	require.NoError(t, err)

	err = f.service.SetDefaultPaymentMethod(ctx, intruder.AccountID, method.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentMethodNotFound)
	assert.False(t, f.store.methods[method.ID].IsDefault)
}

func TestPaymentMethodService_DefaultsAreIndependentPerBuyer(t *testing.T) {
	f := createTestPaymentMethodService(t)
	ctx := context.Background()
	alpha := seedBuyer(f.store, "09171234567")
	bravo := seedBuyer(f.store, "09179999999")

	_, err := f.service.CreatePaymentMethod(ctx, alpha.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentGcash,
		SetAsDefault: true,
	})
	require.NoError(t, err)
	_, err = f.service.CreatePaymentMethod(ctx, bravo.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentPaymaya,
		SetAsDefault: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countDefaultMethods(f.store, alpha.ID))
	assert.Equal(t, 1, countDefaultMethods(f.store, bravo.ID))
}

func TestPaymentMethodService_DeleteDefault_NoSuccessor(t *testing.T) {
	f := createTestPaymentMethodService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	kept, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{Kind: entity.PaymentCashOnDelivery})
	require.NoError(t, err)
	deleted, err := f.service.CreatePaymentMethod(ctx, buyer.AccountID, &usecase.PaymentMethodInput{
		Kind:         entity.PaymentGcash,
		SetAsDefault: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeletePaymentMethod(ctx, buyer.AccountID, deleted.ID))

	assert.Equal(t, 0, countDefaultMethods(f.store, buyer.ID))
	assert.Contains(t, f.store.methods, kept.ID)
}
