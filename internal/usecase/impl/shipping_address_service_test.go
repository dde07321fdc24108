package impl

import (
	"context"
	"testing"

	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shippingAddressServiceFixtures struct {
	service usecase.ShippingAddressUsecase
	store   *fakeStore
}

func createTestShippingAddressService(t *testing.T) shippingAddressServiceFixtures {
	t.Helper()

	store := newFakeStore()
	service := NewShippingAddressService(ShippingAddressServiceParams{
		TxManager:   &fakeTxManager{store: store},
		BuyerRepo:   &fakeBuyerRepo{store: store},
		AddressRepo: &fakeShippingAddressRepo{store: store},
		Logger:      newTestLogger(),
	})

	return shippingAddressServiceFixtures{service: service, store: store}
}

// countDefaults reports how many of the buyer's addresses carry the flag.
func countDefaultAddresses(store *fakeStore, buyerID uuid.UUID) int {
	n := 0
	for _, address := range store.addresses {
		if address.BuyerID == buyerID && address.IsDefault {
			n++
		}
	}

	return n
}

func TestShippingAddressService_CreateAndList(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	first, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)
	assert.False(t, first.IsDefault)

	second, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1:     "456 Rizal Ave",
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	addresses, err := f.service.ListAddresses(ctx, buyer.AccountID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, second.ID, addresses[0].ID, "default sorts first")
	assert.Equal(t, 1, countDefaultAddresses(f.store, buyer.ID))
}

func TestShippingAddressService_SetDefault_MovesFlag(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	first, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1:     "123 Mabini St",
		SetAsDefault: true,
	})
	require.NoError(t, err)
	second, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{Address1: "456 Rizal Ave"})
	require.NoError(t, err)

	require.NoError(t, f.service.SetDefaultAddress(ctx, buyer.AccountID, second.ID))

	assert.False(t, f.store.addresses[first.ID].IsDefault)
	assert.True(t, f.store.addresses[second.ID].IsDefault)
	assert.Equal(t, 1, countDefaultAddresses(f.store, buyer.ID))

	got, err := f.service.GetDefaultAddress(ctx, buyer.AccountID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestShippingAddressService_SetDefault_SameAddressTwice(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	address, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)

	require.NoError(t, f.service.SetDefaultAddress(ctx, buyer.AccountID, address.ID))
	require.NoError(t, f.service.SetDefaultAddress(ctx, buyer.AccountID, address.ID))

	assert.Equal(t, 1, countDefaultAddresses(f.store, buyer.ID))
}

func TestShippingAddressService_CreateDefault_EmptyBookLocksBuyer(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	// An empty book has no rows to lock, so the create must anchor its
	// default switch on the buyer row instead.
	first, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1:     "123 Mabini St",
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.buyerLocks, "first default create locks the buyer row")

	second, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1:     "456 Rizal Ave",
		SetAsDefault: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, f.store.buyerLocks)

	assert.False(t, f.store.addresses[first.ID].IsDefault)
	assert.True(t, f.store.addresses[second.ID].IsDefault)
	assert.Equal(t, 1, countDefaultAddresses(f.store, buyer.ID))
}

func TestShippingAddressService_SetDefault_ForeignAddress(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	owner := seedBuyer(f.store, "09171234567")
	intruder := seedBuyer(f.store, "09179999999")

	address, err := f.service.CreateAddress(ctx, owner.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)

	err = f.service.SetDefaultAddress(ctx, intruder.AccountID, address.ID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound, "foreign addresses look like they do not exist")
	assert.False(t, f.store.addresses[address.ID].IsDefault)
}

func TestShippingAddressService_GetDefault_NoneSet(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	_, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)

	_, err = f.service.GetDefaultAddress(ctx, buyer.AccountID)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestShippingAddressService_DeleteDefault_NoSuccessor(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	kept, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)
	deleted, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1:     "456 Rizal Ave",
		SetAsDefault: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteAddress(ctx, buyer.AccountID, deleted.ID))

	assert.Equal(t, 0, countDefaultAddresses(f.store, buyer.ID), "no successor is elected")
	assert.Contains(t, f.store.addresses, kept.ID)
}

func TestShippingAddressService_UpdateAddress_PartialMerge(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	buyer := seedBuyer(f.store, "09171234567")

	created, err := f.service.CreateAddress(ctx, buyer.AccountID, &usecase.ShippingAddressInput{
		Address1: "123 Mabini St",
		ZipCode:  "1000",
	})
	require.NoError(t, err)

	newLine := "124 Mabini St"
	updated, err := f.service.UpdateAddress(ctx, buyer.AccountID, created.ID, &usecase.UpdateShippingAddressInput{
		Address1: &newLine,
	})
	require.NoError(t, err)

	assert.Equal(t, "124 Mabini St", updated.Address1)
	assert.Equal(t, "1000", updated.ZipCode, "untouched fields keep their value")
}

func TestShippingAddressService_UpdateAddress_Foreign(t *testing.T) {
	f := createTestShippingAddressService(t)
	ctx := context.Background()
	owner := seedBuyer(f.store, "09171234567")
	intruder := seedBuyer(f.store, "09179999999")

	address, err := f.service.CreateAddress(ctx, owner.AccountID, &usecase.ShippingAddressInput{Address1: "123 Mabini St"})
	require.NoError(t, err)

	line := "hijacked"
	_, err = f.service.UpdateAddress(ctx, intruder.AccountID, address.ID, &usecase.UpdateShippingAddressInput{Address1: &line})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.Equal(t, "123 Mabini St", f.store.addresses[address.ID].Address1)
}

func TestShippingAddressService_NoBuyerProfile(t *testing.T) {
	f := createTestShippingAddressService(t)

	_, err := f.service.ListAddresses(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)
}
