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

type shopServiceFixtures struct {
	service usecase.ShopUsecase
	store   *fakeStore
	files   *fakeFileStore
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	t.Helper()

	store := newFakeStore()
	files := newFakeFileStore()
	service := NewShopService(ShopServiceParams{
		TxManager:  &fakeTxManager{store: store},
		SellerRepo: &fakeSellerRepo{store: store},
		ShopRepo:   &fakeShopRepo{store: store},
		FileStore:  files,
		Logger:     newTestLogger(),
	})

	return shopServiceFixtures{service: service, store: store, files: files}
}

func TestShopService_CreateShop(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	shop, err := f.service.CreateShop(context.Background(), seller.AccountID, &usecase.ShopInput{
		Type: entity.ShopTypeLaundry,
		Name: "Labada Express",
	})
	require.NoError(t, err)
	assert.Equal(t, seller.ID, shop.SellerID)
	assert.Equal(t, entity.ShopTypeLaundry, shop.Type)
	assert.NotEqual(t, uuid.Nil, shop.ID)
}

func TestShopService_CreateShop_AlreadyExists(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{Type: entity.ShopTypeWater, Name: "Tubig Station"})
	require.NoError(t, err)

	_, err = f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{Type: entity.ShopTypeRice, Name: "Bigasan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyExists)
	assert.Len(t, f.store.shops, 1)
}

func TestShopService_CreateShop_InvalidType(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.CreateShop(context.Background(), seller.AccountID, &usecase.ShopInput{
		Type: entity.ShopType("pawnshop"),
		Name: "Sanglaan",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestShopService_GetShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.GetShop(ctx, seller.AccountID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound, "shopless seller reports not found")

	created, err := f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{Type: entity.ShopTypeGroceries, Name: "Sari-Sari Plus"})
	require.NoError(t, err)

	got, err := f.service.GetShop(ctx, seller.AccountID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestShopService_GetShop_SellerNotFound(t *testing.T) {
	f := createTestShopService(t)

	_, err := f.service.GetShop(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrSellerNotFound)
}

func TestShopService_UpdateShop_PartialMerge(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	seller := seedSeller(f.store, "09181234567")

	created, err := f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{
		Type:          entity.ShopTypeWater,
		Name:          "Tubig Station",
		ContactNumber: "09190000000",
	})
	require.NoError(t, err)

	newName := "Tubig Station Main"
	updated, err := f.service.UpdateShop(ctx, seller.AccountID, &usecase.UpdateShopInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Tubig Station Main", updated.Name)
	assert.Equal(t, entity.ShopTypeWater, updated.Type, "untouched fields keep their value")
	assert.Equal(t, "09190000000", updated.ContactNumber)
}

func TestShopService_UpdateShop_NoShop(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	name := "Walang Tindahan"
	_, err := f.service.UpdateShop(context.Background(), seller.AccountID, &usecase.UpdateShopInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_UploadShopPicture(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	seller := seedSeller(f.store, "09181234567")

	created, err := f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{
		Type: entity.ShopTypeLaundry,
		Name: "Labada King",
	})
	require.NoError(t, err)

	updated, err := f.service.UploadShopPicture(ctx, seller.AccountID, 2, "storefront.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	wantPath := "shop_pics/" + created.ID.String() + "/storefront.jpg"
	assert.Equal(t, wantPath, updated.Picture2)
	assert.Empty(t, updated.Picture1)
	assert.Empty(t, updated.Picture3)
	assert.Equal(t, []byte("jpeg bytes"), f.files.stored[wantPath])
}

func TestShopService_UploadShopPicture_InvalidSlot(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.UploadShopPicture(context.Background(), seller.AccountID, 4, "x.jpg", []byte("x"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Empty(t, f.files.stored)
}

func TestShopService_UploadShopPicture_NoShop(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.UploadShopPicture(context.Background(), seller.AccountID, 1, "x.jpg", []byte("x"))
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_DeleteShop(t *testing.T) {
	f := createTestShopService(t)
	ctx := context.Background()
	seller := seedSeller(f.store, "09181234567")

	_, err := f.service.CreateShop(ctx, seller.AccountID, &usecase.ShopInput{
		Type: entity.ShopTypeLaundry,
		Name: "Labada King",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteShop(ctx, seller.AccountID))

	assert.Empty(t, f.store.shops)
	assert.Contains(t, f.store.sellers, seller.ID, "seller profile survives shop deletion")

	_, err = f.service.GetShop(ctx, seller.AccountID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}

func TestShopService_DeleteShop_NoShop(t *testing.T) {
	f := createTestShopService(t)
	seller := seedSeller(f.store, "09181234567")

	err := f.service.DeleteShop(context.Background(), seller.AccountID)
	assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
}
