package impl

import (
	"context"
	"testing"

	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service usecase.AuthUsecase
	store   *fakeStore
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	store := newFakeStore()
	service := NewAuthService(AuthServiceParams{
		TxManager:    &fakeTxManager{store: store},
		AccountRepo:  &fakeAccountRepo{store: store},
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		Logger:       newTestLogger(),
	})

	return authServiceFixtures{service: service, store: store}
}

func buyerRegistration(mobileNo string) *usecase.RegisterBuyerInput {
	return &usecase.RegisterBuyerInput{
		Account: usecase.AccountInput{
			MobileNo:  mobileNo,
			Password:  "correct horse battery",
			FirstName: "Maria",
			LastName:  "Santos",
			Sex:       entity.SexFemale,
		},
		PreferredPaymentMethod: entity.PaymentGcash,
	}
}

func TestAuthService_RegisterBuyer(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	out, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)
	require.NotNil(t, out.Buyer)

	assert.NotEqual(t, out.Buyer.ID, out.Buyer.AccountID)
	assert.Equal(t, entity.PaymentGcash, out.Buyer.PreferredPaymentMethod)

	require.NotNil(t, out.Buyer.Account)
	account := out.Buyer.Account
	assert.Equal(t, "09171234567", account.MobileNo)
	assert.Equal(t, entity.RoleBuyer, account.Role)
	assert.True(t, account.IsActive)
	assert.NotEqual(t, "correct horse battery", account.PasswordHash, "plaintext must never be stored")
}

func TestAuthService_RegisterBuyer_MobileFormat(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	badNumbers := map[string]string{
		"too short":       "9171234567",
		"too long":        "091712345678",
		"non-numeric":     "0917abc4567",
		"no leading zero": "19171234567",
	}
	for name, mobileNo := range badNumbers {
		t.Run(name, func(t *testing.T) {
			_, err := f.service.RegisterBuyer(ctx, buyerRegistration(mobileNo))
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidMobileNumber)
			assert.Empty(t, f.store.accounts, "rejected registration must not persist anything")
		})
	}
}

func TestAuthService_RegisterBuyer_DuplicateMobile(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	_, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)

	_, err = f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMobileAlreadyRegistered)
	assert.Len(t, f.store.accounts, 1)
	assert.Len(t, f.store.buyers, 1)
}

func TestAuthService_RegisterBuyer_WeakPassword(t *testing.T) {
	f := createTestAuthService(t)

	input := buyerRegistration("09171234567")
	input.Account.Password = "short"

	_, err := f.service.RegisterBuyer(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Empty(t, f.store.accounts)
}

func sellerRegistration(mobileNo string, withShop bool) *usecase.RegisterSellerInput {
	input := &usecase.RegisterSellerInput{
		Account: usecase.AccountInput{
			MobileNo:  mobileNo,
			Password:  "correct horse battery",
			FirstName: "Jose",
			LastName:  "Cruz",
			Sex:       entity.SexMale,
		},
	}
	if withShop {
		input.Shop = &usecase.ShopInput{
			Type: entity.ShopTypeWater,
			Name: "Tubig Station",
		}
	}

	return input
}

func TestAuthService_RegisterSeller_WithShop(t *testing.T) {
	f := createTestAuthService(t)

	out, err := f.service.RegisterSeller(context.Background(), sellerRegistration("09181234567", true))
	require.NoError(t, err)
	require.NotNil(t, out.Seller)

	assert.True(t, out.Seller.IsFreePlan)
	require.NotNil(t, out.Seller.Account)
	assert.Equal(t, entity.RoleSeller, out.Seller.Account.Role)

	require.NotNil(t, out.Seller.Shop)
	assert.Equal(t, out.Seller.ID, out.Seller.Shop.SellerID)
	assert.Equal(t, entity.ShopTypeWater, out.Seller.Shop.Type)
	assert.Equal(t, "Tubig Station", out.Seller.Shop.Name)
}

func TestAuthService_RegisterSeller_WithoutShop(t *testing.T) {
	f := createTestAuthService(t)

	out, err := f.service.RegisterSeller(context.Background(), sellerRegistration("09181234567", false))
	require.NoError(t, err)
	assert.Nil(t, out.Seller.Shop)
	assert.Empty(t, f.store.shops)
}

func TestAuthService_RegisterSeller_ShopFailureRollsBackAccount(t *testing.T) {
	f := createTestAuthService(t)
	f.store.failShopCreate = true

	_, err := f.service.RegisterSeller(context.Background(), sellerRegistration("09181234567", true))
	require.Error(t, err)

	// The whole aggregate is one transaction; a failed shop insert must not
	// leave a half-registered seller behind.
	assert.Empty(t, f.store.accounts)
	assert.Empty(t, f.store.sellers)
	assert.Empty(t, f.store.shops)
}

func TestAuthService_Login(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	_, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)

	out, err := f.service.Login(ctx, &usecase.LoginInput{
		MobileNo: "09171234567",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	require.NotNil(t, out.Account)
	assert.Equal(t, "09171234567", out.Account.MobileNo)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	_, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)

	_, err = f.service.Login(ctx, &usecase.LoginInput{
		MobileNo: "09171234567",
		Password: "not the password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownMobile(t *testing.T) {
	f := createTestAuthService(t)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{
		MobileNo: "09170000000",
		Password: "whatever you like",
	})

	// An unregistered number must be indistinguishable from a bad password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_BlockedAccount(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	out, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)

	f.store.accounts[out.Buyer.AccountID].IsBlocked = true

	_, err = f.service.Login(ctx, &usecase.LoginInput{
		MobileNo: "09171234567",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAccountInactive)
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	out, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)
	accountID := out.Buyer.AccountID

	err = f.service.ChangePassword(ctx, accountID, &usecase.ChangePasswordInput{
		CurrentPassword: "correct horse battery",
		NewPassword:     "an even longer phrase",
	})
	require.NoError(t, err)

	_, err = f.service.Login(ctx, &usecase.LoginInput{
		MobileNo: "09171234567",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "old password must stop working")

	_, err = f.service.Login(ctx, &usecase.LoginInput{
		MobileNo: "09171234567",
		Password: "an even longer phrase",
	})
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	f := createTestAuthService(t)
	ctx := context.Background()

	out, err := f.service.RegisterBuyer(ctx, buyerRegistration("09171234567"))
	require.NoError(t, err)

	err = f.service.ChangePassword(ctx, out.Buyer.AccountID, &usecase.ChangePasswordInput{
		CurrentPassword: "not the password",
		NewPassword:     "an even longer phrase",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
