// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/domain/repository"
	"palengke/internal/domain/service"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterBuyer creates a buyer profile together with its account in one
// transaction. Either both rows land or neither does.
func (srv *authService) RegisterBuyer(ctx context.Context, input *usecase.RegisterBuyerInput) (*usecase.RegisterBuyerOutput, error) {
	srv.log(ctx).Info("Starting buyer registration", slog.String("mobileNo", input.Account.MobileNo))

	account, err := srv.buildAccount(&input.Account, entity.RoleBuyer)
	if err != nil {
		return nil, err
	}

	if input.PreferredPaymentMethod != "" && !input.PreferredPaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown preferred payment method")
	}

	var registered *entity.Buyer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := srv.ensureMobileFree(ctx, accountRepo, account.MobileNo); err != nil {
			return err
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrMobileNoTaken) {
				return domainerrors.ErrMobileAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create account")
		}

		buyer := &entity.Buyer{
			AccountID:              account.ID,
			PreferredPaymentMethod: input.PreferredPaymentMethod,
		}
		if err := repoFactory.BuyerRepo().Create(ctx, buyer); err != nil {
			return errors.Wrap(err, "failed to create buyer profile")
		}

		buyer.Account = account
		registered = buyer

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Buyer registration failed", slog.String("mobileNo", input.Account.MobileNo), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Buyer registration completed", slog.Any("buyerID", registered.ID))

	return &usecase.RegisterBuyerOutput{Buyer: registered}, nil
}

// RegisterSeller creates a seller profile together with its account and, when
// requested, its shop in one transaction. A failure at any step rolls back
// all three rows.
func (srv *authService) RegisterSeller(ctx context.Context, input *usecase.RegisterSellerInput) (*usecase.RegisterSellerOutput, error) {
	srv.log(ctx).Info("Starting seller registration", slog.String("mobileNo", input.Account.MobileNo), slog.Bool("withShop", input.Shop != nil))

	account, err := srv.buildAccount(&input.Account, entity.RoleSeller)
	if err != nil {
		return nil, err
	}

	if input.Shop != nil && !input.Shop.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown shop type")
	}

	var registered *entity.Seller
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if err := srv.ensureMobileFree(ctx, accountRepo, account.MobileNo); err != nil {
			return err
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrMobileNoTaken) {
				return domainerrors.ErrMobileAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create account")
		}

		seller := &entity.Seller{
			AccountID:  account.ID,
			IsFreePlan: true,
		}
		if err := repoFactory.SellerRepo().Create(ctx, seller); err != nil {
			return errors.Wrap(err, "failed to create seller profile")
		}

		if input.Shop != nil {
			shop := buildShop(input.Shop, seller.ID)
			if err := repoFactory.ShopRepo().Create(ctx, shop); err != nil {
				if errors.Is(err, repository.ErrShopExists) {
					return domainerrors.ErrShopAlreadyExists
				}

				return errors.Wrap(err, "failed to create shop")
			}
			seller.Shop = shop
		}

		seller.Account = account
		registered = seller

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Seller registration failed", slog.String("mobileNo", input.Account.MobileNo), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Seller registration completed", slog.Any("sellerID", registered.ID))

	return &usecase.RegisterSellerOutput{Seller: registered}, nil
}

// Login authenticates a mobile number and password pair and issues tokens.
// Unknown numbers and wrong passwords both surface as invalid credentials so
// the response does not reveal which part failed.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := entity.ValidateMobileNo(input.MobileNo); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := srv.accountRepo.FindByMobileNo(ctx, input.MobileNo)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up account for login")
	}

	if !account.CanAuthenticate() {
		srv.log(ctx).Warn("Login rejected for inactive account", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrAccountInactive
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// ChangePassword verifies the current password and replaces it with a newly
// hashed one. The stored value is only ever the derived hash.
func (srv *authService) ChangePassword(ctx context.Context, accountID uuid.UUID, input *usecase.ChangePasswordInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to find account for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
			return err
		}

		hash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed
		}

		account.PasswordHash = hash
		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store new password hash")
		}

		srv.log(ctx).Info("Password changed", slog.Any("accountID", accountID))

		return nil
	})
}

// ensureMobileFree pre-checks the mobile number inside the transaction. The
// unique constraint on accounts.mobile_no remains the final arbiter under
// concurrency.
func (srv *authService) ensureMobileFree(ctx context.Context, accountRepo repository.AccountRepository, mobileNo string) error {
	_, err := accountRepo.FindByMobileNo(ctx, mobileNo)
	if err == nil {
		return domainerrors.ErrMobileAlreadyRegistered
	}
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to check mobile number availability")
}

// buildAccount validates the shared registration fields and assembles a new
// account entity with a freshly hashed credential.
func (srv *authService) buildAccount(input *usecase.AccountInput, role entity.Role) (*entity.Account, error) {
	if err := entity.ValidateMobileNo(input.MobileNo); err != nil {
		return nil, domainerrors.ErrInvalidMobileNumber
	}
	if input.Sex != "" && !input.Sex.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown sex value")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	return &entity.Account{
		MobileNo:     input.MobileNo,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		MiddleName:   input.MiddleName,
		Email:        input.Email,
		DateOfBirth:  input.DateOfBirth,
		Sex:          input.Sex,
		Role:         role,
		Address1:     input.Address1,
		Address2:     input.Address2,
		BarangayID:   input.BarangayID,
		CityID:       input.CityID,
		ProvinceID:   input.ProvinceID,
		RegionID:     input.RegionID,
		CountryID:    input.CountryID,
		ZipCode:      input.ZipCode,
		IsActive:     true,
	}, nil
}

// buildShop assembles a shop entity from registration or provisioning input.
func buildShop(input *usecase.ShopInput, sellerID uuid.UUID) *entity.Shop {
	return &entity.Shop{
		SellerID:            sellerID,
		Type:                input.Type,
		Name:                input.Name,
		ShortName:           input.ShortName,
		Address1:            input.Address1,
		Address2:            input.Address2,
		BarangayID:          input.BarangayID,
		CityID:              input.CityID,
		ProvinceID:          input.ProvinceID,
		RegionID:            input.RegionID,
		CountryID:           input.CountryID,
		ZipCode:             input.ZipCode,
		ContactNumber:       input.ContactNumber,
		ContactPerson:       input.ContactPerson,
		ContactPersonNumber: input.ContactPersonNumber,
		Email:               input.Email,
		Website:             input.Website,
		Facebook:            input.Facebook,
		Instagram:           input.Instagram,
		Youtube:             input.Youtube,
		Tiktok:              input.Tiktok,
		BankName:            input.BankName,
		BankAccountNumber:   input.BankAccountNumber,
		BankAccountName:     input.BankAccountName,
		Geolocation:         input.Geolocation,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		GoogleMapsURL:       input.GoogleMapsURL,
		BusinessPermit: entity.Permit{
			Number: input.BusinessPermitNumber,
			Expiry: input.BusinessPermitExpiry,
		},
		DTIPermit: entity.Permit{
			Number: input.DTIPermitNumber,
			Expiry: input.DTIPermitExpiry,
		},
		IsPhilgepsRegistered: input.IsPhilgepsRegistered,
		PhilgepsPermit: entity.Permit{
			Number: input.PhilgepsPermitNumber,
			Expiry: input.PhilgepsPermitExpiry,
		},
		IsActive: true,
	}
}
