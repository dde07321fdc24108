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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager  repository.TransactionManager
	buyerRepo  repository.BuyerRepository
	sellerRepo repository.SellerRepository
	hasher     service.PasswordHasher
	fileStore  service.FileStore
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BuyerRepo  repository.BuyerRepository
	SellerRepo repository.SellerRepository
	Hasher     service.PasswordHasher
	FileStore  service.FileStore
	Logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:  params.TxManager,
		buyerRepo:  params.BuyerRepo,
		sellerRepo: params.SellerRepo,
		hasher:     params.Hasher,
		fileStore:  params.FileStore,
		logger:     params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBuyerProfile retrieves the buyer profile owned by the account.
func (srv *profileService) GetBuyerProfile(ctx context.Context, accountID uuid.UUID) (*entity.Buyer, error) {
	buyer, err := srv.buyerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to load buyer profile")
	}

	return buyer, nil
}

// GetSellerProfile retrieves the seller profile owned by the account.
func (srv *profileService) GetSellerProfile(ctx context.Context, accountID uuid.UUID) (*entity.Seller, error) {
	seller, err := srv.sellerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to load seller profile")
	}

	return seller, nil
}

// UpdateBuyerProfile applies a partial update to the buyer and its account.
// Only fields explicitly present in the patch change; a raw password never
// reaches the account record.
func (srv *profileService) UpdateBuyerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateBuyerProfileInput) (*entity.Buyer, error) {
	if input.PreferredPaymentMethod != nil && !input.PreferredPaymentMethod.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown preferred payment method")
	}

	var updated *entity.Buyer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := repoFactory.BuyerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrBuyerNotFound) {
				return domainerrors.ErrBuyerNotFound
			}

			return errors.Wrap(err, "failed to load buyer for update")
		}

		if input.Account != nil {
			if err := srv.applyAccountPatch(ctx, repoFactory.AccountRepo(), buyer.Account, input.Account); err != nil {
				return err
			}
		}

		buyerChanged := false
		if input.PreferredPaymentMethod != nil {
			buyer.PreferredPaymentMethod = *input.PreferredPaymentMethod
			buyerChanged = true
		}
		if input.IsPremiumCustomer != nil {
			buyer.IsPremiumCustomer = *input.IsPremiumCustomer
			buyerChanged = true
		}
		if input.PremiumCustomerExpiry != nil {
			buyer.PremiumCustomerExpiry = input.PremiumCustomerExpiry
			buyerChanged = true
		}
		if buyerChanged {
			if err := repoFactory.BuyerRepo().Update(ctx, buyer); err != nil {
				return errors.Wrap(err, "failed to update buyer profile")
			}
		}

		updated = buyer

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Buyer profile update failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// UpdateSellerProfile applies a partial update to the seller and its account.
func (srv *profileService) UpdateSellerProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateSellerProfileInput) (*entity.Seller, error) {
	var updated *entity.Seller
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to load seller for update")
		}

		if input.Account != nil {
			if err := srv.applyAccountPatch(ctx, repoFactory.AccountRepo(), seller.Account, input.Account); err != nil {
				return err
			}
		}

		sellerChanged := false
		if input.IsFreePlan != nil {
			seller.IsFreePlan = *input.IsFreePlan
			sellerChanged = true
		}
		if input.IsPremiumPlan != nil {
			seller.IsPremiumPlan = *input.IsPremiumPlan
			sellerChanged = true
		}
		if input.PremiumPlanExpiry != nil {
			seller.PremiumPlanExpiry = input.PremiumPlanExpiry
			sellerChanged = true
		}
		if input.PremiumPlanImagePath != nil {
			seller.PremiumPlanImagePath = *input.PremiumPlanImagePath
			sellerChanged = true
		}
		if sellerChanged {
			if err := repoFactory.SellerRepo().Update(ctx, seller); err != nil {
				return errors.Wrap(err, "failed to update seller profile")
			}
		}

		updated = seller

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Seller profile update failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAccount removes the account and everything hanging off it in one
// transaction: the role profile, the buyer's addresses and payment methods,
// and the seller's shop. Each child table is cleared explicitly before its
// parent row goes.
func (srv *profileService) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load account for deletion")
		}

		switch account.Role {
		case entity.RoleBuyer:
			buyer, err := repoFactory.BuyerRepo().FindByAccountID(ctx, accountID)
			if err != nil && !errors.Is(err, repository.ErrBuyerNotFound) {
				return errors.Wrap(err, "failed to load buyer for deletion")
			}
			if err == nil {
				if err := repoFactory.ShippingAddressRepo().DeleteByBuyer(ctx, buyer.ID); err != nil {
					return errors.Wrap(err, "failed to delete shipping addresses")
				}
				if err := repoFactory.PaymentMethodRepo().DeleteByBuyer(ctx, buyer.ID); err != nil {
					return errors.Wrap(err, "failed to delete payment methods")
				}
				if err := repoFactory.BuyerRepo().Delete(ctx, buyer.ID); err != nil {
					return errors.Wrap(err, "failed to delete buyer profile")
				}
			}
		case entity.RoleSeller:
			seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
			if err != nil && !errors.Is(err, repository.ErrSellerNotFound) {
				return errors.Wrap(err, "failed to load seller for deletion")
			}
			if err == nil {
				if err := repoFactory.ShopRepo().DeleteBySellerID(ctx, seller.ID); err != nil {
					return errors.Wrap(err, "failed to delete shop")
				}
				if err := repoFactory.SellerRepo().Delete(ctx, seller.ID); err != nil {
					return errors.Wrap(err, "failed to delete seller profile")
				}
			}
		}

		if err := accountRepo.Delete(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Account deletion failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", accountID))

	return nil
}

// UploadProfilePicture writes the picture to the file store and records the
// returned path on the account. The bytes live outside the database, so the
// write happens before the transaction that persists the path.
func (srv *profileService) UploadProfilePicture(ctx context.Context, accountID uuid.UUID, filename string, content []byte) (string, error) {
	path, err := srv.fileStore.Store(ctx, "user_pics", filename, content)
	if err != nil {
		return "", errors.Wrap(err, "failed to store profile picture")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load account for picture update")
		}

		account.PicturePath = path

		return errors.Wrap(repoFactory.AccountRepo().Update(ctx, account), "failed to persist picture path")
	})
	if err != nil {
		srv.log(ctx).Error("Profile picture upload failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return "", err
	}

	return path, nil
}

// applyAccountPatch merges the non-nil patch fields onto the account and
// persists it. The Password field is routed through the hasher; the other
// fields copy across verbatim.
func (srv *profileService) applyAccountPatch(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account, patch *usecase.AccountPatch) error {
	if account == nil {
		return domainerrors.ErrAccountNotFound
	}

	if patch.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*patch.Password); err != nil {
			return err
		}
		hash, err := srv.hasher.Hash(*patch.Password)
		if err != nil {
			return domainerrors.ErrPasswordHashFailed
		}
		account.PasswordHash = hash
	}
	if patch.FirstName != nil {
		account.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		account.LastName = *patch.LastName
	}
	if patch.MiddleName != nil {
		account.MiddleName = *patch.MiddleName
	}
	if patch.Email != nil {
		account.Email = *patch.Email
	}
	if patch.DateOfBirth != nil {
		account.DateOfBirth = patch.DateOfBirth
	}
	if patch.Sex != nil {
		if !patch.Sex.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown sex value")
		}
		account.Sex = *patch.Sex
	}
	if patch.Address1 != nil {
		account.Address1 = *patch.Address1
	}
	if patch.Address2 != nil {
		account.Address2 = *patch.Address2
	}
	if patch.BarangayID != nil {
		account.BarangayID = patch.BarangayID
	}
	if patch.CityID != nil {
		account.CityID = patch.CityID
	}
	if patch.ProvinceID != nil {
		account.ProvinceID = patch.ProvinceID
	}
	if patch.RegionID != nil {
		account.RegionID = patch.RegionID
	}
	if patch.CountryID != nil {
		account.CountryID = patch.CountryID
	}
	if patch.ZipCode != nil {
		account.ZipCode = *patch.ZipCode
	}
	if patch.PicturePath != nil {
		account.PicturePath = *patch.PicturePath
	}

	if err := accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update account")
	}

	return nil
}
