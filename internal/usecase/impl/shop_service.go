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

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager  repository.TransactionManager
	sellerRepo repository.SellerRepository
	shopRepo   repository.ShopRepository
	fileStore  service.FileStore
	logger     *slog.Logger
}

// ShopServiceParams holds dependencies for shopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	SellerRepo repository.SellerRepository
	ShopRepo   repository.ShopRepository
	FileStore  service.FileStore
	Logger     *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:  params.TxManager,
		sellerRepo: params.SellerRepo,
		shopRepo:   params.ShopRepo,
		fileStore:  params.FileStore,
		logger:     params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop provisions the shop for a seller that registered without one.
// The unique seller reference keeps this a one-shot operation.
func (srv *shopService) CreateShop(ctx context.Context, accountID uuid.UUID, input *usecase.ShopInput) (*entity.Shop, error) {
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown shop type")
	}

	var created *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to load seller for shop creation")
		}

		if seller.Shop != nil {
			return domainerrors.ErrShopAlreadyExists
		}

		shop := buildShop(input, seller.ID)
		if err := repoFactory.ShopRepo().Create(ctx, shop); err != nil {
			if errors.Is(err, repository.ErrShopExists) {
				return domainerrors.ErrShopAlreadyExists
			}

			return errors.Wrap(err, "failed to create shop")
		}

		created = shop

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Shop creation failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Shop created", slog.Any("shopID", created.ID))

	return created, nil
}

// GetShop retrieves the authenticated seller's shop.
func (srv *shopService) GetShop(ctx context.Context, accountID uuid.UUID) (*entity.Shop, error) {
	seller, err := srv.sellerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return nil, domainerrors.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to load seller for shop lookup")
	}

	if seller.Shop == nil {
		return nil, domainerrors.ErrShopNotFound
	}

	return seller.Shop, nil
}

// UpdateShop applies a partial update to the seller's shop. Only non-nil
// fields change.
func (srv *shopService) UpdateShop(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown shop type")
	}

	var updated *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to load seller for shop update")
		}
		if seller.Shop == nil {
			return domainerrors.ErrShopNotFound
		}

		shop := seller.Shop
		applyShopPatch(shop, input)

		if err := repoFactory.ShopRepo().Update(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}

		updated = shop

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Shop update failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteShop removes the seller's shop and nothing else. The seller can
// provision a new one afterwards.
func (srv *shopService) DeleteShop(ctx context.Context, accountID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to load seller for shop deletion")
		}
		if seller.Shop == nil {
			return domainerrors.ErrShopNotFound
		}

		return errors.Wrap(repoFactory.ShopRepo().DeleteBySellerID(ctx, seller.ID), "failed to delete shop")
	})
	if err != nil {
		srv.log(ctx).Error("Shop deletion failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Shop deleted", slog.Any("accountID", accountID))

	return nil
}

// UploadShopPicture writes the picture to the file store and records the
// returned path in the requested slot. Shops carry up to three pictures.
func (srv *shopService) UploadShopPicture(ctx context.Context, accountID uuid.UUID, slot int, filename string, content []byte) (*entity.Shop, error) {
	if slot < 1 || slot > 3 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("picture slot must be between 1 and 3")
	}

	var updated *entity.Shop
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		seller, err := repoFactory.SellerRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrSellerNotFound) {
				return domainerrors.ErrSellerNotFound
			}

			return errors.Wrap(err, "failed to load seller for picture upload")
		}
		if seller.Shop == nil {
			return domainerrors.ErrShopNotFound
		}

		shop := seller.Shop
		path, err := srv.fileStore.Store(ctx, "shop_pics/"+shop.ID.String(), filename, content)
		if err != nil {
			return errors.Wrap(err, "failed to store shop picture")
		}

		switch slot {
		case 1:
			shop.Picture1 = path
		case 2:
			shop.Picture2 = path
		case 3:
			shop.Picture3 = path
		}

		if err := repoFactory.ShopRepo().Update(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to persist shop picture path")
		}

		updated = shop

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Shop picture upload failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// applyShopPatch merges the non-nil patch fields onto the shop.
func applyShopPatch(shop *entity.Shop, patch *usecase.UpdateShopInput) {
	if patch.Type != nil {
		shop.Type = *patch.Type
	}
	if patch.Name != nil {
		shop.Name = *patch.Name
	}
	if patch.ShortName != nil {
		shop.ShortName = *patch.ShortName
	}
	if patch.Address1 != nil {
		shop.Address1 = *patch.Address1
	}
	if patch.Address2 != nil {
		shop.Address2 = *patch.Address2
	}
	if patch.BarangayID != nil {
		shop.BarangayID = patch.BarangayID
	}
	if patch.CityID != nil {
		shop.CityID = patch.CityID
	}
	if patch.ProvinceID != nil {
		shop.ProvinceID = patch.ProvinceID
	}
	if patch.RegionID != nil {
		shop.RegionID = patch.RegionID
	}
	if patch.CountryID != nil {
		shop.CountryID = patch.CountryID
	}
	if patch.ZipCode != nil {
		shop.ZipCode = *patch.ZipCode
	}
	if patch.ContactNumber != nil {
		shop.ContactNumber = *patch.ContactNumber
	}
	if patch.ContactPerson != nil {
		shop.ContactPerson = *patch.ContactPerson
	}
	if patch.ContactPersonNumber != nil {
		shop.ContactPersonNumber = *patch.ContactPersonNumber
	}
	if patch.Email != nil {
		shop.Email = *patch.Email
	}
	if patch.Website != nil {
		shop.Website = *patch.Website
	}
	if patch.Facebook != nil {
		shop.Facebook = *patch.Facebook
	}
	if patch.Instagram != nil {
		shop.Instagram = *patch.Instagram
	}
	if patch.Youtube != nil {
		shop.Youtube = *patch.Youtube
	}
	if patch.Tiktok != nil {
		shop.Tiktok = *patch.Tiktok
	}
	if patch.BankName != nil {
		shop.BankName = *patch.BankName
	}
	if patch.BankAccountNumber != nil {
		shop.BankAccountNumber = *patch.BankAccountNumber
	}
	if patch.BankAccountName != nil {
		shop.BankAccountName = *patch.BankAccountName
	}
	if patch.Geolocation != nil {
		shop.Geolocation = *patch.Geolocation
	}
	if patch.Latitude != nil {
		shop.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		shop.Longitude = patch.Longitude
	}
	if patch.GoogleMapsURL != nil {
		shop.GoogleMapsURL = *patch.GoogleMapsURL
	}
	if patch.BusinessPermitNumber != nil {
		shop.BusinessPermit.Number = *patch.BusinessPermitNumber
	}
	if patch.BusinessPermitExpiry != nil {
		shop.BusinessPermit.Expiry = patch.BusinessPermitExpiry
	}
	if patch.DTIPermitNumber != nil {
		shop.DTIPermit.Number = *patch.DTIPermitNumber
	}
	if patch.DTIPermitExpiry != nil {
		shop.DTIPermit.Expiry = patch.DTIPermitExpiry
	}
	if patch.IsPhilgepsRegistered != nil {
		shop.IsPhilgepsRegistered = *patch.IsPhilgepsRegistered
	}
	if patch.PhilgepsPermitNumber != nil {
		shop.PhilgepsPermit.Number = *patch.PhilgepsPermitNumber
	}
	if patch.PhilgepsPermitExpiry != nil {
		shop.PhilgepsPermit.Expiry = patch.PhilgepsPermitExpiry
	}
}
