package impl

import (
	"context"
	"log/slog"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/domain/repository"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// shippingAddressService implements the ShippingAddressUsecase interface.
type shippingAddressService struct {
	txManager   repository.TransactionManager
	buyerRepo   repository.BuyerRepository
	addressRepo repository.ShippingAddressRepository
	logger      *slog.Logger
}

// ShippingAddressServiceParams holds dependencies for shippingAddressService, injected by Fx.
type ShippingAddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BuyerRepo   repository.BuyerRepository
	AddressRepo repository.ShippingAddressRepository
	Logger      *slog.Logger
}

// NewShippingAddressService is the constructor for shippingAddressService.
func NewShippingAddressService(params ShippingAddressServiceParams) usecase.ShippingAddressUsecase {
	return &shippingAddressService{
		txManager:   params.TxManager,
		buyerRepo:   params.BuyerRepo,
		addressRepo: params.AddressRepo,
		logger:      params.Logger,
	}
}

func (srv *shippingAddressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveBuyer maps the authenticated account to its buyer profile.
func resolveBuyer(ctx context.Context, buyerRepo repository.BuyerRepository, accountID uuid.UUID) (*entity.Buyer, error) {
	buyer, err := buyerRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrBuyerNotFound) {
			return nil, domainerrors.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve buyer profile")
	}

	return buyer, nil
}

// ListAddresses returns the buyer's address book, default first.
func (srv *shippingAddressService) ListAddresses(ctx context.Context, accountID uuid.UUID) ([]*entity.ShippingAddress, error) {
	buyer, err := resolveBuyer(ctx, srv.buyerRepo, accountID)
	if err != nil {
		return nil, err
	}

	addresses, err := srv.addressRepo.FindByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	return addresses, nil
}

// GetDefaultAddress returns the buyer's current default address.
func (srv *shippingAddressService) GetDefaultAddress(ctx context.Context, accountID uuid.UUID) (*entity.ShippingAddress, error) {
	buyer, err := resolveBuyer(ctx, srv.buyerRepo, accountID)
	if err != nil {
		return nil, err
	}

	address, err := srv.addressRepo.FindDefaultByBuyer(ctx, buyer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrShippingAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to load default shipping address")
	}

	return address, nil
}

// CreateAddress adds an address to the buyer's book. When SetAsDefault is
// requested the create locks the buyer row and clears the previous default
// so the singleton default survives concurrent writers.
func (srv *shippingAddressService) CreateAddress(ctx context.Context, accountID uuid.UUID, input *usecase.ShippingAddressInput) (*entity.ShippingAddress, error) {
	var created *entity.ShippingAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.ShippingAddressRepo()

		if input.SetAsDefault {
			// Lock the buyer row, not the address book. FOR UPDATE over an
			// empty book locks nothing, so two first-address creates could
			// both insert a default.
			if _, err := repoFactory.BuyerRepo().FindByIDForUpdate(ctx, buyer.ID); err != nil {
				return errors.Wrap(err, "failed to lock buyer for default switch")
			}
			if err := addressRepo.ClearDefaults(ctx, buyer.ID); err != nil {
				return errors.Wrap(err, "failed to clear default addresses")
			}
		}

		address := &entity.ShippingAddress{
			BuyerID:       buyer.ID,
			Address1:      input.Address1,
			Address2:      input.Address2,
			BarangayID:    input.BarangayID,
			CityID:        input.CityID,
			ProvinceID:    input.ProvinceID,
			RegionID:      input.RegionID,
			CountryID:     input.CountryID,
			ZipCode:       input.ZipCode,
			Geolocation:   input.Geolocation,
			Latitude:      input.Latitude,
			Longitude:     input.Longitude,
			GoogleMapsURL: input.GoogleMapsURL,
			IsDefault:     input.SetAsDefault,
			IsActive:      true,
		}
		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create shipping address")
		}

		created = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Shipping address creation failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// UpdateAddress applies a partial update to one of the buyer's addresses.
// Addresses of other buyers are invisible here: a foreign ID reports not found.
func (srv *shippingAddressService) UpdateAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID, input *usecase.UpdateShippingAddressInput) (*entity.ShippingAddress, error) {
	var updated *entity.ShippingAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.ShippingAddressRepo()
		address, err := addressRepo.FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrShippingAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to load shipping address")
		}
		if address.BuyerID != buyer.ID {
			return domainerrors.ErrAddressNotFound
		}

		applyShippingAddressPatch(address, input)

		if err := addressRepo.Update(ctx, address); err != nil {
			return errors.Wrap(err, "failed to update shipping address")
		}

		updated = address

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Shipping address update failed", slog.Any("addressID", addressID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeleteAddress removes one of the buyer's addresses. Deleting the default
// leaves the buyer with no default; no successor is elected.
func (srv *shippingAddressService) DeleteAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.ShippingAddressRepo()
		address, err := addressRepo.FindByID(ctx, addressID)
		if err != nil {
			if errors.Is(err, repository.ErrShippingAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to load shipping address")
		}
		if address.BuyerID != buyer.ID {
			return domainerrors.ErrAddressNotFound
		}

		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete shipping address")
		}

		return nil
	})
}

// SetDefaultAddress moves the default flag to the named address. The buyer's
// rows are locked first, so two concurrent switches serialize and exactly one
// default remains whichever order they land in.
func (srv *shippingAddressService) SetDefaultAddress(ctx context.Context, accountID uuid.UUID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		addressRepo := repoFactory.ShippingAddressRepo()

		addresses, err := addressRepo.FindByBuyerForUpdate(ctx, buyer.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock address book")
		}

		owned := false
		for _, address := range addresses {
			if address.ID == addressID {
				owned = true

				break
			}
		}
		if !owned {
			return domainerrors.ErrAddressNotFound
		}

		if err := addressRepo.ClearDefaults(ctx, buyer.ID); err != nil {
			return errors.Wrap(err, "failed to clear default addresses")
		}
		if err := addressRepo.MarkDefault(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to mark default address")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Default address switch failed", slog.Any("addressID", addressID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Default address switched", slog.Any("addressID", addressID))

	return nil
}

// applyShippingAddressPatch merges the non-nil patch fields onto the address.
func applyShippingAddressPatch(address *entity.ShippingAddress, patch *usecase.UpdateShippingAddressInput) {
	if patch.Address1 != nil {
		address.Address1 = *patch.Address1
	}
	if patch.Address2 != nil {
		address.Address2 = *patch.Address2
	}
	if patch.BarangayID != nil {
		address.BarangayID = patch.BarangayID
	}
	if patch.CityID != nil {
		address.CityID = patch.CityID
	}
	if patch.ProvinceID != nil {
		address.ProvinceID = patch.ProvinceID
	}
	if patch.RegionID != nil {
		address.RegionID = patch.RegionID
	}
	if patch.CountryID != nil {
		address.CountryID = patch.CountryID
	}
	if patch.ZipCode != nil {
		address.ZipCode = *patch.ZipCode
	}
	if patch.Geolocation != nil {
		address.Geolocation = *patch.Geolocation
	}
	if patch.Latitude != nil {
		address.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		address.Longitude = patch.Longitude
	}
	if patch.GoogleMapsURL != nil {
		address.GoogleMapsURL = *patch.GoogleMapsURL
	}
}
