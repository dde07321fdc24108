package postgres

import (
	"context"

	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/domain/repository"
	"palengke/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopRepository implements the repository.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

// FindByID retrieves a shop by its unique ID.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).First(&shopM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// FindBySellerID retrieves the shop owned by the given seller.
func (repo *shopRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).First(&shopM, "seller_id = ?", sellerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by seller id")
	}

	return toShopDomain(&shopM), nil
}

// Create persists a new shop. The unique constraint on seller_id enforces the
// one-shop-per-seller rule at the database level.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrShopExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSellerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Update modifies an existing shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Delete removes a shop. The owning seller is untouched.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShopModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// DeleteBySellerID removes the seller's shop if one exists. A missing shop is
// not an error here because the account cascade calls this unconditionally.
func (repo *shopRepository) DeleteBySellerID(ctx context.Context, sellerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ShopModel{}, "seller_id = ?", sellerID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop by seller id")
	}

	return nil
}

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:                  data.ID,
		SellerID:            data.SellerID,
		Type:                entity.ShopType(data.ShopType),
		Name:                data.Name,
		ShortName:           data.ShortName,
		Address1:            data.Address1,
		Address2:            data.Address2,
		BarangayID:          data.BarangayID,
		CityID:              data.CityID,
		ProvinceID:          data.ProvinceID,
		RegionID:            data.RegionID,
		CountryID:           data.CountryID,
		ZipCode:             data.ZipCode,
		ContactNumber:       data.ContactNumber,
		ContactPerson:       data.ContactPerson,
		ContactPersonNumber: data.ContactPersonNumber,
		Email:               data.Email,
		Website:             data.Website,
		Facebook:            data.Facebook,
		Instagram:           data.Instagram,
		Youtube:             data.Youtube,
		Tiktok:              data.Tiktok,
		BankName:            data.BankName,
		BankAccountNumber:   data.BankAccountNumber,
		BankAccountName:     data.BankAccountName,
		Geolocation:         data.Geolocation,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		GoogleMapsURL:       data.GoogleMapsURL,
		GoogleMapsImage:     data.GoogleMapsImage,
		Picture1:            data.Picture1,
		Picture2:            data.Picture2,
		Picture3:            data.Picture3,
		BusinessPermit: entity.Permit{
			Number:    data.BusinessPermitNumber,
			Expiry:    data.BusinessPermitExpiry,
			ImagePath: data.BusinessPermitImage,
		},
		DTIPermit: entity.Permit{
			Number:    data.DTIPermitNumber,
			Expiry:    data.DTIPermitExpiry,
			ImagePath: data.DTIPermitImage,
		},
		IsPhilgepsRegistered: data.IsPhilgepsRegistered,
		PhilgepsPermit: entity.Permit{
			Number:    data.PhilgepsPermitNumber,
			Expiry:    data.PhilgepsPermitExpiry,
			ImagePath: data.PhilgepsPermitImage,
		},
		IsFeatured: data.IsFeatured,
		IsActive:   data.IsActive,
		IsVerified: data.IsVerified,
		IsBlocked:  data.IsBlocked,
		IsDeleted:  data.IsDeleted,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:                   data.ID,
		SellerID:             data.SellerID,
		ShopType:             string(data.Type),
		Name:                 data.Name,
		ShortName:            data.ShortName,
		Address1:             data.Address1,
		Address2:             data.Address2,
		BarangayID:           data.BarangayID,
		CityID:               data.CityID,
		ProvinceID:           data.ProvinceID,
		RegionID:             data.RegionID,
		CountryID:            data.CountryID,
		ZipCode:              data.ZipCode,
		ContactNumber:        data.ContactNumber,
		ContactPerson:        data.ContactPerson,
		ContactPersonNumber:  data.ContactPersonNumber,
		Email:                data.Email,
		Website:              data.Website,
		Facebook:             data.Facebook,
		Instagram:            data.Instagram,
		Youtube:              data.Youtube,
		Tiktok:               data.Tiktok,
		BankName:             data.BankName,
		BankAccountNumber:    data.BankAccountNumber,
		BankAccountName:      data.BankAccountName,
		Geolocation:          data.Geolocation,
		Latitude:             data.Latitude,
		Longitude:            data.Longitude,
		GoogleMapsURL:        data.GoogleMapsURL,
		GoogleMapsImage:      data.GoogleMapsImage,
		Picture1:             data.Picture1,
		Picture2:             data.Picture2,
		Picture3:             data.Picture3,
		BusinessPermitNumber: data.BusinessPermit.Number,
		BusinessPermitExpiry: data.BusinessPermit.Expiry,
		BusinessPermitImage:  data.BusinessPermit.ImagePath,
		DTIPermitNumber:      data.DTIPermit.Number,
		DTIPermitExpiry:      data.DTIPermit.Expiry,
		DTIPermitImage:       data.DTIPermit.ImagePath,
		IsPhilgepsRegistered: data.IsPhilgepsRegistered,
		PhilgepsPermitNumber: data.PhilgepsPermit.Number,
		PhilgepsPermitExpiry: data.PhilgepsPermit.Expiry,
		PhilgepsPermitImage:  data.PhilgepsPermit.ImagePath,
		IsFeatured:           data.IsFeatured,
		IsActive:             data.IsActive,
		IsVerified:           data.IsVerified,
		IsBlocked:            data.IsBlocked,
		IsDeleted:            data.IsDeleted,
		IsApproved:           data.IsApproved,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
