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
	"gorm.io/gorm/clause"
)

// shippingAddressRepository implements the repository.ShippingAddressRepository interface using GORM.
type shippingAddressRepository struct {
	db *gorm.DB
}

// NewShippingAddressRepository is the constructor for shippingAddressRepository.
func NewShippingAddressRepository(db *gorm.DB) repository.ShippingAddressRepository {
	return &shippingAddressRepository{db: db}
}

// FindByID retrieves a shipping address by its unique ID.
func (repo *shippingAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.ShippingAddressModel
	if err := repo.db.WithContext(ctx).First(&addressM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShippingAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipping address by id")
	}

	return toShippingAddressDomain(&addressM), nil
}

// FindByBuyer retrieves all addresses of a buyer, default first.
func (repo *shippingAddressRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var models []*model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("is_default DESC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shipping addresses")
	}

	return toShippingAddressDomains(models), nil
}

// FindByBuyerForUpdate locks the buyer's rows with SELECT ... FOR UPDATE so
// concurrent default switches for the same buyer serialize on the first lock
// holder. Must run inside a transaction.
func (repo *shippingAddressRepository) FindByBuyerForUpdate(ctx context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	var models []*model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("buyer_id = ?", buyerID).
		Order("is_default DESC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock shipping addresses")
	}

	return toShippingAddressDomains(models), nil
}

// FindDefaultByBuyer retrieves the buyer's default address.
func (repo *shippingAddressRepository) FindDefaultByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.ShippingAddress, error) {
	var addressM model.ShippingAddressModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND is_default = ?", buyerID, true).
		First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShippingAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default shipping address")
	}

	return toShippingAddressDomain(&addressM), nil
}

// Create persists a new shipping address.
func (repo *shippingAddressRepository) Create(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromShippingAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuyerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipping address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update modifies an existing shipping address.
func (repo *shippingAddressRepository) Update(ctx context.Context, address *entity.ShippingAddress) error {
	addressM := fromShippingAddressDomain(address)

	if err := repo.db.WithContext(ctx).Save(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shipping address")
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Delete removes a shipping address by its ID.
func (repo *shippingAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ShippingAddressModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShippingAddressNotFound
	}

	return nil
}

// DeleteByBuyer removes every address of a buyer.
func (repo *shippingAddressRepository) DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ShippingAddressModel{}, "buyer_id = ?", buyerID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shipping addresses by buyer")
	}

	return nil
}

// ClearDefaults unsets the default flag on every address of the buyer.
func (repo *shippingAddressRepository) ClearDefaults(ctx context.Context, buyerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("buyer_id = ? AND is_default = ?", buyerID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default shipping addresses")
	}

	return nil
}

// MarkDefault sets the default flag on a single address.
func (repo *shippingAddressRepository) MarkDefault(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShippingAddressModel{}).
		Where("id = ?", id).
		Update("is_default", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark default shipping address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShippingAddressNotFound
	}

	return nil
}

// toShippingAddressDomain converts a GORM ShippingAddressModel to a domain entity.
func toShippingAddressDomain(data *model.ShippingAddressModel) *entity.ShippingAddress {
	if data == nil {
		return nil
	}

	return &entity.ShippingAddress{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		Address1:      data.Address1,
		Address2:      data.Address2,
		BarangayID:    data.BarangayID,
		CityID:        data.CityID,
		ProvinceID:    data.ProvinceID,
		RegionID:      data.RegionID,
		CountryID:     data.CountryID,
		ZipCode:       data.ZipCode,
		Geolocation:   data.Geolocation,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		GoogleMapsURL: data.GoogleMapsURL,
		IsDefault:     data.IsDefault,
		IsActive:      data.IsActive,
		IsVerified:    data.IsVerified,
		IsDeleted:     data.IsDeleted,
		IsApproved:    data.IsApproved,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toShippingAddressDomains(models []*model.ShippingAddressModel) []*entity.ShippingAddress {
	addresses := make([]*entity.ShippingAddress, 0, len(models))
	for _, m := range models {
		addresses = append(addresses, toShippingAddressDomain(m))
	}

	return addresses
}

// fromShippingAddressDomain converts a domain entity to a GORM ShippingAddressModel.
func fromShippingAddressDomain(data *entity.ShippingAddress) *model.ShippingAddressModel {
	if data == nil {
		return nil
	}

	return &model.ShippingAddressModel{
		ID:            data.ID,
		BuyerID:       data.BuyerID,
		Address1:      data.Address1,
		Address2:      data.Address2,
		BarangayID:    data.BarangayID,
		CityID:        data.CityID,
		ProvinceID:    data.ProvinceID,
		RegionID:      data.RegionID,
		CountryID:     data.CountryID,
		ZipCode:       data.ZipCode,
		Geolocation:   data.Geolocation,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		GoogleMapsURL: data.GoogleMapsURL,
		IsDefault:     data.IsDefault,
		IsActive:      data.IsActive,
		IsVerified:    data.IsVerified,
		IsDeleted:     data.IsDeleted,
		IsApproved:    data.IsApproved,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
