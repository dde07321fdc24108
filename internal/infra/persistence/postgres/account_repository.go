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

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByMobileNo retrieves a single account by its mobile number.
func (repo *accountRepository) FindByMobileNo(ctx context.Context, mobileNo string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, "mobile_no = ?", mobileNo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by mobile number")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrMobileNoTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMobileNoTaken
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes an account row. Role profiles and their children must be
// removed by the caller beforehand, inside the same transaction.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		MobileNo:     data.MobileNo,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		MiddleName:   data.MiddleName,
		Email:        data.Email,
		DateOfBirth:  data.DateOfBirth,
		Sex:          entity.Sex(data.Sex),
		Role:         entity.Role(data.Role),
		Address1:     data.Address1,
		Address2:     data.Address2,
		BarangayID:   data.BarangayID,
		CityID:       data.CityID,
		ProvinceID:   data.ProvinceID,
		RegionID:     data.RegionID,
		CountryID:    data.CountryID,
		ZipCode:      data.ZipCode,
		PicturePath:  data.PicturePath,
		IsActive:     data.IsActive,
		IsVerified:   data.IsVerified,
		IsBlocked:    data.IsBlocked,
		IsDeleted:    data.IsDeleted,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		MobileNo:     data.MobileNo,
		PasswordHash: data.PasswordHash,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		MiddleName:   data.MiddleName,
		Email:        data.Email,
		DateOfBirth:  data.DateOfBirth,
		Sex:          string(data.Sex),
		Role:         string(data.Role),
		Address1:     data.Address1,
		Address2:     data.Address2,
		BarangayID:   data.BarangayID,
		CityID:       data.CityID,
		ProvinceID:   data.ProvinceID,
		RegionID:     data.RegionID,
		CountryID:    data.CountryID,
		ZipCode:      data.ZipCode,
		PicturePath:  data.PicturePath,
		IsActive:     data.IsActive,
		IsVerified:   data.IsVerified,
		IsBlocked:    data.IsBlocked,
		IsDeleted:    data.IsDeleted,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
