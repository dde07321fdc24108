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

// sellerRepository implements the repository.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a seller by its unique ID, preloading the owning account
// and the shop when one exists.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).Preload("Account").Preload("Shop").First(&sellerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// FindByAccountID retrieves the seller profile owned by the given account.
func (repo *sellerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).Preload("Account").Preload("Shop").First(&sellerM, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by account id")
	}

	return toSellerDomain(&sellerM), nil
}

// Create persists a new seller profile referencing an existing account.
// The account and shop rows are created separately inside the same
// transaction, so associations are deliberately omitted here.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	sellerM.Account = nil
	sellerM.Shop = nil

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("account already has a seller profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Update modifies an existing seller profile.
func (repo *sellerRepository) Update(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	sellerM.Account = nil
	sellerM.Shop = nil

	if err := repo.db.WithContext(ctx).Save(sellerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update seller")
	}

	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// Delete removes a seller profile row.
func (repo *sellerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SellerModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete seller")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSellerNotFound
	}

	return nil
}

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:                   data.ID,
		AccountID:            data.AccountID,
		Account:              toAccountDomain(data.Account),
		Shop:                 toShopDomain(data.Shop),
		IsFreePlan:           data.IsFreePlan,
		IsPremiumPlan:        data.IsPremiumPlan,
		PremiumPlanExpiry:    data.PremiumPlanExpiry,
		PremiumPlanImagePath: data.PremiumPlanImagePath,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromSellerDomain converts a domain Seller entity to a GORM SellerModel.
func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:                   data.ID,
		AccountID:            data.AccountID,
		Account:              fromAccountDomain(data.Account),
		Shop:                 fromShopDomain(data.Shop),
		IsFreePlan:           data.IsFreePlan,
		IsPremiumPlan:        data.IsPremiumPlan,
		PremiumPlanExpiry:    data.PremiumPlanExpiry,
		PremiumPlanImagePath: data.PremiumPlanImagePath,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
