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

// buyerRepository implements the repository.BuyerRepository interface using GORM.
type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository is the constructor for buyerRepository.
func NewBuyerRepository(db *gorm.DB) repository.BuyerRepository {
	return &buyerRepository{db: db}
}

// FindByID retrieves a buyer by its unique ID, preloading the owning account.
func (repo *buyerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).Preload("Account").First(&buyerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by id")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByAccountID retrieves the buyer profile owned by the given account.
func (repo *buyerRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	if err := repo.db.WithContext(ctx).Preload("Account").First(&buyerM, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to find buyer by account id")
	}

	return toBuyerDomain(&buyerM), nil
}

// FindByIDForUpdate retrieves the buyer with SELECT ... FOR UPDATE. The buyer
// row is the lock anchor for default switches, which covers buyers whose
// address book or wallet holds no rows to lock yet.
func (repo *buyerRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Buyer, error) {
	var buyerM model.BuyerModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&buyerM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuyerNotFound
		}

		return nil, errors.Wrap(err, "failed to lock buyer row")
	}

	return toBuyerDomain(&buyerM), nil
}

// Create persists a new buyer profile referencing an existing account.
// The account row is created separately by AccountRepository inside the same
// transaction, so associations are deliberately omitted here.
func (repo *buyerRepository) Create(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)
	buyerM.Account = nil

	if err := repo.db.WithContext(ctx).Create(buyerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("account already has a buyer profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buyer")
	}

	buyer.ID = buyerM.ID
	buyer.CreatedAt = buyerM.CreatedAt
	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// Update modifies an existing buyer profile.
func (repo *buyerRepository) Update(ctx context.Context, buyer *entity.Buyer) error {
	buyerM := fromBuyerDomain(buyer)
	buyerM.Account = nil

	if err := repo.db.WithContext(ctx).Save(buyerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update buyer")
	}

	buyer.UpdatedAt = buyerM.UpdatedAt

	return nil
}

// Delete removes a buyer profile row.
func (repo *buyerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BuyerModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete buyer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBuyerNotFound
	}

	return nil
}

// toBuyerDomain converts a GORM BuyerModel to a domain Buyer entity.
func toBuyerDomain(data *model.BuyerModel) *entity.Buyer {
	if data == nil {
		return nil
	}

	return &entity.Buyer{
		ID:                     data.ID,
		AccountID:              data.AccountID,
		Account:                toAccountDomain(data.Account),
		IsPremiumCustomer:      data.IsPremiumCustomer,
		PremiumCustomerExpiry:  data.PremiumCustomerExpiry,
		PreferredPaymentMethod: entity.PaymentMethodKind(data.PreferredPaymentMethod),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromBuyerDomain converts a domain Buyer entity to a GORM BuyerModel.
func fromBuyerDomain(data *entity.Buyer) *model.BuyerModel {
	if data == nil {
		return nil
	}

	return &model.BuyerModel{
		ID:                     data.ID,
		AccountID:              data.AccountID,
		Account:                fromAccountDomain(data.Account),
		IsPremiumCustomer:      data.IsPremiumCustomer,
		PremiumCustomerExpiry:  data.PremiumCustomerExpiry,
		PreferredPaymentMethod: string(data.PreferredPaymentMethod),
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
