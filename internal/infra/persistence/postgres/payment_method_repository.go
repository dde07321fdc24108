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

// paymentMethodRepository implements the repository.PaymentMethodRepository interface using GORM.
type paymentMethodRepository struct {
	db *gorm.DB
}

// NewPaymentMethodRepository is the constructor for paymentMethodRepository.
func NewPaymentMethodRepository(db *gorm.DB) repository.PaymentMethodRepository {
	return &paymentMethodRepository{db: db}
}

// FindByID retrieves a payment method by its unique ID.
func (repo *paymentMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel
	if err := repo.db.WithContext(ctx).First(&methodM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment method by id")
	}

	return toPaymentMethodDomain(&methodM), nil
}

// FindByBuyer retrieves all payment methods of a buyer, default first.
func (repo *paymentMethodRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var models []*model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Order("is_default DESC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return toPaymentMethodDomains(models), nil
}

// FindByBuyerForUpdate locks the buyer's rows with SELECT ... FOR UPDATE.
// Must run inside a transaction.
func (repo *paymentMethodRepository) FindByBuyerForUpdate(ctx context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	var models []*model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("buyer_id = ?", buyerID).
		Order("is_default DESC, created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock payment methods")
	}

	return toPaymentMethodDomains(models), nil
}

// FindDefaultByBuyer retrieves the buyer's default payment method.
func (repo *paymentMethodRepository) FindDefaultByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.PaymentMethod, error) {
	var methodM model.PaymentMethodModel
	err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND is_default = ?", buyerID, true).
		First(&methodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to find default payment method")
	}

	return toPaymentMethodDomain(&methodM), nil
}

// Create persists a new payment method.
func (repo *paymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	methodM := fromPaymentMethodDomain(method)

	if err := repo.db.WithContext(ctx).Create(methodM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuyerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment method")
	}

	method.ID = methodM.ID
	method.CreatedAt = methodM.CreatedAt
	method.UpdatedAt = methodM.UpdatedAt

	return nil
}

// Update modifies an existing payment method.
func (repo *paymentMethodRepository) Update(ctx context.Context, method *entity.PaymentMethod) error {
	methodM := fromPaymentMethodDomain(method)

	if err := repo.db.WithContext(ctx).Save(methodM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment method")
	}

	method.UpdatedAt = methodM.UpdatedAt

	return nil
}

// Delete removes a payment method by its ID.
func (repo *paymentMethodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PaymentMethodModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete payment method")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

// DeleteByBuyer removes every payment method of a buyer.
func (repo *paymentMethodRepository) DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.PaymentMethodModel{}, "buyer_id = ?", buyerID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete payment methods by buyer")
	}

	return nil
}

// ClearDefaults unsets the default flag on every payment method of the buyer.
func (repo *paymentMethodRepository) ClearDefaults(ctx context.Context, buyerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("buyer_id = ? AND is_default = ?", buyerID, true).
		Update("is_default", false).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear default payment methods")
	}

	return nil
}

// MarkDefault sets the default flag on a single payment method.
func (repo *paymentMethodRepository) MarkDefault(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentMethodModel{}).
		Where("id = ?", id).
		Update("is_default", true)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark default payment method")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPaymentMethodNotFound
	}

	return nil
}

// toPaymentMethodDomain converts a GORM PaymentMethodModel to a domain entity.
func toPaymentMethodDomain(data *model.PaymentMethodModel) *entity.PaymentMethod {
	if data == nil {
		return nil
	}

	return &entity.PaymentMethod{
		ID:      data.ID,
		BuyerID: data.BuyerID,
		Kind:    entity.PaymentMethodKind(data.Kind),
		BankCard: entity.BankCard{
			Type:     entity.BankCardType(data.CardType),
			Brand:    data.CardBrand,
			Last4:    data.CardLast4,
			ExpMonth: data.CardExpMonth,
			ExpYear:  data.CardExpYear,
			Name:     data.CardName,
		},
		IsDefault:  data.IsDefault,
		IsActive:   data.IsActive,
		IsVerified: data.IsVerified,
		IsDeleted:  data.IsDeleted,
		IsApproved: data.IsApproved,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toPaymentMethodDomains(models []*model.PaymentMethodModel) []*entity.PaymentMethod {
	methods := make([]*entity.PaymentMethod, 0, len(models))
	for _, m := range models {
		methods = append(methods, toPaymentMethodDomain(m))
	}

	return methods
}

// fromPaymentMethodDomain converts a domain entity to a GORM PaymentMethodModel.
func fromPaymentMethodDomain(data *entity.PaymentMethod) *model.PaymentMethodModel {
	if data == nil {
		return nil
	}

	return &model.PaymentMethodModel{
		ID:           data.ID,
		BuyerID:      data.BuyerID,
		Kind:         string(data.Kind),
		CardType:     string(data.BankCard.Type),
		CardBrand:    data.BankCard.Brand,
		CardLast4:    data.BankCard.Last4,
		CardExpMonth: data.BankCard.ExpMonth,
		CardExpYear:  data.BankCard.ExpYear,
		CardName:     data.BankCard.Name,
		IsDefault:    data.IsDefault,
		IsActive:     data.IsActive,
		IsVerified:   data.IsVerified,
		IsDeleted:    data.IsDeleted,
		IsApproved:   data.IsApproved,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
