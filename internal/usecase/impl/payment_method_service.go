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

// paymentMethodService implements the PaymentMethodUsecase interface.
type paymentMethodService struct {
	txManager  repository.TransactionManager
	buyerRepo  repository.BuyerRepository
	methodRepo repository.PaymentMethodRepository
	logger     *slog.Logger
}

// PaymentMethodServiceParams holds dependencies for paymentMethodService, injected by Fx.
type PaymentMethodServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BuyerRepo  repository.BuyerRepository
	MethodRepo repository.PaymentMethodRepository
	Logger     *slog.Logger
}

// NewPaymentMethodService is the constructor for paymentMethodService.
func NewPaymentMethodService(params PaymentMethodServiceParams) usecase.PaymentMethodUsecase {
	return &paymentMethodService{
		txManager:  params.TxManager,
		buyerRepo:  params.BuyerRepo,
		methodRepo: params.MethodRepo,
		logger:     params.Logger,
	}
}

func (srv *paymentMethodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPaymentMethods returns the buyer's saved payment methods, default first.
func (srv *paymentMethodService) ListPaymentMethods(ctx context.Context, accountID uuid.UUID) ([]*entity.PaymentMethod, error) {
	buyer, err := resolveBuyer(ctx, srv.buyerRepo, accountID)
	if err != nil {
		return nil, err
	}

	methods, err := srv.methodRepo.FindByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payment methods")
	}

	return methods, nil
}

// GetDefaultPaymentMethod returns the buyer's current default payment method.
func (srv *paymentMethodService) GetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID) (*entity.PaymentMethod, error) {
	buyer, err := resolveBuyer(ctx, srv.buyerRepo, accountID)
	if err != nil {
		return nil, err
	}

	method, err := srv.methodRepo.FindDefaultByBuyer(ctx, buyer.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentMethodNotFound) {
			return nil, domainerrors.ErrPaymentMethodNotFound
		}

		return nil, errors.Wrap(err, "failed to load default payment method")
	}

	return method, nil
}

// CreatePaymentMethod saves a new payment method for the buyer. Card details
// are required for the bank_card kind and rejected for every other kind.
func (srv *paymentMethodService) CreatePaymentMethod(ctx context.Context, accountID uuid.UUID, input *usecase.PaymentMethodInput) (*entity.PaymentMethod, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method kind")
	}
	if input.Kind == entity.PaymentBankCard {
		if input.BankCard == nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("bank card details are required for the bank_card kind")
		}
		if !input.BankCard.Type.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown bank card type")
		}
	} else if input.BankCard != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("bank card details are only valid for the bank_card kind")
	}

	var created *entity.PaymentMethod
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		methodRepo := repoFactory.PaymentMethodRepo()

		if input.SetAsDefault {
			// Lock the buyer row rather than the method rows. FOR UPDATE over
			// an empty wallet locks nothing, so two first-method creates could
			// both insert a default.
			if _, err := repoFactory.BuyerRepo().FindByIDForUpdate(ctx, buyer.ID); err != nil {
				return errors.Wrap(err, "failed to lock buyer for default switch")
			}
			if err := methodRepo.ClearDefaults(ctx, buyer.ID); err != nil {
				return errors.Wrap(err, "failed to clear default payment methods")
			}
		}

		method := &entity.PaymentMethod{
			BuyerID:   buyer.ID,
			Kind:      input.Kind,
			IsDefault: input.SetAsDefault,
			IsActive:  true,
		}
		if input.BankCard != nil {
			method.BankCard = entity.BankCard{
				Type:     input.BankCard.Type,
				Brand:    input.BankCard.Brand,
				Last4:    input.BankCard.Last4,
				ExpMonth: input.BankCard.ExpMonth,
				ExpYear:  input.BankCard.ExpYear,
				Name:     input.BankCard.Name,
			}
		}
		if err := methodRepo.Create(ctx, method); err != nil {
			return errors.Wrap(err, "failed to create payment method")
		}

		created = method

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Payment method creation failed", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return created, nil
}

// DeletePaymentMethod removes one of the buyer's payment methods. Deleting
// the default leaves the buyer with no default; no successor is elected.
func (srv *paymentMethodService) DeletePaymentMethod(ctx context.Context, accountID uuid.UUID, methodID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		methodRepo := repoFactory.PaymentMethodRepo()
		method, err := methodRepo.FindByID(ctx, methodID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentMethodNotFound) {
				return domainerrors.ErrPaymentMethodNotFound
			}

			return errors.Wrap(err, "failed to load payment method")
		}
		if method.BuyerID != buyer.ID {
			return domainerrors.ErrPaymentMethodNotFound
		}

		if err := methodRepo.Delete(ctx, methodID); err != nil {
			return errors.Wrap(err, "failed to delete payment method")
		}

		return nil
	})
}

// SetDefaultPaymentMethod moves the default flag to the named method using
// the same lock-clear-mark sequence as the address book.
func (srv *paymentMethodService) SetDefaultPaymentMethod(ctx context.Context, accountID uuid.UUID, methodID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		buyer, err := resolveBuyer(ctx, repoFactory.BuyerRepo(), accountID)
		if err != nil {
			return err
		}

		methodRepo := repoFactory.PaymentMethodRepo()

		methods, err := methodRepo.FindByBuyerForUpdate(ctx, buyer.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock payment methods")
		}

		owned := false
		for _, method := range methods {
			if method.ID == methodID {
				owned = true

				break
			}
		}
		if !owned {
			return domainerrors.ErrPaymentMethodNotFound
		}

		if err := methodRepo.ClearDefaults(ctx, buyer.ID); err != nil {
			return errors.Wrap(err, "failed to clear default payment methods")
		}
		if err := methodRepo.MarkDefault(ctx, methodID); err != nil {
			return errors.Wrap(err, "failed to mark default payment method")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Default payment method switch failed", slog.Any("methodID", methodID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Default payment method switched", slog.Any("methodID", methodID))

	return nil
}
