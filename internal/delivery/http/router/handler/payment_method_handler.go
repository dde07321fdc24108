package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/delivery/http/response"
	"palengke/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PaymentMethodHandlerParams holds dependencies for PaymentMethodHandler,
// injected by Fx.
type PaymentMethodHandlerParams struct {
	fx.In

	MethodUC usecase.PaymentMethodUsecase
	Logger   *slog.Logger
}

// PaymentMethodHandler holds dependencies for payment method handlers.
type PaymentMethodHandler struct {
	methodUC usecase.PaymentMethodUsecase
	logger   *slog.Logger
}

// NewPaymentMethodHandler is the constructor for PaymentMethodHandler.
func NewPaymentMethodHandler(params PaymentMethodHandlerParams) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		methodUC: params.MethodUC,
		logger:   params.Logger,
	}
}

// ListPaymentMethods returns the buyer's saved payment methods, default first.
func (h *PaymentMethodHandler) ListPaymentMethods(c echo.Context) error {
	methods, err := h.methodUC.ListPaymentMethods(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, methods, "")
}

// GetDefaultPaymentMethod returns the buyer's current default payment method.
func (h *PaymentMethodHandler) GetDefaultPaymentMethod(c echo.Context) error {
	method, err := h.methodUC.GetDefaultPaymentMethod(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, method, "")
}

// CreatePaymentMethod adds a payment method to the buyer's wallet.
func (h *PaymentMethodHandler) CreatePaymentMethod(c echo.Context) error {
	var input usecase.PaymentMethodInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment method input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	method, err := h.methodUC.CreatePaymentMethod(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, method, "Payment method created successfully")
}

// DeletePaymentMethod removes one of the buyer's payment methods.
func (h *PaymentMethodHandler) DeletePaymentMethod(c echo.Context) error {
	methodID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.methodUC.DeletePaymentMethod(c.Request().Context(), deliverycontext.GetAccountID(c), methodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Payment method deleted successfully")
}

// SetDefaultPaymentMethod moves the default flag to the named payment method.
func (h *PaymentMethodHandler) SetDefaultPaymentMethod(c echo.Context) error {
	methodID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.methodUC.SetDefaultPaymentMethod(c.Request().Context(), deliverycontext.GetAccountID(c), methodID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default payment method updated successfully")
}
