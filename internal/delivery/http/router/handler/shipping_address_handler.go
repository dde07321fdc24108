package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/delivery/http/response"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// parseIDParam reads a UUID path parameter, failing with a 400 on garbage.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" parameter")
	}

	return id, nil
}

// ShippingAddressHandlerParams holds dependencies for ShippingAddressHandler,
// injected by Fx.
type ShippingAddressHandlerParams struct {
	fx.In

	AddressUC usecase.ShippingAddressUsecase
	Logger    *slog.Logger
}

// ShippingAddressHandler holds dependencies for address book handlers.
type ShippingAddressHandler struct {
	addressUC usecase.ShippingAddressUsecase
	logger    *slog.Logger
}

// NewShippingAddressHandler is the constructor for ShippingAddressHandler.
func NewShippingAddressHandler(params ShippingAddressHandlerParams) *ShippingAddressHandler {
	return &ShippingAddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses returns the authenticated buyer's address book, default first.
func (h *ShippingAddressHandler) ListAddresses(c echo.Context) error {
	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "")
}

// GetDefaultAddress returns the buyer's current default address.
func (h *ShippingAddressHandler) GetDefaultAddress(c echo.Context) error {
	address, err := h.addressUC.GetDefaultAddress(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "")
}

// CreateAddress adds an address to the buyer's book.
func (h *ShippingAddressHandler) CreateAddress(c echo.Context) error {
	var input usecase.ShippingAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address created successfully")
}

// UpdateAddress applies a partial update to one of the buyer's addresses.
func (h *ShippingAddressHandler) UpdateAddress(c echo.Context) error {
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateShippingAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address update input")
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), deliverycontext.GetAccountID(c), addressID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// DeleteAddress removes one of the buyer's addresses.
func (h *ShippingAddressHandler) DeleteAddress(c echo.Context) error {
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), deliverycontext.GetAccountID(c), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// SetDefaultAddress moves the default flag to the named address.
func (h *ShippingAddressHandler) SetDefaultAddress(c echo.Context) error {
	addressID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.addressUC.SetDefaultAddress(c.Request().Context(), deliverycontext.GetAccountID(c), addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address updated successfully")
}
