package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/delivery/http/response"
	"palengke/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler holds dependencies for shop-related handlers.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// CreateShop provisions the shop for a seller that registered without one.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	var input usecase.ShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, shop, "Shop created successfully")
}

// GetShop returns the authenticated seller's shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shop, err := h.shopUC.GetShop(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "")
}

// UpdateShop applies a partial update to the authenticated seller's shop.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	var input usecase.UpdateShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop update input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop updated successfully")
}

// UploadShopPicture accepts a multipart "picture" file for one of the shop's
// three picture slots.
func (h *ShopHandler) UploadShopPicture(c echo.Context) error {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "picture slot must be a number")
	}

	filename, content, err := readUploadedFile(c, "picture")
	if err != nil {
		return err
	}

	shop, err := h.shopUC.UploadShopPicture(c.Request().Context(), deliverycontext.GetAccountID(c), slot, filename, content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, shop, "Shop picture uploaded successfully")
}

// DeleteShop removes the authenticated seller's shop.
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	if err := h.shopUC.DeleteShop(c.Request().Context(), deliverycontext.GetAccountID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted successfully")
}
