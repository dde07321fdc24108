package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "palengke/internal/delivery/context"
	"palengke/internal/delivery/http/response"
	"palengke/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetBuyerProfile returns the authenticated buyer's profile.
func (h *ProfileHandler) GetBuyerProfile(c echo.Context) error {
	buyer, err := h.profileUC.GetBuyerProfile(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buyer, "")
}

// GetSellerProfile returns the authenticated seller's profile.
func (h *ProfileHandler) GetSellerProfile(c echo.Context) error {
	seller, err := h.profileUC.GetSellerProfile(c.Request().Context(), deliverycontext.GetAccountID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "")
}

// UpdateBuyerProfile applies a partial update to the authenticated buyer.
func (h *ProfileHandler) UpdateBuyerProfile(c echo.Context) error {
	var input usecase.UpdateBuyerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	buyer, err := h.profileUC.UpdateBuyerProfile(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, buyer, "Profile updated successfully")
}

// UpdateSellerProfile applies a partial update to the authenticated seller.
func (h *ProfileHandler) UpdateSellerProfile(c echo.Context) error {
	var input usecase.UpdateSellerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile update input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	seller, err := h.profileUC.UpdateSellerProfile(c.Request().Context(), deliverycontext.GetAccountID(c), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, seller, "Profile updated successfully")
}

// DeleteAccount removes the authenticated account together with its profile
// and owned records.
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	if err := h.profileUC.DeleteAccount(c.Request().Context(), deliverycontext.GetAccountID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// UploadProfilePicture accepts a multipart "picture" file and stores it for
// the authenticated account.
func (h *ProfileHandler) UploadProfilePicture(c echo.Context) error {
	filename, content, err := readUploadedFile(c, "picture")
	if err != nil {
		return err
	}

	path, err := h.profileUC.UploadProfilePicture(c.Request().Context(), deliverycontext.GetAccountID(c), filename, content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"picture_path": path}, "Profile picture uploaded successfully")
}

// readUploadedFile pulls one multipart file out of the request and returns
// its original filename with the raw bytes.
func readUploadedFile(c echo.Context, field string) (string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, response.BadRequest(c, "INVALID_INPUT", "missing "+field+" file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, response.BadRequest(c, "INVALID_INPUT", "unreadable "+field+" file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to read uploaded file")
	}

	return fileHeader.Filename, content, nil
}
