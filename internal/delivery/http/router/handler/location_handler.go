package handler

import (
	"log/slog"
	"net/http"

	"palengke/internal/delivery/http/response"
	"palengke/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler exposes the geographic hierarchy over HTTP. Listings are
// public; mutations are wired behind the admin role by the router.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler.
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

func (h *LocationHandler) ListCountries(c echo.Context) error {
	countries, err := h.locationUC.ListCountries(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, countries, "")
}

func (h *LocationHandler) CreateCountry(c echo.Context) error {
	var input usecase.CountryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	country, err := h.locationUC.CreateCountry(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, country, "Country created successfully")
}

func (h *LocationHandler) UpdateCountry(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.CountryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid country input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	country, err := h.locationUC.UpdateCountry(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, country, "Country updated successfully")
}

func (h *LocationHandler) DeleteCountry(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteCountry(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Country deleted successfully")
}

func (h *LocationHandler) ListRegions(c echo.Context) error {
	countryID, err := parseIDParam(c, "countryID")
	if err != nil {
		return err
	}

	regions, err := h.locationUC.ListRegions(c.Request().Context(), countryID, c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "")
}

func (h *LocationHandler) CreateRegion(c echo.Context) error {
	countryID, err := parseIDParam(c, "countryID")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	region, err := h.locationUC.CreateRegion(c.Request().Context(), countryID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, region, "Region created successfully")
}

func (h *LocationHandler) UpdateRegion(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	region, err := h.locationUC.UpdateRegion(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, region, "Region updated successfully")
}

func (h *LocationHandler) DeleteRegion(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteRegion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Region deleted successfully")
}

func (h *LocationHandler) ListProvinces(c echo.Context) error {
	regionID, err := parseIDParam(c, "regionID")
	if err != nil {
		return err
	}

	provinces, err := h.locationUC.ListProvinces(c.Request().Context(), regionID, c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provinces, "")
}

func (h *LocationHandler) CreateProvince(c echo.Context) error {
	regionID, err := parseIDParam(c, "regionID")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	province, err := h.locationUC.CreateProvince(c.Request().Context(), regionID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, province, "Province created successfully")
}

func (h *LocationHandler) UpdateProvince(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	province, err := h.locationUC.UpdateProvince(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, province, "Province updated successfully")
}

func (h *LocationHandler) DeleteProvince(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteProvince(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Province deleted successfully")
}

func (h *LocationHandler) ListCities(c echo.Context) error {
	provinceID, err := parseIDParam(c, "provinceID")
	if err != nil {
		return err
	}

	cities, err := h.locationUC.ListCities(c.Request().Context(), provinceID, c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}

func (h *LocationHandler) CreateCity(c echo.Context) error {
	provinceID, err := parseIDParam(c, "provinceID")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	city, err := h.locationUC.CreateCity(c.Request().Context(), provinceID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, city, "City created successfully")
}

func (h *LocationHandler) UpdateCity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	city, err := h.locationUC.UpdateCity(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "City updated successfully")
}

func (h *LocationHandler) DeleteCity(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteCity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "City deleted successfully")
}

func (h *LocationHandler) ListBarangays(c echo.Context) error {
	cityID, err := parseIDParam(c, "cityID")
	if err != nil {
		return err
	}

	barangays, err := h.locationUC.ListBarangays(c.Request().Context(), cityID, c.QueryParam("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, barangays, "")
}

func (h *LocationHandler) CreateBarangay(c echo.Context) error {
	cityID, err := parseIDParam(c, "cityID")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	barangay, err := h.locationUC.CreateBarangay(c.Request().Context(), cityID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, barangay, "Barangay created successfully")
}

func (h *LocationHandler) UpdateBarangay(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	input, err := bindLocationNode(c)
	if err != nil {
		return err
	}

	barangay, err := h.locationUC.UpdateBarangay(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, barangay, "Barangay updated successfully")
}

func (h *LocationHandler) DeleteBarangay(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.locationUC.DeleteBarangay(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Barangay deleted successfully")
}

func bindLocationNode(c echo.Context) (*usecase.LocationNodeInput, error) {
	var input usecase.LocationNodeInput
	if err := c.Bind(&input); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return &input, nil
}
