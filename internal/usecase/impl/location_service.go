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

// locationService implements the LocationUsecase interface. Creates verify
// the named parent exists before inserting, and deletes run the repository's
// explicit cascade inside one transaction.
type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for locationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mapLocationErr translates repository sentinels into delivery-facing errors.
func mapLocationErr(err error, wrap string) error {
	if errors.Is(err, repository.ErrLocationNotFound) {
		return domainerrors.ErrLocationNotFound
	}
	if errors.Is(err, repository.ErrLocationParentMissing) {
		return domainerrors.ErrLocationIntegrity
	}

	return errors.Wrap(err, wrap)
}

// --- Country ---

// ListCountries lists all countries, optionally filtered by name.
func (srv *locationService) ListCountries(ctx context.Context, nameFilter string) ([]*entity.Country, error) {
	countries, err := srv.locationRepo.Countries(ctx, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	return countries, nil
}

// CreateCountry adds a root node to the hierarchy.
func (srv *locationService) CreateCountry(ctx context.Context, input *usecase.CountryInput) (*entity.Country, error) {
	country := &entity.Country{
		Name:      input.Name,
		Code:      input.Code,
		IsDefault: input.IsDefault,
	}
	if err := srv.locationRepo.CreateCountry(ctx, country); err != nil {
		return nil, mapLocationErr(err, "failed to create country")
	}

	return country, nil
}

// UpdateCountry renames or reflags an existing country.
func (srv *locationService) UpdateCountry(ctx context.Context, id uuid.UUID, input *usecase.CountryInput) (*entity.Country, error) {
	country, err := srv.locationRepo.FindCountry(ctx, id)
	if err != nil {
		return nil, mapLocationErr(err, "failed to find country")
	}

	country.Name = input.Name
	country.Code = input.Code
	country.IsDefault = input.IsDefault
	if err := srv.locationRepo.UpdateCountry(ctx, country); err != nil {
		return nil, mapLocationErr(err, "failed to update country")
	}

	return country, nil
}

// DeleteCountry removes the country and its entire subtree atomically.
func (srv *locationService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LocationRepo().DeleteCountry(ctx, id); err != nil {
			return mapLocationErr(err, "failed to delete country")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Country cascade delete failed", slog.Any("countryID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- Region ---

// ListRegions lists the direct regions of a country.
func (srv *locationService) ListRegions(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]*entity.Region, error) {
	if _, err := srv.locationRepo.FindCountry(ctx, countryID); err != nil {
		return nil, mapLocationErr(err, "failed to find parent country")
	}

	regions, err := srv.locationRepo.RegionsByCountry(ctx, countryID, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return regions, nil
}

// CreateRegion adds a region under an existing country.
func (srv *locationService) CreateRegion(ctx context.Context, countryID uuid.UUID, input *usecase.LocationNodeInput) (*entity.Region, error) {
	if _, err := srv.locationRepo.FindCountry(ctx, countryID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationIntegrity
		}

		return nil, errors.Wrap(err, "failed to find parent country")
	}

	region := &entity.Region{
		CountryID: countryID,
		Name:      input.Name,
		FullName:  input.FullName,
		IsDefault: input.IsDefault,
	}
	if err := srv.locationRepo.CreateRegion(ctx, region); err != nil {
		return nil, mapLocationErr(err, "failed to create region")
	}

	return region, nil
}

// UpdateRegion renames or reflags an existing region. The parent is immutable.
func (srv *locationService) UpdateRegion(ctx context.Context, id uuid.UUID, input *usecase.LocationNodeInput) (*entity.Region, error) {
	region, err := srv.locationRepo.FindRegion(ctx, id)
	if err != nil {
		return nil, mapLocationErr(err, "failed to find region")
	}

	region.Name = input.Name
	region.FullName = input.FullName
	region.IsDefault = input.IsDefault
	if err := srv.locationRepo.UpdateRegion(ctx, region); err != nil {
		return nil, mapLocationErr(err, "failed to update region")
	}

	return region, nil
}

// DeleteRegion removes the region and its entire subtree atomically.
func (srv *locationService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LocationRepo().DeleteRegion(ctx, id); err != nil {
			return mapLocationErr(err, "failed to delete region")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Region cascade delete failed", slog.Any("regionID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- Province ---

// ListProvinces lists the direct provinces of a region.
func (srv *locationService) ListProvinces(ctx context.Context, regionID uuid.UUID, nameFilter string) ([]*entity.Province, error) {
	if _, err := srv.locationRepo.FindRegion(ctx, regionID); err != nil {
		return nil, mapLocationErr(err, "failed to find parent region")
	}

	provinces, err := srv.locationRepo.ProvincesByRegion(ctx, regionID, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provinces")
	}

	return provinces, nil
}

// CreateProvince adds a province under an existing region.
func (srv *locationService) CreateProvince(ctx context.Context, regionID uuid.UUID, input *usecase.LocationNodeInput) (*entity.Province, error) {
	if _, err := srv.locationRepo.FindRegion(ctx, regionID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationIntegrity
		}

		return nil, errors.Wrap(err, "failed to find parent region")
	}

	province := &entity.Province{
		RegionID:  regionID,
		Name:      input.Name,
		FullName:  input.FullName,
		IsDefault: input.IsDefault,
	}
	if err := srv.locationRepo.CreateProvince(ctx, province); err != nil {
		return nil, mapLocationErr(err, "failed to create province")
	}

	return province, nil
}

// UpdateProvince renames or reflags an existing province.
func (srv *locationService) UpdateProvince(ctx context.Context, id uuid.UUID, input *usecase.LocationNodeInput) (*entity.Province, error) {
	province, err := srv.locationRepo.FindProvince(ctx, id)
	if err != nil {
		return nil, mapLocationErr(err, "failed to find province")
	}

	province.Name = input.Name
	province.FullName = input.FullName
	province.IsDefault = input.IsDefault
	if err := srv.locationRepo.UpdateProvince(ctx, province); err != nil {
		return nil, mapLocationErr(err, "failed to update province")
	}

	return province, nil
}

// DeleteProvince removes the province and its entire subtree atomically.
func (srv *locationService) DeleteProvince(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LocationRepo().DeleteProvince(ctx, id); err != nil {
			return mapLocationErr(err, "failed to delete province")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Province cascade delete failed", slog.Any("provinceID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- City ---

// ListCities lists the direct cities of a province.
func (srv *locationService) ListCities(ctx context.Context, provinceID uuid.UUID, nameFilter string) ([]*entity.City, error) {
	if _, err := srv.locationRepo.FindProvince(ctx, provinceID); err != nil {
		return nil, mapLocationErr(err, "failed to find parent province")
	}

	cities, err := srv.locationRepo.CitiesByProvince(ctx, provinceID, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// CreateCity adds a city under an existing province.
func (srv *locationService) CreateCity(ctx context.Context, provinceID uuid.UUID, input *usecase.LocationNodeInput) (*entity.City, error) {
	if _, err := srv.locationRepo.FindProvince(ctx, provinceID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationIntegrity
		}

		return nil, errors.Wrap(err, "failed to find parent province")
	}

	city := &entity.City{
		ProvinceID: provinceID,
		Name:       input.Name,
		FullName:   input.FullName,
		IsDefault:  input.IsDefault,
	}
	if err := srv.locationRepo.CreateCity(ctx, city); err != nil {
		return nil, mapLocationErr(err, "failed to create city")
	}

	return city, nil
}

// UpdateCity renames or reflags an existing city.
func (srv *locationService) UpdateCity(ctx context.Context, id uuid.UUID, input *usecase.LocationNodeInput) (*entity.City, error) {
	city, err := srv.locationRepo.FindCity(ctx, id)
	if err != nil {
		return nil, mapLocationErr(err, "failed to find city")
	}

	city.Name = input.Name
	city.FullName = input.FullName
	city.IsDefault = input.IsDefault
	if err := srv.locationRepo.UpdateCity(ctx, city); err != nil {
		return nil, mapLocationErr(err, "failed to update city")
	}

	return city, nil
}

// DeleteCity removes the city and its barangays atomically.
func (srv *locationService) DeleteCity(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LocationRepo().DeleteCity(ctx, id); err != nil {
			return mapLocationErr(err, "failed to delete city")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("City cascade delete failed", slog.Any("cityID", id), slog.Any("error", err))

		return err
	}

	return nil
}

// --- Barangay ---

// ListBarangays lists the direct barangays of a city.
func (srv *locationService) ListBarangays(ctx context.Context, cityID uuid.UUID, nameFilter string) ([]*entity.Barangay, error) {
	if _, err := srv.locationRepo.FindCity(ctx, cityID); err != nil {
		return nil, mapLocationErr(err, "failed to find parent city")
	}

	barangays, err := srv.locationRepo.BarangaysByCity(ctx, cityID, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list barangays")
	}

	return barangays, nil
}

// CreateBarangay adds a barangay under an existing city.
func (srv *locationService) CreateBarangay(ctx context.Context, cityID uuid.UUID, input *usecase.LocationNodeInput) (*entity.Barangay, error) {
	if _, err := srv.locationRepo.FindCity(ctx, cityID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationIntegrity
		}

		return nil, errors.Wrap(err, "failed to find parent city")
	}

	barangay := &entity.Barangay{
		CityID:    cityID,
		Name:      input.Name,
		FullName:  input.FullName,
		IsDefault: input.IsDefault,
	}
	if err := srv.locationRepo.CreateBarangay(ctx, barangay); err != nil {
		return nil, mapLocationErr(err, "failed to create barangay")
	}

	return barangay, nil
}

// UpdateBarangay renames or reflags an existing barangay.
func (srv *locationService) UpdateBarangay(ctx context.Context, id uuid.UUID, input *usecase.LocationNodeInput) (*entity.Barangay, error) {
	barangay, err := srv.locationRepo.FindBarangay(ctx, id)
	if err != nil {
		return nil, mapLocationErr(err, "failed to find barangay")
	}

	barangay.Name = input.Name
	barangay.FullName = input.FullName
	barangay.IsDefault = input.IsDefault
	if err := srv.locationRepo.UpdateBarangay(ctx, barangay); err != nil {
		return nil, mapLocationErr(err, "failed to update barangay")
	}

	return barangay, nil
}

// DeleteBarangay removes a leaf barangay.
func (srv *locationService) DeleteBarangay(ctx context.Context, id uuid.UUID) error {
	if err := srv.locationRepo.DeleteBarangay(ctx, id); err != nil {
		return mapLocationErr(err, "failed to delete barangay")
	}

	return nil
}
