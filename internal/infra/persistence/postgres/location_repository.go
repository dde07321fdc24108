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

// locationRepository implements the repository.LocationRepository interface
// using GORM. Cascade deletes are issued explicitly, deepest level first, so
// they run inside the caller's transaction and never rely on database-side
// ON DELETE CASCADE behavior.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// withNameFilter narrows a listing to names containing the filter,
// case-insensitively. An empty filter matches everything.
func withNameFilter(tx *gorm.DB, nameFilter string) *gorm.DB {
	if nameFilter == "" {
		return tx
	}

	return tx.Where("name ILIKE ?", "%"+nameFilter+"%")
}

// --- Country ---

// Countries lists all countries ordered by name, optionally filtered.
func (repo *locationRepository) Countries(ctx context.Context, nameFilter string) ([]*entity.Country, error) {
	var models []*model.CountryModel
	tx := withNameFilter(repo.db.WithContext(ctx), nameFilter)
	if err := tx.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(models))
	for _, m := range models {
		countries = append(countries, toCountryDomain(m))
	}

	return countries, nil
}

// FindCountry retrieves a country by its unique ID.
func (repo *locationRepository) FindCountry(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	var countryM model.CountryModel
	if err := repo.db.WithContext(ctx).First(&countryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find country")
	}

	return toCountryDomain(&countryM), nil
}

// CreateCountry persists a new country.
func (repo *locationRepository) CreateCountry(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)
	if err := repo.db.WithContext(ctx).Create(countryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create country")
	}

	country.ID = countryM.ID
	country.CreatedAt = countryM.CreatedAt
	country.UpdatedAt = countryM.UpdatedAt

	return nil
}

// UpdateCountry modifies an existing country.
func (repo *locationRepository) UpdateCountry(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)
	if err := repo.db.WithContext(ctx).Save(countryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update country")
	}

	country.UpdatedAt = countryM.UpdatedAt

	return nil
}

// DeleteCountry removes the country and every node beneath it. Barangays go
// first, then cities, provinces, regions and finally the country itself, so
// the RESTRICT foreign keys are never violated mid-cascade.
func (repo *locationRepository) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	regionIDs := db.Model(&model.RegionModel{}).Select("id").Where("country_id = ?", id)
	provinceIDs := db.Model(&model.ProvinceModel{}).Select("id").Where("region_id IN (?)", regionIDs)
	cityIDs := db.Model(&model.CityModel{}).Select("id").Where("province_id IN (?)", provinceIDs)

	if err := db.Where("city_id IN (?)", cityIDs).Delete(&model.BarangayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete barangays")
	}
	if err := db.Where("province_id IN (?)", provinceIDs).Delete(&model.CityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete cities")
	}
	if err := db.Where("region_id IN (?)", regionIDs).Delete(&model.ProvinceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete provinces")
	}
	if err := db.Where("country_id = ?", id).Delete(&model.RegionModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete regions")
	}

	result := db.Delete(&model.CountryModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete country")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Region ---

// RegionsByCountry lists the direct regions of a country ordered by name.
func (repo *locationRepository) RegionsByCountry(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]*entity.Region, error) {
	var models []*model.RegionModel
	tx := withNameFilter(repo.db.WithContext(ctx).Where("country_id = ?", countryID), nameFilter)
	if err := tx.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(models))
	for _, m := range models {
		regions = append(regions, toRegionDomain(m))
	}

	return regions, nil
}

// FindRegion retrieves a region by its unique ID.
func (repo *locationRepository) FindRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).First(&regionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find region")
	}

	return toRegionDomain(&regionM), nil
}

// CreateRegion persists a new region under an existing country.
func (repo *locationRepository) CreateRegion(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)
	regionM.Country = nil
	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// UpdateRegion modifies an existing region.
func (repo *locationRepository) UpdateRegion(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)
	regionM.Country = nil
	if err := repo.db.WithContext(ctx).Save(regionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update region")
	}

	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// DeleteRegion removes the region and every province, city and barangay under it.
func (repo *locationRepository) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	provinceIDs := db.Model(&model.ProvinceModel{}).Select("id").Where("region_id = ?", id)
	cityIDs := db.Model(&model.CityModel{}).Select("id").Where("province_id IN (?)", provinceIDs)

	if err := db.Where("city_id IN (?)", cityIDs).Delete(&model.BarangayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete barangays")
	}
	if err := db.Where("province_id IN (?)", provinceIDs).Delete(&model.CityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete cities")
	}
	if err := db.Where("region_id = ?", id).Delete(&model.ProvinceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete provinces")
	}

	result := db.Delete(&model.RegionModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Province ---

// ProvincesByRegion lists the direct provinces of a region ordered by name.
func (repo *locationRepository) ProvincesByRegion(ctx context.Context, regionID uuid.UUID, nameFilter string) ([]*entity.Province, error) {
	var models []*model.ProvinceModel
	tx := withNameFilter(repo.db.WithContext(ctx).Where("region_id = ?", regionID), nameFilter)
	if err := tx.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list provinces")
	}

	provinces := make([]*entity.Province, 0, len(models))
	for _, m := range models {
		provinces = append(provinces, toProvinceDomain(m))
	}

	return provinces, nil
}

// FindProvince retrieves a province by its unique ID.
func (repo *locationRepository) FindProvince(ctx context.Context, id uuid.UUID) (*entity.Province, error) {
	var provinceM model.ProvinceModel
	if err := repo.db.WithContext(ctx).First(&provinceM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find province")
	}

	return toProvinceDomain(&provinceM), nil
}

// CreateProvince persists a new province under an existing region.
func (repo *locationRepository) CreateProvince(ctx context.Context, province *entity.Province) error {
	provinceM := fromProvinceDomain(province)
	provinceM.Region = nil
	if err := repo.db.WithContext(ctx).Create(provinceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create province")
	}

	province.ID = provinceM.ID
	province.CreatedAt = provinceM.CreatedAt
	province.UpdatedAt = provinceM.UpdatedAt

	return nil
}

// UpdateProvince modifies an existing province.
func (repo *locationRepository) UpdateProvince(ctx context.Context, province *entity.Province) error {
	provinceM := fromProvinceDomain(province)
	provinceM.Region = nil
	if err := repo.db.WithContext(ctx).Save(provinceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update province")
	}

	province.UpdatedAt = provinceM.UpdatedAt

	return nil
}

// DeleteProvince removes the province and every city and barangay under it.
func (repo *locationRepository) DeleteProvince(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	cityIDs := db.Model(&model.CityModel{}).Select("id").Where("province_id = ?", id)

	if err := db.Where("city_id IN (?)", cityIDs).Delete(&model.BarangayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete barangays")
	}
	if err := db.Where("province_id = ?", id).Delete(&model.CityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete cities")
	}

	result := db.Delete(&model.ProvinceModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete province")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- City ---

// CitiesByProvince lists the direct cities of a province ordered by name.
func (repo *locationRepository) CitiesByProvince(ctx context.Context, provinceID uuid.UUID, nameFilter string) ([]*entity.City, error) {
	var models []*model.CityModel
	tx := withNameFilter(repo.db.WithContext(ctx).Where("province_id = ?", provinceID), nameFilter)
	if err := tx.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(models))
	for _, m := range models {
		cities = append(cities, toCityDomain(m))
	}

	return cities, nil
}

// FindCity retrieves a city by its unique ID.
func (repo *locationRepository) FindCity(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var cityM model.CityModel
	if err := repo.db.WithContext(ctx).First(&cityM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return toCityDomain(&cityM), nil
}

// CreateCity persists a new city under an existing province.
func (repo *locationRepository) CreateCity(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)
	cityM.Province = nil
	if err := repo.db.WithContext(ctx).Create(cityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	city.ID = cityM.ID
	city.CreatedAt = cityM.CreatedAt
	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

// UpdateCity modifies an existing city.
func (repo *locationRepository) UpdateCity(ctx context.Context, city *entity.City) error {
	cityM := fromCityDomain(city)
	cityM.Province = nil
	if err := repo.db.WithContext(ctx).Save(cityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update city")
	}

	city.UpdatedAt = cityM.UpdatedAt

	return nil
}

// DeleteCity removes the city and every barangay under it.
func (repo *locationRepository) DeleteCity(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("city_id = ?", id).Delete(&model.BarangayModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to cascade delete barangays")
	}

	result := db.Delete(&model.CityModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete city")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Barangay ---

// BarangaysByCity lists the direct barangays of a city ordered by name.
func (repo *locationRepository) BarangaysByCity(ctx context.Context, cityID uuid.UUID, nameFilter string) ([]*entity.Barangay, error) {
	var models []*model.BarangayModel
	tx := withNameFilter(repo.db.WithContext(ctx).Where("city_id = ?", cityID), nameFilter)
	if err := tx.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list barangays")
	}

	barangays := make([]*entity.Barangay, 0, len(models))
	for _, m := range models {
		barangays = append(barangays, toBarangayDomain(m))
	}

	return barangays, nil
}

// FindBarangay retrieves a barangay by its unique ID.
func (repo *locationRepository) FindBarangay(ctx context.Context, id uuid.UUID) (*entity.Barangay, error) {
	var barangayM model.BarangayModel
	if err := repo.db.WithContext(ctx).First(&barangayM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find barangay")
	}

	return toBarangayDomain(&barangayM), nil
}

// CreateBarangay persists a new barangay under an existing city.
func (repo *locationRepository) CreateBarangay(ctx context.Context, barangay *entity.Barangay) error {
	barangayM := fromBarangayDomain(barangay)
	barangayM.City = nil
	if err := repo.db.WithContext(ctx).Create(barangayM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create barangay")
	}

	barangay.ID = barangayM.ID
	barangay.CreatedAt = barangayM.CreatedAt
	barangay.UpdatedAt = barangayM.UpdatedAt

	return nil
}

// UpdateBarangay modifies an existing barangay.
func (repo *locationRepository) UpdateBarangay(ctx context.Context, barangay *entity.Barangay) error {
	barangayM := fromBarangayDomain(barangay)
	barangayM.City = nil
	if err := repo.db.WithContext(ctx).Save(barangayM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationParentMissing
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update barangay")
	}

	barangay.UpdatedAt = barangayM.UpdatedAt

	return nil
}

// DeleteBarangay removes a leaf barangay.
func (repo *locationRepository) DeleteBarangay(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.BarangayModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete barangay")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCountryDomain(data *entity.Country) *model.CountryModel {
	if data == nil {
		return nil
	}

	return &model.CountryModel{
		ID:        data.ID,
		Name:      data.Name,
		Code:      data.Code,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	return &entity.Region{
		ID:        data.ID,
		CountryID: data.CountryID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromRegionDomain(data *entity.Region) *model.RegionModel {
	if data == nil {
		return nil
	}

	return &model.RegionModel{
		ID:        data.ID,
		CountryID: data.CountryID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toProvinceDomain(data *model.ProvinceModel) *entity.Province {
	if data == nil {
		return nil
	}

	return &entity.Province{
		ID:        data.ID,
		RegionID:  data.RegionID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProvinceDomain(data *entity.Province) *model.ProvinceModel {
	if data == nil {
		return nil
	}

	return &model.ProvinceModel{
		ID:        data.ID,
		RegionID:  data.RegionID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:         data.ID,
		ProvinceID: data.ProvinceID,
		Name:       data.Name,
		FullName:   data.FullName,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCityDomain(data *entity.City) *model.CityModel {
	if data == nil {
		return nil
	}

	return &model.CityModel{
		ID:         data.ID,
		ProvinceID: data.ProvinceID,
		Name:       data.Name,
		FullName:   data.FullName,
		IsDefault:  data.IsDefault,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toBarangayDomain(data *model.BarangayModel) *entity.Barangay {
	if data == nil {
		return nil
	}

	return &entity.Barangay{
		ID:        data.ID,
		CityID:    data.CityID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromBarangayDomain(data *entity.Barangay) *model.BarangayModel {
	if data == nil {
		return nil
	}

	return &model.BarangayModel{
		ID:        data.ID,
		CityID:    data.CityID,
		Name:      data.Name,
		FullName:  data.FullName,
		IsDefault: data.IsDefault,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
