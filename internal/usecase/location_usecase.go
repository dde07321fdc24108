package usecase

import (
	"context"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationUsecase manages the Country→Region→Province→City→Barangay tree.
//
// Listings return direct children of the named parent only, ordered by name,
// optionally filtered by a case-insensitive substring match. Deletes remove
// the node and every descendant in one transaction.
type LocationUsecase interface {
	ListCountries(ctx context.Context, nameFilter string) ([]*entity.Country, error)
	CreateCountry(ctx context.Context, input *CountryInput) (*entity.Country, error)
	UpdateCountry(ctx context.Context, id uuid.UUID, input *CountryInput) (*entity.Country, error)
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	ListRegions(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]*entity.Region, error)
	CreateRegion(ctx context.Context, countryID uuid.UUID, input *LocationNodeInput) (*entity.Region, error)
	UpdateRegion(ctx context.Context, id uuid.UUID, input *LocationNodeInput) (*entity.Region, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	ListProvinces(ctx context.Context, regionID uuid.UUID, nameFilter string) ([]*entity.Province, error)
	CreateProvince(ctx context.Context, regionID uuid.UUID, input *LocationNodeInput) (*entity.Province, error)
	UpdateProvince(ctx context.Context, id uuid.UUID, input *LocationNodeInput) (*entity.Province, error)
	DeleteProvince(ctx context.Context, id uuid.UUID) error

	ListCities(ctx context.Context, provinceID uuid.UUID, nameFilter string) ([]*entity.City, error)
	CreateCity(ctx context.Context, provinceID uuid.UUID, input *LocationNodeInput) (*entity.City, error)
	UpdateCity(ctx context.Context, id uuid.UUID, input *LocationNodeInput) (*entity.City, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error

	ListBarangays(ctx context.Context, cityID uuid.UUID, nameFilter string) ([]*entity.Barangay, error)
	CreateBarangay(ctx context.Context, cityID uuid.UUID, input *LocationNodeInput) (*entity.Barangay, error)
	UpdateBarangay(ctx context.Context, id uuid.UUID, input *LocationNodeInput) (*entity.Barangay, error)
	DeleteBarangay(ctx context.Context, id uuid.UUID) error
}

// CountryInput defines the data for creating or updating a country.
type CountryInput struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code"`
	IsDefault bool   `json:"is_default"`
}

// LocationNodeInput defines the data for creating or updating any non-country
// node. The parent is carried separately on create and immutable on update.
type LocationNodeInput struct {
	Name      string `json:"name" validate:"required"`
	FullName  string `json:"full_name"`
	IsDefault bool   `json:"is_default"`
}
