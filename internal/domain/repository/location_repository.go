package repository

import (
	"context"
	"errors"

	"palengke/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for the geographic hierarchy.
var (
	// ErrLocationNotFound is returned when a hierarchy node is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrLocationParentMissing is returned when a node references a parent
	// that does not exist at the level above it.
	ErrLocationParentMissing = errors.New("location parent does not exist")
)

// LocationRepository owns the Country→Region→Province→City→Barangay tree.
//
// Child listings return direct children only, ordered by name, optionally
// filtered by case-insensitive substring match. Deletes cascade transitively
// to all descendants, deepest level first, within the caller's transaction.
type LocationRepository interface {
	// Countries lists all countries, optionally filtered by name.
	Countries(ctx context.Context, nameFilter string) ([]*entity.Country, error)
	FindCountry(ctx context.Context, id uuid.UUID) (*entity.Country, error)
	CreateCountry(ctx context.Context, country *entity.Country) error
	UpdateCountry(ctx context.Context, country *entity.Country) error
	// DeleteCountry removes the country and every region, province, city and
	// barangay under it.
	DeleteCountry(ctx context.Context, id uuid.UUID) error

	// RegionsByCountry lists the direct regions of a country.
	RegionsByCountry(ctx context.Context, countryID uuid.UUID, nameFilter string) ([]*entity.Region, error)
	FindRegion(ctx context.Context, id uuid.UUID) (*entity.Region, error)
	CreateRegion(ctx context.Context, region *entity.Region) error
	UpdateRegion(ctx context.Context, region *entity.Region) error
	DeleteRegion(ctx context.Context, id uuid.UUID) error

	// ProvincesByRegion lists the direct provinces of a region.
	ProvincesByRegion(ctx context.Context, regionID uuid.UUID, nameFilter string) ([]*entity.Province, error)
	FindProvince(ctx context.Context, id uuid.UUID) (*entity.Province, error)
	CreateProvince(ctx context.Context, province *entity.Province) error
	UpdateProvince(ctx context.Context, province *entity.Province) error
	DeleteProvince(ctx context.Context, id uuid.UUID) error

	// CitiesByProvince lists the direct cities of a province.
	CitiesByProvince(ctx context.Context, provinceID uuid.UUID, nameFilter string) ([]*entity.City, error)
	FindCity(ctx context.Context, id uuid.UUID) (*entity.City, error)
	CreateCity(ctx context.Context, city *entity.City) error
	UpdateCity(ctx context.Context, city *entity.City) error
	DeleteCity(ctx context.Context, id uuid.UUID) error

	// BarangaysByCity lists the direct barangays of a city.
	BarangaysByCity(ctx context.Context, cityID uuid.UUID, nameFilter string) ([]*entity.Barangay, error)
	FindBarangay(ctx context.Context, id uuid.UUID) (*entity.Barangay, error)
	CreateBarangay(ctx context.Context, barangay *entity.Barangay) error
	UpdateBarangay(ctx context.Context, barangay *entity.Barangay) error
	DeleteBarangay(ctx context.Context, id uuid.UUID) error
}
