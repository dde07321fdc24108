package impl

import (
	"context"
	"testing"

	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service usecase.LocationUsecase
	store   *fakeStore
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	t.Helper()

	store := newFakeStore()
	service := NewLocationService(LocationServiceParams{
		TxManager:    &fakeTxManager{store: store},
		LocationRepo: &fakeLocationRepo{store: store},
		Logger:       newTestLogger(),
	})

	return locationServiceFixtures{service: service, store: store}
}

// seedHierarchy builds one full branch: PH → NCR → Metro Manila → Manila → Malate.
func seedHierarchy(t *testing.T, f locationServiceFixtures) (*entity.Country, *entity.Region, *entity.Province, *entity.City, *entity.Barangay) {
	t.Helper()
	ctx := context.Background()

	country, err := f.service.CreateCountry(ctx, &usecase.CountryInput{Name: "Philippines", Code: "PH", IsDefault: true})
	require.NoError(t, err)
	region, err := f.service.CreateRegion(ctx, country.ID, &usecase.LocationNodeInput{Name: "NCR", FullName: "National Capital Region"})
	require.NoError(t, err)
	province, err := f.service.CreateProvince(ctx, region.ID, &usecase.LocationNodeInput{Name: "Metro Manila"})
	require.NoError(t, err)
	city, err := f.service.CreateCity(ctx, province.ID, &usecase.LocationNodeInput{Name: "Manila"})
	require.NoError(t, err)
	barangay, err := f.service.CreateBarangay(ctx, city.ID, &usecase.LocationNodeInput{Name: "Malate"})
	require.NoError(t, err)

	return country, region, province, city, barangay
}

func TestLocationService_HierarchyContainment(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	country, region, province, city, barangay := seedHierarchy(t, f)

	assert.Equal(t, country.ID, region.CountryID)
	assert.Equal(t, region.ID, province.RegionID)
	assert.Equal(t, province.ID, city.ProvinceID)
	assert.Equal(t, city.ID, barangay.CityID)

	regions, err := f.service.ListRegions(ctx, country.ID, "")
	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, region.ID, regions[0].ID)
}

func TestLocationService_ListReturnsDirectChildrenOnly(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	country, _, _, _, _ := seedHierarchy(t, f)

	other, err := f.service.CreateCountry(ctx, &usecase.CountryInput{Name: "Singapore", Code: "SG"})
	require.NoError(t, err)
	_, err = f.service.CreateRegion(ctx, other.ID, &usecase.LocationNodeInput{Name: "Central"})
	require.NoError(t, err)

	regions, err := f.service.ListRegions(ctx, country.ID, "")
	require.NoError(t, err)
	require.Len(t, regions, 1, "another country's regions must not leak in")
	assert.Equal(t, "NCR", regions[0].Name)
}

func TestLocationService_ListNameFilterIsCaseInsensitive(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	country, _, _, _, _ := seedHierarchy(t, f)

	_, err := f.service.CreateRegion(ctx, country.ID, &usecase.LocationNodeInput{Name: "Calabarzon"})
	require.NoError(t, err)

	matches, err := f.service.ListRegions(ctx, country.ID, "ncr")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "NCR", matches[0].Name)

	matches, err = f.service.ListRegions(ctx, country.ID, "ZON")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Calabarzon", matches[0].Name)
}

func TestLocationService_ListCountriesOrderedByName(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()

	_, err := f.service.CreateCountry(ctx, &usecase.CountryInput{Name: "Vietnam", Code: "VN"})
	require.NoError(t, err)
	_, err = f.service.CreateCountry(ctx, &usecase.CountryInput{Name: "Indonesia", Code: "ID"})
	require.NoError(t, err)

	countries, err := f.service.ListCountries(ctx, "")
	require.NoError(t, err)
	require.Len(t, countries, 2)
	assert.Equal(t, "Indonesia", countries[0].Name)
	assert.Equal(t, "Vietnam", countries[1].Name)
}

func TestLocationService_CreateUnderMissingParent(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()

	_, err := f.service.CreateRegion(ctx, uuid.New(), &usecase.LocationNodeInput{Name: "Orphan"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationIntegrity)

	_, err = f.service.CreateBarangay(ctx, uuid.New(), &usecase.LocationNodeInput{Name: "Orphan"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationIntegrity)
}

func TestLocationService_ListUnderMissingParent(t *testing.T) {
	f := createTestLocationService(t)

	_, err := f.service.ListRegions(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_UpdateKeepsParent(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	country, region, _, _, _ := seedHierarchy(t, f)

	updated, err := f.service.UpdateRegion(ctx, region.ID, &usecase.LocationNodeInput{
		Name:     "NCR Renamed",
		FullName: "National Capital Region",
	})
	require.NoError(t, err)
	assert.Equal(t, "NCR Renamed", updated.Name)
	assert.Equal(t, country.ID, updated.CountryID, "parent link is immutable")
}

func TestLocationService_UpdateMissingNode(t *testing.T) {
	f := createTestLocationService(t)

	_, err := f.service.UpdateCity(context.Background(), uuid.New(), &usecase.LocationNodeInput{Name: "Nowhere"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_DeleteCountryCascades(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	country, _, _, _, _ := seedHierarchy(t, f)

	require.NoError(t, f.service.DeleteCountry(ctx, country.ID))

	assert.Empty(t, f.store.countries)
	assert.Empty(t, f.store.regions)
	assert.Empty(t, f.store.provinces)
	assert.Empty(t, f.store.cities)
	assert.Empty(t, f.store.barangays)
}

func TestLocationService_DeleteCityCascadesBarangaysOnly(t *testing.T) {
	f := createTestLocationService(t)
	ctx := context.Background()
	_, _, province, city, _ := seedHierarchy(t, f)

	require.NoError(t, f.service.DeleteCity(ctx, city.ID))

	assert.Empty(t, f.store.cities)
	assert.Empty(t, f.store.barangays)
	assert.Contains(t, f.store.provinces, province.ID, "ancestors survive the cascade")
}

func TestLocationService_DeleteMissingNode(t *testing.T) {
	f := createTestLocationService(t)

	err := f.service.DeleteProvince(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}
