package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"palengke/internal/domain/entity"
	domainerrors "palengke/internal/domain/errors"
	"palengke/internal/domain/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory stand-in for the persistence layer. All fake
// repositories share one store so cross-repository flows behave like a single
// database. The transaction manager snapshots the store before each Execute
// and restores it on error, which is what makes the rollback tests meaningful.
type fakeStore struct {
	accounts  map[uuid.UUID]*entity.Account
	buyers    map[uuid.UUID]*entity.Buyer
	sellers   map[uuid.UUID]*entity.Seller
	shops     map[uuid.UUID]*entity.Shop
	addresses map[uuid.UUID]*entity.ShippingAddress
	methods   map[uuid.UUID]*entity.PaymentMethod

	countries map[uuid.UUID]*entity.Country
	regions   map[uuid.UUID]*entity.Region
	provinces map[uuid.UUID]*entity.Province
	cities    map[uuid.UUID]*entity.City
	barangays map[uuid.UUID]*entity.Barangay

	failShopCreate bool
	buyerLocks     int
	clock          time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  make(map[uuid.UUID]*entity.Account),
		buyers:    make(map[uuid.UUID]*entity.Buyer),
		sellers:   make(map[uuid.UUID]*entity.Seller),
		shops:     make(map[uuid.UUID]*entity.Shop),
		addresses: make(map[uuid.UUID]*entity.ShippingAddress),
		methods:   make(map[uuid.UUID]*entity.PaymentMethod),
		countries: make(map[uuid.UUID]*entity.Country),
		regions:   make(map[uuid.UUID]*entity.Region),
		provinces: make(map[uuid.UUID]*entity.Province),
		cities:    make(map[uuid.UUID]*entity.City),
		barangays: make(map[uuid.UUID]*entity.Barangay),
		clock:     time.Now(),
	}
}

// tick returns a strictly increasing timestamp so creation order is stable.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)

	return s.clock
}

type storeSnapshot struct {
	accounts  map[uuid.UUID]*entity.Account
	buyers    map[uuid.UUID]*entity.Buyer
	sellers   map[uuid.UUID]*entity.Seller
	shops     map[uuid.UUID]*entity.Shop
	addresses map[uuid.UUID]*entity.ShippingAddress
	methods   map[uuid.UUID]*entity.PaymentMethod
	countries map[uuid.UUID]*entity.Country
	regions   map[uuid.UUID]*entity.Region
	provinces map[uuid.UUID]*entity.Province
	cities    map[uuid.UUID]*entity.City
	barangays map[uuid.UUID]*entity.Barangay
}

// copyMap clones the map and the entity structs it points to, so in-place
// field mutations during a failed Execute do not leak into the snapshot.
// Nested entity pointers stay shared; the fakes re-attach them on every read.
func copyMap[K comparable, V any](src map[K]*V) map[K]*V {
	dst := make(map[K]*V, len(src))
	for k, v := range src {
		clone := *v
		dst[k] = &clone
	}

	return dst
}

func (s *fakeStore) snapshot() storeSnapshot {
	return storeSnapshot{
		accounts:  copyMap(s.accounts),
		buyers:    copyMap(s.buyers),
		sellers:   copyMap(s.sellers),
		shops:     copyMap(s.shops),
		addresses: copyMap(s.addresses),
		methods:   copyMap(s.methods),
		countries: copyMap(s.countries),
		regions:   copyMap(s.regions),
		provinces: copyMap(s.provinces),
		cities:    copyMap(s.cities),
		barangays: copyMap(s.barangays),
	}
}

func (s *fakeStore) restore(snap storeSnapshot) {
	s.accounts = snap.accounts
	s.buyers = snap.buyers
	s.sellers = snap.sellers
	s.shops = snap.shops
	s.addresses = snap.addresses
	s.methods = snap.methods
	s.countries = snap.countries
	s.regions = snap.regions
	s.provinces = snap.provinces
	s.cities = snap.cities
	s.barangays = snap.barangays
}

// --- transaction manager ---

type fakeTxManager struct {
	store *fakeStore
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	snap := m.store.snapshot()
	if err := fn(&fakeFactory{store: m.store}); err != nil {
		m.store.restore(snap)

		return err
	}

	return nil
}

type fakeFactory struct {
	store *fakeStore
}

func (f *fakeFactory) AccountRepo() repository.AccountRepository {
	return &fakeAccountRepo{store: f.store}
}

func (f *fakeFactory) BuyerRepo() repository.BuyerRepository {
	return &fakeBuyerRepo{store: f.store}
}

func (f *fakeFactory) SellerRepo() repository.SellerRepository {
	return &fakeSellerRepo{store: f.store}
}

func (f *fakeFactory) ShopRepo() repository.ShopRepository {
	return &fakeShopRepo{store: f.store}
}

func (f *fakeFactory) ShippingAddressRepo() repository.ShippingAddressRepository {
	return &fakeShippingAddressRepo{store: f.store}
}

func (f *fakeFactory) PaymentMethodRepo() repository.PaymentMethodRepository {
	return &fakePaymentMethodRepo{store: f.store}
}

func (f *fakeFactory) LocationRepo() repository.LocationRepository {
	return &fakeLocationRepo{store: f.store}
}

// --- account repository ---

type fakeAccountRepo struct {
	store *fakeStore
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := r.store.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (r *fakeAccountRepo) FindByMobileNo(_ context.Context, mobileNo string) (*entity.Account, error) {
	for _, account := range r.store.accounts {
		if account.MobileNo == mobileNo {
			return account, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	for _, existing := range r.store.accounts {
		if existing.MobileNo == account.MobileNo {
			return repository.ErrMobileNoTaken
		}
	}

	account.ID = uuid.New()
	account.CreatedAt = r.store.tick()
	account.UpdatedAt = account.CreatedAt
	r.store.accounts[account.ID] = account

	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, account *entity.Account) error {
	if _, ok := r.store.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = r.store.tick()
	r.store.accounts[account.ID] = account

	return nil
}

func (r *fakeAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}

	delete(r.store.accounts, id)

	return nil
}

// --- buyer repository ---

type fakeBuyerRepo struct {
	store *fakeStore
}

func (r *fakeBuyerRepo) attach(buyer *entity.Buyer) *entity.Buyer {
	buyer.Account = r.store.accounts[buyer.AccountID]

	return buyer
}

func (r *fakeBuyerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Buyer, error) {
	buyer, ok := r.store.buyers[id]
	if !ok {
		return nil, repository.ErrBuyerNotFound
	}

	return r.attach(buyer), nil
}

func (r *fakeBuyerRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Buyer, error) {
	for _, buyer := range r.store.buyers {
		if buyer.AccountID == accountID {
			return r.attach(buyer), nil
		}
	}

	return nil, repository.ErrBuyerNotFound
}

func (r *fakeBuyerRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*entity.Buyer, error) {
	buyer, ok := r.store.buyers[id]
	if !ok {
		return nil, repository.ErrBuyerNotFound
	}
	r.store.buyerLocks++

	return r.attach(buyer), nil
}

func (r *fakeBuyerRepo) Create(_ context.Context, buyer *entity.Buyer) error {
	buyer.ID = uuid.New()
	buyer.CreatedAt = r.store.tick()
	buyer.UpdatedAt = buyer.CreatedAt
	r.store.buyers[buyer.ID] = buyer

	return nil
}

func (r *fakeBuyerRepo) Update(_ context.Context, buyer *entity.Buyer) error {
	if _, ok := r.store.buyers[buyer.ID]; !ok {
		return repository.ErrBuyerNotFound
	}

	buyer.UpdatedAt = r.store.tick()
	r.store.buyers[buyer.ID] = buyer

	return nil
}

func (r *fakeBuyerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.buyers[id]; !ok {
		return repository.ErrBuyerNotFound
	}

	delete(r.store.buyers, id)

	return nil
}

// --- seller repository ---

type fakeSellerRepo struct {
	store *fakeStore
}

func (r *fakeSellerRepo) attach(seller *entity.Seller) *entity.Seller {
	seller.Account = r.store.accounts[seller.AccountID]
	seller.Shop = nil
	for _, shop := range r.store.shops {
		if shop.SellerID == seller.ID {
			seller.Shop = shop

			break
		}
	}

	return seller
}

func (r *fakeSellerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Seller, error) {
	seller, ok := r.store.sellers[id]
	if !ok {
		return nil, repository.ErrSellerNotFound
	}

	return r.attach(seller), nil
}

func (r *fakeSellerRepo) FindByAccountID(_ context.Context, accountID uuid.UUID) (*entity.Seller, error) {
	for _, seller := range r.store.sellers {
		if seller.AccountID == accountID {
			return r.attach(seller), nil
		}
	}

	return nil, repository.ErrSellerNotFound
}

func (r *fakeSellerRepo) Create(_ context.Context, seller *entity.Seller) error {
	seller.ID = uuid.New()
	seller.CreatedAt = r.store.tick()
	seller.UpdatedAt = seller.CreatedAt
	r.store.sellers[seller.ID] = seller

	return nil
}

func (r *fakeSellerRepo) Update(_ context.Context, seller *entity.Seller) error {
	if _, ok := r.store.sellers[seller.ID]; !ok {
		return repository.ErrSellerNotFound
	}

	seller.UpdatedAt = r.store.tick()
	r.store.sellers[seller.ID] = seller

	return nil
}

func (r *fakeSellerRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.sellers[id]; !ok {
		return repository.ErrSellerNotFound
	}

	delete(r.store.sellers, id)

	return nil
}

// --- shop repository ---

type fakeShopRepo struct {
	store *fakeStore
}

func (r *fakeShopRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	shop, ok := r.store.shops[id]
	if !ok {
		return nil, repository.ErrShopNotFound
	}

	return shop, nil
}

func (r *fakeShopRepo) FindBySellerID(_ context.Context, sellerID uuid.UUID) (*entity.Shop, error) {
	for _, shop := range r.store.shops {
		if shop.SellerID == sellerID {
			return shop, nil
		}
	}

	return nil, repository.ErrShopNotFound
}

func (r *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	if r.store.failShopCreate {
		return errors.New("simulated shop insert failure")
	}
	for _, existing := range r.store.shops {
		if existing.SellerID == shop.SellerID {
			return repository.ErrShopExists
		}
	}

	shop.ID = uuid.New()
	shop.CreatedAt = r.store.tick()
	shop.UpdatedAt = shop.CreatedAt
	r.store.shops[shop.ID] = shop

	return nil
}

func (r *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	if _, ok := r.store.shops[shop.ID]; !ok {
		return repository.ErrShopNotFound
	}

	shop.UpdatedAt = r.store.tick()
	r.store.shops[shop.ID] = shop

	return nil
}

func (r *fakeShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.shops[id]; !ok {
		return repository.ErrShopNotFound
	}

	delete(r.store.shops, id)

	return nil
}

func (r *fakeShopRepo) DeleteBySellerID(_ context.Context, sellerID uuid.UUID) error {
	for id, shop := range r.store.shops {
		if shop.SellerID == sellerID {
			delete(r.store.shops, id)
		}
	}

	return nil
}

// --- shipping address repository ---

type fakeShippingAddressRepo struct {
	store *fakeStore
}

func (r *fakeShippingAddressRepo) byBuyer(buyerID uuid.UUID) []*entity.ShippingAddress {
	var out []*entity.ShippingAddress
	for _, address := range r.store.addresses {
		if address.BuyerID == buyerID {
			out = append(out, address)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func (r *fakeShippingAddressRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ShippingAddress, error) {
	address, ok := r.store.addresses[id]
	if !ok {
		return nil, repository.ErrShippingAddressNotFound
	}

	return address, nil
}

func (r *fakeShippingAddressRepo) FindByBuyer(_ context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	return r.byBuyer(buyerID), nil
}

func (r *fakeShippingAddressRepo) FindByBuyerForUpdate(_ context.Context, buyerID uuid.UUID) ([]*entity.ShippingAddress, error) {
	return r.byBuyer(buyerID), nil
}

func (r *fakeShippingAddressRepo) FindDefaultByBuyer(_ context.Context, buyerID uuid.UUID) (*entity.ShippingAddress, error) {
	for _, address := range r.byBuyer(buyerID) {
		if address.IsDefault {
			return address, nil
		}
	}

	return nil, repository.ErrShippingAddressNotFound
}

func (r *fakeShippingAddressRepo) Create(_ context.Context, address *entity.ShippingAddress) error {
	address.ID = uuid.New()
	address.CreatedAt = r.store.tick()
	address.UpdatedAt = address.CreatedAt
	r.store.addresses[address.ID] = address

	return nil
}

func (r *fakeShippingAddressRepo) Update(_ context.Context, address *entity.ShippingAddress) error {
	if _, ok := r.store.addresses[address.ID]; !ok {
		return repository.ErrShippingAddressNotFound
	}

	address.UpdatedAt = r.store.tick()
	r.store.addresses[address.ID] = address

	return nil
}

func (r *fakeShippingAddressRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.addresses[id]; !ok {
		return repository.ErrShippingAddressNotFound
	}

	delete(r.store.addresses, id)

	return nil
}

func (r *fakeShippingAddressRepo) DeleteByBuyer(_ context.Context, buyerID uuid.UUID) error {
	for id, address := range r.store.addresses {
		if address.BuyerID == buyerID {
			delete(r.store.addresses, id)
		}
	}

	return nil
}

func (r *fakeShippingAddressRepo) ClearDefaults(_ context.Context, buyerID uuid.UUID) error {
	for _, address := range r.store.addresses {
		if address.BuyerID == buyerID {
			address.IsDefault = false
		}
	}

	return nil
}

func (r *fakeShippingAddressRepo) MarkDefault(_ context.Context, id uuid.UUID) error {
	address, ok := r.store.addresses[id]
	if !ok {
		return repository.ErrShippingAddressNotFound
	}

	address.IsDefault = true

	return nil
}

// --- payment method repository ---

type fakePaymentMethodRepo struct {
	store *fakeStore
}

func (r *fakePaymentMethodRepo) byBuyer(buyerID uuid.UUID) []*entity.PaymentMethod {
	var out []*entity.PaymentMethod
	for _, method := range r.store.methods {
		if method.BuyerID == buyerID {
			out = append(out, method)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}

		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func (r *fakePaymentMethodRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PaymentMethod, error) {
	method, ok := r.store.methods[id]
	if !ok {
		return nil, repository.ErrPaymentMethodNotFound
	}

	return method, nil
}

func (r *fakePaymentMethodRepo) FindByBuyer(_ context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	return r.byBuyer(buyerID), nil
}

func (r *fakePaymentMethodRepo) FindByBuyerForUpdate(_ context.Context, buyerID uuid.UUID) ([]*entity.PaymentMethod, error) {
	return r.byBuyer(buyerID), nil
}

func (r *fakePaymentMethodRepo) FindDefaultByBuyer(_ context.Context, buyerID uuid.UUID) (*entity.PaymentMethod, error) {
	for _, method := range r.byBuyer(buyerID) {
		if method.IsDefault {
			return method, nil
		}
	}

	return nil, repository.ErrPaymentMethodNotFound
}

func (r *fakePaymentMethodRepo) Create(_ context.Context, method *entity.PaymentMethod) error {
	method.ID = uuid.New()
	method.CreatedAt = r.store.tick()
	method.UpdatedAt = method.CreatedAt
	r.store.methods[method.ID] = method

	return nil
}

func (r *fakePaymentMethodRepo) Update(_ context.Context, method *entity.PaymentMethod) error {
	if _, ok := r.store.methods[method.ID]; !ok {
		return repository.ErrPaymentMethodNotFound
	}

	method.UpdatedAt = r.store.tick()
	r.store.methods[method.ID] = method

	return nil
}

func (r *fakePaymentMethodRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.methods[id]; !ok {
		return repository.ErrPaymentMethodNotFound
	}

	delete(r.store.methods, id)

	return nil
}

func (r *fakePaymentMethodRepo) DeleteByBuyer(_ context.Context, buyerID uuid.UUID) error {
	for id, method := range r.store.methods {
		if method.BuyerID == buyerID {
			delete(r.store.methods, id)
		}
	}

	return nil
}

func (r *fakePaymentMethodRepo) ClearDefaults(_ context.Context, buyerID uuid.UUID) error {
	for _, method := range r.store.methods {
		if method.BuyerID == buyerID {
			method.IsDefault = false
		}
	}

	return nil
}

func (r *fakePaymentMethodRepo) MarkDefault(_ context.Context, id uuid.UUID) error {
	method, ok := r.store.methods[id]
	if !ok {
		return repository.ErrPaymentMethodNotFound
	}

	method.IsDefault = true

	return nil
}

// --- location repository ---

type fakeLocationRepo struct {
	store *fakeStore
}

func nameMatches(name, filter string) bool {
	if filter == "" {
		return true
	}

	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

func (r *fakeLocationRepo) Countries(_ context.Context, nameFilter string) ([]*entity.Country, error) {
	var out []*entity.Country
	for _, country := range r.store.countries {
		if nameMatches(country.Name, nameFilter) {
			out = append(out, country)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeLocationRepo) FindCountry(_ context.Context, id uuid.UUID) (*entity.Country, error) {
	country, ok := r.store.countries[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return country, nil
}

func (r *fakeLocationRepo) CreateCountry(_ context.Context, country *entity.Country) error {
	country.ID = uuid.New()
	country.CreatedAt = r.store.tick()
	country.UpdatedAt = country.CreatedAt
	r.store.countries[country.ID] = country

	return nil
}

func (r *fakeLocationRepo) UpdateCountry(_ context.Context, country *entity.Country) error {
	if _, ok := r.store.countries[country.ID]; !ok {
		return repository.ErrLocationNotFound
	}

	r.store.countries[country.ID] = country

	return nil
}

func (r *fakeLocationRepo) DeleteCountry(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.countries[id]; !ok {
		return repository.ErrLocationNotFound
	}

	for regionID, region := range r.store.regions {
		if region.CountryID != id {
			continue
		}
		_ = r.DeleteRegion(context.Background(), regionID)
	}
	delete(r.store.countries, id)

	return nil
}

func (r *fakeLocationRepo) RegionsByCountry(_ context.Context, countryID uuid.UUID, nameFilter string) ([]*entity.Region, error) {
	var out []*entity.Region
	for _, region := range r.store.regions {
		if region.CountryID == countryID && nameMatches(region.Name, nameFilter) {
			out = append(out, region)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeLocationRepo) FindRegion(_ context.Context, id uuid.UUID) (*entity.Region, error) {
	region, ok := r.store.regions[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return region, nil
}

func (r *fakeLocationRepo) CreateRegion(_ context.Context, region *entity.Region) error {
	if _, ok := r.store.countries[region.CountryID]; !ok {
		return repository.ErrLocationParentMissing
	}

	region.ID = uuid.New()
	region.CreatedAt = r.store.tick()
	region.UpdatedAt = region.CreatedAt
	r.store.regions[region.ID] = region

	return nil
}

func (r *fakeLocationRepo) UpdateRegion(_ context.Context, region *entity.Region) error {
	if _, ok := r.store.regions[region.ID]; !ok {
		return repository.ErrLocationNotFound
	}

	r.store.regions[region.ID] = region

	return nil
}

func (r *fakeLocationRepo) DeleteRegion(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.regions[id]; !ok {
		return repository.ErrLocationNotFound
	}

	for provinceID, province := range r.store.provinces {
		if province.RegionID != id {
			continue
		}
		_ = r.DeleteProvince(context.Background(), provinceID)
	}
	delete(r.store.regions, id)

	return nil
}

func (r *fakeLocationRepo) ProvincesByRegion(_ context.Context, regionID uuid.UUID, nameFilter string) ([]*entity.Province, error) {
	var out []*entity.Province
	for _, province := range r.store.provinces {
		if province.RegionID == regionID && nameMatches(province.Name, nameFilter) {
			out = append(out, province)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeLocationRepo) FindProvince(_ context.Context, id uuid.UUID) (*entity.Province, error) {
	province, ok := r.store.provinces[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return province, nil
}

func (r *fakeLocationRepo) CreateProvince(_ context.Context, province *entity.Province) error {
	if _, ok := r.store.regions[province.RegionID]; !ok {
		return repository.ErrLocationParentMissing
	}

	province.ID = uuid.New()
	province.CreatedAt = r.store.tick()
	province.UpdatedAt = province.CreatedAt
	r.store.provinces[province.ID] = province

	return nil
}

func (r *fakeLocationRepo) UpdateProvince(_ context.Context, province *entity.Province) error {
	if _, ok := r.store.provinces[province.ID]; !ok {
		return repository.ErrLocationNotFound
	}

	r.store.provinces[province.ID] = province

	return nil
}

func (r *fakeLocationRepo) DeleteProvince(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.provinces[id]; !ok {
		return repository.ErrLocationNotFound
	}

	for cityID, city := range r.store.cities {
		if city.ProvinceID != id {
			continue
		}
		_ = r.DeleteCity(context.Background(), cityID)
	}
	delete(r.store.provinces, id)

	return nil
}

func (r *fakeLocationRepo) CitiesByProvince(_ context.Context, provinceID uuid.UUID, nameFilter string) ([]*entity.City, error) {
	var out []*entity.City
	for _, city := range r.store.cities {
		if city.ProvinceID == provinceID && nameMatches(city.Name, nameFilter) {
			out = append(out, city)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeLocationRepo) FindCity(_ context.Context, id uuid.UUID) (*entity.City, error) {
	city, ok := r.store.cities[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return city, nil
}

func (r *fakeLocationRepo) CreateCity(_ context.Context, city *entity.City) error {
	if _, ok := r.store.provinces[city.ProvinceID]; !ok {
		return repository.ErrLocationParentMissing
	}

	city.ID = uuid.New()
	city.CreatedAt = r.store.tick()
	city.UpdatedAt = city.CreatedAt
	r.store.cities[city.ID] = city

	return nil
}

func (r *fakeLocationRepo) UpdateCity(_ context.Context, city *entity.City) error {
	if _, ok := r.store.cities[city.ID]; !ok {
		return repository.ErrLocationNotFound
	}

	r.store.cities[city.ID] = city

	return nil
}

func (r *fakeLocationRepo) DeleteCity(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.cities[id]; !ok {
		return repository.ErrLocationNotFound
	}

	for barangayID, barangay := range r.store.barangays {
		if barangay.CityID == id {
			delete(r.store.barangays, barangayID)
		}
	}
	delete(r.store.cities, id)

	return nil
}

func (r *fakeLocationRepo) BarangaysByCity(_ context.Context, cityID uuid.UUID, nameFilter string) ([]*entity.Barangay, error) {
	var out []*entity.Barangay
	for _, barangay := range r.store.barangays {
		if barangay.CityID == cityID && nameMatches(barangay.Name, nameFilter) {
			out = append(out, barangay)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *fakeLocationRepo) FindBarangay(_ context.Context, id uuid.UUID) (*entity.Barangay, error) {
	barangay, ok := r.store.barangays[id]
	if !ok {
		return nil, repository.ErrLocationNotFound
	}

	return barangay, nil
}

func (r *fakeLocationRepo) CreateBarangay(_ context.Context, barangay *entity.Barangay) error {
	if _, ok := r.store.cities[barangay.CityID]; !ok {
		return repository.ErrLocationParentMissing
	}

	barangay.ID = uuid.New()
	barangay.CreatedAt = r.store.tick()
	barangay.UpdatedAt = barangay.CreatedAt
	r.store.barangays[barangay.ID] = barangay

	return nil
}

func (r *fakeLocationRepo) UpdateBarangay(_ context.Context, barangay *entity.Barangay) error {
	if _, ok := r.store.barangays[barangay.ID]; !ok {
		return repository.ErrLocationNotFound
	}

	r.store.barangays[barangay.ID] = barangay

	return nil
}

func (r *fakeLocationRepo) DeleteBarangay(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.barangays[id]; !ok {
		return repository.ErrLocationNotFound
	}

	delete(r.store.barangays, id)

	return nil
}

// --- seed helpers ---

func seedAccount(store *fakeStore, role entity.Role, mobileNo string) *entity.Account {
	account := &entity.Account{
		MobileNo:     mobileNo,
		PasswordHash: "hashed:correct horse battery",
		FirstName:    "Juan",
		LastName:     "dela Cruz",
		Sex:          entity.SexMale,
		Role:         role,
		IsActive:     true,
	}
	repo := &fakeAccountRepo{store: store}
	if err := repo.Create(context.Background(), account); err != nil {
		panic(err)
	}

	return account
}

func seedBuyer(store *fakeStore, mobileNo string) *entity.Buyer {
	account := seedAccount(store, entity.RoleBuyer, mobileNo)
	buyer := &entity.Buyer{
		AccountID:              account.ID,
		PreferredPaymentMethod: entity.PaymentCashOnDelivery,
	}
	repo := &fakeBuyerRepo{store: store}
	if err := repo.Create(context.Background(), buyer); err != nil {
		panic(err)
	}
	buyer.Account = account

	return buyer
}

func seedSeller(store *fakeStore, mobileNo string) *entity.Seller {
	account := seedAccount(store, entity.RoleSeller, mobileNo)
	seller := &entity.Seller{
		AccountID:  account.ID,
		IsFreePlan: true,
	}
	repo := &fakeSellerRepo{store: store}
	if err := repo.Create(context.Background(), seller); err != nil {
		panic(err)
	}
	seller.Account = account

	return seller
}

// newTestLogger returns a logger that discards everything.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- password hasher and token service ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return "hashed:"+password == hash
}

func (fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}

	return nil
}

type fakeTokenService struct{}

func (fakeTokenService) GenerateTokens(accountID uuid.UUID, role string) (string, string, error) {
	return "access:" + accountID.String() + ":" + role, "refresh:" + accountID.String(), nil
}

func (fakeTokenService) ValidateToken(string, string) (*jwt.Token, error) {
	return nil, errors.New("not implemented in fake")
}

func (fakeTokenService) GetRefreshTokenDuration() time.Duration {
	return 24 * time.Hour
}

// fakeFileStore records stored files in memory and hands back deterministic
// paths so tests can assert on them.
type fakeFileStore struct {
	stored map[string][]byte
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{stored: make(map[string][]byte)}
}

func (s *fakeFileStore) Store(_ context.Context, category, filename string, content []byte) (string, error) {
	path := category + "/" + filename
	s.stored[path] = content

	return path, nil
}

// The snapshot must clone entity structs, not just the maps. A service that
// mutates a loaded entity in place before a later step fails would otherwise
// leak the half-applied change past the rollback.
func TestFakeTxManager_RollbackRestoresFieldMutations(t *testing.T) {
	store := newFakeStore()
	buyer := seedBuyer(store, "09171234567")
	txManager := &fakeTxManager{store: store}

	boom := errors.New("boom")
	err := txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		loaded, err := repoFactory.BuyerRepo().FindByID(context.Background(), buyer.ID)
		require.NoError(t, err)

		loaded.PreferredPaymentMethod = entity.PaymentGcash
		loaded.Account.FirstName = "Mutated"

		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, entity.PaymentCashOnDelivery, store.buyers[buyer.ID].PreferredPaymentMethod)
	assert.Equal(t, "Juan", store.accounts[buyer.AccountID].FirstName)
}
