package postgres

import (
	"palengke/internal/errors"
	"palengke/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persistence model. Parent
// tables go first so foreign key constraints resolve.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.CountryModel{},
		&model.RegionModel{},
		&model.ProvinceModel{},
		&model.CityModel{},
		&model.BarangayModel{},
		&model.AccountModel{},
		&model.BuyerModel{},
		&model.SellerModel{},
		&model.ShopModel{},
		&model.ShippingAddressModel{},
		&model.PaymentMethodModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to run auto migration")
	}

	return nil
}
