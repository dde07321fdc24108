package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the function
	// use the same database transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction. This ensures all repository operations within a transaction use
// the same database connection.
type RepositoryFactory interface {
	// AccountRepo returns an AccountRepository bound to the current transaction.
	AccountRepo() AccountRepository

	// BuyerRepo returns a BuyerRepository bound to the current transaction.
	BuyerRepo() BuyerRepository

	// SellerRepo returns a SellerRepository bound to the current transaction.
	SellerRepo() SellerRepository

	// ShopRepo returns a ShopRepository bound to the current transaction.
	ShopRepo() ShopRepository

	// ShippingAddressRepo returns a ShippingAddressRepository bound to the current transaction.
	ShippingAddressRepo() ShippingAddressRepository

	// PaymentMethodRepo returns a PaymentMethodRepository bound to the current transaction.
	PaymentMethodRepo() PaymentMethodRepository

	// LocationRepo returns a LocationRepository bound to the current transaction.
	LocationRepo() LocationRepository
}
