// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"palengke/internal/delivery/http/middleware"
	"palengke/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	ProfileHandler       *handler.ProfileHandler
	ShopHandler          *handler.ShopHandler
	AddressHandler       *handler.ShippingAddressHandler
	PaymentMethodHandler *handler.PaymentMethodHandler
	LocationHandler      *handler.LocationHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	shopHandler          *handler.ShopHandler
	addressHandler       *handler.ShippingAddressHandler
	paymentMethodHandler *handler.PaymentMethodHandler
	locationHandler      *handler.LocationHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		profileHandler:       params.ProfileHandler,
		shopHandler:          params.ShopHandler,
		addressHandler:       params.AddressHandler,
		paymentMethodHandler: params.PaymentMethodHandler,
		locationHandler:      params.LocationHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/buyer", r.authHandler.RegisterBuyer)
		authGroup.POST("/register/seller", r.authHandler.RegisterSeller)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Password change requires a valid access token
	passwordGroup := e.Group("/auth/password")
	passwordGroup.Use(r.authMiddleware.Authenticate)
	{
		passwordGroup.PUT("", r.authHandler.ChangePassword)
	}

	// Profile routes for the authenticated account
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("/buyer", r.profileHandler.GetBuyerProfile)
		profileGroup.PUT("/buyer", r.profileHandler.UpdateBuyerProfile)
		profileGroup.GET("/seller", r.profileHandler.GetSellerProfile)
		profileGroup.PUT("/seller", r.profileHandler.UpdateSellerProfile)
		profileGroup.DELETE("", r.profileHandler.DeleteAccount)
		profileGroup.POST("/picture", r.profileHandler.UploadProfilePicture)
	}

	// Shop routes require authentication and the "seller" role
	shopGroup := e.Group("/shop")
	shopGroup.Use(r.authMiddleware.Authenticate)
	shopGroup.Use(r.authMiddleware.RequireRole("seller"))
	{
		shopGroup.POST("", r.shopHandler.CreateShop)
		shopGroup.GET("", r.shopHandler.GetShop)
		shopGroup.PUT("", r.shopHandler.UpdateShop)
		shopGroup.POST("/pictures/:slot", r.shopHandler.UploadShopPicture)
		shopGroup.DELETE("", r.shopHandler.DeleteShop)
	}

	// Shipping address book, scoped to the authenticated buyer
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	addressGroup.Use(r.authMiddleware.RequireRole("buyer"))
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.GET("/default", r.addressHandler.GetDefaultAddress)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.PUT("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	// Payment methods, scoped to the authenticated buyer
	paymentGroup := e.Group("/payment-methods")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	paymentGroup.Use(r.authMiddleware.RequireRole("buyer"))
	{
		paymentGroup.GET("", r.paymentMethodHandler.ListPaymentMethods)
		paymentGroup.GET("/default", r.paymentMethodHandler.GetDefaultPaymentMethod)
		paymentGroup.POST("", r.paymentMethodHandler.CreatePaymentMethod)
		paymentGroup.DELETE("/:id", r.paymentMethodHandler.DeletePaymentMethod)
		paymentGroup.PUT("/:id/default", r.paymentMethodHandler.SetDefaultPaymentMethod)
	}

	// Location tree reads are public
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("/countries", r.locationHandler.ListCountries)
		locationGroup.GET("/countries/:countryID/regions", r.locationHandler.ListRegions)
		locationGroup.GET("/regions/:regionID/provinces", r.locationHandler.ListProvinces)
		locationGroup.GET("/provinces/:provinceID/cities", r.locationHandler.ListCities)
		locationGroup.GET("/cities/:cityID/barangays", r.locationHandler.ListBarangays)
	}

	// Location tree mutations require the "admin" role
	locationAdmin := e.Group("/locations")
	locationAdmin.Use(r.authMiddleware.Authenticate)
	locationAdmin.Use(r.authMiddleware.RequireRole("admin"))
	{
		locationAdmin.POST("/countries", r.locationHandler.CreateCountry)
		locationAdmin.PUT("/countries/:id", r.locationHandler.UpdateCountry)
		locationAdmin.DELETE("/countries/:id", r.locationHandler.DeleteCountry)

		locationAdmin.POST("/countries/:countryID/regions", r.locationHandler.CreateRegion)
		locationAdmin.PUT("/regions/:id", r.locationHandler.UpdateRegion)
		locationAdmin.DELETE("/regions/:id", r.locationHandler.DeleteRegion)

		locationAdmin.POST("/regions/:regionID/provinces", r.locationHandler.CreateProvince)
		locationAdmin.PUT("/provinces/:id", r.locationHandler.UpdateProvince)
		locationAdmin.DELETE("/provinces/:id", r.locationHandler.DeleteProvince)

		locationAdmin.POST("/provinces/:provinceID/cities", r.locationHandler.CreateCity)
		locationAdmin.PUT("/cities/:id", r.locationHandler.UpdateCity)
		locationAdmin.DELETE("/cities/:id", r.locationHandler.DeleteCity)

		locationAdmin.POST("/cities/:cityID/barangays", r.locationHandler.CreateBarangay)
		locationAdmin.PUT("/barangays/:id", r.locationHandler.UpdateBarangay)
		locationAdmin.DELETE("/barangays/:id", r.locationHandler.DeleteBarangay)
	}
}
