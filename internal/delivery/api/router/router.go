// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"seguridad/config"
	"seguridad/internal/delivery/api/router/handler"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	DeviceHandler       *handler.DeviceHandler
	DeviceTokenHandler  *handler.DeviceTokenHandler
	LocationHandler     *handler.LocationHandler
	SafeZoneHandler     *handler.SafeZoneHandler
	ContactHandler      *handler.ContactHandler
	AlertHandler        *handler.AlertHandler
	SubscriptionHandler *handler.SubscriptionHandler
	InvitationHandler   *handler.InvitationHandler
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler       *handler.DeviceHandler
	deviceTokenHandler  *handler.DeviceTokenHandler
	locationHandler     *handler.LocationHandler
	safeZoneHandler     *handler.SafeZoneHandler
	contactHandler      *handler.ContactHandler
	alertHandler        *handler.AlertHandler
	subscriptionHandler *handler.SubscriptionHandler
	invitationHandler   *handler.InvitationHandler
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:       params.DeviceHandler,
		deviceTokenHandler:  params.DeviceTokenHandler,
		locationHandler:     params.LocationHandler,
		safeZoneHandler:     params.SafeZoneHandler,
		contactHandler:      params.ContactHandler,
		alertHandler:        params.AlertHandler,
		subscriptionHandler: params.SubscriptionHandler,
		invitationHandler:   params.InvitationHandler,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler()))
	}

	devicesGroup := e.Group("/devices")
	{
		devicesGroup.POST("/register", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("/:deviceId", r.deviceHandler.GetDevice)
		devicesGroup.DELETE("/:deviceId", r.deviceHandler.DeleteDevice)
	}

	tokensGroup := e.Group("/device-tokens")
	{
		tokensGroup.POST("", r.deviceTokenHandler.RegisterToken)
		tokensGroup.GET("/:deviceId", r.deviceTokenHandler.ListTokens)
		tokensGroup.DELETE("/:token", r.deviceTokenHandler.DeleteToken)
	}

	locationsGroup := e.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.RecordLocation)
		locationsGroup.GET("/latest/:deviceId", r.locationHandler.GetLatestLocation)
		locationsGroup.GET("/history/:deviceId", r.locationHandler.GetLocationHistory)
		locationsGroup.GET("/history/:deviceId/geojson", r.locationHandler.GetLocationHistoryGeoJSON)
	}

	safeZonesGroup := e.Group("/safezones")
	{
		safeZonesGroup.POST("", r.safeZoneHandler.UpsertSafeZone)
		safeZonesGroup.GET("/:deviceId", r.safeZoneHandler.ListSafeZones)
		safeZonesGroup.GET("/:deviceId/geojson", r.safeZoneHandler.GetSafeZonesGeoJSON)
	}

	contactsGroup := e.Group("/contacts")
	{
		contactsGroup.POST("", r.contactHandler.UpsertContact)
		contactsGroup.GET("/:deviceId", r.contactHandler.ListContacts)
	}

	alertsGroup := e.Group("/alerts")
	{
		alertsGroup.POST("", r.alertHandler.CreateAlert)
		alertsGroup.GET("/:deviceId", r.alertHandler.ListAlerts)
	}

	invitesGroup := e.Group("/invites")
	{
		invitesGroup.POST("", r.invitationHandler.IssueInvitation)
		invitesGroup.GET("/:deviceId", r.invitationHandler.GetInvitation)
		invitesGroup.GET("/:deviceId/qr", r.invitationHandler.GetInvitationQR)
	}

	subscriptionsGroup := e.Group("/subscriptions")
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
		subscriptionsGroup.GET("/:deviceId/subscribers", r.subscriptionHandler.ListSubscribers)
		subscriptionsGroup.GET("/:deviceId/owners", r.subscriptionHandler.ListOwners)

		// Six digit codes are guessable, so redemption is throttled per client IP.
		confirmGroup := subscriptionsGroup.Group("/confirm")
		confirmGroup.Use(r.redeemRateLimiter())
		{
			confirmGroup.POST("", r.invitationHandler.RedeemInvitation)
			confirmGroup.POST("/qr", r.invitationHandler.RedeemInvitationQR)
		}
	}
}

func (r *router) redeemRateLimiter() echo.MiddlewareFunc {
	limits := r.config.RateLimit.Redeem
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(limits.RatePerSecond),
		Burst:     limits.Burst,
		ExpiresIn: limits.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrTooManyRequests
		},
	})
}
