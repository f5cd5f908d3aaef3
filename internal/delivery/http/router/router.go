// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ummana/config"
	"ummana/internal/delivery/http/router/handler"
	"ummana/internal/domain/entity"
	"ummana/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	Metrics           *metrics.Metrics `optional:"true"`
	NavigationHandler *handler.NavigationHandler
	CommunityHandler  *handler.CommunityHandler
	AgentHandler      *handler.AgentHandler
	DriverHandler     *handler.DriverHandler
	FacilityHandler   *handler.FacilityHandler
	FormHandler       *handler.FormHandler
	DeletionHandler   *handler.DeletionHandler
	MapHandler        *handler.MapHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	metrics           *metrics.Metrics
	navigationHandler *handler.NavigationHandler
	communityHandler  *handler.CommunityHandler
	agentHandler      *handler.AgentHandler
	driverHandler     *handler.DriverHandler
	facilityHandler   *handler.FacilityHandler
	formHandler       *handler.FormHandler
	deletionHandler   *handler.DeletionHandler
	mapHandler        *handler.MapHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		metrics:           params.Metrics,
		navigationHandler: params.NavigationHandler,
		communityHandler:  params.CommunityHandler,
		agentHandler:      params.AgentHandler,
		driverHandler:     params.DriverHandler,
		facilityHandler:   params.FacilityHandler,
		formHandler:       params.FormHandler,
		deletionHandler:   params.DeletionHandler,
		mapHandler:        params.MapHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled && r.metrics != nil {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Sign-in is not part of the console yet
	e.POST("/login", handler.Login)

	e.GET("/navigation", r.navigationHandler.GetNavigation)

	communityGroup := e.Group("/communities")
	{
		communityGroup.GET("", r.communityHandler.ListCommunities)
		communityGroup.POST("/reload", r.communityHandler.ReloadCommunities)
		communityGroup.POST("", r.communityHandler.CreateCommunity)
		communityGroup.PUT("/:id", r.communityHandler.UpdateCommunity)
		communityGroup.POST("/:id/delete-requests", r.deletionHandler.RequestDelete(entity.KindCommunity))
		communityGroup.GET("/:id/nearest-facilities", r.mapHandler.GetNearestFacilities)
		communityGroup.GET("/:id/qrcode", r.mapHandler.GetCommunityQRCode)
	}

	agentGroup := e.Group("/agents")
	{
		agentGroup.GET("", r.agentHandler.ListAgents)
		agentGroup.POST("/reload", r.agentHandler.ReloadAgents)
		agentGroup.POST("", r.agentHandler.CreateAgent)
		agentGroup.PUT("/:id", r.agentHandler.UpdateAgent)
		agentGroup.POST("/:id/delete-requests", r.deletionHandler.RequestDelete(entity.KindAgent))
	}

	driverGroup := e.Group("/drivers")
	{
		driverGroup.GET("", r.driverHandler.ListDrivers)
		driverGroup.POST("/reload", r.driverHandler.ReloadDrivers)
		driverGroup.POST("", r.driverHandler.CreateDriver)
		driverGroup.PUT("/:id", r.driverHandler.UpdateDriver)
		driverGroup.POST("/:id/delete-requests", r.deletionHandler.RequestDelete(entity.KindDriver))
	}

	facilityGroup := e.Group("/facilities")
	{
		facilityGroup.GET("", r.facilityHandler.ListFacilities)
		facilityGroup.GET("/catalog", r.facilityHandler.GetCatalog)
		facilityGroup.POST("/reload", r.facilityHandler.ReloadFacilities)
		facilityGroup.POST("", r.facilityHandler.CreateFacility)
		facilityGroup.PUT("/:id", r.facilityHandler.UpdateFacility)
		facilityGroup.POST("/:id/delete-requests", r.deletionHandler.RequestDelete(entity.KindFacility))
	}

	deletionGroup := e.Group("/deletions")
	{
		deletionGroup.POST("/:token/confirm", r.deletionHandler.ConfirmDelete)
		deletionGroup.POST("/:token/cancel", r.deletionHandler.CancelDelete)
	}

	formGroup := e.Group("/forms")
	{
		formGroup.POST("", r.formHandler.OpenForm)
		formGroup.GET("/:id", r.formHandler.GetForm)
		formGroup.DELETE("/:id", r.formHandler.CloseForm)
		formGroup.PUT("/:id/fields", r.formHandler.SetFields)
		formGroup.POST("/:id/slots", r.formHandler.AddSlot)
		formGroup.DELETE("/:id/slots/:index", r.formHandler.RemoveSlot)
		formGroup.PUT("/:id/slots/:index/search", r.formHandler.SearchSlot)
		formGroup.PUT("/:id/slots/:index/selection", r.formHandler.SelectSlot)
		formGroup.POST("/:id/pointer", r.formHandler.PointerDown)
		formGroup.PUT("/:id/capabilities/:key", r.formHandler.ToggleCapability)
		formGroup.POST("/:id/submit", r.formHandler.SubmitForm)
	}

	mapGroup := e.Group("/map")
	{
		mapGroup.GET("/communities", r.mapHandler.GetCommunityLayer)
		mapGroup.GET("/facilities", r.mapHandler.GetFacilityLayer)
	}
}
