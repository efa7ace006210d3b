// Package catalog provides the equipment price-list bounded context.
package catalog

import (
	"github.com/FIKE110/inverta/internal/catalog/handler"
	"github.com/FIKE110/inverta/internal/catalog/repository"
	"github.com/FIKE110/inverta/internal/catalog/service"
	"github.com/FIKE110/inverta/internal/events"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public read-only endpoint for the marketing calculator
	ctx.V1.GET("/catalog/items", m.handler.List)

	// Dashboard read endpoint
	ctx.Protected.GET("/catalog/items/:id", m.handler.GetByID)

	// Admin CRUD endpoints
	adminGroup := ctx.Admin.Group("/catalog")
	adminGroup.POST("/items", m.handler.Create)
	adminGroup.PUT("/items/:id", m.handler.Update)
	adminGroup.DELETE("/items/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
