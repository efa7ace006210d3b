// Package appliances provides the appliance preset bounded context: the
// curated list of household loads the public calculator offers.
package appliances

import (
	"github.com/FIKE110/inverta/internal/appliances/handler"
	"github.com/FIKE110/inverta/internal/appliances/repository"
	"github.com/FIKE110/inverta/internal/appliances/service"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the appliances bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the appliances module.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "appliances"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts appliance preset routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public listing for the marketing calculator
	ctx.V1.GET("/appliances", m.handler.List)

	// Dashboard read endpoint
	ctx.Protected.GET("/appliances/:id", m.handler.GetByID)

	// Admin CRUD endpoints
	adminGroup := ctx.Admin.Group("/appliances")
	adminGroup.POST("", m.handler.Create)
	adminGroup.PUT("/:id", m.handler.Update)
	adminGroup.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
