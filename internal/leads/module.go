// Package leads provides the lead pipeline bounded context.
package leads

import (
	"github.com/FIKE110/inverta/internal/events"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/internal/leads/handler"
	"github.com/FIKE110/inverta/internal/leads/repository"
	"github.com/FIKE110/inverta/internal/leads/service"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the leads module.
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
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Dashboard endpoints for authenticated installers
	group := ctx.Protected.Group("/leads")
	group.GET("", m.handler.List)
	group.GET("/stats", m.handler.Stats)
	group.GET("/:id", m.handler.GetByID)
	group.PATCH("/:id", m.handler.Update)

	// Destructive operation reserved for admins
	ctx.Admin.DELETE("/leads/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
