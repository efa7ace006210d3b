// Package auth provides dashboard authentication.
package auth

import (
	"github.com/FIKE110/inverta/internal/auth/handler"
	"github.com/FIKE110/inverta/internal/auth/repository"
	"github.com/FIKE110/inverta/internal/auth/service"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/platform/config"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the auth bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the auth module.
func NewModule(pool *pgxpool.Pool, cfg config.AuthServiceConfig, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, cfg, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "auth"
}

// RegisterRoutes mounts auth routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/auth/login", m.handler.Login)
	ctx.Protected.GET("/auth/me", m.handler.Me)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
