// Package estimator provides the public solar calculator bounded context.
// It composes the sizing engine with the catalog snapshot and the lead
// pipeline; it owns no storage of its own.
package estimator

import (
	"github.com/FIKE110/inverta/internal/estimator/handler"
	"github.com/FIKE110/inverta/internal/estimator/service"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"
)

// Module is the estimator bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the estimator module. The scheduler may
// be nil when follow-up emails are disabled.
func NewModule(catalog service.CatalogSnapshotter, leads service.LeadRecorder, scheduler service.FollowUpScheduler, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(catalog, leads, scheduler, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "estimator"
}

// RegisterRoutes mounts the public calculator route on the provided router
// context, behind the stricter per-IP rate limit.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	public := ctx.V1.Group("/public")
	public.POST("/estimates", ctx.EstimateRateLimiter.RateLimit(), m.handler.Estimate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
