package branding

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/FIKE110/inverta/internal/events"
	apphttp "github.com/FIKE110/inverta/internal/http"
	"github.com/FIKE110/inverta/platform/httpkit"
	"github.com/FIKE110/inverta/platform/logger"
	"github.com/FIKE110/inverta/platform/validator"
)

// UpdateRequest is the admin theme submission.
type UpdateRequest struct {
	CompanyName    string `json:"companyName" validate:"required,min=1,max=120"`
	Tagline        string `json:"tagline" validate:"max=200"`
	LogoURL        string `json:"logoUrl" validate:"omitempty,url,max=500"`
	PrimaryColor   string `json:"primaryColor" validate:"omitempty,hexcolor"`
	AccentColor    string `json:"accentColor" validate:"omitempty,hexcolor"`
	ContactEmail   string `json:"contactEmail" validate:"omitempty,email,max=254"`
	ContactPhone   string `json:"contactPhone" validate:"omitempty,max=20"`
	WhatsAppNumber string `json:"whatsappNumber" validate:"omitempty,max=20"`
}

// Module is the branding bounded context module implementing http.Module.
type Module struct {
	store *Store
	bus   events.Bus
	val   *validator.Validator
	log   *logger.Logger
}

// NewModule creates and initializes the branding module.
func NewModule(client *redis.Client, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	return &Module{
		store: NewStore(client),
		bus:   bus,
		val:   val,
		log:   log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "branding"
}

// RegisterRoutes mounts branding routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public read for the marketing site theme
	ctx.V1.GET("/branding", m.get)

	// Admin write
	ctx.Admin.PUT("/branding", m.update)
}

// get serves the current theme.
// GET /api/v1/branding
func (m *Module) get(c *gin.Context) {
	settings, err := m.store.Load(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, settings)
}

// update replaces the theme.
// PUT /api/v1/admin/branding
func (m *Module) update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request", nil)
		return
	}
	if err := m.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings, err := m.store.Save(c.Request.Context(), Settings{
		CompanyName:    req.CompanyName,
		Tagline:        req.Tagline,
		LogoURL:        req.LogoURL,
		PrimaryColor:   req.PrimaryColor,
		AccentColor:    req.AccentColor,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		WhatsAppNumber: req.WhatsAppNumber,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	if m.bus != nil {
		m.bus.Publish(c.Request.Context(), events.BrandingUpdated{
			BaseEvent:   events.NewBaseEvent(),
			UpdatedByID: identity.UserID(),
		})
	}

	httpkit.OK(c, settings)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
