// Package branding stores the marketing site's theme settings. The document
// is small and read on every calculator page load, so it lives in Redis
// rather than Postgres.
package branding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/FIKE110/inverta/platform/sanitize"
)

const settingsKey = "branding:settings"

// Settings is the themable surface of the public calculator and emails.
type Settings struct {
	CompanyName    string `json:"companyName"`
	Tagline        string `json:"tagline"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	AccentColor    string `json:"accentColor"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	WhatsAppNumber string `json:"whatsappNumber"`
}

// DefaultSettings is served until an admin saves their own theme.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:  "Inverta",
		Tagline:      "Size your solar system in minutes",
		PrimaryColor: "#0f766e",
		AccentColor:  "#f59e0b",
	}
}

func (s Settings) sanitized() Settings {
	s.CompanyName = sanitize.Text(s.CompanyName)
	s.Tagline = sanitize.Text(s.Tagline)
	return s
}

// Store persists branding settings in Redis as a single JSON document.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis-backed branding store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load returns the saved settings, or the defaults when nothing was saved.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	raw, err := s.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("load branding settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return Settings{}, fmt.Errorf("decode branding settings: %w", err)
	}
	return settings, nil
}

// Save replaces the settings document. Text fields are sanitized because
// they are rendered on the public site.
func (s *Store) Save(ctx context.Context, settings Settings) (Settings, error) {
	clean := settings.sanitized()

	raw, err := json.Marshal(clean)
	if err != nil {
		return Settings{}, fmt.Errorf("encode branding settings: %w", err)
	}
	if err := s.client.Set(ctx, settingsKey, raw, 0).Err(); err != nil {
		return Settings{}, fmt.Errorf("save branding settings: %w", err)
	}
	return clean, nil
}
