package branding

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client)
}

func TestLoadReturnsDefaultsWhenUnset(t *testing.T) {
	store := newTestStore(t)

	settings, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.Save(context.Background(), Settings{
		CompanyName:  "SunWorks NG",
		Tagline:      "Reliable power, sized right",
		PrimaryColor: "#123456",
		ContactEmail: "hello@sunworks.example",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != saved {
		t.Fatalf("loaded settings %+v differ from saved %+v", loaded, saved)
	}
	if loaded.CompanyName != "SunWorks NG" {
		t.Fatalf("unexpected company name %q", loaded.CompanyName)
	}
}

func TestSaveSanitizesDisplayText(t *testing.T) {
	store := newTestStore(t)

	saved, err := store.Save(context.Background(), Settings{
		CompanyName: "<b>SunWorks</b>",
		Tagline:     "<script>x</script>Power",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.CompanyName != "SunWorks" {
		t.Fatalf("expected stripped company name, got %q", saved.CompanyName)
	}
	if saved.Tagline != "xPower" {
		t.Fatalf("expected stripped tagline, got %q", saved.Tagline)
	}
}
