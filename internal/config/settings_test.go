package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestStoreURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())

	// Test default value
	if url := settings.GetStoreURL(); url != DefaultStoreURL {
		t.Errorf("Expected default store URL %s, got %s", DefaultStoreURL, url)
	}

	// Test setting custom value
	customURL := "nats://store.internal:4222"
	settings.SetStoreURL(customURL)

	if url := settings.GetStoreURL(); url != customURL {
		t.Errorf("Expected store URL %s, got %s", customURL, url)
	}

	// Empty value falls back to the loaded default
	settings.SetStoreURL("")
	if url := settings.GetStoreURL(); url != DefaultStoreURL {
		t.Errorf("Empty store URL should fall back to %s, got %s", DefaultStoreURL, url)
	}
}

func TestBucket(t *testing.T) {
	app := test.NewApp()
	defaults := Default()
	defaults.Store.Bucket = "from_file"
	settings := NewSettings(app, defaults)

	// Test fallback to loaded config
	if bucket := settings.GetBucket(); bucket != "from_file" {
		t.Errorf("Expected bucket from_file, got %s", bucket)
	}

	settings.SetBucket("team")
	if bucket := settings.GetBucket(); bucket != "team" {
		t.Errorf("Expected bucket team, got %s", bucket)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())

	// Test default value
	if timeout := settings.GetRequestTimeout(); timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, timeout)
	}

	settings.SetRequestTimeout(30 * time.Second)
	if timeout := settings.GetRequestTimeout(); timeout != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", timeout)
	}

	// Test boundary values
	settings.SetRequestTimeout(0)
	if settings.GetRequestTimeout() != MinRequestTimeout {
		t.Error("Request timeout should be clamped to the minimum")
	}

	settings.SetRequestTimeout(time.Hour)
	if settings.GetRequestTimeout() != MaxRequestTimeout {
		t.Error("Request timeout should be clamped to the maximum")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestStoreOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Default())
	settings.SetStoreURL("nats://example:4222")
	settings.SetBucket("b")
	settings.SetRequestTimeout(2 * time.Second)

	opts := settings.StoreOptions()
	if opts.URL != "nats://example:4222" || opts.Bucket != "b" || opts.ConnectTimeout != 2*time.Second {
		t.Errorf("Unexpected store options: %+v", opts)
	}
}
