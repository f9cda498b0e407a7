package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/project-manager/internal/store"
)

// Settings keys for Fyne preferences
const (
	KeyStoreURL       = "store_url"
	KeyBucket         = "store_bucket"
	KeyRequestTimeout = "store_request_timeout_ms"
	KeyLanguage       = "app_language"
)

// Request timeout bounds accepted from the settings dialog
const (
	MinRequestTimeout = time.Second
	MaxRequestTimeout = 5 * time.Minute
)

// Settings manages user-editable configuration. Unset preferences fall back
// to the loaded Config.
type Settings struct {
	app      fyne.App
	defaults Config
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App, defaults Config) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetStoreURL returns the NATS URL of the project table
func (s *Settings) GetStoreURL() string {
	url := s.app.Preferences().String(KeyStoreURL)
	if url == "" {
		return s.defaults.Store.URL
	}
	return url
}

// SetStoreURL sets the NATS URL; an empty value restores the default
func (s *Settings) SetStoreURL(url string) {
	s.app.Preferences().SetString(KeyStoreURL, url)
}

// GetBucket returns the key-value bucket name
func (s *Settings) GetBucket() string {
	bucket := s.app.Preferences().String(KeyBucket)
	if bucket == "" {
		return s.defaults.Store.Bucket
	}
	return bucket
}

// SetBucket sets the key-value bucket name; an empty value restores the default
func (s *Settings) SetBucket(bucket string) {
	s.app.Preferences().SetString(KeyBucket, bucket)
}

// GetRequestTimeout returns the deadline applied to each store call
func (s *Settings) GetRequestTimeout() time.Duration {
	ms := s.app.Preferences().Int(KeyRequestTimeout)
	if ms <= 0 {
		return s.defaults.Store.RequestTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

// SetRequestTimeout sets the store call deadline, clamped to sane bounds
func (s *Settings) SetRequestTimeout(d time.Duration) {
	if d < MinRequestTimeout {
		d = MinRequestTimeout
	}
	if d > MaxRequestTimeout {
		d = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, int(d/time.Millisecond))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// StoreOptions returns the connection options for the store client
func (s *Settings) StoreOptions() store.Options {
	return store.Options{
		URL:            s.GetStoreURL(),
		Bucket:         s.GetBucket(),
		ConnectTimeout: s.GetRequestTimeout(),
	}
}
