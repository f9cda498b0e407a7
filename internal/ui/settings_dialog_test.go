package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/project-manager/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app, config.Default())
	saved := 0
	sd := NewSettingsDialog(settings, app.NewWindow(""), NewLocalization(), func() { saved++ })
	sd.loadCurrentSettings()
	return sd, settings, &saved
}

func TestSettingsDialogLoad(t *testing.T) {
	sd, _, _ := newTestSettingsDialog(t)

	if sd.storeURLEntry.Text != config.DefaultStoreURL {
		t.Errorf("store URL entry = %q", sd.storeURLEntry.Text)
	}
	if sd.timeoutEntry.Text != "10" {
		t.Errorf("timeout entry = %q, want 10", sd.timeoutEntry.Text)
	}
	if sd.languageSelect.Selected != config.DefaultLanguage {
		t.Errorf("language = %q", sd.languageSelect.Selected)
	}
}

func TestSettingsDialogSave(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	sd.storeURLEntry.SetText(" nats://kv.internal:4222 ")
	sd.bucketEntry.SetText("team")
	sd.timeoutEntry.SetText("30")
	sd.languageSelect.SetSelected("ru")
	sd.onSave(true)

	if got := settings.GetStoreURL(); got != "nats://kv.internal:4222" {
		t.Errorf("store URL = %q", got)
	}
	if got := settings.GetBucket(); got != "team" {
		t.Errorf("bucket = %q", got)
	}
	if got := settings.GetRequestTimeout(); got != 30*time.Second {
		t.Errorf("timeout = %s", got)
	}
	if got := settings.GetLanguage(); got != "ru" {
		t.Errorf("language = %q", got)
	}
	if *saved != 1 {
		t.Errorf("onSaved called %d times", *saved)
	}
}

func TestSettingsDialogInvalidTimeoutKept(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	sd.timeoutEntry.SetText("soon")
	sd.onSave(true)

	if got := settings.GetRequestTimeout(); got != config.DefaultRequestTimeout {
		t.Errorf("invalid timeout should keep %s, got %s", config.DefaultRequestTimeout, got)
	}
	if err := sd.validateSeconds("soon"); err == nil {
		t.Error("validator should reject non-numeric timeout")
	}
	if err := sd.validateSeconds(""); err != nil {
		t.Errorf("validator should accept empty text, got %v", err)
	}
}

func TestSettingsDialogCancel(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	sd.bucketEntry.SetText("other")
	sd.onSave(false)

	if settings.GetBucket() != config.DefaultBucket {
		t.Errorf("cancel should not change bucket, got %s", settings.GetBucket())
	}
	if *saved != 0 {
		t.Error("onSaved should not run on cancel")
	}
}

func TestSettingsDialogClearRestoresDefaults(t *testing.T) {
	sd, settings, _ := newTestSettingsDialog(t)

	settings.SetStoreURL("nats://override:4222")
	settings.SetBucket("override")
	sd.loadCurrentSettings()

	sd.storeURLEntry.SetText("  ")
	sd.bucketEntry.SetText("")
	sd.onSave(true)

	if got := settings.GetStoreURL(); got != config.DefaultStoreURL {
		t.Errorf("cleared store URL should fall back to %s, got %s", config.DefaultStoreURL, got)
	}
	if got := settings.GetBucket(); got != config.DefaultBucket {
		t.Errorf("cleared bucket should fall back to %s, got %s", config.DefaultBucket, got)
	}
}
