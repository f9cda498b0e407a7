package ui

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/project-manager/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	storeURLEntry  *widget.Entry
	bucketEntry    *widget.Entry
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after values
// have been written to settings.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.storeURLEntry = widget.NewEntry()
	sd.storeURLEntry.SetPlaceHolder(config.DefaultStoreURL)

	sd.bucketEntry = widget.NewEntry()
	sd.bucketEntry.SetPlaceHolder(config.DefaultBucket)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(int(config.DefaultRequestTimeout / time.Second)))
	sd.timeoutEntry.Validator = sd.validateSeconds

	// Language selection, sorted so the order is stable between openings
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyStoreSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyStoreURL)+":"),
		sd.storeURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyBucket)+":"),
		sd.bucketEntry,

		widget.NewLabel(sd.localization.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.storeURLEntry.SetText(sd.settings.GetStoreURL())
	sd.bucketEntry.SetText(sd.settings.GetBucket())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Empty entries clear the override and fall back to the loaded config
	sd.settings.SetStoreURL(strings.TrimSpace(sd.storeURLEntry.Text))
	sd.settings.SetBucket(strings.TrimSpace(sd.bucketEntry.Text))

	// An unparsable timeout keeps the previous value
	if secs, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text)); err == nil && secs > 0 {
		sd.settings.SetRequestTimeout(time.Duration(secs) * time.Second)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// validateSeconds accepts an empty value or a positive whole number
func (sd *SettingsDialog) validateSeconds(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	secs, err := strconv.Atoi(text)
	if err != nil || secs <= 0 {
		return errors.New(sd.localization.GetText(KeyInvalidTimeout))
	}
	return nil
}
