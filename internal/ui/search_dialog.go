package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// SearchDialog prompts for a single search term
type SearchDialog struct {
	window       fyne.Window
	localization *Localization
	dialog       *dialog.FormDialog
	termEntry    *widget.Entry
	onSubmit     func(term string)
}

// NewSearchDialog creates the prompt. onSubmit receives the raw term when the
// user confirms, and is not called on cancel.
func NewSearchDialog(window fyne.Window, localization *Localization, onSubmit func(term string)) *SearchDialog {
	sd := &SearchDialog{
		window:       window,
		localization: localization,
		onSubmit:     onSubmit,
	}
	sd.createUI()
	return sd
}

// Show displays the prompt
func (sd *SearchDialog) Show() {
	sd.dialog.Show()
	sd.window.Canvas().Focus(sd.termEntry)
}

func (sd *SearchDialog) createUI() {
	sd.termEntry = widget.NewEntry()
	sd.termEntry.SetPlaceHolder(sd.localization.GetText(KeyEnterKeyword))

	sd.dialog = dialog.NewForm(
		sd.localization.GetText(KeySearch),
		sd.localization.GetText(KeySearch),
		sd.localization.GetText(KeyCancel),
		[]*widget.FormItem{widget.NewFormItem(sd.localization.GetText(KeyEnterKeyword), sd.termEntry)},
		sd.onClose,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SearchDialogWidth, SearchDialogHeight))
}

// onClose handles both buttons of the prompt
func (sd *SearchDialog) onClose(confirmed bool) {
	if !confirmed || sd.onSubmit == nil {
		return
	}
	sd.onSubmit(sd.termEntry.Text)
}
