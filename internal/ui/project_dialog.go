package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/project-manager/internal/form"
	"github.com/ytget/project-manager/internal/model"
)

// ProjectDialog is the modal "Project Detail" window. It stays open until the
// form is saved with valid input or cancelled, then hands the outcome to onDone.
type ProjectDialog struct {
	form         *form.Form
	window       fyne.Window
	localization *Localization
	dialog       *dialog.CustomDialog
	onDone       func(form.Outcome)
	onInvalid    func(error)

	// UI components
	nameEntry        *widget.Entry
	descriptionEntry *widget.Entry
	progressEntry    *widget.Entry
	dueDateEntry     *widget.Entry
	saveBtn          *widget.Button
	cancelBtn        *widget.Button
}

// NewProjectDialog creates the dialog for f. onDone is called exactly once.
func NewProjectDialog(f *form.Form, window fyne.Window, localization *Localization, onDone func(form.Outcome)) *ProjectDialog {
	pd := &ProjectDialog{
		form:         f,
		window:       window,
		localization: localization,
		onDone:       onDone,
	}
	pd.onInvalid = pd.showInvalid

	pd.createUI()
	pd.loadInitial()
	return pd
}

// Show displays the dialog
func (pd *ProjectDialog) Show() {
	pd.dialog.Show()
	pd.window.Canvas().Focus(pd.nameEntry)
}

// Input returns the current text of all fields
func (pd *ProjectDialog) Input() form.Input {
	return form.Input{
		Name:        pd.nameEntry.Text,
		Description: pd.descriptionEntry.Text,
		Progress:    pd.progressEntry.Text,
		DueDate:     pd.dueDateEntry.Text,
	}
}

// createUI creates the dialog UI
func (pd *ProjectDialog) createUI() {
	pd.nameEntry = widget.NewEntry()
	pd.descriptionEntry = widget.NewMultiLineEntry()
	pd.descriptionEntry.Wrapping = fyne.TextWrapWord
	pd.progressEntry = widget.NewEntry()
	pd.progressEntry.SetPlaceHolder("0-100")
	pd.dueDateEntry = widget.NewEntry()
	pd.dueDateEntry.OnSubmitted = func(string) { pd.onSave() }

	fields := widget.NewForm(
		widget.NewFormItem(pd.localization.GetText(KeyName), pd.nameEntry),
		widget.NewFormItem(pd.localization.GetText(KeyDescription), pd.descriptionEntry),
		widget.NewFormItem(pd.localization.GetText(KeyProgress), pd.progressEntry),
		widget.NewFormItem(pd.localization.GetText(KeyDueDate), pd.dueDateEntry),
	)

	pd.saveBtn = widget.NewButton(pd.localization.GetText(KeySave), pd.onSave)
	pd.saveBtn.Importance = widget.HighImportance
	pd.cancelBtn = widget.NewButton(pd.localization.GetText(KeyCancel), pd.onCancel)

	// Buttons are ours so that an invalid save keeps the dialog open
	pd.dialog = dialog.NewCustomWithoutButtons(
		pd.localization.GetText(KeyProjectDetail),
		container.NewPadded(fields),
		pd.window,
	)
	pd.dialog.SetButtons([]fyne.CanvasObject{pd.cancelBtn, pd.saveBtn})
	pd.dialog.Resize(fyne.NewSize(ProjectDialogWidth, ProjectDialogHeight))
}

// loadInitial fills the entries from the form's initial record
func (pd *ProjectDialog) loadInitial() {
	in := pd.form.InitialInput()
	pd.nameEntry.SetText(in.Name)
	pd.descriptionEntry.SetText(in.Description)
	pd.progressEntry.SetText(in.Progress)
	pd.dueDateEntry.SetText(in.DueDate)
}

// onSave validates the entries and closes the dialog on success
func (pd *ProjectDialog) onSave() {
	outcome, err := pd.form.Save(pd.Input())
	if errors.Is(err, form.ErrClosed) {
		return
	}
	if err != nil {
		pd.onInvalid(err)
		return
	}
	pd.finish(outcome)
}

// onCancel closes the dialog without a result
func (pd *ProjectDialog) onCancel() {
	outcome, err := pd.form.Cancel()
	if err != nil {
		return
	}
	pd.finish(outcome)
}

func (pd *ProjectDialog) finish(outcome form.Outcome) {
	pd.dialog.Hide()
	if pd.onDone != nil {
		pd.onDone(outcome)
	}
}

// showInvalid reports a validation failure over the open dialog
func (pd *ProjectDialog) showInvalid(err error) {
	message := pd.localization.GetText(KeyCheckInput)
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		message += ErrorDetailSep + ve.Error()
	}
	dialog.ShowError(errors.New(message), pd.window)
}
