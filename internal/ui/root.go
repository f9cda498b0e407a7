package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/project-manager/internal/config"
	"github.com/ytget/project-manager/internal/form"
	"github.com/ytget/project-manager/internal/model"
	"github.com/ytget/project-manager/internal/projects"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	manager      projects.Manager
	settings     *config.Settings
	localization *Localization
	logger       *zap.Logger

	// Current view and the ID of the selected record, empty when nothing is selected
	view       projects.View
	selectedID string

	headerLabel *widget.Label
	statusLabel *widget.Label
	projectList *widget.List

	newBtn     *widget.Button
	editBtn    *widget.Button
	deleteBtn  *widget.Button
	searchBtn  *widget.Button
	sortBtn    *widget.Button
	refreshBtn *widget.Button

	// showError presents an error to the user; replaced in tests
	showError func(err error)
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, manager projects.Manager, settings *config.Settings, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		manager:      manager,
		settings:     settings,
		localization: localization,
		logger:       logger,
		view:         manager.Current(),
	}
	ui.showError = ui.showErrorDialog

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Redraw whenever the controller renders a new view
	ui.manager.SetRenderCallback(ui.onRender)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.newBtn = widget.NewButton(ui.localization.GetText(KeyNewProject), func() { ui.onNewProject() })
	ui.newBtn.Importance = widget.HighImportance
	ui.editBtn = widget.NewButton(ui.localization.GetText(KeyEditProject), func() { ui.onEditProject() })
	ui.deleteBtn = widget.NewButton(ui.localization.GetText(KeyDeleteProject), ui.onDeleteProject)
	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), func() { ui.onSearch() })
	ui.sortBtn = widget.NewButton(ui.localization.GetText(KeySort), ui.onSort)
	ui.refreshBtn = widget.NewButton(ui.localization.GetText(KeyRefresh), ui.onRefresh)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	toolbar := container.NewBorder(nil, nil, left, nil,
		container.NewHBox(ui.newBtn, ui.editBtn, ui.deleteBtn, ui.searchBtn, ui.sortBtn, ui.refreshBtn))

	// The header sits above the list and is never selectable
	ui.headerLabel = widget.NewLabelWithStyle(ui.view.Header, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
	ui.statusLabel = widget.NewLabel("")
	ui.updateStatus()

	ui.projectList = widget.NewList(
		func() int {
			return len(ui.view.Rows)
		},
		func() fyne.CanvasObject {
			return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateRowItem(id, obj) },
	)
	ui.projectList.OnSelected = ui.onRowSelected
	ui.projectList.OnUnselected = func(widget.ListItemID) { ui.selectedID = "" }

	top := container.NewVBox(toolbar, widget.NewSeparator(), ui.statusLabel, ui.headerLabel)
	content := container.NewBorder(top, nil, nil, nil, ui.projectList)

	ui.window.SetContent(content)
	ui.logger.Debug("UI setup completed")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.newBtn.SetText(ui.localization.GetText(KeyNewProject))
	ui.editBtn.SetText(ui.localization.GetText(KeyEditProject))
	ui.deleteBtn.SetText(ui.localization.GetText(KeyDeleteProject))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.sortBtn.SetText(ui.localization.GetText(KeySort))
	ui.refreshBtn.SetText(ui.localization.GetText(KeyRefresh))
	ui.updateStatus()
}

// onRender replaces the displayed view. A selection survives only if its
// record is still shown.
func (ui *RootUI) onRender(v projects.View) {
	ui.view = v
	if ui.headerLabel == nil {
		return
	}

	ui.headerLabel.SetText(v.Header)
	ui.updateStatus()

	row := ui.rowOf(ui.selectedID)
	selected := ui.selectedID
	ui.projectList.UnselectAll()
	ui.projectList.Refresh()
	if row < 0 {
		ui.selectedID = ""
		return
	}
	ui.projectList.Select(row)
	ui.selectedID = selected
}

// updateStatus shows whether the list is filtered
func (ui *RootUI) updateStatus() {
	if ui.view.Filtered() {
		ui.statusLabel.SetText(fmt.Sprintf(SearchTermFormat, ui.localization.GetText(KeySearchResults), ui.view.Term))
		return
	}
	ui.statusLabel.SetText(ui.localization.GetText(KeyAllProjects))
}

// updateRowItem draws one row of the current view
func (ui *RootUI) updateRowItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id < 0 || id >= len(ui.view.Rows) {
		return
	}
	if label, ok := item.(*widget.Label); ok {
		label.SetText(ui.view.Rows[id].Text)
	}
}

// onRowSelected maps a list row to its record ID
func (ui *RootUI) onRowSelected(id widget.ListItemID) {
	recordID, ok := ui.view.IDAt(id)
	if !ok {
		ui.selectedID = ""
		return
	}
	ui.selectedID = recordID
}

// rowOf returns the row showing the record with the given ID, or -1
func (ui *RootUI) rowOf(recordID string) int {
	if recordID == "" {
		return -1
	}
	for i, r := range ui.view.Rows {
		if r.ID == recordID {
			return i
		}
	}
	return -1
}

// requestContext bounds a store call by the configured request timeout
func (ui *RootUI) requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), ui.settings.GetRequestTimeout())
}

// onNewProject opens an empty detail dialog and adds the result
func (ui *RootUI) onNewProject() *ProjectDialog {
	pd := NewProjectDialog(form.New(nil), ui.window, ui.localization, func(outcome form.Outcome) {
		ctx, cancel := ui.requestContext()
		defer cancel()
		if err := ui.manager.Add(ctx, outcome); err != nil {
			ui.handleError(err)
		}
	})
	pd.Show()
	return pd
}

// onEditProject opens the detail dialog for the selected project. Without a
// selection it reports the error and opens nothing.
func (ui *RootUI) onEditProject() *ProjectDialog {
	p, err := ui.manager.RequireSelection(ui.selectedID)
	if err != nil {
		ui.handleError(err)
		return nil
	}

	pd := NewProjectDialog(form.New(&p), ui.window, ui.localization, func(outcome form.Outcome) {
		ctx, cancel := ui.requestContext()
		defer cancel()
		if err := ui.manager.Edit(ctx, p.ID, outcome); err != nil {
			ui.handleError(err)
		}
	})
	pd.Show()
	return pd
}

// onDeleteProject removes the selected project
func (ui *RootUI) onDeleteProject() {
	ctx, cancel := ui.requestContext()
	defer cancel()

	id := ui.selectedID
	if err := ui.manager.Delete(ctx, id); err != nil {
		ui.handleError(err)
		return
	}
	ui.selectedID = ""
	ui.projectList.UnselectAll()
}

// onSearch prompts for a term and shows the matching projects
func (ui *RootUI) onSearch() *SearchDialog {
	sd := NewSearchDialog(ui.window, ui.localization, func(term string) {
		if _, ok := ui.manager.Search(term); !ok {
			ui.logger.Debug("Empty search term ignored")
		}
	})
	sd.Show()
	return sd
}

// onSort orders the list by name
func (ui *RootUI) onSort() {
	ui.manager.Sort()
}

// onRefresh reloads the list from the store
func (ui *RootUI) onRefresh() {
	ctx, cancel := ui.requestContext()
	defer cancel()
	if err := ui.manager.Refresh(ctx); err != nil {
		ui.handleError(err)
	}
}

// Refresh reloads the list from the store, reporting failures like the Refresh button
func (ui *RootUI) Refresh() {
	ui.onRefresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		dialog.ShowInformation(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), ui.window)
	}).Show()
}

// handleError maps controller errors to user-facing messages
func (ui *RootUI) handleError(err error) {
	switch {
	case errors.Is(err, projects.ErrNoSelection), errors.Is(err, projects.ErrNotFound):
		ui.showError(errors.New(ui.localization.GetText(KeyNoSelection)))
	case model.IsValidationError(err), errors.Is(err, projects.ErrIDMismatch):
		ui.showError(errors.New(ui.localization.GetText(KeyCheckInput) + ErrorDetailSep + err.Error()))
	default:
		ui.logger.Error("Store operation failed", zap.Error(err))
		ui.showError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyStoreError), err))
	}
}

func (ui *RootUI) showErrorDialog(err error) {
	dialog.ShowError(err, ui.window)
}
