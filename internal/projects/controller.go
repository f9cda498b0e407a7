package projects

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/project-manager/internal/form"
	"github.com/ytget/project-manager/internal/model"
	"github.com/ytget/project-manager/internal/store"
)

var _ Manager = (*Controller)(nil)

// Controller owns the local project list and keeps it in step with the store.
// It is driven from a single goroutine and does no locking.
type Controller struct {
	store    store.Store
	logger   *zap.Logger
	layout   Layout
	projects []*model.Project
	current  View
	onRender func(View) // callback for UI updates
}

// NewController creates a controller with an empty list
func NewController(st store.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		store:  st,
		logger: logger,
		layout: DefaultLayout,
	}
	c.current = c.layout.Render(nil)
	return c
}

// SetRenderCallback sets the function called with every new view
func (c *Controller) SetRenderCallback(callback func(View)) {
	c.onRender = callback
}

// Current returns the last rendered view
func (c *Controller) Current() View {
	return c.current
}

// Refresh replaces the local list with a full scan of the store
func (c *Controller) Refresh(ctx context.Context) error {
	scanned, err := c.store.ScanAll(ctx)
	if err != nil {
		c.logger.Error("Refresh failed", zap.Error(err))
		return fmt.Errorf("refresh: %w", err)
	}

	c.projects = c.projects[:0]
	for i := range scanned {
		p := scanned[i]
		c.projects = append(c.projects, &p)
	}

	c.logger.Info("Project list refreshed", zap.Int("count", len(c.projects)))
	c.renderAll()
	return nil
}

// Render builds a view of projects without changing controller state
func (c *Controller) Render(projects []model.Project) View {
	return c.layout.Render(projects)
}

// Add stores a newly created project. A cancelled form is a no-op.
func (c *Controller) Add(ctx context.Context, outcome form.Outcome) error {
	saved, ok := outcome.(form.Saved)
	if !ok {
		return nil
	}
	p := saved.Project

	if err := c.store.Upsert(ctx, p); err != nil {
		c.logger.Error("Add failed", zap.String("id", p.ID), zap.Error(err))
		return fmt.Errorf("add project: %w", err)
	}

	c.projects = append(c.projects, &p)
	c.logger.Info("Project added", zap.String("id", p.ID), zap.String("name", p.Name))
	c.renderAll()
	return nil
}

// Edit stores the changes for the selected project and updates it in place
func (c *Controller) Edit(ctx context.Context, id string, outcome form.Outcome) error {
	target, _, err := c.selected(id)
	if err != nil {
		return err
	}

	saved, ok := outcome.(form.Saved)
	if !ok {
		return nil
	}
	if saved.Project.ID != id {
		return fmt.Errorf("%w: selected %s, got %s", ErrIDMismatch, id, saved.Project.ID)
	}

	if err := c.store.Upsert(ctx, saved.Project); err != nil {
		c.logger.Error("Edit failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("edit project: %w", err)
	}

	target.Update(saved.Project)
	c.logger.Info("Project updated", zap.String("id", id), zap.Int("progress", target.Progress))
	c.renderAll()
	return nil
}

// Delete removes the selected project from the store and the local list
func (c *Controller) Delete(ctx context.Context, id string) error {
	_, idx, err := c.selected(id)
	if err != nil {
		return err
	}

	if err := c.store.Delete(ctx, id); err != nil {
		c.logger.Error("Delete failed", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("delete project: %w", err)
	}

	c.projects = slices.Delete(c.projects, idx, idx+1)
	c.logger.Info("Project deleted", zap.String("id", id))
	c.renderAll()
	return nil
}

// Search renders the local projects whose name or description contains term.
// An empty term does nothing and returns false. The local list is unchanged.
func (c *Controller) Search(term string) (View, bool) {
	if term == "" {
		return View{}, false
	}

	matches := make([]model.Project, 0)
	for _, p := range c.projects {
		if p.Matches(term) {
			matches = append(matches, *p)
		}
	}

	v := c.layout.Render(matches)
	v.Term = term
	c.logger.Debug("Search", zap.String("term", term), zap.Int("matches", len(matches)))
	c.render(v)
	return v, true
}

// Sort orders the local list by name, keeping equal names in their current order
func (c *Controller) Sort() {
	slices.SortStableFunc(c.projects, func(a, b *model.Project) int {
		return strings.Compare(a.Name, b.Name)
	})
	c.renderAll()
}

// RequireSelection returns the selected project, or ErrNoSelection/ErrNotFound
func (c *Controller) RequireSelection(id string) (model.Project, error) {
	p, _, err := c.selected(id)
	if err != nil {
		return model.Project{}, err
	}
	return *p, nil
}

// Get returns a copy of the project with the given ID
func (c *Controller) Get(id string) (model.Project, bool) {
	if p, _ := c.find(id); p != nil {
		return *p, true
	}
	return model.Project{}, false
}

// Projects returns a copy of the local list in its current order
func (c *Controller) Projects() []model.Project {
	out := make([]model.Project, 0, len(c.projects))
	for _, p := range c.projects {
		out = append(out, *p)
	}
	return out
}

// Len returns the number of local projects
func (c *Controller) Len() int {
	return len(c.projects)
}

func (c *Controller) selected(id string) (*model.Project, int, error) {
	if id == "" {
		return nil, -1, ErrNoSelection
	}
	p, idx := c.find(id)
	if p == nil {
		return nil, -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return p, idx, nil
}

func (c *Controller) find(id string) (*model.Project, int) {
	for i, p := range c.projects {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

func (c *Controller) renderAll() {
	c.render(c.layout.Render(c.Projects()))
}

// render stores v as current and notifies the callback if set
func (c *Controller) render(v View) {
	c.current = v
	if c.onRender != nil {
		c.onRender(v)
	}
}
