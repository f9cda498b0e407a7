package projects

import (
	"context"

	"github.com/ytget/project-manager/internal/form"
	"github.com/ytget/project-manager/internal/model"
)

// Manager defines the list operations the presentation layer drives.
type Manager interface {
	SetRenderCallback(func(View))
	Refresh(ctx context.Context) error
	Add(ctx context.Context, outcome form.Outcome) error
	Edit(ctx context.Context, id string, outcome form.Outcome) error
	Delete(ctx context.Context, id string) error
	Search(term string) (View, bool)
	Sort()
	RequireSelection(id string) (model.Project, error)
	Get(id string) (model.Project, bool)
	Projects() []model.Project

	// Current returns the last rendered view
	Current() View
}
