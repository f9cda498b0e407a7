package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/project-manager/internal/model"
)

func TestUnavailable(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	st := Unavailable{Cause: cause}
	ctx := context.Background()

	_, err := st.ScanAll(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)

	assert.ErrorIs(t, st.Upsert(ctx, model.Project{ID: "a"}), ErrUnavailable)
	assert.ErrorIs(t, st.Delete(ctx, "a"), ErrUnavailable)

	assert.Equal(t, ErrUnavailable, Unavailable{}.Delete(ctx, "a"))
}
