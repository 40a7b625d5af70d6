package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/joeblew999/plat-respond/pkg/render"
	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStore(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		code  int
		retry bool
	}{
		{"not found", fmt.Errorf("load a.json: %w", store.ErrNotFound), http.StatusNotFound, false},
		{"bad filename", fmt.Errorf("%w: %q", store.ErrInvalidFilename, "x"), http.StatusBadRequest, false},
		{"bad document", fmt.Errorf("load a.json: %w", store.ErrInvalidDocument), http.StatusInternalServerError, false},
		{"missing variable", &render.MissingVariableError{Names: []string{"name"}}, http.StatusBadRequest, false},
		{"validation", &template.ValidationError{Fields: []string{"name"}}, http.StatusBadRequest, false},
		{"transport", errors.New("dial tcp: timeout"), http.StatusServiceUnavailable, true},
		{"code error", ErrNotFound("gone"), http.StatusNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ce *CodeError
			require.ErrorAs(t, FromStore(tt.err), &ce)
			assert.Equal(t, tt.code, ce.Code)
			assert.Equal(t, tt.retry, ce.Retry)
		})
	}

	assert.NoError(t, FromStore(nil))
}
