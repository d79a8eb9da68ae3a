package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	err := ErrItemRequired.WithDetails(map[string]interface{}{"field": "item"})

	assert.Equal(t, "item", err.Details["field"])
	assert.Empty(t, ErrItemRequired.Details)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestAppError_Is(t *testing.T) {
	err := fmt.Errorf("calculate: %w", ErrItemRequired.WithDetails(nil))

	assert.True(t, stderrors.Is(err, ErrItemRequired))
	assert.False(t, stderrors.Is(err, ErrInvalidRequest))
	assert.Equal(t, "ITEM_REQUIRED: Neighborhood is required", ErrItemRequired.Error())
}
