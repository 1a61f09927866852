package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("%w: bucket missing", apperrors.ErrNotFound)
	err := apperrors.NewAppError(500, "failed to read store", cause)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "failed to read store: resource not found: bucket missing", err.Error())
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)

	assert.Equal(t, "bad input", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
