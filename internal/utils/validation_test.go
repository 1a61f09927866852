package utils_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `binding:"required"`
	Email string `binding:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{"valid", sample{Name: "Budi"}, false},
		{"valid with email", sample{Name: "Budi", Email: "budi@example.com"}, false},
		{"missing name", sample{}, true},
		{"bad email", sample{Name: "Budi", Email: "nope"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := utils.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
