package utils_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
	"github.com/SscSPs/bukukas_app/internal/core/domain"
	"github.com/SscSPs/bukukas_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSequence(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantLen int
		wantErr bool
	}{
		{name: "array", payload: ` [{"noInvoice":"INV-001"},{"noInvoice":"INV-002"}]`, wantLen: 2},
		{name: "empty array", payload: `[]`, wantLen: 0},
		{name: "object", payload: `{"noInvoice":"INV-001"}`, wantErr: true},
		{name: "string", payload: `"INV-001"`, wantErr: true},
		{name: "empty payload", payload: ``, wantErr: true},
		{name: "broken array", payload: `[{"noInvoice":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.DecodeSequence[domain.Invoice]([]byte(tt.payload))
			if tt.wantErr {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
