package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/bukukas_app/internal/apperrors"
)

// DecodeSequence decodes payload as a JSON array of T. Anything that is not
// an array is rejected with apperrors.ErrValidation.
func DecodeSequence[T any](payload []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: data harus berupa array", apperrors.ErrValidation)
	}
	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
