package utils_test

import (
	"log/slog"
	"testing"

	"github.com/SscSPs/bukukas_app/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestPosthogClient_EmptyKeyIsNoop(t *testing.T) {
	w := utils.InitializePosthogClient("", slog.Default())

	assert.False(t, w.IsInitialized())
	assert.NotPanics(t, func() {
		w.Enqueue("admin", "activity", map[string]any{"activity": "login"})
		w.Close()
	})
}
