package monitoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_EmptyDSNIsNoop(t *testing.T) {
	assert.NoError(t, Init("", "test", 1.0))
}

func TestAlert_WithoutClientDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		Alert(context.Background(), "boom", errors.New("db down"))
		RecoverAndAlert(context.Background(), "handler panic", "nil map")
	})
}
