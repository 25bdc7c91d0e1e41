package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verifyinput/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	assert.True(t, logger.Field("phone").Equal(slog.String("field", "phone")))
	assert.True(t, logger.Kind("id_cn").Equal(slog.String("kind", "id_cn")))
	assert.True(t, logger.Order(3).Equal(slog.Int("order", 3)))
	assert.True(t, logger.Component("engine").Equal(slog.String("component", "engine")))
}
