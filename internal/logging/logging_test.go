package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level string
		debug bool
	}{
		{level: "", debug: false},
		{level: "info", debug: false},
		{level: "debug", debug: true},
		{level: "WARN", debug: false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, err := New(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.debug, log.Core().Enabled(zap.DebugLevel))
			assert.True(t, log.Core().Enabled(zap.ErrorLevel))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.ErrorContains(t, err, "log level")
}
