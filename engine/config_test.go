package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.IsValid())
}

func TestConfigInvalidWithZeroBoardSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = 0
	assert.False(t, cfg.IsValid())
}

func TestConfigInvalidWithZeroSimulations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumSimulations = 0
	assert.False(t, cfg.IsValid())
}

func TestConfigInvalidWithEmptyLogPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogPath = ""
	assert.False(t, cfg.IsValid())
}
