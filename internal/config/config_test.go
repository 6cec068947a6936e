package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampTTSizeMiB(t *testing.T) {
	assert.Equal(t, 1, clampTTSizeMiB(0))
	assert.Equal(t, 1024, clampTTSizeMiB(5000))
	assert.Equal(t, 64, clampTTSizeMiB(64))
}

func TestSetupIsIdempotent(t *testing.T) {
	ConfFile = "./does-not-exist.toml"
	initialized = false
	Setup()
	first := Settings.TT.SizeMiB
	Settings.TT.SizeMiB = 999 // mutate directly; a second Setup() must not touch it
	Setup()
	assert.Equal(t, 999, Settings.TT.SizeMiB)
	assert.Equal(t, 64, first)
}
