//go:build !windows
// +build !windows

package vt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableSystemNoop(t *testing.T) {
	assert.False(t, Supported)
	assert.NoError(t, EnableSystem())
	assert.Zero(t, testing.AllocsPerRun(10, func() { _ = EnableSystem() }))
}
