package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/assetpack/pkg/assetpack"
)

func TestRun_MapsErrorsToExitCodes(t *testing.T) {
	t.Setenv(crashEnv, "")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, assetpack.ExitSuccess},
		{"profile missing", fmt.Errorf("load: %w", assetpack.ErrProfileNotFound), assetpack.ExitProfileError},
		{"unclassified", fmt.Errorf("boom"), assetpack.ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := run(&stderr, func() error { return tt.err })
			assert.Equal(t, tt.want, code)
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_RecoversPanic(t *testing.T) {
	t.Setenv(crashEnv, "")

	var stderr bytes.Buffer
	code := run(&stderr, func() error { panic("walker exploded") })

	assert.Equal(t, assetpack.ExitPanic, code)
	assert.Contains(t, stderr.String(), "assetpack crashed: walker exploded")
	assert.Contains(t, stderr.String(), "--overwrite")
}

func TestRun_CrashEnv(t *testing.T) {
	t.Setenv(crashEnv, "1")

	var stderr bytes.Buffer
	called := false
	code := run(&stderr, func() error { called = true; return nil })

	assert.Equal(t, assetpack.ExitPanic, code)
	assert.False(t, called)
	assert.Contains(t, stderr.String(), crashEnv)
}
