package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{"no command", nil, exitUsage, "Usage: miioctl"},
		{"help", []string{"--help"}, exitOK, "send-configuration"},
		{"unknown flag", []string{"--bogus", "status"}, exitUsage, "unknown flag"},
		{"bad family", []string{"-f", "toaster", "status"}, exitUsage, "invalid device family"},
		{"bad argument", []string{"-d", "ac", "learn", "thirty"}, exitUsage, "invalid slot"},
		{"wrong family", []string{"-f", "airpurifier", "set-power-price", "10"}, exitUsage, "not available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr.String(), tt.stderr)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestLazySenderCloseWithoutConnect(t *testing.T) {
	l := newLazySender(&settings{}, nil)
	assert.NoError(t, l.Close())
}
