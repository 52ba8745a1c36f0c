// ABOUTME: Tests for XDG base directory lookup
// ABOUTME: Covers env overrides, HOME fallback, and path expansion

package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Equal(t, filepath.Join("/home/tester", ".config", AppName), ConfigHome())
}

func TestConfigHome_WithEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/custom-config")

	assert.Equal(t, filepath.Join("/tmp/custom-config", AppName), ConfigHome())
}

func TestDataHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join("/home/tester", ".local", "share", AppName), DataHome())
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde", "~/logs/area.log", "/home/tester/logs/area.log"},
		{"data home fallback", "$XDG_DATA_HOME/area.log", "/home/tester/.local/share/area.log"},
		{"config home from env", "$XDG_CONFIG_HOME/area.yaml", "/xdg/config/area.yaml"},
		{"absolute", "/var/log/area.log", "/var/log/area.log"},
		{"relative", "area.log", "area.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}

func TestGetHome_FallsBackToWorkingDir(t *testing.T) {
	t.Setenv("HOME", "")

	cwd, err := os.Getwd()
	if err != nil {
		t.Skip("no working directory")
	}
	assert.Equal(t, cwd, getHome())
}
