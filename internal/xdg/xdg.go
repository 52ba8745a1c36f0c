// ABOUTME: XDG base directory lookup for the text area demo
// ABOUTME: Resolves config and data directories and expands ~ and $XDG_* in paths

package xdg

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory created under each XDG base directory.
const AppName = "expandable-textarea"

// ConfigHome returns ~/.config/expandable-textarea or respects XDG_CONFIG_HOME.
func ConfigHome() string {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// DataHome returns ~/.local/share/expandable-textarea or respects XDG_DATA_HOME.
func DataHome() string {
	return appDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func appDir(env, fallback string) string {
	return filepath.Join(baseDir(env, fallback), AppName)
}

func baseDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	return filepath.Join(getHome(), fallback)
}

// ExpandPath expands a leading ~/ or $XDG_CONFIG_HOME / $XDG_DATA_HOME.
// Other paths pass through unchanged.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(getHome(), path[2:])
	}

	vars := []struct {
		name     string
		fallback string
	}{
		{"XDG_DATA_HOME", filepath.Join(".local", "share")},
		{"XDG_CONFIG_HOME", ".config"},
	}
	for _, v := range vars {
		prefix := "$" + v.name
		if strings.HasPrefix(path, prefix) {
			return strings.Replace(path, prefix, baseDir(v.name, v.fallback), 1)
		}
	}

	return path
}

// getHome returns HOME, then the working directory, then ".".
func getHome() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
