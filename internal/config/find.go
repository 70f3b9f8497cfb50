package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appDir = "contrastx"

var (
	dotFilenames = []string{
		".contrastx.yaml",
		".contrastx.yml",
		".contrastx.toml",
		".contrastx.json",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Find locates the config file and reports where it came from: "explicit",
// "cwd-up", "xdg" or "home". An empty path with a nil error means no file.
//
// Search order: explicitPath, then .contrastx.* from startDir up to the
// filesystem root, then $XDG_CONFIG_HOME/contrastx/config.* (defaulting to
// ~/.config), then ~/.contrastx.*.
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate, err := filepath.Abs(explicit)
		if err != nil {
			return "", "", err
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("CONTRASTX_CONFIG %q points to a directory", candidate)
		}
		return candidate, "explicit", nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}
	for {
		if found := firstExisting(dir, dotFilenames); found != "" {
			return found, "cwd-up", nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := resolveHome(home)
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		if found := firstExisting(filepath.Join(xdgRoot, appDir), xdgFilenames); found != "" {
			return found, "xdg", nil
		}
	}
	if homeDir != "" {
		if found := firstExisting(homeDir, dotFilenames); found != "" {
			return found, "home", nil
		}
	}
	return "", "", nil
}

func resolveHome(home string) string {
	if h := strings.TrimSpace(home); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return ""
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
