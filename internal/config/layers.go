package config

import (
	"fmt"
	"os"
)

// Layers holds the file and environment layers in precedence order. Flags
// are merged on top by the caller.
type Layers struct {
	Path  string
	Where string
	File  Config
	Env   Config
}

// LoadLayers finds and loads the config file, then reads the environment.
// explicitPath wins over CONTRASTX_CONFIG.
func LoadLayers(startDir, explicitPath string, getenv func(string) string) (Layers, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	var layers Layers
	if explicitPath == "" {
		explicitPath = getenv("CONTRASTX_CONFIG")
	}
	path, where, err := Find(startDir, explicitPath, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return layers, fmt.Errorf("config: %w", err)
	}
	layers.Path = path
	layers.Where = where
	if path != "" {
		layers.File, err = Load(path)
		if err != nil {
			return layers, fmt.Errorf("config: %w", err)
		}
	}
	layers.Env, err = FromEnv(getenv)
	if err != nil {
		return layers, fmt.Errorf("env: %w", err)
	}
	return layers, nil
}

// Check merges defaults, file and env, then the given flag layer.
func (l Layers) Check(flags CheckConfig) (CheckSettings, error) {
	merged := MergeCheck(DefaultCheckSettings(), l.File.Check, l.Env.Check, flags)
	return NormalizeCheck(merged)
}

// Serve merges defaults, file and env, then the given flag layer.
func (l Layers) Serve(flags ServeConfig) (ServeSettings, error) {
	merged := MergeServe(DefaultServeSettings(), l.File.Serve, l.Env.Serve, flags)
	return NormalizeServe(merged)
}
