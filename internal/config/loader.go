package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	engineopts "github.com/phyten/contrastx/internal/engine/opts"
)

var checkKeyMap = map[string]string{
	"criteria":  "criteria",
	"criterion": "criteria",
	"output":    "output",
	"format":    "output",
	"color":     "color",
	"swatch":    "swatch",
	"swatches":  "swatch",
	"suggest":   "suggest",
	"min_ratio": "min_ratio",
	"minratio":  "min_ratio",
}

var serveKeyMap = map[string]string{
	"addr": "addr",
	"host": "addr",
	"port": "port",
	"open": "open",
}

// Load reads a YAML, TOML or JSON config file chosen by extension. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if decodeErr := dec.Decode(&raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	checkSection := make(map[string]any)
	serveSection := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "check":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("check: %w", err)
			}
			if err := fillSection(checkSection, sub, checkKeyMap, "check"); err != nil {
				return cfg, err
			}
		case "serve":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("serve: %w", err)
			}
			if err := fillSection(serveSection, sub, serveKeyMap, "serve"); err != nil {
				return cfg, err
			}
		default:
			if canonical, ok := checkKeyMap[norm]; ok {
				checkSection[canonical] = value
				continue
			}
			if canonical, ok := serveKeyMap[norm]; ok {
				serveSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignCheck(checkSection, &cfg.Check); err != nil {
		return cfg, fmt.Errorf("check: %w", err)
	}
	if err := assignServe(serveSection, &cfg.Serve); err != nil {
		return cfg, fmt.Errorf("serve: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignCheck(section map[string]any, dst *CheckConfig) error {
	for key, value := range section {
		switch key {
		case "criteria":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Criteria = &list
		case "output":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Output = &trimmed
		case "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Color = &trimmed
		case "swatch":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Swatch = &b
		case "suggest":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Suggest = &b
		case "min_ratio":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.MinRatio = &f
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignServe(section map[string]any, dst *ServeConfig) error {
	for key, value := range section {
		switch key {
		case "addr":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Addr = &str
		case "port":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Port = &n
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return engineopts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		trimmed := strings.TrimSpace(v)
		n, err := strconv.Atoi(trimmed)
		if trimmed == "" || err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %q", field, v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %v", field, value)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %q", field, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		parts := engineopts.SplitMulti([]string{v})
		return normalizeList(parts), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
