package config

import (
	"errors"
	"strings"

	engineopts "github.com/phyten/contrastx/internal/engine/opts"
)

// FromEnv reads the CONTRASTX_* variables. Every malformed variable is
// reported; the returned Config still carries the ones that parsed.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		copyVals := make([]string, len(list))
		copy(copyVals, list)
		*target = &copyVals
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setFloat := func(target **float64, key string, min, max float64) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := engineopts.ParseFloatInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}

	setList(&cfg.Check.Criteria, "CONTRASTX_CRITERIA")
	setString(&cfg.Check.Output, "CONTRASTX_OUTPUT")
	setString(&cfg.Check.Color, "CONTRASTX_COLOR")
	setBool(&cfg.Check.Swatch, "CONTRASTX_SWATCH")
	setBool(&cfg.Check.Suggest, "CONTRASTX_SUGGEST")
	setFloat(&cfg.Check.MinRatio, "CONTRASTX_MIN_RATIO", 1, 21)

	setString(&cfg.Serve.Addr, "CONTRASTX_ADDR")
	setInt(&cfg.Serve.Port, "CONTRASTX_PORT", 1, 65535)
	setBool(&cfg.Serve.Open, "CONTRASTX_OPEN")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
