package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/contrastx/internal/engine/opts"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/wcag"
)

func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func ValidateMinRatio(ratio float64) error {
	if ratio < 1 || ratio > 21 {
		return fmt.Errorf("min_ratio must be between 1 and 21")
	}
	return nil
}

// NormalizeCheck canonicalizes criteria tags, the output format and the color mode.
func NormalizeCheck(values CheckSettings) (CheckSettings, error) {
	criteria, err := wcag.ParseCriteria(values.Criteria)
	if err != nil {
		return values, err
	}
	values.Criteria = make([]string, len(criteria))
	for i, c := range criteria {
		values.Criteria[i] = string(c)
	}

	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}

	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()

	if err := ValidateMinRatio(values.MinRatio); err != nil {
		return values, err
	}
	return values, nil
}

func NormalizeServe(values ServeSettings) (ServeSettings, error) {
	values.Addr = strings.TrimSpace(values.Addr)
	if err := ValidatePort(values.Port); err != nil {
		return values, err
	}
	return values, nil
}
