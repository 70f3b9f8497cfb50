package config

import (
	"github.com/phyten/contrastx/internal/engine"
	"github.com/phyten/contrastx/internal/wcag"
)

type CheckConfig struct {
	Criteria *[]string `yaml:"criteria" toml:"criteria" json:"criteria"`
	Output   *string   `yaml:"output" toml:"output" json:"output"`
	Color    *string   `yaml:"color" toml:"color" json:"color"`
	Swatch   *bool     `yaml:"swatch" toml:"swatch" json:"swatch"`
	Suggest  *bool     `yaml:"suggest" toml:"suggest" json:"suggest"`
	MinRatio *float64  `yaml:"min_ratio" toml:"min_ratio" json:"min_ratio"`
}

type ServeConfig struct {
	Addr *string `yaml:"addr" toml:"addr" json:"addr"`
	Port *int    `yaml:"port" toml:"port" json:"port"`
	Open *bool   `yaml:"open" toml:"open" json:"open"`
}

type Config struct {
	Check CheckConfig `yaml:"check" toml:"check" json:"check"`
	Serve ServeConfig `yaml:"serve" toml:"serve" json:"serve"`
}

type CheckSettings struct {
	Criteria []string
	Output   string
	Color    string
	Swatch   bool
	Suggest  bool
	MinRatio float64
}

type ServeSettings struct {
	Addr string
	Port int
	Open bool
}

func DefaultCheckSettings() CheckSettings {
	all := wcag.All()
	criteria := make([]string, len(all))
	for i, c := range all {
		criteria[i] = string(c)
	}
	return CheckSettings{
		Criteria: criteria,
		Output:   "table",
		Color:    "auto",
		Swatch:   false,
		Suggest:  false,
		MinRatio: 4.5,
	}
}

func DefaultServeSettings() ServeSettings {
	return ServeSettings{
		Addr: "",
		Port: 8080,
		Open: false,
	}
}

// ApplyToOptions copies the engine-relevant settings. Criteria are not
// validated here; opts.NormalizeAndValidate does that for every input path.
func (s CheckSettings) ApplyToOptions(opts *engine.Options) {
	if opts == nil {
		return
	}
	if len(s.Criteria) > 0 {
		opts.Criteria = make([]wcag.Criterion, len(s.Criteria))
		for i, c := range s.Criteria {
			opts.Criteria[i] = wcag.Criterion(c)
		}
	}
	opts.Suggest = s.Suggest
	opts.MinRatio = s.MinRatio
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
