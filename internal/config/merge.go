package config

import "strings"

func MergeCheck(base CheckSettings, layers ...CheckConfig) CheckSettings {
	out := base
	for _, layer := range layers {
		out.Criteria = ResolveStrings(out.Criteria, layer.Criteria)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Swatch = ResolveBool(out.Swatch, layer.Swatch)
		out.Suggest = ResolveBool(out.Suggest, layer.Suggest)
		out.MinRatio = ResolveFloat(out.MinRatio, layer.MinRatio)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func MergeServe(base ServeSettings, layers ...ServeConfig) ServeSettings {
	out := base
	for _, layer := range layers {
		out.Addr = ResolveAndTrim(out.Addr, layer.Addr)
		out.Port = ResolveInt(out.Port, layer.Port)
		out.Open = ResolveBool(out.Open, layer.Open)
	}
	return out
}
