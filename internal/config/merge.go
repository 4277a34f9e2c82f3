// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package config

// Merge combines two configs. Non-zero fields in override win; zero-value
// fields fall through to base. Charts are merged per name and per field.
// Neither input is modified.
func Merge(base, override *Config) *Config {
	result := &Config{
		OutputFormat: base.OutputFormat,
		Dataset:      base.Dataset,
	}

	if override.OutputFormat != "" {
		result.OutputFormat = override.OutputFormat
	}
	if override.Dataset != "" {
		result.Dataset = override.Dataset
	}

	if len(base.Charts) == 0 && len(override.Charts) == 0 {
		return result
	}

	result.Charts = make(map[string]ChartConfig, len(base.Charts)+len(override.Charts))
	for name, cc := range base.Charts {
		result.Charts[name] = cc
	}
	for name, oc := range override.Charts {
		result.Charts[name] = mergeChart(result.Charts[name], oc)
	}
	return result
}

func mergeChart(base, override ChartConfig) ChartConfig {
	cc := base
	if override.Indicator != "" {
		cc.Indicator = override.Indicator
	}
	if override.Title != "" {
		cc.Title = override.Title
	}
	if len(override.YRange) > 0 {
		cc.YRange = append([]float64(nil), override.YRange...)
	}
	if override.Split != "" {
		cc.Split = override.Split
	}
	if override.PreviousLabel != "" {
		cc.PreviousLabel = override.PreviousLabel
	}
	if override.CurrentLabel != "" {
		cc.CurrentLabel = override.CurrentLabel
	}
	if override.Notes != "" {
		cc.Notes = override.Notes
	}
	return cc
}
