// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Key is a parsed dot-notation key: either a top-level field such as
// "output_format", or a chart field such as "charts.employment.split".
type Key struct {
	Top   string
	Chart string
	Field string
}

func (k Key) String() string {
	if k.Chart == "" {
		return k.Top
	}
	return k.Top + "." + k.Chart + "." + k.Field
}

var (
	topFields   = yamlFields(reflect.TypeFor[Config]())
	chartFields = yamlFields(reflect.TypeFor[ChartConfig]())
)

// ParseKey splits and checks a settable key path.
func ParseKey(keyPath string) (Key, error) {
	if keyPath == "" {
		return Key{}, fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")
	top := parts[0]
	if !slices.Contains(topFields, top) {
		return Key{}, fmt.Errorf("unknown key %q; valid top-level keys: %s", top, strings.Join(topFields, ", "))
	}

	if top != "charts" {
		if len(parts) > 1 {
			return Key{}, fmt.Errorf("key %q is a scalar; cannot use sub-keys", top)
		}
		return Key{Top: top}, nil
	}

	switch {
	case len(parts) < 3:
		return Key{}, fmt.Errorf("charts requires a chart name and field (e.g. charts.inactivity.split)")
	case parts[1] == "":
		return Key{}, fmt.Errorf("chart name must not be empty")
	case len(parts) > 3:
		return Key{}, fmt.Errorf("key path too deep: %q", keyPath)
	case !slices.Contains(chartFields, parts[2]):
		return Key{}, fmt.Errorf("unknown chart field %q; valid fields: %s", parts[2], strings.Join(chartFields, ", "))
	}
	return Key{Top: top, Chart: parts[1], Field: parts[2]}, nil
}

// GetValue looks up a dot-notation path in cfg. Scalars come back as-is;
// "charts" and "charts.<name>" come back as maps.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	var node any = m
	for _, part := range strings.Split(keyPath, ".") {
		parent, ok := node.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		if node, ok = parent[part]; !ok {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
	}
	return node, nil
}

// SetValue stores rawValue at keyPath in a raw YAML map, creating the
// charts map and the chart entry as needed. y_range takes "min,max"; every
// other field is stored as a string, so a split of "2019" stays a period
// label.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	key, err := ParseKey(keyPath)
	if err != nil {
		return err
	}
	if key.Chart == "" {
		data[key.Top] = rawValue
		return nil
	}

	charts, err := childMap(data, key.Top)
	if err != nil {
		return err
	}
	chart, err := childMap(charts, key.Chart)
	if err != nil {
		return err
	}
	if key.Field != "y_range" {
		chart[key.Field] = rawValue
		return nil
	}
	r, err := ParseRange(rawValue)
	if err != nil {
		return err
	}
	chart[key.Field] = []any{r[0], r[1]}
	return nil
}

func childMap(parent map[string]any, name string) (map[string]any, error) {
	child, ok := parent[name]
	if !ok || child == nil {
		m := make(map[string]any)
		parent[name] = m
		return m, nil
	}
	m, ok := child.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("key %q is not a map", name)
	}
	return m, nil
}

// FlattenMap flattens nested maps into dot-notation keys under prefix.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any)
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		sub, ok := v.(map[string]any)
		if !ok {
			out[k] = v
			continue
		}
		for sk, sv := range FlattenMap(sub, k) {
			out[sk] = sv
		}
	}
	return out
}

// ToMap converts cfg to generic maps through YAML, omitting empty fields.
func ToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// ParseRange parses "min,max", optionally wrapped in brackets.
func ParseRange(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
	lo, hi, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(hi, ",") {
		return nil, fmt.Errorf("y_range must be \"min,max\", got %q", s)
	}
	out := make([]float64, 0, 2)
	for _, p := range []string{lo, hi} {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("y_range: %q is not a number", p)
		}
		out = append(out, f)
	}
	return out, nil
}

// yamlFields returns the sorted yaml tag names of a struct type.
func yamlFields(t reflect.Type) []string {
	var names []string
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("yaml"), ",")
		if name != "" && name != "-" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}
