// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// LoadTOML decodes a dataset of the form:
//
//	name = "kirklees-aps"
//	source = "Annual Population Survey"
//
//	[[indicator]]
//	key = "emp"
//	label = "Employment rate (16–64)"
//
//	[[indicator.row]]
//	period = "Jul 2015-Jun 2016"
//	estimate = 70.0
//	margin = 3.1
func LoadTOML(r io.Reader) (*Dataset, error) {
	var d Dataset
	md, err := toml.NewDecoder(r).Decode(&d)
	if err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse toml: unknown key %q", undecoded[0].String())
	}

	seen := make(map[string]bool, len(d.Indicators))
	for i, ind := range d.Indicators {
		if ind.Key == "" {
			return nil, fmt.Errorf("parse toml: indicator %d has no key", i+1)
		}
		if seen[ind.Key] {
			return nil, fmt.Errorf("parse toml: duplicate indicator key %q", ind.Key)
		}
		seen[ind.Key] = true
	}
	return &d, nil
}
