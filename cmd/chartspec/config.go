// Copyright 2026 The Chartspec Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tlg-eval/chartspec/internal/config"
	"github.com/tlg-eval/chartspec/internal/report"
)

var configGlobal bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify chartspec configuration",
	Long: `View and modify chartspec configuration.

Charts are defined in .chartspec.yaml in the working directory. A global
file at ~/.config/chartspec/config.yaml supplies defaults; the repo file
wins chart by chart and field by field.

config set rewrites the whole file, so comments are lost.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Long: `Print a configuration value by dot-notation key.

Examples:
  chartspec config get output_format
  chartspec config get charts.employment.split
  chartspec config get charts.employment
  chartspec config get --global dataset`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

y_range takes "min,max"; every other value is stored as text. The result
is validated before anything is written.

Examples:
  chartspec config set output_format html
  chartspec config set dataset data/aps.csv
  chartspec config set charts.employment.indicator emp
  chartspec config set charts.employment.y_range 60,80
  chartspec config set --global output_format markdown`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration values and where they come from",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadMerged(".")
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return config.Write(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	for _, c := range []*cobra.Command{configGetCmd, configSetCmd} {
		c.Flags().BoolVar(&configGlobal, "global", false, "use the global config file")
		configCmd.AddCommand(c)
	}
	configCmd.AddCommand(configListCmd, configShowCmd)
}

// resetConfigFlags clears the shared --global flag between tests.
func resetConfigFlags() {
	configGlobal = false
}

// configTarget is the file config set writes to.
func configTarget() string {
	if configGlobal {
		return config.GlobalConfigPath()
	}
	return filepath.Join(".", config.FileName)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	load := func() (*config.Config, error) { return config.LoadMerged(".") }
	if configGlobal {
		load = config.LoadGlobal
	}
	cfg, err := load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	switch val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(val)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		_, err = fmt.Fprintln(w, val)
		return err
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	target := configTarget()

	raw, err := config.LoadRaw(target)
	if err != nil {
		return fmt.Errorf("loading %s: %w", target, err)
	}
	if err := config.SetValue(raw, key, value); err != nil {
		return err
	}

	cfg, err := config.FromMap(raw)
	if err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.WriteFile(target, raw); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	global, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	repo, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("loading repo config: %w", err)
	}

	values := make(map[string]any)
	sources := make(map[string]string)
	for _, layer := range []struct {
		name string
		cfg  *config.Config
	}{{"global", global}, {"repo", repo}} {
		m, err := config.ToMap(layer.cfg)
		if err != nil {
			return err
		}
		for k, v := range config.FlattenMap(m, "") {
			values[k] = v
			sources[k] = layer.name
		}
	}

	w := cmd.OutOrStdout()
	if len(values) == 0 {
		_, _ = fmt.Fprintln(w, "No configuration set.")
		_, _ = fmt.Fprintln(w, "Run 'chartspec config set <key> <value>' to set values.")
		return nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := report.NewTable(
		report.Column{Header: "Key"},
		report.Column{Header: "Value"},
		report.Column{Header: "Source", Color: colorSource},
	)
	for _, k := range keys {
		t.AddRow(k, fmt.Sprint(values[k]), sources[k])
	}
	return t.Render(w)
}

func colorSource(source string) string {
	if source == "global" {
		return color.New(color.FgCyan).Sprint(source)
	}
	return color.New(color.FgGreen).Sprint(source)
}
