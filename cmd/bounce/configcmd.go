package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-joy/internal/config"
)

var (
	flagConfigFormat   string
	flagConfigDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game settings",
	Long: `Prints the settings a new game would use, after --config and
--difficulty are applied. Save the output as ~/.bounce/configs/bounce.yaml
(or bounce.toml) to make it the default.

Examples:
  bounce config
  bounce config --difficulty easy
  bounce config --defaults
  bounce config --format toml > ~/.bounce/configs/bounce.toml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default file, comments included")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	format := config.Format(flagConfigFormat)
	if format != config.FormatYAML && format != config.FormatTOML {
		return fmt.Errorf("unknown format %q (want yaml or toml)", flagConfigFormat)
	}

	cfg, err := config.LoadBounce(flagConfig)
	if err != nil {
		return err
	}
	if flagDifficulty != "" {
		preset, _ := config.ParseDifficulty(flagDifficulty) // Checked in PersistentPreRunE
		config.ApplyBouncePreset(&cfg, preset)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
