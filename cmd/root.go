/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/bggmech/internal/ioconvert"
	"github.com/gnames/bggmech/internal/iofs"
	"github.com/gnames/bggmech/internal/iologger"
	"github.com/gnames/bggmech/internal/iorecord"
	"github.com/gnames/bggmech/internal/iotable"
	bggmech "github.com/gnames/bggmech/pkg"
	"github.com/gnames/bggmech/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd returns the root command. It is a function so tests can
// build a fresh command with its own flags.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			bggmech.Version, bggmech.Build),
		Use:   "bggmech",
		Short: "Converts BoardGameGeek game records into a one-hot mechanics table",
		Long: `bggmech reads a directory of BoardGameGeek XML records, one file per
game ID, and writes a single table for rating analysis:

  rating, bayes_rating, <mechanic 1>, ..., <mechanic N>

Each row is one game, each mechanic column is 1 if the game has that
mechanic and 0 otherwise. Mechanic columns appear in the order they were
first seen. Missing files, records with an error element and records
without a Bayes-adjusted rating are skipped. A record that exists but
cannot be parsed stops the run.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (BGGMECH_*)
  3. Config file (~/.config/bggmech/config.yaml)
  4. Built-in defaults

Environment Variables:
    BGGMECH_INPUT_DIR              Directory with game XML files
    BGGMECH_INPUT_FILE_TEMPLATE    File name template, e.g. game%d.xml
    BGGMECH_INPUT_MAX_GAME         Exclusive upper bound of game IDs
    BGGMECH_OUTPUT_PATH            Output file
    BGGMECH_OUTPUT_FORMAT          csv or sqlite
    BGGMECH_OUTPUT_TABLE           Table name for sqlite
    BGGMECH_LOG_LEVEL              Log level (debug/info/warn/error)

Examples:
  # Convert using configuration
  bggmech

  # Scan the first 5000 games and write SQLite
  bggmech -m 5000 -f sqlite -o games.sqlite`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "bggmech version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for bggmech")

	rootCmd.Flags().IntP("max-game", "m", 0,
		"exclusive upper bound of game IDs to scan")
	rootCmd.Flags().StringP("input-dir", "i", "",
		"directory with game XML files")
	rootCmd.Flags().StringP("output", "o", "",
		"output file, overwritten if it exists")
	rootCmd.Flags().StringP("format", "f", "",
		"output format: csv or sqlite")

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd))
	return convert(context.Background(), cfg)
}

// convert wires the loader, writer and converter for one run.
func convert(ctx context.Context, cfg *config.Config, opts ...ioconvert.Option) error {
	writer, err := iotable.New(cfg)
	if err != nil {
		return err
	}
	loader := iorecord.New(cfg)

	conv := ioconvert.New(cfg, loader, writer, opts...)
	_, err = conv.Convert(ctx)
	return err
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadConfigError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("BGGMECH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.dir", "BGGMECH_INPUT_DIR")
	v.BindEnv("input.file_template", "BGGMECH_INPUT_FILE_TEMPLATE")
	v.BindEnv("input.max_game", "BGGMECH_INPUT_MAX_GAME")

	// Output configuration
	v.BindEnv("output.path", "BGGMECH_OUTPUT_PATH")
	v.BindEnv("output.format", "BGGMECH_OUTPUT_FORMAT")
	v.BindEnv("output.table", "BGGMECH_OUTPUT_TABLE")

	// Log configuration
	v.BindEnv("log.level", "BGGMECH_LOG_LEVEL")
	v.BindEnv("log.format", "BGGMECH_LOG_FORMAT")
	v.BindEnv("log.destination", "BGGMECH_LOG_DESTINATION")

	v.AutomaticEnv()
}
