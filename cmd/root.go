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
	"os/signal"
	"strings"
	"syscall"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/internal/ioenrich"
	"github.com/gnames/gnsyn/internal/iofs"
	"github.com/gnames/gnsyn/internal/iologger"
	"github.com/gnames/gnsyn/internal/ioncbi"
	gnsyn "github.com/gnames/gnsyn/pkg"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd creates the gnsyn command. A new instance is returned on
// every call, so tests do not share flag state.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			gnsyn.Version, gnsyn.Build),
		Use:   "gnsyn",
		Short: "Adds NCBI Taxonomy synonyms to a table of food names",
		Long: `Reads a table of food names (columns food_sci and food_com), finds
every scientific or common name in NCBI Taxonomy and writes the table
back with a new synonyms_ncbi column.

Each distinct name is searched only once. NCBI requests are throttled,
failed requests leave synonyms empty but do not stop the run.

Input can be CSV, TSV or XLSX (first sheet). Output is always CSV with
all fields quoted. Without --output the input file is overwritten.

Settings are read from ~/.config/gnsyn/config.yaml, from GNSYN_*
environment variables and from a .env file in the current directory.
Please set GNSYN_NCBI_EMAIL to your address, NCBI uses it to contact
users of its service.

Examples:
  gnsyn
  gnsyn -i foods.csv -o foods_ncbi.csv
  gnsyn -i foods.xlsx -o foods.csv --limit 100`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRoot(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnsyn")
	rootCmd.Flags().StringP("input", "i", config.DefaultInput,
		"table with food_sci and food_com columns (csv, tsv, xlsx)")
	rootCmd.Flags().StringP("output", "o", "",
		"path of the enriched CSV (default: overwrite input)")
	rootCmd.Flags().IntP("limit", "l", 0,
		"process only the first N rows (0 means all)")

	return rootCmd
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

	// defaults until config.yaml is read
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional
	_ = godotenv.Load()

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"tool", cfg.NCBI.Tool,
		"throttle_ms", cfg.NCBI.ThrottleMs,
	)
	return nil
}

func runRoot(cmd *cobra.Command) error {
	cfg.Update(flagOptions(cmd, inputFlag, outputFlag, limitFlag))

	ctx, cancel := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer cancel()

	client := ioncbi.New(cfg.NCBI)
	runner := ioenrich.New(cfg, client, client)
	if err := runner.Run(ctx); err != nil {
		slog.Error("Enrichment failed", "error", err)
		return err
	}
	return nil
}

// Execute runs the gnsyn command. It is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initDefaults(v)
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}
	return &res, nil
}

// initDefaults keeps settings that are missing from an older or
// hand-edited config.yaml at their default values.
func initDefaults(v *viper.Viper) {
	def := config.New()
	v.SetDefault("ncbi.base_url", def.NCBI.BaseURL)
	v.SetDefault("ncbi.tool", def.NCBI.Tool)
	v.SetDefault("ncbi.email", def.NCBI.Email)
	v.SetDefault("ncbi.api_key", def.NCBI.APIKey)
	v.SetDefault("ncbi.user_agent", def.NCBI.UserAgent)
	v.SetDefault("ncbi.timeout_sec", def.NCBI.TimeoutSec)
	v.SetDefault("ncbi.throttle_ms", def.NCBI.ThrottleMs)
	v.SetDefault("enrich.progress_every", def.Enrich.ProgressEvery)
	v.SetDefault("enrich.with_canonical", def.Enrich.WithCanonical)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.destination", def.Log.Destination)
}

func initEnvVars(v *viper.Viper) {
	// Only fields from config.ToOptions() can be set by environment.
	v.SetEnvPrefix("GNSYN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("ncbi.base_url", "GNSYN_NCBI_BASE_URL")
	v.BindEnv("ncbi.tool", "GNSYN_NCBI_TOOL")
	v.BindEnv("ncbi.email", "GNSYN_NCBI_EMAIL")
	v.BindEnv("ncbi.api_key", "GNSYN_NCBI_API_KEY")
	v.BindEnv("ncbi.user_agent", "GNSYN_NCBI_USER_AGENT")
	v.BindEnv("ncbi.timeout_sec", "GNSYN_NCBI_TIMEOUT_SEC")
	v.BindEnv("ncbi.throttle_ms", "GNSYN_NCBI_THROTTLE_MS")

	v.BindEnv("enrich.progress_every", "GNSYN_ENRICH_PROGRESS_EVERY")
	v.BindEnv("enrich.with_canonical", "GNSYN_ENRICH_WITH_CANONICAL")

	v.BindEnv("log.level", "GNSYN_LOG_LEVEL")
	v.BindEnv("log.format", "GNSYN_LOG_FORMAT")
	v.BindEnv("log.destination", "GNSYN_LOG_DESTINATION")

	v.AutomaticEnv()
}
