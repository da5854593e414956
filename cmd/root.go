/*
Copyright © 2025 Unlock Egypt authors

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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unlockegypt/contentsync/internal/iofs"
	"github.com/unlockegypt/contentsync/internal/iologger"
	app "github.com/unlockegypt/contentsync/pkg"
	"github.com/unlockegypt/contentsync/pkg/config"
)

var (
	homeDir string
	cfg     *config.Config

	// sheetsPath overrides the default sheets.yaml location.
	sheetsPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
	Use:     "contentsync",
	Short:   "Validates and converts Unlock Egypt content sheets",
	Long: `contentsync turns the five Unlock Egypt content sheets (Sites,
SubLocations, Cards, Tips, ArabicPhrases) into the nested JSON
document the mobile app bundles.

The pipeline has three stages:
  1. Read the tables (published spreadsheet or local CSV files)
  2. Validate them (schema, foreign keys, content quality)
  3. Convert to JSON - only when validation found nothing

Commands:
  validate   run stages 1-2 and print the report
  sync       run the full pipeline and write the document
  template   generate the content-entry Excel workbook

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CONTENTSYNC_*)
  3. ~/.config/contentsync/config.yaml
  4. Built-in defaults

Table sources are configured in ~/.config/contentsync/sheets.yaml.`,
	PersistentPreRunE: bootstrap,
	SilenceErrors:     true,
	SilenceUsage:      true,
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

	// Initialize logging with hardcoded defaults.
	// Will be reconfigured later with user's config settings.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureSheetsFile(homeDir); err != nil {
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
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings.
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "contentsync version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for contentsync")

	rootCmd.PersistentFlags().StringVar(&sheetsPath, "sheets", "",
		"sheets config file (default ~/.config/contentsync/sheets.yaml)")

	rootCmd.AddCommand(getValidateCmd())
	rootCmd.AddCommand(getSyncCmd())
	rootCmd.AddCommand(getTemplateCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

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

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables
	// are allowed.
	v.SetEnvPrefix("CONTENTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("sync.output_dir", "CONTENTSYNC_SYNC_OUTPUT_DIR")
	v.BindEnv("sync.resources_dir", "CONTENTSYNC_SYNC_RESOURCES_DIR")
	v.BindEnv("sync.document_name", "CONTENTSYNC_SYNC_DOCUMENT_NAME")
	v.BindEnv("sync.check_urls", "CONTENTSYNC_SYNC_CHECK_URLS")
	v.BindEnv("sync.url_timeout_sec", "CONTENTSYNC_SYNC_URL_TIMEOUT_SEC")

	v.BindEnv("log.level", "CONTENTSYNC_LOG_LEVEL")
	v.BindEnv("log.format", "CONTENTSYNC_LOG_FORMAT")
	v.BindEnv("log.destination", "CONTENTSYNC_LOG_DESTINATION")

	v.AutomaticEnv()
}

// sheetsFilePath resolves the sheets.yaml location, honoring the
// --sheets flag.
func sheetsFilePath() string {
	if sheetsPath != "" {
		return sheetsPath
	}
	return config.SheetsFilePath(homeDir)
}
