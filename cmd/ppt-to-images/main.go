// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ppt-to-images CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppt-to-images/internal/history"
	"github.com/pdiddy/ppt-to-images/pkg/types"
)

// version is set at build time via ldflags.
var version = "0.1.0"

// rootCmd is the base command for the ppt-to-images CLI.
var rootCmd = &cobra.Command{
	Use:   "ppt-to-images",
	Short: "Convert PPT, PPTX, and PDF files to page image sequences",
	Long: `ppt-to-images converts presentation and document files into one PNG per
page, optionally paired with per-slide speaker-notes text. PPT and PPTX
inputs are normalized through LibreOffice (soffice --headless); PDF pages
are rendered with MuPDF.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ppt-to-images.yaml or ~/.config/ppt-to-images/config.yaml)")
	rootCmd.Version = version
}

func initConfig() {
	// A local .env feeds viper's AutomaticEnv below; missing files are fine.
	godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ppt-to-images")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ppt-to-images"))
		}
	}

	viper.SetEnvPrefix("PPT_TO_IMAGES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("convert.dpi", defaults.Convert.DPI)
	viper.SetDefault("convert.format", defaults.Convert.Format)
	viper.SetDefault("convert.soffice_bin", defaults.Convert.SofficeBin)
	viper.SetDefault("convert.timeout", time.Duration(defaults.Convert.Timeout))
	viper.SetDefault("convert.temp_dir", "")
	viper.SetDefault("history.enabled", defaults.History.Enabled)
	viper.SetDefault("history.path", history.DefaultPath())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
