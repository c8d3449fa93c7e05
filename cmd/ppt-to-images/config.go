// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ppt-to-images/internal/history"
	"github.com/pdiddy/ppt-to-images/pkg/types"
)

const configFileName = "ppt-to-images.yaml"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration as YAML",
	Long: `Config renders the built-in defaults as a YAML document. With --write it
creates ` + configFileName + ` in the current directory as a starting point.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().Bool("write", false, "write "+configFileName+" to the current directory")

	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := types.DefaultConfig()
	cfg.History.Path = history.DefaultPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		os.Stdout.Write(data)
		return nil
	}

	if _, err := os.Stat(configFileName); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", configFileName)
	}
	if err := os.WriteFile(configFileName, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFileName, err)
	}
	fmt.Println("Wrote", configFileName)
	return nil
}
