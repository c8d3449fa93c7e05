package types

import (
	"encoding/json"
	"fmt"
	"time"

	"go.yaml.in/yaml/v3"
)

// Duration is a time.Duration that renders as a human-readable string
// ("300s", "5m") in YAML and JSON config documents.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// ConvertConfig holds settings for the conversion pipeline.
type ConvertConfig struct {
	// DPI is the default rasterization resolution (default 200).
	DPI int `json:"dpi" yaml:"dpi"`

	// Format is the default output mode: file, base64, or both.
	Format string `json:"format" yaml:"format"`

	// SofficeBin is the LibreOffice binary invoked for format normalization
	// (default "soffice").
	SofficeBin string `json:"soffice_bin" yaml:"soffice_bin"`

	// Timeout bounds each external conversion process (default 300s).
	Timeout Duration `json:"timeout" yaml:"timeout"`

	// TempDir is a custom directory for intermediate artifacts. Empty means a
	// fresh randomized directory per conversion.
	TempDir string `json:"temp_dir,omitempty" yaml:"temp_dir,omitempty"`
}

// HistoryConfig holds settings for the conversion history database.
type HistoryConfig struct {
	// Enabled controls whether completed conversions are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database location. Empty disables recording.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// Config groups all tool configuration, mirroring the YAML config file.
type Config struct {
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	History HistoryConfig `json:"history" yaml:"history"`
}

// DefaultConfig returns the built-in defaults, used both by the CLI and by
// the config subcommand when rendering a starter config file.
func DefaultConfig() Config {
	return Config{
		Convert: ConvertConfig{
			DPI:        200,
			Format:     string(ModeFile),
			SofficeBin: "soffice",
			Timeout:    Duration(300 * time.Second),
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}
