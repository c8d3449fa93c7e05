// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppt-to-images/internal/converter"
	"github.com/pdiddy/ppt-to-images/internal/filetype"
	"github.com/pdiddy/ppt-to-images/internal/history"
	"github.com/pdiddy/ppt-to-images/internal/office"
	"github.com/pdiddy/ppt-to-images/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a PPT, PPTX, or PDF file to page images",
	Long: `Convert renders each page of the input as a PNG image. PPT inputs are
normalized to PPTX and then PDF; PPTX inputs to PDF; PDF inputs are rendered
directly. Output goes to files (-f file), base64 strings (-f base64), or
both (-f both). With --extract-text, per-slide speaker notes are returned
alongside the images.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output-dir", "o", "", "output directory for image files (required for file and both)")
	convertCmd.Flags().StringP("format", "f", "", "output format: file, base64, or both (default file)")
	convertCmd.Flags().Int("dpi", 0, "image resolution (default 200)")
	convertCmd.Flags().Bool("extract-text", false, "extract speaker-notes text from slides")
	convertCmd.Flags().Bool("output-json", false, "print the result as a JSON object")
	convertCmd.Flags().String("temp-dir", "", "custom directory for intermediate files")
	convertCmd.Flags().Bool("keep-temp", false, "keep intermediate files (for debugging)")
	convertCmd.Flags().BoolP("verbose", "v", false, "print per-stage progress to stderr")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	if formatStr == "" {
		formatStr = viper.GetString("convert.format")
	}
	mode, err := types.ParseMode(formatStr)
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if mode.NeedsDir() && outputDir == "" {
		return fmt.Errorf("--output-dir is required for format %q", mode)
	}

	if _, err := os.Stat(input); err != nil {
		cmd.SilenceErrors = true
		fmt.Fprintf(os.Stderr, "Input file not found: %s\n", input)
		return &types.NotFoundError{Path: input}
	}

	if filetype.Detect(input) == filetype.Unknown {
		cmd.SilenceErrors = true
		fmt.Fprintf(os.Stderr, "Unsupported file type: %s\n", filepath.Ext(input))
		fmt.Fprintln(os.Stderr, "Supported types: .ppt, .pptx, .pdf")
		return types.ErrUnsupportedType
	}

	dpi, _ := cmd.Flags().GetInt("dpi")
	if dpi == 0 {
		dpi = viper.GetInt("convert.dpi")
	}
	extractText, _ := cmd.Flags().GetBool("extract-text")
	outputJSON, _ := cmd.Flags().GetBool("output-json")
	keepTemp, _ := cmd.Flags().GetBool("keep-temp")
	verbose, _ := cmd.Flags().GetBool("verbose")
	tempDir, _ := cmd.Flags().GetString("temp-dir")
	if tempDir == "" {
		tempDir = viper.GetString("convert.temp_dir")
	}

	conv := converter.New()
	conv.Normalizer = office.New(viper.GetString("convert.soffice_bin"), viper.GetDuration("convert.timeout"))
	conv.TempDir = tempDir
	conv.KeepTemp = keepTemp
	if verbose {
		conv.Log = os.Stderr
	}

	start := time.Now()
	res, err := conv.Convert(cmd.Context(), types.Request{
		Input:        input,
		OutputDir:    outputDir,
		Mode:         mode,
		DPI:          dpi,
		ExtractNotes: extractText,
	})
	if err != nil {
		return err
	}

	recordHistory(cmd.Context(), input, res, dpi, time.Since(start))

	if outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printResult(res, outputDir, extractText)
	return nil
}

// printResult writes the human-readable success report.
func printResult(res *types.Result, outputDir string, extractText bool) {
	fmt.Printf("Converted %d page(s)\n", res.Count)

	switch types.Mode(res.Format) {
	case types.ModeFile, types.ModeBoth:
		fmt.Printf("Output directory: %s\n", outputDir)
		for _, path := range res.Images {
			fmt.Printf("  - %s\n", path)
		}
	case types.ModeBase64:
		fmt.Println("Base64 output:")
		for i, b64 := range res.Images {
			fmt.Printf("  Page %d: %s\n", i+1, preview(b64, 50))
		}
	}

	if extractText && len(res.Texts) > 0 {
		fmt.Println("\nExtracted notes:")
		for i, text := range res.Texts {
			fmt.Printf("  Page %d: %s\n", i+1, preview(text, 100))
		}
	}
}

func preview(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

// recordHistory logs the conversion to the history database. Best-effort:
// failures warn on stderr and never fail the command.
func recordHistory(ctx context.Context, input string, res *types.Result, dpi int, elapsed time.Duration) {
	if !viper.GetBool("history.enabled") {
		return
	}
	path := viper.GetString("history.path")
	if path == "" {
		return
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open history database: %v\n", err)
		return
	}
	defer store.Close()

	err = store.Record(ctx, history.Entry{
		Input:    input,
		Type:     string(filetype.Detect(input)),
		Pages:    res.Count,
		Format:   res.Format,
		DPI:      dpi,
		Duration: elapsed,
		When:     time.Now(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record conversion: %v\n", err)
	}
}
