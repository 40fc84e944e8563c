package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-portfolio/internal/analysis"
	"github.com/jonathan/resume-portfolio/internal/extraction"
	"github.com/jonathan/resume-portfolio/internal/llm"
	"github.com/jonathan/resume-portfolio/internal/observability"
	"github.com/jonathan/resume-portfolio/internal/pipeline"
	"github.com/jonathan/resume-portfolio/internal/types"
)

var (
	processOut     string
	processModel   string
	processTimeout int
	processQuiet   bool
)

var processCmd = &cobra.Command{
	Use:   "process <resume.pdf>",
	Short: "Run the resume pipeline once, locally",
	Long: `Extract text from a PDF resume, analyze it and print the generated
portfolio content as JSON. Requires GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processOut, "out", "o", "", "Write content JSON to a file instead of stdout")
	processCmd.Flags().StringVar(&processModel, "model", "", "Generation model name (overrides GEMINI_MODEL)")
	processCmd.Flags().IntVar(&processTimeout, "timeout", 0, "Analysis timeout in seconds")
	processCmd.Flags().BoolVarP(&processQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}
	model := processModel
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	ctx := cmd.Context()
	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}
	defer client.Close() //nolint:errcheck

	runner := pipeline.NewRunner(
		extraction.NewExtractor(),
		analysis.New(client, time.Duration(processTimeout)*time.Second),
	)

	printer := observability.NewPrinter(os.Stderr)
	onStatus := func(status types.ResumeStatus) {
		if !processQuiet {
			printer.PrintStatusChecklist(status)
		}
	}

	content, err := runner.Run(ctx, data, onStatus)
	if err != nil {
		return err
	}

	if !processQuiet {
		printer.PrintContentSummary(content)
	}

	out, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content: %w", err)
	}
	if processOut != "" {
		if err := os.WriteFile(processOut, out, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(out))
	return nil
}
