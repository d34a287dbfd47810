/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/roadmapper/internal/roadmap"
	"github.com/josephgoksu/roadmapper/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	generateFormat  string
	generateOut     string
	generateAnswers bool
	generateWidth   int
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a roadmap once and print or save it",
	Long: `Generate a roadmap for a topic with a single provider call.

Formats:
  text  styled terminal rendering (default)
  json  the roadmap document as JSON
  yaml  the roadmap document as YAML

Examples:
  roadmapper generate "Jazz piano"
  roadmapper generate Rust --format json --out rust.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "text", "output format: text, json, yaml")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateAnswers, "answers", false, "mark correct answers in text output")
	generateCmd.Flags().IntVar(&generateWidth, "width", ui.DefaultDocumentWidth, "wrap width for text output")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(strings.Join(args, " "))
	if topic == "" {
		return roadmap.ErrEmptyTopic
	}

	format := strings.ToLower(strings.TrimSpace(generateFormat))
	var encoding roadmap.Format
	if format != "text" {
		f, err := roadmap.ParseFormat(format)
		if err != nil {
			return err
		}
		encoding = f
	}

	deps, err := loadDeps(cmd.Context(), "generate", false)
	if err != nil {
		return err
	}
	defer deps.Close()

	var spinner *ui.Spinner
	if ui.IsTerminal(os.Stderr) {
		spinner = ui.NewSpinner(os.Stderr, fmt.Sprintf("Generating roadmap for %q...", topic))
		spinner.Start()
	}
	r, err := deps.generator.Request(cmd.Context(), topic)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.RenderErrorPanel("Generation failed", roadmap.UserMessage(err)))
		return err
	}

	var buf bytes.Buffer
	if encoding == "" {
		buf.WriteString(ui.RenderDocument(r, ui.RenderOptions{Width: generateWidth, ShowAnswers: generateAnswers}))
		buf.WriteString("\n")
	} else if err := roadmap.Encode(&buf, r, encoding); err != nil {
		return fmt.Errorf("encode roadmap: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), cmd.ErrOrStderr(), generateOut, buf.Bytes())
}

// writeOutput writes data to path on appFs, or to stdout when path is empty.
func writeOutput(stdout, stderr io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := afero.WriteFile(appFs, path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(stderr, ui.RenderInfoPanel("Roadmap saved", path))
	return nil
}
