package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/boxesandglue/cssinline"
)

var (
	configPath      string
	outputPath      string
	removeStyleTags bool
	traceLevel      string
)

var rootCmd = &cobra.Command{
	Use:   "cssinline [file]",
	Short: "Move the CSS of style elements into style attributes",
	Long: `Reads an HTML document from file (or stdin if file is "-" or missing),
copies the declaration block of every CSS rule in its <style> elements into
the style attribute of the elements the rule selects and writes the result.

Rules are applied in source order; a later rule replaces the style attribute
written by an earlier one. At-rules such as @media are rejected.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInline,
}

func init() {
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this file instead of stdout")
	rootCmd.Flags().BoolVar(&removeStyleTags, "remove-style-tags", false, "Remove the <style> elements after inlining")
	rootCmd.Flags().StringVar(&configPath, "config", "", "TOML configuration file")
	rootCmd.Flags().StringVar(&traceLevel, "trace", "", "Trace to stderr with level error, info or debug")
}

func runInline(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("remove-style-tags") {
		conf.RemoveStyleTags = removeStyleTags
	}
	if cmd.Flags().Changed("trace") {
		conf.Trace = traceLevel
	}
	if conf.Trace != "" {
		setupTracing(conf.Trace, cmd.ErrOrStderr())
	}

	input := "-"
	if len(args) > 0 {
		input = args[0]
	}
	htmltext, err := readInput(input, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	inliner := cssinline.DefaultOptions().WithRemoveStyleTags(conf.RemoveStyleTags).Build()
	if outputPath == "" {
		return inliner.InlineTo(htmltext, cmd.OutOrStdout())
	}
	// inline into memory first so that a CSS error leaves no output file
	result, err := inliner.Inline(htmltext)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, []byte(result), 0o644)
}

func readInput(name string, stdin io.Reader) (string, error) {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	return string(data), err
}

func setupTracing(level string, w io.Writer) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	t := tracing.Select("cssinline")
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
}
