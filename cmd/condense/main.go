package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/condense/internal/app"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	candidates, _ := cmd.Flags().GetInt("candidates")
	minWords, _ := cmd.Flags().GetInt("min-words")
	language, _ := cmd.Flags().GetString("lang")
	punctTag, _ := cmd.Flags().GetString("punct-tag")
	separator, _ := cmd.Flags().GetString("separator")
	rerank, _ := cmd.Flags().GetBool("rerank")
	tag, _ := cmd.Flags().GetBool("tag")
	dotPath, _ := cmd.Flags().GetString("dot")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine output format
	outputFormat := app.Text
	if jsonFlag {
		outputFormat = app.JSON
	}

	// use positional arguments as sources; no arguments means stdin
	sources := args
	if len(sources) == 0 {
		sources = []string{"-"}
	}

	return app.Config{
		Sources:      sources,
		Candidates:   candidates,
		MinWords:     minWords,
		Lang:         language,
		PunctTag:     punctTag,
		Separator:    separator,
		Rerank:       rerank,
		Tag:          tag,
		DotPath:      dotPath,
		OutputFormat: outputFormat,
		Quiet:        quiet,
		Debug:        debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "condense [sources...]",
	Short: "A CLI tool for multi-sentence compression",
	Long: `Condense fuses a set of redundant, POS-annotated sentences into a word
graph and extracts the best short compressions from it. Sources may include
local files, URLs, or standard input, one sentence per line with tokens in
word/POS/weight form (or raw text with --tag).

Examples:
  condense sentences.txt
  condense --rerank --min-words 6 cluster.txt
  cat tagged.txt | condense -n 20`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("condense failed: %w", err)
		}

		fmt.Print(result)

		return nil
	},
}

func init() {
	rootCmd.Flags().IntP("candidates", "n", 50, "Number of compression candidates to produce")
	rootCmd.Flags().IntP("min-words", "w", 8, "Minimum number of non-punctuation words per compression")
	rootCmd.Flags().StringP("lang", "l", "en", "Language of the input sentences (en, fr)")
	rootCmd.Flags().String("punct-tag", "PUNCT", "POS tag marking punctuation tokens")
	rootCmd.Flags().String("separator", "/", "Separator between word, POS and weight in input tokens")

	// ranking and input modes
	rootCmd.Flags().Bool("rerank", false, "Rerank candidates by keyphrase coverage")
	rootCmd.Flags().Bool("tag", false, "Treat input as raw text and POS-tag it first")

	// graph export
	rootCmd.Flags().String("dot", "", "Write the word graph to this file in DOT format")

	// output format flags
	rootCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.Flags().Bool("text", false, "Output in plain text format (default)")
	rootCmd.MarkFlagsMutuallyExclusive("json", "text")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress and warning messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
