// Package app contains the core application logic for the condense CLI
// tool. It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chriscorrea/condense/internal/annotate"
	"github.com/chriscorrea/condense/internal/fetch"
	"github.com/chriscorrea/condense/internal/keyphrase"
	"github.com/chriscorrea/condense/internal/spinner"
	"github.com/chriscorrea/condense/internal/wordgraph"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// plaintext output format (default)
	Text OutputFormat = iota
	// JSON output format
	JSON
)

// String returns the string representation of the output format
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Config holds all configuration options for the condense application.
type Config struct {
	Sources      []string // file paths, URLs, or "-" for stdin
	Candidates   int      // number of compression candidates to produce
	MinWords     int      // minimum non-punctuation words per compression
	Lang         string   // language code (en, fr)
	PunctTag     string   // POS tag marking punctuation
	Separator    string   // word/POS/weight separator in the input
	Rerank       bool     // rerank candidates by keyphrase coverage
	Tag          bool     // treat input as raw text and POS-tag it first
	DotPath      string   // write the word graph to this DOT file ("" = off)
	OutputFormat OutputFormat
	Quiet        bool // suppress progress and warnings
	Debug        bool
}

// Result is one scored compression in the final ranked list.
type Result struct {
	Score float64             `json:"score"`
	Words []wordgraph.WordTag `json:"words"`
}

// Run executes the main condense pipeline with the given configuration:
// read annotated sentences from all sources (tagging raw text first when
// configured), build the word graph, search for candidate compressions,
// and rank them — by path length, or by keyphrase coverage with --rerank.
//
// ctx allows for cancellation of fetch operations and progress display.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	sentences, err := collectSentences(ctx, cfg)
	if err != nil {
		return "", err
	}
	slog.Debug("collected sentences", "count", len(sentences))

	graph, err := wordgraph.Build(sentences, wordgraph.Options{
		MinWords:  cfg.MinWords,
		Lang:      cfg.Lang,
		PunctTag:  cfg.PunctTag,
		Separator: cfg.Separator,
	})
	if err != nil {
		return "", fmt.Errorf("building word graph: %w", err)
	}
	slog.Debug("word graph built", "nodes", graph.NodeCount(), "edges", graph.EdgeCount())

	if cfg.DotPath != "" {
		if err := writeDot(graph, cfg.DotPath); err != nil {
			return "", err
		}
	}

	results, err := rankCandidates(ctx, graph, cfg)
	if err != nil {
		return "", err
	}

	return formatResults(results, cfg.OutputFormat)
}

// collectSentences gathers one annotated sentence per line from every
// source. Sources that fail are skipped with a warning; with --tag the
// gathered lines are treated as raw text and annotated first.
func collectSentences(ctx context.Context, cfg Config) ([]string, error) {
	var lines []string
	for _, source := range cfg.Sources {
		got, err := fetch.Lines(ctx, source)
		if err != nil {
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to read source %q: %v\n", source, err)
			}
			continue
		}
		lines = append(lines, got...)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no sentences read from any source")
	}

	if !cfg.Tag {
		return lines, nil
	}

	annotated, err := annotate.Text(strings.Join(lines, " "), annotate.Options{
		Lang:      cfg.Lang,
		Separator: cfg.Separator,
	})
	if err != nil {
		return nil, fmt.Errorf("tagging input: %w", err)
	}
	if len(annotated) == 0 {
		return nil, fmt.Errorf("no sentences found in raw text input")
	}
	return annotated, nil
}

// rankCandidates runs the path search (with a progress spinner) and turns
// the raw candidates into the final ranked result list.
func rankCandidates(ctx context.Context, graph *wordgraph.Graph, cfg Config) ([]Result, error) {
	var sp *spinner.Spinner
	if !cfg.Quiet {
		sp = spinner.New(ctx, os.Stderr, "Compressing sentences...")
		sp.Start()
		defer sp.Stop()
	}

	count := cfg.Candidates
	if count <= 0 {
		count = 50
	}
	candidates := graph.Compressions(count)
	slog.Debug("path search finished", "candidates", len(candidates))

	if cfg.Rerank {
		reranker, err := keyphrase.NewReranker(graph.Sentences(), candidates, keyphrase.Options{
			Lang: graph.Options().Lang,
		})
		if err != nil {
			return nil, fmt.Errorf("building keyphrase reranker: %w", err)
		}
		reranked := reranker.Rerank()
		results := make([]Result, len(reranked))
		for i, c := range reranked {
			results[i] = Result{Score: c.Weight, Words: c.Words}
		}
		return results, nil
	}

	// Filippova-style ranking: normalize each cumulative weight by length
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		score := c.Weight
		if len(c.Words) > 0 {
			score /= float64(len(c.Words))
		}
		results[i] = Result{Score: score, Words: c.Words}
	}
	return results, nil
}

func writeDot(graph *wordgraph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating DOT file: %w", err)
	}
	defer f.Close()
	if err := graph.WriteDOT(f); err != nil {
		return fmt.Errorf("writing DOT file: %w", err)
	}
	return nil
}

// formatResults renders the ranked list as tab-separated text or JSON.
func formatResults(results []Result, format OutputFormat) (string, error) {
	if format == JSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding results: %w", err)
		}
		return string(data) + "\n", nil
	}

	var b strings.Builder
	for _, r := range results {
		b.WriteString(strconv.FormatFloat(r.Score, 'f', 3, 64))
		b.WriteByte('\t')
		words := make([]string, len(r.Words))
		for i, w := range r.Words {
			words[i] = w.Word
		}
		b.WriteString(strings.Join(words, " "))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
