package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"summary/internal/config"
	"summary/internal/domain"
	"summary/internal/service"
)

type documentSummary struct {
	Path      string   `json:"path"`
	Sentences []string `json:"sentences"`
}

func newSentencesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sentences [file...]",
		Short: "Print the N most representative sentences",
		Long: `Print the N most representative sentences of each document, in document order.

Reads standard input when no files are given. Glob patterns are expanded.

Examples:
  summary sentences -n 3 report.txt
  cat notes.txt | summary sentences -l de -n 5
  summary sentences --json docs/*.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			n := cfg.Summarizer.Sentences
			if cmd.Flags().Changed("count") {
				n, _ = cmd.Flags().GetInt("count")
			}
			return runSummaries(cmd, args, cfg.Output.Format, newSummaryService(cmd, cfg), func(svc *service.SummaryService, doc domain.Document) ([]string, error) {
				return svc.Summarize(doc, n)
			})
		},
	}
	cmd.Flags().IntP("count", "n", 0, "Number of sentences to extract (default from config)")
	return cmd
}

func newRatioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ratio [file...]",
		Short: "Print the best sentences within a fraction of the document length",
		Long: `Print the best sentences whose combined length stays within the given
fraction of each document's length. At least one sentence is always printed.

Examples:
  summary ratio -r 0.25 report.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			ratio := cfg.Summarizer.Ratio
			if cmd.Flags().Changed("ratio") {
				ratio, _ = cmd.Flags().GetFloat64("ratio")
			}
			return runSummaries(cmd, args, cfg.Output.Format, newSummaryService(cmd, cfg), func(svc *service.SummaryService, doc domain.Document) ([]string, error) {
				return svc.SummarizeRatio(doc, ratio)
			})
		},
	}
	cmd.Flags().Float64P("ratio", "r", 0, "Fraction of the document length, between 0 and 1 (default from config)")
	return cmd
}

func newSummaryService(cmd *cobra.Command, cfg *config.AppConfig) func() (*service.SummaryService, error) {
	return func() (*service.SummaryService, error) {
		engine, err := engineFactory(cfg, newLogger(cfg, cmd.ErrOrStderr()))(cfg.Summarizer.Language)
		if err != nil {
			return nil, err
		}
		return service.NewSummaryService(engine), nil
	}
}

func runSummaries(
	cmd *cobra.Command,
	args []string,
	format string,
	newService func() (*service.SummaryService, error),
	summarize func(*service.SummaryService, domain.Document) ([]string, error),
) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	var docs []domain.Document
	if len(args) == 0 {
		doc, err := svc.ReadDocument("-", cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		docs = []domain.Document{doc}
	} else {
		docs, err = svc.LoadDocuments(args)
		if err != nil {
			return err
		}
	}

	results := make([]documentSummary, 0, len(docs))
	for _, doc := range docs {
		sentences, err := summarize(svc, doc)
		if err != nil {
			return err
		}
		results = append(results, documentSummary{Path: doc.Path, Sentences: sentences})
	}
	return printSummaries(cmd.OutOrStdout(), format, results)
}

func printSummaries(w io.Writer, format string, results []documentSummary) error {
	if format == "json" {
		return json.NewEncoder(w).Encode(map[string]interface{}{
			"documents": results,
			"count":     len(results),
		})
	}
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", r.Path)
		}
		for _, s := range r.Sentences {
			fmt.Fprintln(w, s)
		}
	}
	return nil
}
