package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"summary/internal/service"
	"summary/internal/tui"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui file...",
		Short: "Browse documents with their summary sentences highlighted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			// Log output would corrupt the terminal UI.
			factory := engineFactory(cfg, newLogger(cfg, io.Discard))
			engine, err := factory(cfg.Summarizer.Language)
			if err != nil {
				return err
			}
			svc := service.NewSummaryService(engine)
			docs, err := svc.LoadDocuments(args)
			if err != nil {
				return err
			}

			m := tui.New(svc, factory, docs, cfg.Summarizer.Language, cfg.Summarizer.Sentences)
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
	return cmd
}
