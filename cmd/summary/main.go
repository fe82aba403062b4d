package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "summary",
		Short: "Extract the most representative sentences of a document",
		Long: `summary picks the N most representative sentences of a text and prints
them in their original order, without rewriting anything.

Sentences are scored by the average document frequency of their words,
ignoring stop words of the selected language.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (default ./summary.yaml or ~/.config/summary/config.yaml)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("language", "l", "", "Document language name or ISO code, or \"agnostic\"")
	rootCmd.PersistentFlags().String("strategy", "", "Scoring strategy: frequency or centrality")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSentencesCmd(),
		newRatioCmd(),
		newLanguagesCmd(),
		newTUICmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "summary version %s\n", version)
			}
		},
	}
}
