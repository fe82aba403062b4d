package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"summary/internal/language"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			type entry struct {
				Name      string `json:"name"`
				Code      string `json:"code"`
				StopWords int    `json:"stop_words"`
			}
			var entries []entry
			for _, l := range language.All() {
				p, err := language.Lookup(l)
				if err != nil {
					continue
				}
				entries = append(entries, entry{Name: l.String(), Code: l.Code(), StopWords: p.StopWordCount()})
			}
			if jsonOut {
				json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
					"languages": entries,
					"count":     len(entries),
				})
				return
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s  (%d stop words)\n", e.Name, e.Code, e.StopWords)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s -   (no stop words, Unicode sentence boundaries)\n", "agnostic")
		},
	}
}
