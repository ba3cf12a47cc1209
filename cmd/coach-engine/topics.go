// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurobloom/coach-engine/internal/coach"
	"github.com/neurobloom/coach-engine/internal/knowledge"
	"github.com/neurobloom/coach-engine/pkg/types"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the supported topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		vocab := types.TopicVocabulary()

		type topicInfo struct {
			ID        string `json:"id"`
			Title     string `json:"title"`
			Knowledge bool   `json:"knowledge"`
		}
		out := make([]topicInfo, 0, len(vocab))
		for _, t := range vocab {
			entry := knowledge.Lookup(t, "")
			out = append(out, topicInfo{
				ID:        string(t),
				Title:     coach.TopicTitle(t),
				Knowledge: entry.Known(),
			})
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		for _, ti := range out {
			mark := " "
			if ti.Knowledge {
				mark = "*"
			}
			fmt.Printf("%s %-12s %s\n", mark, ti.ID, ti.Title)
		}
		fmt.Println("\n* curated knowledge entry available")
		return nil
	},
}

func init() {
	topicsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(topicsCmd)
}
