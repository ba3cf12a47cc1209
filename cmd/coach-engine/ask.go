// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurobloom/coach-engine/internal/cache"
	"github.com/neurobloom/coach-engine/internal/coach"
	"github.com/neurobloom/coach-engine/internal/pubmed"
	"github.com/neurobloom/coach-engine/pkg/types"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single wellbeing question",
	Long: `Ask answers one question and prints the result. The answer combines the
curated knowledge base, links to national health guidance, and a live
literature search. Context flags tailor the answer; --json emits the
full structure and --save writes it to a YAML file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().String("topic", "", "topic hint (e.g. adhd, anxiety, sleep)")
	askCmd.Flags().String("audience", "", "target audience (parents, young_people, teachers, adults, workplace)")
	askCmd.Flags().String("country", "", "country for localized guidance")
	askCmd.Flags().String("age-group", "", "age group of the person the question is about")
	askCmd.Flags().String("setting", "", "setting the question concerns (home, school, work)")
	askCmd.Flags().String("challenge", "", "main challenge being faced")
	askCmd.Flags().String("goal", "", "what the asker wants to achieve")
	askCmd.Flags().Bool("json", false, "output the full answer as JSON")
	askCmd.Flags().String("save", "", "write the answer to a YAML file at this path")

	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	store, err := cache.NewStore(cfg.Cache)
	if err != nil {
		return err
	}
	defer store.Close()

	eng := coach.New(store, pubmed.NewClient(cfg.Search, log), cfg.Search.MaxResults, log)

	req := coach.Request{Question: strings.Join(args, " ")}
	req.Topic, _ = cmd.Flags().GetString("topic")
	req.Audience, _ = cmd.Flags().GetString("audience")

	uc := types.UserContext{}
	uc.Country, _ = cmd.Flags().GetString("country")
	uc.AgeGroup, _ = cmd.Flags().GetString("age-group")
	uc.Setting, _ = cmd.Flags().GetString("setting")
	uc.MainChallenge, _ = cmd.Flags().GetString("challenge")
	uc.Goal, _ = cmd.Flags().GetString("goal")
	if !uc.IsZero() {
		req.Context = &uc
	}

	res, err := eng.Handle(context.Background(), req)
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		if err := coach.SaveAnswer(req.Question, res, path); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, "Answer written to", path)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	printAnswer(res.Answer)
	return nil
}

func printAnswer(ans *types.Answer) {
	fmt.Println(ans.Title)
	fmt.Println(strings.Repeat("=", len(ans.Title)))
	fmt.Println(ans.ContextLine)
	fmt.Println()

	for _, line := range ans.Summary {
		fmt.Println(" ", line)
	}

	if len(ans.PracticalActions) > 0 {
		fmt.Println("\nWhat you can do:")
		for i, a := range ans.PracticalActions {
			fmt.Printf("  %d. %s\n", i+1, a)
		}
	}

	if len(ans.Myths) > 0 {
		fmt.Println("\nCommon misconceptions:")
		for _, m := range ans.Myths {
			fmt.Println("  -", m)
		}
	}

	if len(ans.GuidelineSources) > 0 || len(ans.ResearchSources) > 0 {
		fmt.Println("\nSources:")
		for _, s := range ans.GuidelineSources {
			fmt.Printf("  [%s] %s\n      %s\n", s.Kind, s.Title, s.URL)
		}
		for _, s := range ans.ResearchSources {
			fmt.Printf("  [%s] %s (%s, %d)\n      %s\n", s.Kind, s.Title, s.Journal, s.Year, s.URL)
		}
	}

	fmt.Println()
	fmt.Println(ans.SafetyNotice)
}
