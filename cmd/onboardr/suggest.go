package main

import (
	"fmt"
	"strings"

	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest [query]",
	Short: "List example goals",
	Long: `List the example goals offered by the welcome dialog, filtered by query
(case-insensitive). At most five are shown; the rest are counted.`,
	RunE: runSuggest,
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	shown, overflow := onboarding.FilterSuggestions(query)
	out := cmd.OutOrStdout()

	if len(shown) == 0 {
		fmt.Fprintf(out, "No suggestions match %q.\n", query)
		return nil
	}
	for _, s := range shown {
		marker := " "
		if onboarding.IsSubscriptionGoal(s) {
			marker = "↻"
		}
		fmt.Fprintf(out, "%s %s\n", marker, s)
	}
	if overflow > 0 {
		fmt.Fprintf(out, "  +%d more\n", overflow)
	}
	return nil
}
