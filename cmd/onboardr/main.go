package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/spf13/cobra"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onboardr [goal]",
	Short: "Guided setup wizard for a payment integration",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWizard,
}

// renderLogo colors the program name with the theme gradient.
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	return theme.ApplyGradient("onboardr", t.Primary, t.Secondary)
}

func init() {
	rootCmd.Long = renderLogo() + `

onboardr walks you through integrating a payment provider. Describe what you
want to accomplish and it generates an ordered checklist: confirm test mode,
generate API keys, add a checkout button, copy the integration code, enable
email notifications and find your transactions in the dashboard.

Run without arguments to start at the goal dialog, or pass a goal to skip it.`

	addWizardFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(setupCmd)
}
