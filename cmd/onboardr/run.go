package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/logger"
	"github.com/mark3labs/onboardr/internal/onboarding"
	"github.com/mark3labs/onboardr/internal/tui"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/spf13/cobra"
)

var wizardFlags struct {
	brand        string
	dashboardURL string
	apiKeyDelay  time.Duration
	themeStyle   string
	noAltScreen  bool
	logLevel     string
	logFile      string
}

var runCmd = &cobra.Command{
	Use:   "run [goal]",
	Short: "Start the setup wizard",
	Long: `Start the interactive setup wizard.

With a goal argument the welcome dialog is skipped and the checklist for that
goal is generated immediately.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWizard,
}

func init() {
	addWizardFlags(runCmd)
}

func addWizardFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&wizardFlags.brand, "brand", "", "Brand name shown in the welcome dialog")
	cmd.Flags().StringVar(&wizardFlags.dashboardURL, "dashboard-url", "", "URL opened by the dashboard actions")
	cmd.Flags().DurationVar(&wizardFlags.apiKeyDelay, "api-key-delay", 0, "Simulated API key generation time")
	cmd.Flags().StringVar(&wizardFlags.themeStyle, "theme", "", "Theme style (dark, light or a theme name)")
	cmd.Flags().BoolVar(&wizardFlags.noAltScreen, "no-alt-screen", false, "Render inline instead of the alternate screen")
	cmd.Flags().StringVar(&wizardFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&wizardFlags.logFile, "log-file", "", "Write logs to this file")
}

// applyWizardFlags overrides cfg with the flags set on cmd.
func applyWizardFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("brand") {
		cfg.Brand = wizardFlags.brand
	}
	if flags.Changed("dashboard-url") {
		cfg.DashboardURL = wizardFlags.dashboardURL
	}
	if flags.Changed("api-key-delay") {
		cfg.APIKeyDelay = wizardFlags.apiKeyDelay
	}
	if flags.Changed("theme") {
		cfg.ThemeStyle = wizardFlags.themeStyle
	}
	if flags.Changed("no-alt-screen") {
		cfg.AltScreen = !wizardFlags.noAltScreen
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = wizardFlags.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = wizardFlags.logFile
	}
}

// loadWizardConfig loads the layered config and applies cmd's flags on top.
func loadWizardConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyWizardFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg, err := loadWizardConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	if err := theme.SetCurrent(theme.ForStyle(cfg.ThemeStyle)); err != nil {
		return fmt.Errorf("invalid theme_style: %w", err)
	}

	var goal string
	if len(args) == 1 {
		goal = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting wizard (brand=%s, theme=%s)", cfg.Brand, theme.Current().Name)
	outcome, err := tui.Run(ctx, tui.Options{
		Brand:        cfg.Brand,
		DashboardURL: cfg.DashboardURL,
		APIKeyDelay:  cfg.APIKeyDelay,
		Goal:         goal,
		AltScreen:    cfg.AltScreen,
		Logger:       logger.Component("tui"),
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), summarize(outcome))
	return nil
}

// summarize describes where the session ended.
func summarize(o tui.Outcome) string {
	switch o.Phase {
	case onboarding.PhaseComplete:
		return fmt.Sprintf("Setup complete for %q: %d/%d steps done.\n", o.Goal, o.Progress.Completed, o.Progress.Total)
	case onboarding.PhaseRunning:
		return fmt.Sprintf("Setup for %q paused at %d/%d steps (%.0f%%).\n", o.Goal, o.Progress.Completed, o.Progress.Total, o.Progress.Percentage)
	}
	return ""
}
