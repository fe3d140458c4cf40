package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
	brand   string
	theme   string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a wizard configuration file",
	Long: `Write an onboardr configuration file with the default wizard settings,
optionally choosing the brand and theme.

The global file lives at ~/.config/onboardr/onboardr.yml; --project writes
./onboardr.yml instead, which takes precedence when both exist.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Write ./onboardr.yml instead of the global config")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite an existing config file")
	setupCmd.Flags().StringVar(&setupFlags.brand, "brand", "", "Brand name shown in the welcome dialog")
	setupCmd.Flags().StringVar(&setupFlags.theme, "theme", "", "Theme style: dark, light or a theme name")
}

func runSetup(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if setupFlags.brand != "" {
		cfg.Brand = setupFlags.brand
	}
	if setupFlags.theme != "" {
		if !knownTheme(theme.ForStyle(setupFlags.theme)) {
			return fmt.Errorf("unknown theme %q (want dark, light or one of %v)", setupFlags.theme, theme.Names())
		}
		cfg.ThemeStyle = setupFlags.theme
	}

	path, write := config.GlobalPath(), config.WriteGlobal
	if setupFlags.project {
		path, write = config.ProjectPath(), config.WriteProject
	}
	if !setupFlags.force && fileExists(path) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", path)
	}
	if err := write(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config written to: %s\n\n", path)
	printSettings(out, cfg)
	fmt.Fprintf(out, "\nRun 'onboardr' to start the %s setup.\n", cfg.Brand)
	return nil
}

// printSettings lists the wizard settings as they were written.
func printSettings(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "  brand          %s\n", cfg.Brand)
	fmt.Fprintf(w, "  dashboard_url  %s\n", cfg.DashboardURL)
	fmt.Fprintf(w, "  api_key_delay  %s\n", cfg.APIKeyDelay)
	fmt.Fprintf(w, "  theme_style    %s (%s)\n", cfg.ThemeStyle, theme.ForStyle(cfg.ThemeStyle))
	fmt.Fprintf(w, "  alt_screen     %t\n", cfg.AltScreen)
	fmt.Fprintf(w, "  log_level      %s\n", cfg.LogLevel)
}

func knownTheme(name string) bool {
	for _, n := range theme.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
