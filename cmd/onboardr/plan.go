package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/onboardr/internal/checklist"
	"github.com/mark3labs/onboardr/internal/config"
	"github.com/mark3labs/onboardr/internal/tui/theme"
	"github.com/spf13/cobra"
)

// prettyWidth is the wrap width for --pretty output.
const prettyWidth = 80

var planFlags struct {
	format   string
	out      string
	autoName bool
	diff     bool
	pretty   bool
}

var planCmd = &cobra.Command{
	Use:   "plan <goal>",
	Short: "Print the setup checklist for a goal",
	Long: `Generate the setup checklist for a goal without starting the wizard.

The checklist is printed as Markdown or YAML. --out writes it to a file
(- for stdout); --auto-name derives the file name from the goal instead.
--diff shows how the goal changed the base checklist.

Quote goals that contain spaces: onboardr plan "Sell digital downloads"`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planFlags.format, "format", "f", string(checklist.FormatMarkdown), "Output format (markdown or yaml)")
	planCmd.Flags().StringVarP(&planFlags.out, "out", "o", "", "Write to file instead of stdout (- for stdout)")
	planCmd.Flags().BoolVarP(&planFlags.autoName, "auto-name", "a", false, "Write to a file named after the goal")
	planCmd.Flags().BoolVar(&planFlags.diff, "diff", false, "Show a unified diff against the base checklist")
	planCmd.Flags().BoolVar(&planFlags.pretty, "pretty", false, "Render Markdown for the terminal")
	planCmd.MarkFlagsMutuallyExclusive("out", "auto-name")
}

func runPlan(cmd *cobra.Command, args []string) error {
	c, err := checklist.New(args[0])
	if err != nil {
		return fmt.Errorf("invalid goal: %w", err)
	}
	out := cmd.OutOrStdout()

	if planFlags.diff {
		diff := c.Diff()
		if diff == "" {
			fmt.Fprintln(out, "No changes from the base checklist.")
			return nil
		}
		fmt.Fprint(out, diff)
		return nil
	}

	format, err := checklist.ParseFormat(planFlags.format)
	if err != nil {
		return err
	}
	data, err := c.Render(format)
	if err != nil {
		return err
	}

	dest := planFlags.out
	if planFlags.autoName {
		dest = checklist.DefaultFilename(c.Goal, format)
	}
	if dest == "" || dest == "-" {
		if planFlags.pretty && format == checklist.FormatMarkdown {
			if data, err = prettyMarkdown(string(data)); err != nil {
				return err
			}
		}
		_, err := out.Write(data)
		return err
	}

	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write checklist: %w", err)
	}
	fmt.Fprintf(out, "Checklist for %q written to: %s (%d steps)\n", c.Goal, dest, len(c.Steps))
	return nil
}

// prettyMarkdown renders md with the glamour style of the configured theme.
func prettyMarkdown(md string) ([]byte, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := theme.SetCurrent(theme.ForStyle(cfg.ThemeStyle)); err != nil {
		return nil, fmt.Errorf("invalid theme_style: %w", err)
	}
	pretty, err := checklist.Pretty(md, theme.Current().GlamourStyle(), prettyWidth)
	if err != nil {
		return nil, err
	}
	return []byte(pretty), nil
}
