package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/twine/internal/config"
	"github.com/javiermolinar/twine/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Configuration management.

If no config file exists, creates one with default values.
Otherwise, displays the current config. Pass --edit to change it interactively.

Example:
  twine config --edit`,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.settings.ConfigPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfig(cmd.InOrStdin(), cmd.OutOrStdout(), path, edit)
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Edit the configuration interactively")
	return cmd
}

func runConfig(in io.Reader, out io.Writer, configPath string, edit bool) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)
	if !edit {
		return nil
	}

	reader := bufio.NewReader(in)
	fmt.Fprintln(out)

	cfg.Storage.Backend = promptValue(reader, out, "Storage backend (sqlite, badger, memory)", cfg.Storage.Backend)
	cfg.Storage.Path = promptValue(reader, out, "Storage path", cfg.Storage.Path)
	cfg.Planner.StartDate = promptValue(reader, out, "Board start date (empty for today)", cfg.Planner.StartDate)
	cfg.Drag.ActivationDistance = promptFloat(reader, out, "Drag activation distance", cfg.Drag.ActivationDistance)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.Log.Level = promptValue(reader, out, "Log level", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[storage]")
	fmt.Fprintf(out, "  backend             = %s\n", cfg.Storage.Backend)
	fmt.Fprintf(out, "  path                = %s\n", cfg.Storage.Path)
	fmt.Fprintln(out, "\n[planner]")
	fmt.Fprintf(out, "  start_date          = %s\n", cfg.Planner.StartDate)
	fmt.Fprintln(out, "\n[drag]")
	fmt.Fprintf(out, "  activation_distance = %g\n", cfg.Drag.ActivationDistance)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme               = %s\n", cfg.UI.Theme)
	fmt.Fprintf(out, "  color               = %t\n", cfg.UI.Color)
	fmt.Fprintln(out, "\n[log]")
	fmt.Fprintf(out, "  level               = %s\n", cfg.Log.Level)
	fmt.Fprintf(out, "  format              = %s\n", cfg.Log.Format)
	fmt.Fprintf(out, "  file                = %s\n", cfg.Log.File)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptFloat(reader *bufio.Reader, out io.Writer, label string, current float64) float64 {
	for {
		value := promptValue(reader, out, label, strconv.FormatFloat(current, 'g', -1, 64))
		f, err := strconv.ParseFloat(value, 64)
		if err == nil && f > 0 {
			return f
		}
		fmt.Fprintf(out, "  Invalid number %q.\n", value)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
