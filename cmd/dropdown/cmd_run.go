package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/dropdown/cmd/dropdown/tui"
	"github.com/ruminaider/dropdown/internal/config"
	"github.com/ruminaider/dropdown/internal/paths"
	"github.com/spf13/cobra"
)

var (
	runDebug bool
	runTitle string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the dropdown and print the selection",
	Long:  "run opens the widget full screen with mouse support and prints the final selection as YAML. Ctrl+S confirms, Ctrl+C cancels.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// TTY guard: fall back to filter when stdin is not a terminal
		// (piping, CI, scripts, etc.)
		if !term.IsTerminal(os.Stdin.Fd()) {
			fmt.Fprintln(cmd.ErrOrStderr(), "stdin is not a terminal; printing options instead")
			return filterCmd.RunE(cmd, nil)
		}

		def, path, err := loadDefinition()
		if err != nil {
			return err
		}

		logger, closeLog, err := debugLogger(runDebug)
		if err != nil {
			return err
		}
		defer closeLog()
		logger.Debug("definition loaded", "path", path, "multiple", def.Multiple)

		cfg := def.DropdownConfig()
		cfg.Logger = logger
		title := runTitle
		if title == "" {
			title = filepath.Base(path)
		}

		p := tea.NewProgram(tui.NewHostModel(title, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		host := finalModel.(tui.HostModel)
		if !host.Confirmed {
			return fmt.Errorf("cancelled")
		}
		return printSelection(cmd.OutOrStdout(), host)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "write debug logs to ~/.dropdown/debug.log")
	runCmd.Flags().StringVar(&runTitle, "title", "", "title shown above the widget")
}

// debugLogger returns a logger writing to the debug log when enabled and a
// discarding logger otherwise. Stdout belongs to the interface.
func debugLogger(enabled bool) (*slog.Logger, func(), error) {
	if !enabled {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(paths.Dir(), 0755); err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", paths.Dir(), err)
	}
	f, err := tea.LogToFile(paths.DebugLog(), "dropdown")
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func printSelection(w io.Writer, host tui.HostModel) error {
	data, err := config.MarshalSelection(config.SelectionOf(host.Mode(), host.Value()))
	if err != nil {
		return fmt.Errorf("encoding selection: %w", err)
	}
	_, err = w.Write(data)
	return err
}
