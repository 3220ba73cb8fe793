package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"workout-catalog/config"
	"workout-catalog/internal/browse"
	"workout-catalog/internal/client"
	"workout-catalog/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the workout catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		apiBase, _ := cmd.Flags().GetString("api")
		rawURL, _ := cmd.Flags().GetString("url")

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("browse needs a terminal, use \"workouts list\" for non-interactive output")
		}

		cfg, err := config.LoadBrowseConfig(cfgPath)
		if err != nil {
			return err
		}
		if apiBase != "" {
			cfg.APIBaseURL = apiBase
		}

		log, closeLog, err := openBrowseLog(cfg.LogFile)
		if err != nil {
			return err
		}
		defer closeLog()

		api, err := client.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
		if err != nil {
			return err
		}
		loc, err := browse.ParseLocation(rawURL)
		if err != nil {
			return err
		}

		model := ui.New(ui.Options{
			Context:  cmd.Context(),
			Client:   api,
			Location: loc,
			Logger:   log,
		})
		final, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
		if err != nil {
			return fmt.Errorf("run browser: %w", err)
		}
		if m, ok := final.(ui.Model); ok {
			fmt.Fprintln(cmd.OutOrStdout(), m.URL())
		}
		return nil
	},
}

func init() {
	browseCmd.Flags().String("config", "", "browser config file (default ~/.config/workouts/browse.toml)")
	browseCmd.Flags().String("api", "", "API base URL, overrides the config file")
	browseCmd.Flags().String("url", "", "shareable URL to open, e.g. /?page=2&category=c1")
}

// openBrowseLog sends logs to a file since the terminal belongs to the UI.
func openBrowseLog(path string) (*logrus.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := logrus.New()
	log.SetOutput(file)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	return log, func() { file.Close() }, nil
}
