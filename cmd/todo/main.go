package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todolist/internal/config"
	"todolist/internal/list"
	"todolist/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logPath string

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Edit a todo list in the terminal",
		Long:          "Add, delete and drag-to-reorder todos. Nothing is saved; the list is gone on exit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = config.ResolveConfigPath()
			}
			return run(configPath, logPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml (default: $"+config.ConfigEnv+" or the user config dir)")
	cmd.Flags().StringVar(&logPath, "log", "", "append debug logs to this file")
	return cmd
}

func run(configPath, logPath string) error {
	firstLaunch := false
	if _, err := os.Stat(configPath); err != nil {
		firstLaunch = errors.Is(err, os.ErrNotExist)
	}
	cfg, err := config.LoadOrCreate(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logPath == "" {
		logPath = cfg.LogFile
	}
	closeLog, err := setupLogging(logPath)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()

	log.Printf("start config=%s first_launch=%t", configPath, firstLaunch)
	if err := ui.Run(list.New(), cfg, configPath, firstLaunch); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it when path is
// empty. The terminal belongs to the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "todo")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
