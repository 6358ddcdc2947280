// Package main is the entry point for the codepad editor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/codepad/internal/app"
	"github.com/bethropolis/codepad/internal/config"
	"github.com/bethropolis/codepad/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "codepad:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &config.Flags{}
	cmd := &cobra.Command{
		Use:   "codepad [file]",
		Short: "A terminal notepad for code with regex syntax highlighting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath := ""
			if len(args) > 0 {
				filePath = args[0]
			}
			return run(flags, cmd, filePath)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Register(cmd.Flags())
	return cmd
}

func run(flags *config.Flags, cmd *cobra.Command, filePath string) error {
	cfg, cfgErr := config.Load(flags.ConfigFilePath, flags, cmd.Flags())

	output, closer, err := logger.OpenOutput(cfg.Logger.LogFilePath, config.DefaultLogPath())
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()
	logger.Init(cfg.Logger, output)

	logger.Infof("Starting codepad...")
	if cfgErr != nil {
		logger.Warnf("Config: %v; using defaults", cfgErr)
	} else if cfg.Path != "" {
		logger.Debugf("Config loaded from %s", cfg.Path)
	}
	for _, key := range cfg.Undecoded {
		logger.Warnf("Config: unknown key %q", key)
	}
	if filePath != "" {
		logger.Debugf("File path specified: %s", filePath)
	}

	editorApp, err := app.NewApp(cfg, filePath, app.Options{})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}
	logger.Infof("codepad finished.")
	return nil
}
