// sprig-demo is a small form built from sprig widgets: text inputs, a list
// box and a log panel sharing one focus scope.
//
// The form is described by an optional TOML file (--config). Log records from
// every widget are collected in the panel at the bottom; --log-file writes
// them to disk when the program exits.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/sprig"
	"github.com/iw2rmb/sprig/logview"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var shape string
	var blink bool
	var debug bool
	var logFile string
	var writeConfig string

	flagSet := pflag.NewFlagSet("sprig-demo", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a TOML form definition")
	flagSet.StringVar(&shape, "shape", "", "cursor shape: underline, block or line (overrides the config)")
	flagSet.BoolVar(&blink, "blink", false, "blink the cursor")
	flagSet.BoolVar(&debug, "debug", false, "log debug records prefixed with their source position")
	flagSet.StringVar(&logFile, "log-file", "", "write the collected log lines to this file on exit")
	flagSet.StringVar(&writeConfig, "write-config", "", "write the effective form definition as TOML and exit")
	flagSet.Bool("version", false, "print the version and exit")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if v, _ := flagSet.GetBool("version"); v {
		fmt.Printf("sprig-demo %s\n", sprig.VersionTag())
		return nil
	}

	cfg, err := LoadFormConfig(configPath)
	if err != nil {
		return err
	}
	if shape != "" {
		cfg.Cursor.Shape = shape
	}
	if flagSet.Changed("blink") {
		cfg.Cursor.Blink = blink
	}
	if debug {
		cfg.Log.Debug = true
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if writeConfig != "" {
		return SaveFormConfig(writeConfig, cfg)
	}

	logs := logview.NewLog(0)
	opts := logview.HandlerOptions{Level: slog.LevelInfo}
	if cfg.Log.Debug {
		opts.Level = slog.LevelDebug
		opts.Source = true
		if wd, err := os.Getwd(); err == nil {
			opts.Root = wd
		}
	}
	handler := logview.NewHandler(logs, opts)
	logger := slog.New(handler)

	m, err := newModel(cfg, logs, logger)
	if err != nil {
		return err
	}

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	handler.SetProgram(program)

	_, runErr := program.Run()
	if logFile != "" {
		if err := dumpLog(logs, logFile); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("run: %w", runErr)
	}
	return nil
}

func dumpLog(logs *logview.Log, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create log file: %w", err)
	}
	if _, err := logs.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("dump log to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `sprig-demo: interactive form built from sprig widgets

USAGE
  sprig-demo [flags]

KEYS
  tab / shift+tab   move between fields
  enter             submit the focused field
  esc               leave the focused field
  ?                 toggle full help (when no field is focused)
  q, ctrl+c         quit

FLAGS
`)
	flagSet.PrintDefaults()
}
