package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"plc-tools/plc-config/config"
	"plc-tools/plc-config/logging"
	"plc-tools/plc-config/script"
	"plc-tools/plc-config/session"
	"plc-tools/plc-config/tui"
	"plc-tools/plc-config/version"
)

func main() {
	// --- Argument Parsing ---
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if cfg.ShowVersion {
		fmt.Println(version.String())
		return
	}

	// --- Logging Setup ---
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Sync()
	logger.Info("Starting", zap.String("build_date", version.BuildDate))

	sess := session.New(logger)

	// --- Batch Mode ---
	if cfg.ScriptPath != "" {
		code := runScript(cfg.ScriptPath, sess, logger)
		logger.Sync()
		os.Exit(code)
	}

	// --- Start TUI ---
	p := tea.NewProgram(tui.NewModel(sess, logger), tea.WithAltScreen())

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGTERM)
	go func() {
		<-shutdownChan
		logger.Info("Shutdown signal received.")
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Application exiting.")
}

func runScript(path string, sess *session.Session, logger *zap.Logger) int {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open script: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	failed, err := script.Run(in, os.Stdout, sess, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d line(s) failed\n", failed)
		return 1
	}
	return 0
}
