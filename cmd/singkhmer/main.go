/*
Package main runs the Khmer romanization suggestion engine.

Sing Khmer maps typed romanizations (like "slanh" or "jg") to ranked
Khmer words, tolerating typos and learning from accepted suggestions.
The engine loads a flat corpus once at startup, then serves lookups
through one of two fronts:

# Server Mode

The default mode speaks msgpack over stdin/stdout for host keyboard
integration. Suggestion requests are answered synchronously with ranked
candidates and microsecond timing; selection events feed the frequency
learning without restarting the process:

	{"id": "req_001", "q": "slan"}
	{"id": "sel_001", "action": "select", "k": "slanh", "w": "ស្លាញ់"}

# CLI Mode

With -c the engine runs an interactive prompt for testing: type a
romanization to see candidates, enter 1-3 to accept one and strengthen
its ranking.

# Corpus

The corpus is a plain text file, one Khmer word per line followed by its
romanizations:

	ស្លាញ់: slanh, slagn
	ចង់: jg, chong

A missing or unreadable corpus is not fatal; the engine starts with an
empty index and simply returns no suggestions.

# Flags

	-data string
	    Corpus file path (overrides the config value)
	-config string
	    Config file path (default "config.toml")
	-c  Run in CLI mode instead of server mode
	-d  Enable debug logging
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Nel-sokchhunly/sing-khmer-keyboard/internal/cli"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/internal/logger"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/config"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/dictionary"
	"github.com/Nel-sokchhunly/sing-khmer-keyboard/pkg/server"
)

const (
	Version = "1.0.0"
	AppName = "singkhmer"
	gh      = "https://github.com/Nel-sokchhunly/sing-khmer-keyboard"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, corpus, and the chosen front-end together; the
// packages it calls own all the logic.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Corpus file path (overrides config)")
	configPath := flag.String("config", "config.toml", "Config file path")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI -- useful for testing and debugging")
	flag.Parse()

	if *showVersion {
		showVersionBanner()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	cfg := config.InitConfig(*configPath)

	corpusPath := cfg.Dict.Path
	if *dataPath != "" {
		corpusPath = *dataPath
	}

	index, stats, err := dictionary.LoadFile(corpusPath)
	if err != nil {
		log.Warnf("Corpus unavailable, serving an empty index: %v", err)
	} else {
		log.Debugf("Corpus ready: %d lines, %d skipped, %d pairs", stats.Lines, stats.Skipped, stats.Pairs)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(index, cfg.CLI.ShowFreq)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(index, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// showVersionBanner displays some basic info about the build.
func showVersionBanner() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ Sing Khmer ] Romanized Khmer suggestions, typo-tolerant.")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}
