/*
Package main implements the swyft prediction server and CLI [DBG]
application.

Note: This is a BETA release. APIs and functionality may rapidly change.

swyftd turns swiped keyboard gestures into ranked word predictions using
banded DTW path matching against a compiled dictionary asset. It can
operate as a MessagePack IPC server for integration with an overlay or
hotkey layer, or as a CLI application for testing and debugging.

# Usage

Start the server with default settings:

	swyftd

Use a specific language and enable debug mode:

	swyftd -lang en -d

Run in CLI mode for interactive testing:

	swyftd -c -limit 5

# Configuration

Runtime configuration is managed through a TOML file covering predictor
tuning, server limits, and CLI defaults:

	[predictor]
	band_divisor = 4
	first_char_strict = true

	[server]
	default_k = 10
	max_k = 64

The config file is automatically created with defaults if it doesn't
exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout, each message
framed with a 4-byte length prefix. See pkg/server for the wire format.

# Command Line Flags

	-lang string
	    Dictionary language code to load (default "en")
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of predictions to return in CLI mode
	-config string
	    Path to a TOML config file
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

	"github.com/swypelab/swyft/internal/cli"
	"github.com/swypelab/swyft/pkg/config"
	"github.com/swypelab/swyft/pkg/predictor"
	"github.com/swypelab/swyft/pkg/server"
)

const (
	Version = "0.1.0-beta"
	AppName = "swyft"
	gh      = "https://github.com/swypelab/swyft"
)

func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	lang := flag.String("lang", defaultConfig.Server.Language, "Dictionary language code to load")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultK, "Number of predictions to return in CLI mode")
	minTrace := flag.Int("tmin", defaultConfig.CLI.DefaultMinTrace, "Minimum trace length")
	maxTrace := flag.Int("tmax", defaultConfig.CLI.DefaultMaxTrace, "Maximum trace length")
	configPath := flag.String("config", "", "Path to a TOML config file")

	flag.Parse()

	if *showVersion {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    false,
			ReportTimestamp: false,
			Prefix:          "",
		})

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ swyft ] predicts swipe gestures into words, fast")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, _, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
		os.Exit(1)
	}

	predCfg := &predictor.Config{
		PopularityWeight: appConfig.Predictor.PopularityWeight,
		BandDivisor:      appConfig.Predictor.BandDivisor,
		FirstCharStrict:  appConfig.Predictor.FirstCharStrict,
		LastCharPenalty:  appConfig.Predictor.LastCharPenalty,
		LengthSkewMax:    appConfig.Predictor.LengthSkewMax,
	}

	pred, err := predictor.New(*lang, predCfg)
	if err != nil {
		log.Fatalf("failed to build predictor for language %q: %v", *lang, err)
		os.Exit(1)
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("trace input info:", "min", *minTrace, "max", *maxTrace, "limit", *limit)

		inputHandler := cli.NewInputHandler(pred, *minTrace, *maxTrace, *limit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC server")
	srv := server.NewServer(pred, appConfig.Server.DefaultK, appConfig.Server.MaxK)

	showStartupInfo(*lang)

	if err := srv.Start(); err != nil {
		log.Fatalf("failed to start server: %v", err)
		os.Exit(1)
	}
}

func showStartupInfo(lang string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("===========")
	println("   swyft   ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("language: ( %s )", lang)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
