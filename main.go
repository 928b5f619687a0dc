package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" help:"Path to the config file" default:"config.yml" type:"path"`
	LogLevel string           `help:"Override the log level from the config (debug, info, warn, error)"`
	NoColor  bool             `help:"Disable colored output"`
	NoReplay bool             `help:"Exit after a single game"`
}

// main - is the entry point of the application. It parses flags, loads the configuration, sets up the logger and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Two-player Tic Tac Toe in the terminal"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
	)

	conf := initConfig(&cli)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config, flags take precedence over the file and environment.
func initConfig(cli *CLI) *config.Config {
	conf := config.MustLoad(cli.Config)

	if cli.LogLevel != "" {
		conf.LogLevel = cli.LogLevel
	}

	conf.NoColor = conf.NoColor || cli.NoColor
	conf.NoReplay = conf.NoReplay || cli.NoReplay

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}

	var (
		out     io.Writer = os.Stderr
		closeFn           = func() {}
	)

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeFn = func() {
			_ = file.Close()
		}
	}

	handler := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "tictactoe",
	})

	return slog.New(handler), closeFn
}
