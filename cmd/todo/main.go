package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aylinkr/todo/internal/cli"
	"github.com/aylinkr/todo/internal/config"
	"github.com/aylinkr/todo/internal/logging"
	"github.com/aylinkr/todo/internal/manager"
	"github.com/aylinkr/todo/internal/store"
	"github.com/aylinkr/todo/internal/store/jsonstore"
	"github.com/aylinkr/todo/internal/store/memstore"
	"github.com/aylinkr/todo/internal/store/sqlitestore"
	"github.com/aylinkr/todo/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group output by pending/done")
	backend := flag.String("backend", "", "persistence backend: json, memory or sqlite")
	theme := flag.String("theme", "", "ui theme: classic, neon or mono")
	dataFile := flag.String("file", "", "data file name, resolved in the working directory")
	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 1
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return 2
	}

	ui.SetTheme(cfg.Theme)
	log := logging.New(os.Stderr, cfg.LogLevel)

	var st store.Store
	switch cfg.Backend {
	case "memory":
		st = memstore.New()
	case "sqlite":
		s, err := sqlitestore.Open(cfg.SQLitePath())
		if err != nil {
			log.Error().Err(err).Msg("open sqlite store")
			return 1
		}
		defer s.Close()
		st = s
	default:
		st = jsonstore.New(cfg.DataFile)
	}

	app := &cli.CLI{
		Manager: manager.New(st, log),
		Opt:     cli.Options{Group: *groupPending},
	}

	// No subcommand: the interactive prompt is the primary surface.
	args := flag.Args()
	if len(args) == 0 {
		app.Loop(os.Stdin, os.Stdout)
		return 0
	}

	code := app.Run(args)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	return code
}
