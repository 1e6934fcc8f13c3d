package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/levos/internal/catalog"
	"github.com/julianstephens/levos/internal/cli"
	"github.com/julianstephens/levos/internal/config"
	"github.com/julianstephens/levos/internal/errors"
	"github.com/julianstephens/levos/internal/logger"
	"github.com/julianstephens/levos/internal/scenario"
	"github.com/julianstephens/levos/internal/schedule"
	"github.com/julianstephens/levos/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize levos storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive day viewer." default:"1"`
	Serve  cli.ServeCmd  `cmd:"" help:"Run the HTTP API server."`
	Day    cli.DayCmd    `cmd:"" help:"Show a day's schedule."`
	Clear  cli.ClearCmd  `cmd:"" help:"Delete a day's schedule."`
	Place  cli.PlaceCmd  `cmd:"" help:"Place a block on a day."`
	Move   cli.MoveCmd   `cmd:"" help:"Move a block, possibly to another day."`
	Shift  cli.ShiftCmd  `cmd:"" help:"Shift a block earlier or later."`
	Resize cli.ResizeCmd `cmd:"" help:"Change a block's duration."`
	Remove cli.RemoveCmd `cmd:"" help:"Remove a block."`
	Apply  cli.ApplyCmd  `cmd:"" help:"Expand a scenario into a day's schedule."`
	Detect cli.DetectCmd `cmd:"" help:"Classify a day's schedule by scenario."`
	Auto   cli.AutoCmd   `cmd:"" help:"Preview auto blocks for an operation slot."`
	Blocks cli.BlocksCmd `cmd:"" help:"List the block catalog."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("levos"),
		kong.Description("Personal daily schedule planner on a half-hour grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	configDir, err := config.ConfigDir()
	if err != nil {
		errors.Fatal(err)
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = filepath.Join(configDir, "config.yaml")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		errors.Fatal(err)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: configDir}); err != nil {
		errors.Fatalf("failed to initialize logging: %v", err)
	}

	storagePath, err := cfg.StoragePath()
	if err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	if cfg.Storage == "json" || filepath.Ext(storagePath) == ".json" {
		store = storage.NewJSONStore(storagePath)
	} else {
		store = storage.NewSQLiteStore(storagePath)
	}

	cat := catalog.Default()
	appCtx := &cli.Context{
		Store:    store,
		Catalog:  cat,
		Engine:   schedule.NewStore(cat),
		Expander: scenario.NewExpander(cat),
		Config:   cfg,
	}

	// Every command except init expects existing storage.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.Format(err))
		os.Exit(1)
	}
}
