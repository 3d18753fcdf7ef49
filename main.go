package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/CristiGvl/picoFetch/api"
	"github.com/CristiGvl/picoFetch/internal/config"
	"github.com/CristiGvl/picoFetch/internal/duration"
	"github.com/CristiGvl/picoFetch/internal/logger"
	"github.com/CristiGvl/picoFetch/internal/platform"
	"github.com/CristiGvl/picoFetch/internal/render"
	"github.com/CristiGvl/picoFetch/internal/source"
)

const program = "picofetch"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

type options struct {
	help    bool
	version bool
	json    bool
	noColor bool
	units   int
	root    string
	config  string
	serve   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flags := pflag.NewFlagSet(program, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}
	flags.SortFlags = false

	flags.BoolVarP(&opts.help, "help", "h", false, "Print help information")
	flags.BoolVarP(&opts.version, "version", "V", false, "Print version information")
	flags.BoolVar(&opts.json, "json", false, "Print the snapshot as JSON")
	flags.IntVar(&opts.units, "units", config.FetchUnits, fmt.Sprintf("Maximum uptime units (%d-%d)", duration.MinUnits, duration.MaxUnits))
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringVar(&opts.root, "root", "", "Host filesystem root (default /)")
	flags.StringVar(&opts.config, "config", "", "Path to an INI config file")
	flags.StringVar(&opts.serve, "serve", "", "Serve the snapshot API on `ADDR` instead of printing")
	return flags
}

func run(args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	var opts options
	flags := newFlagSet(&opts)

	envColor := true
	if value, ok := lookupEnv("NO_COLOR"); ok && value != "" {
		envColor = false
	}

	if err := flags.Parse(args); err != nil || flags.NArg() > 0 {
		printer := render.NewPrinter(stderr, render.Profile(stderr, envColor))
		_ = printer.ParseError(args)
		return 1
	}

	if opts.help {
		printer := render.NewPrinter(stdout, render.Profile(stdout, envColor && !opts.noColor))
		if err := printer.Help(program, flags.FlagUsages()); err != nil {
			return 1
		}
		return 0
	}
	if opts.version {
		fmt.Fprintf(stdout, "%s %s\n", program, version)
		return 0
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}
	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}
	applyFlags(&cfg, flags, opts)

	logger.InitWriter(stderr, cfg.Log.Level, cfg.Log.Pretty)
	if err := platform.ValidateSupport(); err != nil {
		logger.Main.Warn().Err(err).Msg("readings may be unavailable")
	}

	facade := platform.NewFacade(platform.NewProbes(source.New(cfg.Source.Root)), logger.Probe)

	if cfg.Server.Listen != "" {
		return serve(facade, cfg)
	}

	snap := facade.Snapshot(context.Background())
	if cfg.Display.JSON {
		err = render.JSON(stdout, snap, cfg.Display.Units)
	} else {
		printer := render.NewPrinter(stdout, render.Profile(stdout, cfg.Display.Color))
		err = printer.Fetch(render.Lines(snap, cfg.Display.Units))
	}
	if err != nil {
		logger.Main.Error().Err(err).Msg("write output")
		return 1
	}
	return 0
}

// applyFlags gives explicitly set flags precedence over file and environment.
func applyFlags(cfg *config.Config, flags *pflag.FlagSet, opts options) {
	if flags.Changed("units") {
		cfg.Display.Units = duration.ClampUnits(opts.units)
	}
	if opts.noColor {
		cfg.Display.Color = false
	}
	if opts.json {
		cfg.Display.JSON = true
	}
	if flags.Changed("root") {
		cfg.Source.Root = opts.root
	}
	if flags.Changed("serve") {
		cfg.Server.Listen = opts.serve
	}
}

func serve(facade *platform.Facade, cfg config.Config) int {
	api.Version = version
	server, err := api.NewServer(facade, cfg.Display.Units, logger.HTTP)
	if err != nil {
		logger.Main.Error().Err(err).Msg("failed to create server")
		return 1
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		if err := server.Shutdown(); err != nil {
			logger.Main.Error().Err(err).Msg("error during shutdown")
		}
	}()

	if err := server.Start(cfg.Server.Listen); err != nil {
		logger.Main.Error().Err(err).Str("address", cfg.Server.Listen).Msg("server stopped")
		return 1
	}
	return 0
}
