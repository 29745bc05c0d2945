package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/appengine-ltd/toybox/internal/config"
	"github.com/appengine-ltd/toybox/internal/ctxlog"
	"github.com/appengine-ltd/toybox/internal/launcher"
	"github.com/appengine-ltd/toybox/internal/logging"
	"github.com/appengine-ltd/toybox/internal/ui"
)

// version, commit, date are set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// usageError is a command line mistake; main exits 2 for it.
type usageError struct {
	msg string
	err error
}

func (e *usageError) Error() string {
	if e.msg == "" && e.err != nil {
		return e.err.Error()
	}
	return e.msg
}

func (e *usageError) Unwrap() error {
	return e.err
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ue *usageError
		if errors.As(err, &ue) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	registry := launcher.DefaultRegistry()

	fs := flag.NewFlagSet("toybox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr, fs, registry) }

	var (
		showVersion bool
		configPath  string
		logLevel    string
	)
	fs.BoolVar(&showVersion, "version", false, "print version and exit")
	fs.StringVar(&configPath, "config", "", "path to a toybox.toml config file")
	fs.StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &usageError{msg: err.Error()}
	}

	if showVersion {
		fmt.Fprintf(stdout, "toybox %s (%s) %s\n", version, commit, date)
		return nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return &usageError{msg: err.Error()}
		}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return &usageError{msg: "missing app name"}
	}
	if fs.NArg() > 1 {
		return &usageError{msg: fmt.Sprintf("unexpected arguments: %s", strings.Join(fs.Args()[1:], " "))}
	}

	name := fs.Arg(0)
	if name == "config" {
		return config.Dump(stdout, cfg)
	}

	app, err := registry.Resolve(name)
	if err != nil {
		return &usageError{err: err}
	}

	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	logger = logger.With("version", version)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("launching", "app", app.ID)

	if app.Graphical {
		return launchGraphical(ctx, app, cfg)
	}
	return ui.NewApp(ui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Mouse:     cfg.Calc.Mouse,
	}).Run(ctx)
}

func printUsage(w io.Writer, fs *flag.FlagSet, r *launcher.Registry) {
	fmt.Fprint(w, "Usage:\n  toybox [options] <app>\n  toybox [options] config\n\nApps:\n")
	for _, app := range r.Apps() {
		fmt.Fprintf(w, "  %-8s %s: %s\n", app.ID, app.Title, app.Summary)
	}
	fmt.Fprint(w, "\nOptions:\n")
	fs.PrintDefaults()
}
