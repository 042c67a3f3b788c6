package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/arcwatch/pkg/archive"
	"github.com/umputun/arcwatch/pkg/config"
	"github.com/umputun/arcwatch/pkg/listing"
	"github.com/umputun/arcwatch/pkg/localstate"
	"github.com/umputun/arcwatch/pkg/novelty"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"ARCWATCH_CONFIG" default:"arcwatch.yml" description:"configuration file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)
	log.Printf("[DEBUG] starting arcwatch version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[WARN] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, os.Stdout)
	cancel()
	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the pipeline and performs a single archive check.
// New links are written to out, one per line.
func run(ctx context.Context, opts Opts, out io.Writer) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := novelty.NewService(novelty.Params{
		Fetcher:        archive.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		Parser:         listing.NewParser(cfg.TableID, cfg.BaseURL),
		Deriver:        localstate.NewDeriver(localstate.FSLister{}, cfg.FolderPattern()),
		Emitter:        novelty.WriterEmitter{W: out},
		ArchiveURL:     cfg.ArchiveURL,
		DownloadFolder: cfg.DownloadFolder,
		Relevance:      cfg.SearchPattern(),
	})

	if _, err := svc.Run(ctx); err != nil {
		return fmt.Errorf("failed to check archive: %w", err)
	}
	return nil
}

// setupLog configures lgr and the standard logger. Logs go to stderr, stdout is reserved for links.
func setupLog(dbg, noColor bool) {
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr)}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError)
	}

	if noColor {
		color.NoColor = true
	} else {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
