package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/wikifeed/pkg/config"
	"github.com/umputun/wikifeed/pkg/favorites"
	"github.com/umputun/wikifeed/pkg/feed"
	"github.com/umputun/wikifeed/pkg/repository"
	"github.com/umputun/wikifeed/pkg/scheduler"
	"github.com/umputun/wikifeed/pkg/wiki"
	"github.com/umputun/wikifeed/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" description:"configuration file, defaults used if not set"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
	DB     string `long:"db" env:"DB" description:"database dsn, overrides config"`
	Fetch  int    `short:"f" long:"fetch" description:"fetch N ranked articles, print as JSON and exit"`

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
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	// keep stdout clean for --fetch output
	logOut := io.Writer(os.Stdout)
	if opts.Fetch > 0 {
		logOut = os.Stderr
	}
	setupLog(opts.Debug, logOut)

	log.Printf("[INFO] starting wikifeed version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts, os.Stdout)
	cancel()

	if err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires all components and either prints one batch of articles or serves http until ctx canceled
func run(ctx context.Context, opts Opts, out io.Writer) error {
	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}
	if opts.DB != "" {
		cfg.Database.DSN = opts.DB
	}

	client := wiki.NewClient(wiki.ClientParams{
		APIURL:    cfg.Wiki.APIURL,
		UserAgent: cfg.Wiki.UserAgent,
		Timeout:   cfg.Wiki.Timeout,
	})
	fetcher := wiki.NewFetcher(wiki.FetcherParams{API: client, Queries: cfg.Wiki.Queries})
	loader := feed.NewLoader(fetcher, cfg.Wiki.DefaultCount)

	if opts.Fetch > 0 {
		return printArticles(ctx, loader, opts.Fetch, out)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	favs := favorites.NewManager(repos.Setting)
	if err := favs.Load(ctx); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	// load current articles in background, server is usable while this runs
	sched := scheduler.NewScheduler(scheduler.Params{Refresher: loader, RefreshInterval: cfg.Wiki.RefreshInterval})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, loader, favs, revision, opts.Debug)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// printArticles runs a single load and writes ranked articles as JSON
func printArticles(ctx context.Context, loader *feed.Loader, count int, out io.Writer) error {
	var final feed.State
	for st := range loader.Load(ctx, count) {
		if st.Status == feed.StatusLoading {
			log.Printf("[INFO] loading %d articles", count)
			continue
		}
		final = st
	}

	if final.Status != feed.StatusSuccess {
		return fmt.Errorf("%s: %w", final.Message, final.Err)
	}

	type item struct {
		Title       string  `json:"title"`
		Description string  `json:"description,omitempty"`
		Extract     string  `json:"extract"`
		Score       float64 `json:"score"`
		URL         string  `json:"url"`
		Thumbnail   string  `json:"thumbnail,omitempty"`
	}
	res := make([]item, 0, len(final.Articles))
	for _, a := range final.Articles {
		res = append(res, item{Title: a.Title, Description: a.Description, Extract: a.Extract,
			Score: a.QualityScore(), URL: a.ShareURL(), Thumbnail: a.ThumbnailURL})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("failed to write articles: %w", err)
	}
	return nil
}

func setupLog(dbg bool, out io.Writer) {
	logOpts := []lgr.Option{lgr.Out(out), lgr.Err(os.Stderr), lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = append(logOpts, lgr.Debug, lgr.StackTraceOnError)
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
