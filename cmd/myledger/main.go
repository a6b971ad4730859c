package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	clientapi "github.com/xrs-b/MyLedger/internal/client/api"
	"github.com/xrs-b/MyLedger/internal/client/cli"
	"github.com/xrs-b/MyLedger/internal/client/iocli"
	"github.com/xrs-b/MyLedger/internal/client/session"
	"github.com/xrs-b/MyLedger/internal/client/stats"
	"github.com/xrs-b/MyLedger/internal/client/storage/boltdb"
	"github.com/xrs-b/MyLedger/internal/client/store"
	"github.com/xrs-b/MyLedger/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (overrides config)")
	dbPath := flag.String("db", "", "Path to local database (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	// Флаги перекрывают конфиг
	if *serverURL != "" {
		cfg.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	io := iocli.NewStdio()
	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	creds := session.NewCredentials(boltStorage)
	apiClient := clientapi.NewClient(cfg.ServerURL,
		clientapi.WithCredentials(creds),
		clientapi.WithTimeout(cfg.HTTPTimeout),
		clientapi.WithLogger(logger),
		clientapi.WithUnauthorizedHook(func() {
			io.Println("Session expired. Please run 'myledger login' again.")
		}),
	)

	sess := session.New(apiClient, boltStorage)
	records := store.NewRecords(apiClient)
	records.SetPageSize(cfg.PageSize)
	projects := store.NewProjects(apiClient)
	categories := store.NewCategories(apiClient)
	admin := store.NewAdmin(apiClient)
	aggregator := stats.New(apiClient)

	app := cli.New(io, sess, records, projects, categories, admin, aggregator)

	args := flag.Args()
	if len(args) == 0 {
		app.PrintUsage()
		os.Exit(1)
	}

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("MyLedger Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
