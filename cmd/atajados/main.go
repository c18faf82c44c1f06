package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/atajados/internal/cli"
	"github.com/alexanderramin/atajados/internal/config"
	"github.com/alexanderramin/atajados/internal/db"
	"github.com/alexanderramin/atajados/internal/logging"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := config.DefaultPath()
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Console: isatty.IsTerminal(os.Stderr.Fd()),
	})

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteItemRepo(database)
	unitRepo := repository.NewSQLiteUnitRepo(database)
	recordRepo := repository.NewSQLiteProgressRepo(database)
	milestoneRepo := repository.NewSQLiteMilestoneRepo(database)
	photoRepo := repository.NewSQLitePhotoRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to the log and to a process-local registry
	// that --metrics prints.
	registry := prometheus.NewRegistry()
	metrics, err := service.NewMetricsObserver(registry)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}
	observer := service.MultiUseCaseObserver{service.NewLogUseCaseObserver(logger), metrics}

	// Wire services
	reports := service.NewReportService(itemRepo, unitRepo, recordRepo, milestoneRepo, photoRepo, observer)

	app := &cli.App{
		Items:      service.NewItemService(itemRepo, observer),
		Units:      service.NewUnitService(unitRepo, observer),
		Progress:   service.NewProgressService(recordRepo, uow, observer),
		Milestones: service.NewMilestoneService(milestoneRepo, observer),
		Photos:     service.NewPhotoService(photoRepo, unitRepo, cfg.PhotoDir, observer),
		Reports:    reports,
		Import:     service.NewImportService(uow, observer),
		Export:     service.NewExportService(unitRepo, reports, cfg.HoursPerDay, observer),

		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
		Metrics:    registry,
	}

	// The dashboard and forms need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	logger.Debug().Str("db_path", cfg.DBPath).Msg("database opened")

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
