package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"infusion-rate-calculator/internal/adapters/storage/formulary"
	mem "infusion-rate-calculator/internal/adapters/storage/memory"
	pg "infusion-rate-calculator/internal/adapters/storage/postgres"
	"infusion-rate-calculator/internal/config"
	"infusion-rate-calculator/internal/domain/drugs"
	"infusion-rate-calculator/internal/platform/logger"
	"infusion-rate-calculator/internal/platform/metrics"
	"infusion-rate-calculator/internal/router"
)

// @title Infusion Rate Calculator API
// @version 1.0
// @description Convierte dosis de vasopresores/inotrópicos en velocidad de bomba (ml/hr).
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("INFUSION_CONFIG"), "path to config file (yaml)")
	exportPath := flag.String("export-formulary", "", "write the built-in drug table as a formulary YAML file and exit")
	flag.Parse()

	if *exportPath != "" {
		if err := exportFormulary(*exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.Log.Level)
	log := logger.New(logger.Options{
		Level:  level,
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:         log,
		Metrics:        metrics.New(),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}

	switch cfg.Catalog.Source {
	case config.CatalogFile:
		catalog, err := formulary.Load(cfg.Catalog.File)
		if err != nil {
			return fmt.Errorf("load formulary %s: %w", cfg.Catalog.File, err)
		}
		repo := mem.NewDrugsRepo(catalog)
		opts.Drugs = repo

		if cfg.Catalog.Watch {
			go func() {
				if err := formulary.Watch(ctx, cfg.Catalog.File, log, repo.Replace); err != nil {
					log.Error("formulary watch stopped", map[string]any{"err": err.Error()})
				}
			}()
		}
		log.Info("catalog loaded from formulary file", map[string]any{"path": cfg.Catalog.File, "drugs": catalog.Len()})

	case config.CatalogPostgres:
		db, err := pg.Open(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := checkFormulary(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("catalog served from postgres formulary", nil)

	default:
		opts.Drugs = mem.NewDrugsRepo(drugs.Builtin())
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Slog(log).Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":      srv.Addr,
			"catalog":   cfg.Catalog.Source,
			"log_level": level.String(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// checkFormulary crea la tabla si falta y valida que el formulario cumpla las
// invariantes antes de empezar a servir.
func checkFormulary(ctx context.Context, db *sql.DB) error {
	if err := pg.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure formulary schema: %w", err)
	}
	c, err := pg.NewDrugsRepo(db).Catalog(ctx)
	if err != nil {
		return fmt.Errorf("postgres formulary: %w", err)
	}
	if c.Len() == 0 {
		return fmt.Errorf("postgres formulary: %w: no active drugs", drugs.ErrInvalidCatalog)
	}
	return nil
}

// exportFormulary escribe la tabla embebida en formato formulario, como base
// para un formulario institucional con catalog.source=file.
func exportFormulary(path string) error {
	b, err := formulary.Marshal(drugs.Builtin())
	if err != nil {
		return fmt.Errorf("marshal formulary: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write formulary %s: %w", path, err)
	}
	return nil
}
