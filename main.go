package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bedflow/adapters/postgres"
	"bedflow/adapters/tabular"
	"bedflow/app"
	"bedflow/domain/hospital"
	"bedflow/internal/config"
	apperrors "bedflow/internal/errors"
	"bedflow/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

// loadRecords pulls the weekly services table from whichever source the
// configuration names: a CSV/XLSX file or a Postgres database.
func loadRecords(ctx context.Context, cfg *config.Config) ([]hospital.Record, error) {
	if cfg.Data.DatabaseURL != "" {
		db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Data.DatabaseURL)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to connect to database")
		}
		defer db.Close()
		return postgres.NewRecordRepository(db).LoadAll(ctx)
	}

	records, err := tabular.NewReader(cfg.Data.File).Read()
	if err != nil {
		return nil, apperrors.IngestFailed(err, cfg.Data.File)
	}
	return records, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	records, err := loadRecords(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}

	engine, err := app.NewEngine(records)
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	server := ui.NewServer(engine)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: server.Handler(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shutdown complete")
}
