package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/db"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/logger"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/planner"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/router"
	"github.com/iqbal-codes/fnb-os-web-app-sub000/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	log := logger.Must(logger.New())
	defer log.Sync()

	required := []string{
		"DATABASE_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatal("missing env var", zap.String("key", k))
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres(logger.Named(log, "db"))
	defer pgDB.Close()

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	// Plan export is disabled when no bucket is configured; the export
	// endpoint then answers 503 instead of failing startup.
	var exporter planner.Exporter
	if os.Getenv("R2_ENDPOINT") != "" {
		r2Client, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("r2 init failed", zap.Error(err))
		}
		exporter = r2Client
	} else {
		log.Warn("R2_ENDPOINT not set; shopping plan export disabled")
	}

	// ───────────────────────── PLANNER ─────────────────────────
	snapshotRepo := planner.NewPostgresRepository(pgDB)
	plannerService := planner.NewService(snapshotRepo, exporter)
	plannerHandler := planner.NewHandler(plannerService)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(plannerHandler, logger.Named(log, "http"))

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8000"
	}

	log.Info("planner API running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
