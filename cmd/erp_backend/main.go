package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mkouyate/import_erp_app/internal/core/domain"
	"github.com/mkouyate/import_erp_app/internal/core/services"
	"github.com/mkouyate/import_erp_app/internal/platform/config"
	"github.com/mkouyate/import_erp_app/internal/repositories/database/pgsql"
	"github.com/mkouyate/import_erp_app/internal/utils"
	"github.com/mkouyate/import_erp_app/pkg/database"
)

// Reconciliation job: rebuilds forecast realization from validated orders
// over the configured window, then exits.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(repos, logger)

	var start, end *time.Time
	if !cfg.RecalcStart.IsZero() {
		start = &cfg.RecalcStart
	}
	if !cfg.RecalcEnd.IsZero() {
		end = &cfg.RecalcEnd
	}

	logger.Info("Starting forecast recalculation",
		slog.Any("start", start),
		slog.Any("end", end),
	)

	summary, err := container.Forecast.Recalculate(ctx, start, end)
	if err != nil {
		logger.Error("Recalculation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Recalculation complete",
		slog.Int("ordersProcessed", summary.OrdersProcessed),
		slog.Int("ordersFailed", summary.OrdersFailed),
		slog.Int("forecastsAffected", summary.ForecastsAffected),
		slog.String("realizedValueGNF", utils.FormatWithCurrencyPrecision(summary.RealizedValueGNF, domain.GNF)),
	)
}
