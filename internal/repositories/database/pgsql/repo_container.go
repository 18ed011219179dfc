package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	simulationRepo := newPgxSimulationRepository(dbPool)
	articleRepo := newPgxArticleRepository(dbPool)
	orderRepo := newPgxOrderRepository(dbPool)
	forecastRepo := newPgxForecastRepository(dbPool)
	priceListRepo := newPgxPriceListRepository(dbPool)

	return portsrepo.RepositoryProvider{
		SimulationRepo: simulationRepo,
		ArticleRepo:    articleRepo,
		OrderRepo:      orderRepo,
		ForecastRepo:   forecastRepo,
		PriceListRepo:  priceListRepo,
	}
}
