package services

import (
	"log/slog"

	portsrepo "github.com/mkouyate/import_erp_app/internal/core/ports/repositories"
	portssvc "github.com/mkouyate/import_erp_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Costing = NewCostingService(repos.SimulationRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.PriceListRepo, repos.ArticleRepo)
	container.Forecast = NewForecastService(repos.ForecastRepo, repos.OrderRepo, logger)

	return container
}
