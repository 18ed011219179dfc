package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality from
// hosting processes.
type ServiceContainer struct {
	Costing  CostingSvcFacade
	Order    OrderSvcFacade
	Forecast ForecastSvcFacade
}
