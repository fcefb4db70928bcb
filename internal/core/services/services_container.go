package services

import (
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)
	container.Client = NewClientService(repos.ClientRepo)
	container.Dumpster = NewDumpsterService(repos.DumpsterRepo)
	container.Order = NewOrderService(repos.OrderRepo, repos.ClientRepo, repos.DumpsterRepo)
	container.Finance = NewFinanceService(repos.PayableRepo, repos.ReceivableRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Maintenance = NewMaintenanceService(repos.MaintenanceRepo, repos.DumpsterRepo)
	container.CEP = NewCEPService(cfg)

	return container
}
