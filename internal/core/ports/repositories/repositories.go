package repositories

// RepositoryProvider groups all repositories for injection into the service
// container.
type RepositoryProvider struct {
	UserRepo        UserRepository
	ClientRepo      ClientRepository
	DumpsterRepo    DumpsterRepository
	OrderRepo       OrderRepository
	PayableRepo     PayableRepository
	ReceivableRepo  ReceivableRepository
	ReportingRepo   ReportingRepository
	MaintenanceRepo MaintenanceRepository
}
