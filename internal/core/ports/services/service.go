package services

// ServiceContainer groups all service facades for route registration.
type ServiceContainer struct {
	User        UserSvcFacade
	Token       TokenSvcFacade
	Client      ClientSvcFacade
	Dumpster    DumpsterSvcFacade
	Order       OrderSvcFacade
	Finance     FinanceSvcFacade
	Reporting   ReportingSvcFacade
	Maintenance MaintenanceSvcFacade
	CEP         CEPSvcFacade
}
