package pgsql

import (
	portsrepo "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over a shared pool.
func NewRepositoryProvider(db *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(db),
		ClientRepo:      newPgxClientRepository(db),
		DumpsterRepo:    newPgxDumpsterRepository(db),
		OrderRepo:       newPgxOrderRepository(db),
		PayableRepo:     newPgxPayableRepository(db),
		ReceivableRepo:  newPgxReceivableRepository(db),
		ReportingRepo:   newPgxReportingRepository(db),
		MaintenanceRepo: newPgxMaintenanceRepository(db),
	}
}
