package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	rateRepo := newPgxRateRepository(dbPool)
	entitlementRepo := newPgxEntitlementRepository(dbPool)
	policyRepo := newPgxPolicyRepository(dbPool)
	travelRepo := newPgxTravelRepository(dbPool)
	employeeRepo := newPgxEmployeeRepository(dbPool)

	return portsrepo.RepositoryProvider{
		RateRepo:        rateRepo,
		EntitlementRepo: entitlementRepo,
		PolicyRepo:      policyRepo,
		TravelRepo:      travelRepo,
		EmployeeRepo:    employeeRepo,
	}
}
