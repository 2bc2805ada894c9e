package services

import (
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)

	entitlementOpts := []EntitlementOption{}
	if cfg.StrictEntitlementAmounts {
		entitlementOpts = append(entitlementOpts, WithStrictAmounts())
	}
	container.Entitlement = NewEntitlementService(repos.EntitlementRepo, entitlementOpts...)

	container.Allowance = NewAllowanceService(repos.RateRepo, repos.TravelRepo, repos.EmployeeRepo)
	container.Conveyance = NewConveyanceService(repos.RateRepo)
	container.Policy = NewPolicyService(repos.PolicyRepo, repos.TravelRepo)
	container.Rate = NewRateService(repos.RateRepo)
	container.Travel = NewTravelService(
		repos.TravelRepo,
		repos.EntitlementRepo,
		container.Employee,
		container.Policy,
		container.Entitlement,
	)

	return container
}
