package services

import (
	portsrepo "github.com/hbowden/practice_manager_app/internal/core/ports/repositories"
	portssvc "github.com/hbowden/practice_manager_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services against the supplied
// repositories and returns the container the handlers consume.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:      NewUserService(repos.UserRepo, repos.ClientRepo),
		Client:    NewClientService(repos.ClientRepo, repos.PeriodRepo),
		Period:    NewPeriodService(repos.PeriodRepo, repos.ClientRepo, repos.SectionRepo),
		Section:   NewSectionService(repos.SectionRepo, repos.PeriodRepo, repos.ClientRepo),
		Breakdown: NewBreakdownService(repos.BreakdownRepo, repos.SectionRepo, repos.PeriodRepo, repos.ClientRepo),
		Unit:      NewUnitService(repos.UnitRepo, repos.BreakdownRepo, repos.SectionRepo, repos.PeriodRepo, repos.ClientRepo),
	}
}
