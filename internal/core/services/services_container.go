package services

import (
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Site = NewSiteService(repos.SiteRepo)

	// Entries resolve provider and site names through the services above.
	container.Entry = NewEntryService(repos.EntryRepo, container.Site, container.User)
	container.Reporting = NewReportingService(repos.EntryRepo)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.UserSvcFacade    = (*userService)(nil)
	_ portssvc.SiteSvcFacade    = (*siteService)(nil)
	_ portssvc.EntrySvcFacade   = (*entryService)(nil)
	_ portssvc.ReportingService = (*reportingService)(nil)
)
