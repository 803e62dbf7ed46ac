package repositories

import (
	"context"

	"github.com/siteledger/backend/internal/core/domain"
)

// SiteReader defines read operations for the site directory
type SiteReader interface {
	// FindSiteByID retrieves a specific site by its ID.
	FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error)

	// FindSiteByName retrieves a site by its exact name.
	FindSiteByName(ctx context.Context, name string) (*domain.Site, error)

	// ListSites retrieves all sites, newest first.
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// SiteWriter defines write operations for the site directory
type SiteWriter interface {
	// SaveSite persists a new site.
	SaveSite(ctx context.Context, site domain.Site) error
}

// SiteRepositoryFacade combines all site-related repository interfaces
type SiteRepositoryFacade interface {
	SiteReader
	SiteWriter
}
