package services

import (
	"context"

	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/dto"
)

// SiteReaderSvc defines read operations for site data
type SiteReaderSvc interface {
	// GetSiteByID retrieves a site by ID.
	GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error)

	// ListSites retrieves all registered sites.
	ListSites(ctx context.Context) ([]domain.Site, error)
}

// SiteWriterSvc defines write operations for site data
type SiteWriterSvc interface {
	// CreateSite registers a new work site. Site names are unique.
	CreateSite(ctx context.Context, req dto.CreateSiteRequest, creatorUserID string) (*domain.Site, error)
}

// SiteSvcFacade combines all site-related service interfaces
type SiteSvcFacade interface {
	SiteReaderSvc
	SiteWriterSvc
}
