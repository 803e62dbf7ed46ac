package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/dto"
)

// siteService provides work site management.
type siteService struct {
	BaseService
	siteRepo portsrepo.SiteRepositoryFacade
}

// NewSiteService creates a new site service.
func NewSiteService(siteRepo portsrepo.SiteRepositoryFacade) portssvc.SiteSvcFacade {
	return &siteService{siteRepo: siteRepo}
}

var _ portssvc.SiteSvcFacade = (*siteService)(nil)

// CreateSite registers a new work site. Names are unique so that name-based
// report filters stay unambiguous.
func (s *siteService) CreateSite(ctx context.Context, req dto.CreateSiteRequest, creatorUserID string) (*domain.Site, error) {
	existing, err := s.siteRepo.FindSiteByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check for existing site name", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to check existing site: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: site %q already exists", apperrors.ErrDuplicate, req.Name)
	}

	now := time.Now().UTC()
	site := domain.Site{
		SiteID:  uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.siteRepo.SaveSite(ctx, site); err != nil {
		s.LogError(ctx, err, "failed to save site", slog.String("site_id", site.SiteID))
		return nil, fmt.Errorf("failed to create site: %w", err)
	}

	s.LogInfo(ctx, "site created", slog.String("site_id", site.SiteID), slog.String("name", site.Name))
	return &site, nil
}

// GetSiteByID retrieves a site by ID.
func (s *siteService) GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	site, err := s.siteRepo.FindSiteByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "failed to find site", slog.String("site_id", siteID))
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	return site, nil
}

// ListSites retrieves all registered sites.
func (s *siteService) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list sites")
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}
