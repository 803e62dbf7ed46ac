package dto

import (
	"time"

	"github.com/siteledger/backend/internal/core/domain"
)

// CreateSiteRequest defines the data needed to register a work site.
type CreateSiteRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

// SiteResponse defines the data returned for a site.
type SiteResponse struct {
	SiteID    string    `json:"siteID"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListSitesResponse wraps the list of sites.
type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
}

// ToSiteResponse converts a domain.Site to SiteResponse DTO.
func ToSiteResponse(site *domain.Site) SiteResponse {
	return SiteResponse{
		SiteID:    site.SiteID,
		Name:      site.Name,
		Address:   site.Address,
		CreatedAt: site.CreatedAt,
	}
}

// ToListSitesResponse converts a slice of domain.Site to ListSitesResponse DTO.
func ToListSitesResponse(sites []domain.Site) ListSitesResponse {
	responses := make([]SiteResponse, len(sites))
	for i := range sites {
		responses[i] = ToSiteResponse(&sites[i])
	}
	return ListSitesResponse{Sites: responses}
}
