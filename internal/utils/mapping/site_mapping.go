package mapping

import (
	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/models"
)

// ToModelSite converts a domain Site to a model Site
func ToModelSite(d domain.Site) models.Site {
	return models.Site{
		SiteID:      d.SiteID,
		Name:        d.Name,
		Address:     d.Address,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSite converts a model Site to a domain Site
func ToDomainSite(m models.Site) domain.Site {
	return domain.Site{
		SiteID:      m.SiteID,
		Name:        m.Name,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSiteSlice converts a slice of model Sites to a slice of domain Sites
func ToDomainSiteSlice(ms []models.Site) []domain.Site {
	ds := make([]domain.Site, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSite(m)
	}
	return ds
}
