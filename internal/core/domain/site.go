package domain

// Site represents a work site that daily expense entries are recorded against.
// Sites are referenced by entries, never embedded in them.
type Site struct {
	SiteID  string `json:"siteID"` // Primary Key (UUID)
	Name    string `json:"name"`
	Address string `json:"address"`
	AuditFields
}
