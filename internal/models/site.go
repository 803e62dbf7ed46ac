package models

// Site represents a row in the sites table.
type Site struct {
	SiteID  string `db:"site_id"`
	Name    string `db:"name"`
	Address string `db:"address"`
	AuditFields
}
