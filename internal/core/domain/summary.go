package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryFilter selects a subset of entries for summary reporting.
// All fields are optional; a nil/empty field places no constraint on that axis.
//
// Date matching is by calendar day using the entry's EntryDate. When both
// FromDate and ToDate are set the range is inclusive. When only FromDate is
// set, entries must fall on exactly that day (single-day filter, not
// "on or after").
type EntryFilter struct {
	ProviderName string     `json:"providerName,omitempty"`
	SiteName     string     `json:"siteName,omitempty"`
	FromDate     *time.Time `json:"fromDate,omitempty"`
	ToDate       *time.Time `json:"toDate,omitempty"`
}

// IsZero reports whether the filter places no constraint at all.
func (f EntryFilter) IsZero() bool {
	return f.ProviderName == "" && f.SiteName == "" && f.FromDate == nil && f.ToDate == nil
}

// LedgerSummary holds the summed totals over a filtered subset of entries.
type LedgerSummary struct {
	TotalDeposit      decimal.Decimal `json:"totalDeposit"`
	TotalCash         decimal.Decimal `json:"totalCash"`
	TotalRemainingDue decimal.Decimal `json:"totalRemainingDue"`
	TotalBalance      decimal.Decimal `json:"totalBalance"`
}
