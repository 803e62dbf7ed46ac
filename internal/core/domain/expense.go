package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRow is one line item of a daily expense entry.
// Amount is the obligation for the line, CashPaid the cash settled against it
// at entry time.
type ExpenseRow struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CashPaid    decimal.Decimal `json:"cashPaid"`
}

// RowDue is the unpaid portion of this line (amount - cashPaid).
// It may be negative when a line is overpaid. This per-line figure is
// informational only; the entry-level remaining due is derived from the
// row-due sum minus the due payment, never from these values directly.
func (r ExpenseRow) RowDue() decimal.Decimal {
	return r.Amount.Sub(r.CashPaid)
}

// EntryTotals is the derived totals snapshot persisted alongside an entry.
// It is never independently mutable: the only producer is the entry
// calculator in utils/accounting.
type EntryTotals struct {
	TotalAmount       decimal.Decimal `json:"totalAmount"`       // sum of row amounts
	TotalCashFromRows decimal.Decimal `json:"totalCashFromRows"` // sum of row cash
	TotalDueFromRows  decimal.Decimal `json:"totalDueFromRows"`  // totalAmount - totalCashFromRows
	DuePaid           decimal.Decimal `json:"duePaid"`           // settlement of prior outstanding due
	GrandTotalCash    decimal.Decimal `json:"grandTotalCash"`    // totalCashFromRows + duePaid
	RemainingDue      decimal.Decimal `json:"remainingDue"`      // totalDueFromRows - duePaid; may be negative
	Balance           decimal.Decimal `json:"balance"`           // deposit - grandTotalCash
}

// ExpenseEntry is one daily submission for a site by a provider.
// Once submitted an entry is immutable; corrections are new entries.
type ExpenseEntry struct {
	EntryID      string          `json:"entryID"`    // Primary Key (UUID), assigned at persistence
	ProviderID   string          `json:"providerID"` // Owner reference, immutable after creation
	ProviderName string          `json:"providerName,omitempty"`
	SiteID       string          `json:"siteID"`
	SiteName     string          `json:"siteName,omitempty"`
	EntryDate    time.Time       `json:"entryDate"` // Calendar date the expense pertains to, not the creation timestamp
	Deposit      decimal.Decimal `json:"deposit"`
	Rows         []ExpenseRow    `json:"rows"` // Insertion order significant for display, not for totals
	DuePayment   decimal.Decimal `json:"duePayment"`
	Note         string          `json:"note"`
	Totals       EntryTotals     `json:"totals"`
	AuditFields
}
