package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseEntry represents a row in the expense_entries table. The totals
// snapshot is denormalized into columns so summary queries never need to
// touch the row table, but aggregation still recomputes defensively.
type ExpenseEntry struct {
	EntryID    string          `db:"entry_id"`
	ProviderID string          `db:"provider_id"`
	SiteID     string          `db:"site_id"`
	EntryDate  time.Time       `db:"entry_date"`
	Deposit    decimal.Decimal `db:"deposit"`
	DuePayment decimal.Decimal `db:"due_payment"`
	Note       string          `db:"note"`

	// Totals snapshot columns.
	TotalAmount       decimal.Decimal `db:"total_amount"`
	TotalCashFromRows decimal.Decimal `db:"total_cash_from_rows"`
	TotalDueFromRows  decimal.Decimal `db:"total_due_from_rows"`
	DuePaid           decimal.Decimal `db:"due_paid"`
	GrandTotalCash    decimal.Decimal `db:"grand_total_cash"`
	RemainingDue      decimal.Decimal `db:"remaining_due"`
	Balance           decimal.Decimal `db:"balance"`

	AuditFields

	// Denormalized join values, populated on read only.
	ProviderName string `db:"provider_name"`
	SiteName     string `db:"site_name"`
}

// ExpenseRow represents a row in the expense_rows table. RowIndex preserves
// the insertion order for display.
type ExpenseRow struct {
	RowID       string          `db:"row_id"`
	EntryID     string          `db:"entry_id"`
	RowIndex    int             `db:"row_index"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	CashPaid    decimal.Decimal `db:"cash_paid"`
}
