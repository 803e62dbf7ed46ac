package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// EntryDraft is the mutable-by-copy assembly state of an entry before
// submission. Every transition returns a new draft value, leaving the
// receiver untouched; the final transition produces the immutable
// ExpenseEntry. The draft itself never computes totals - that happens
// exactly once, in the finalizer supplied by the entry service.
type EntryDraft struct {
	ProviderID string
	SiteID     string
	EntryDate  time.Time
	Deposit    decimal.Decimal
	Rows       []ExpenseRow
	DuePayment decimal.Decimal
	Note       string
}

// NewEntryDraft starts a draft for a provider with a single blank row,
// matching the entry form's initial state.
func NewEntryDraft(providerID string, entryDate time.Time) EntryDraft {
	return EntryDraft{
		ProviderID: providerID,
		EntryDate:  entryDate,
		Rows:       []ExpenseRow{{}},
	}
}

func (d EntryDraft) cloneRows() []ExpenseRow {
	rows := make([]ExpenseRow, len(d.Rows))
	copy(rows, d.Rows)
	return rows
}

// AddRow appends a blank row.
func (d EntryDraft) AddRow() EntryDraft {
	d.Rows = append(d.cloneRows(), ExpenseRow{})
	return d
}

// UpdateRowDescription sets the description of the row at index.
func (d EntryDraft) UpdateRowDescription(index int, description string) EntryDraft {
	if index < 0 || index >= len(d.Rows) {
		return d
	}
	rows := d.cloneRows()
	rows[index].Description = description
	d.Rows = rows
	return d
}

// UpdateRowAmount sets the amount of the row at index. Entering an amount
// also presets the cash to the same value, the data-entry shortcut the field
// form relies on; the cash can then be adjusted independently.
func (d EntryDraft) UpdateRowAmount(index int, amount decimal.Decimal) EntryDraft {
	if index < 0 || index >= len(d.Rows) {
		return d
	}
	rows := d.cloneRows()
	rows[index].Amount = amount
	rows[index].CashPaid = amount
	d.Rows = rows
	return d
}

// UpdateRowCash sets the cash paid against the row at index.
func (d EntryDraft) UpdateRowCash(index int, cash decimal.Decimal) EntryDraft {
	if index < 0 || index >= len(d.Rows) {
		return d
	}
	rows := d.cloneRows()
	rows[index].CashPaid = cash
	d.Rows = rows
	return d
}

// UpdateRowDue back-solves the cash for the row at index so that its row due
// equals the given value (cash = amount - due).
func (d EntryDraft) UpdateRowDue(index int, due decimal.Decimal) EntryDraft {
	if index < 0 || index >= len(d.Rows) {
		return d
	}
	rows := d.cloneRows()
	rows[index].CashPaid = rows[index].Amount.Sub(due)
	d.Rows = rows
	return d
}

// RemoveRow deletes the row at index. The last remaining row cannot be
// removed; the form always shows at least one.
func (d EntryDraft) RemoveRow(index int) EntryDraft {
	if index < 0 || index >= len(d.Rows) || len(d.Rows) == 1 {
		return d
	}
	rows := d.cloneRows()
	d.Rows = append(rows[:index], rows[index+1:]...)
	return d
}

// SetSite selects the site the entry is recorded against.
func (d EntryDraft) SetSite(siteID string) EntryDraft {
	d.SiteID = siteID
	return d
}

// SetDeposit records the cash deposit received for the day.
func (d EntryDraft) SetDeposit(deposit decimal.Decimal) EntryDraft {
	d.Deposit = deposit
	return d
}

// SetDuePayment records the cash applied toward prior outstanding due.
func (d EntryDraft) SetDuePayment(duePayment decimal.Decimal) EntryDraft {
	d.DuePayment = duePayment
	return d
}

// SetNote attaches the free-text note.
func (d EntryDraft) SetNote(note string) EntryDraft {
	d.Note = note
	return d
}

// TotalsFunc computes the totals snapshot for a finalized entry.
type TotalsFunc func(rows []ExpenseRow, deposit, duePayment decimal.Decimal) EntryTotals

// Finalize produces the immutable entry from the draft. It is the only
// transition that computes totals, and it fails closed when the draft has no
// provider or site. Identity and audit fields are left for the caller.
func (d EntryDraft) Finalize(compute TotalsFunc) (ExpenseEntry, error) {
	if d.ProviderID == "" {
		return ExpenseEntry{}, errors.New("draft has no provider")
	}
	if d.SiteID == "" {
		return ExpenseEntry{}, errors.New("draft has no site")
	}

	rows := d.cloneRows()
	return ExpenseEntry{
		ProviderID: d.ProviderID,
		SiteID:     d.SiteID,
		EntryDate:  d.EntryDate,
		Deposit:    d.Deposit,
		Rows:       rows,
		DuePayment: d.DuePayment,
		Note:       d.Note,
		Totals:     compute(rows, d.Deposit, d.DuePayment),
	}, nil
}
