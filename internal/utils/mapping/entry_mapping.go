package mapping

import (
	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/models"
)

// ToModelExpenseEntry converts a domain ExpenseEntry to its entry-table model.
// Rows are mapped separately, see ToModelExpenseRows.
func ToModelExpenseEntry(d domain.ExpenseEntry) models.ExpenseEntry {
	return models.ExpenseEntry{
		EntryID:           d.EntryID,
		ProviderID:        d.ProviderID,
		SiteID:            d.SiteID,
		EntryDate:         d.EntryDate,
		Deposit:           d.Deposit,
		DuePayment:        d.DuePayment,
		Note:              d.Note,
		TotalAmount:       d.Totals.TotalAmount,
		TotalCashFromRows: d.Totals.TotalCashFromRows,
		TotalDueFromRows:  d.Totals.TotalDueFromRows,
		DuePaid:           d.Totals.DuePaid,
		GrandTotalCash:    d.Totals.GrandTotalCash,
		RemainingDue:      d.Totals.RemainingDue,
		Balance:           d.Totals.Balance,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToModelExpenseRows converts a domain entry's rows to row-table models,
// preserving insertion order through RowIndex.
func ToModelExpenseRows(entryID string, rows []domain.ExpenseRow) []models.ExpenseRow {
	ms := make([]models.ExpenseRow, len(rows))
	for i, r := range rows {
		ms[i] = models.ExpenseRow{
			EntryID:     entryID,
			RowIndex:    i,
			Description: r.Description,
			Amount:      r.Amount,
			CashPaid:    r.CashPaid,
		}
	}
	return ms
}

// ToDomainExpenseEntry converts an entry model plus its row models to a
// domain ExpenseEntry.
func ToDomainExpenseEntry(m models.ExpenseEntry, rowModels []models.ExpenseRow) domain.ExpenseEntry {
	rows := make([]domain.ExpenseRow, len(rowModels))
	for i, r := range rowModels {
		rows[i] = domain.ExpenseRow{
			Description: r.Description,
			Amount:      r.Amount,
			CashPaid:    r.CashPaid,
		}
	}

	return domain.ExpenseEntry{
		EntryID:      m.EntryID,
		ProviderID:   m.ProviderID,
		ProviderName: m.ProviderName,
		SiteID:       m.SiteID,
		SiteName:     m.SiteName,
		EntryDate:    m.EntryDate,
		Deposit:      m.Deposit,
		Rows:         rows,
		DuePayment:   m.DuePayment,
		Note:         m.Note,
		Totals: domain.EntryTotals{
			TotalAmount:       m.TotalAmount,
			TotalCashFromRows: m.TotalCashFromRows,
			TotalDueFromRows:  m.TotalDueFromRows,
			DuePaid:           m.DuePaid,
			GrandTotalCash:    m.GrandTotalCash,
			RemainingDue:      m.RemainingDue,
			Balance:           m.Balance,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
