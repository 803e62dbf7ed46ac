package accounting

import (
	"github.com/siteledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// sanitize coerces a monetary input to a usable non-negative value.
// Negative figures are treated as zero; non-numeric input is already coerced
// to zero at the JSON boundary, so partial rows never abort a calculation.
func sanitize(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ComputeEntryTotals derives the canonical totals snapshot for one entry from
// its raw rows, deposit and due payment. This is the single source of the
// entry accounting arithmetic: every caller (submission, aggregation,
// display) uses it rather than re-deriving the formulas.
//
// It is a pure function: no side effects, deterministic, exact decimal
// arithmetic throughout. A duePayment larger than the row-due sum is allowed
// and yields a negative RemainingDue (overpayment of past due).
func ComputeEntryTotals(rows []domain.ExpenseRow, deposit, duePayment decimal.Decimal) domain.EntryTotals {
	totalAmount := decimal.Zero
	totalCash := decimal.Zero
	totalDue := decimal.Zero

	for _, row := range rows {
		amt := sanitize(row.Amount)
		cash := sanitize(row.CashPaid)
		totalAmount = totalAmount.Add(amt)
		totalCash = totalCash.Add(cash)
		totalDue = totalDue.Add(amt.Sub(cash))
	}

	duePaid := sanitize(duePayment)
	grandTotalCash := totalCash.Add(duePaid)

	return domain.EntryTotals{
		TotalAmount:       totalAmount,
		TotalCashFromRows: totalCash,
		TotalDueFromRows:  totalDue,
		DuePaid:           duePaid,
		GrandTotalCash:    grandTotalCash,
		RemainingDue:      totalDue.Sub(duePaid),
		Balance:           sanitize(deposit).Sub(grandTotalCash),
	}
}
