package accounting

import (
	"time"

	"github.com/siteledger/backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// dateOnly strips the time-of-day from t so comparisons happen by calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MatchesFilter reports whether an entry satisfies every axis of the filter.
// Provider and site names match exactly (case-sensitive); an unset axis
// matches everything.
//
// Date semantics: with both bounds set the entry date must fall in the
// inclusive range [from, to]. With only FromDate set the entry must fall on
// exactly that day - a single-day filter, not "on or after".
func MatchesFilter(entry domain.ExpenseEntry, filter domain.EntryFilter) bool {
	if filter.ProviderName != "" && entry.ProviderName != filter.ProviderName {
		return false
	}
	if filter.SiteName != "" && entry.SiteName != filter.SiteName {
		return false
	}

	entryDay := dateOnly(entry.EntryDate)
	switch {
	case filter.FromDate != nil && filter.ToDate != nil:
		from := dateOnly(*filter.FromDate)
		to := dateOnly(*filter.ToDate)
		if entryDay.Before(from) || entryDay.After(to) {
			return false
		}
	case filter.FromDate != nil:
		if !entryDay.Equal(dateOnly(*filter.FromDate)) {
			return false
		}
	}

	return true
}

// FilterEntries returns the subset of entries matching the filter, preserving
// input order. A filter naming an unknown provider or site is not an error;
// it simply yields an empty subset.
func FilterEntries(entries []domain.ExpenseEntry, filter domain.EntryFilter) []domain.ExpenseEntry {
	matched := make([]domain.ExpenseEntry, 0, len(entries))
	for _, entry := range entries {
		if MatchesFilter(entry, filter) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// entryDuePaid resolves the due-paid figure for an entry, tolerating legacy
// records that carry it in only one of the two places: the stored totals
// snapshot wins when non-zero, then the entry's own due payment field.
func entryDuePaid(entry domain.ExpenseEntry) decimal.Decimal {
	if !entry.Totals.DuePaid.IsZero() {
		return entry.Totals.DuePaid
	}
	return entry.DuePayment
}

// SummarizeEntries filters the collection and sums totals over the matched
// subset. RemainingDue is recomputed per entry from its rows rather than
// trusted blindly from storage, so drifted or legacy snapshots cannot skew
// the summary. An empty subset yields an all-zero summary.
//
// The summation is always re-run in full; no partial sums are carried across
// filter changes.
func SummarizeEntries(entries []domain.ExpenseEntry, filter domain.EntryFilter) ([]domain.ExpenseEntry, domain.LedgerSummary) {
	matched := FilterEntries(entries, filter)

	summary := domain.LedgerSummary{
		TotalDeposit:      decimal.Zero,
		TotalCash:         decimal.Zero,
		TotalRemainingDue: decimal.Zero,
		TotalBalance:      decimal.Zero,
	}

	for _, entry := range matched {
		duePaid := entryDuePaid(entry)
		rowTotals := ComputeEntryTotals(entry.Rows, entry.Deposit, duePaid)

		summary.TotalDeposit = summary.TotalDeposit.Add(sanitize(entry.Deposit))
		summary.TotalCash = summary.TotalCash.Add(rowTotals.GrandTotalCash)
		summary.TotalRemainingDue = summary.TotalRemainingDue.Add(rowTotals.RemainingDue)
		summary.TotalBalance = summary.TotalBalance.Add(rowTotals.Balance)
	}

	return matched, summary
}
