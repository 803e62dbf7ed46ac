package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	d := day(s)
	return &d
}

func testEntry(provider, site, date string, deposit, duePayment string, rows ...domain.ExpenseRow) domain.ExpenseEntry {
	entry := domain.ExpenseEntry{
		ProviderName: provider,
		SiteName:     site,
		EntryDate:    day(date),
		Deposit:      dec(deposit),
		DuePayment:   dec(duePayment),
		Rows:         rows,
	}
	entry.Totals = accounting.ComputeEntryTotals(rows, entry.Deposit, entry.DuePayment)
	return entry
}

func testCollection() []domain.ExpenseEntry {
	return []domain.ExpenseEntry{
		testEntry("Rahim", "Dhanmondi", "2024-05-01", "1000", "0",
			domain.ExpenseRow{Amount: dec("500"), CashPaid: dec("500")},
			domain.ExpenseRow{Amount: dec("300"), CashPaid: dec("0")},
		),
		testEntry("Karim", "Uttara", "2024-05-02", "2000", "300",
			domain.ExpenseRow{Amount: dec("800"), CashPaid: dec("500")},
		),
		testEntry("Rahim", "Uttara", "2024-05-31", "500", "0",
			domain.ExpenseRow{Amount: dec("200"), CashPaid: dec("200")},
		),
		testEntry("Karim", "Dhanmondi", "2024-06-15", "750", "100",
			domain.ExpenseRow{Amount: dec("400"), CashPaid: dec("100")},
		),
	}
}

func TestMatchesFilter_DateSemantics(t *testing.T) {
	entries := testCollection()

	tests := []struct {
		name      string
		filter    domain.EntryFilter
		wantDates []string
	}{
		{
			name:      "fromDate alone matches exactly that day",
			filter:    domain.EntryFilter{FromDate: dayPtr("2024-05-01")},
			wantDates: []string{"2024-05-01"},
		},
		{
			name:      "inclusive range matches both bounds",
			filter:    domain.EntryFilter{FromDate: dayPtr("2024-05-01"), ToDate: dayPtr("2024-05-31")},
			wantDates: []string{"2024-05-01", "2024-05-02", "2024-05-31"},
		},
		{
			name:      "toDate alone places no constraint",
			filter:    domain.EntryFilter{ToDate: dayPtr("2024-05-02")},
			wantDates: []string{"2024-05-01", "2024-05-02", "2024-05-31", "2024-06-15"},
		},
		{
			name:      "no dates matches everything",
			filter:    domain.EntryFilter{},
			wantDates: []string{"2024-05-01", "2024-05-02", "2024-05-31", "2024-06-15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := accounting.FilterEntries(entries, tt.filter)
			gotDates := make([]string, len(matched))
			for i, e := range matched {
				gotDates[i] = e.EntryDate.Format("2006-01-02")
			}
			assert.Equal(t, tt.wantDates, gotDates)
		})
	}
}

func TestMatchesFilter_NameAxes(t *testing.T) {
	entries := testCollection()

	matched := accounting.FilterEntries(entries, domain.EntryFilter{ProviderName: "Rahim"})
	assert.Len(t, matched, 2)

	matched = accounting.FilterEntries(entries, domain.EntryFilter{SiteName: "Uttara"})
	assert.Len(t, matched, 2)

	// Exact, case-sensitive matching.
	matched = accounting.FilterEntries(entries, domain.EntryFilter{ProviderName: "rahim"})
	assert.Empty(t, matched)

	// All axes must match together.
	matched = accounting.FilterEntries(entries, domain.EntryFilter{
		ProviderName: "Rahim",
		SiteName:     "Uttara",
		FromDate:     dayPtr("2024-05-31"),
	})
	assert.Len(t, matched, 1)

	// Unknown names are not an error, just an empty subset.
	matched = accounting.FilterEntries(entries, domain.EntryFilter{SiteName: "Mirpur"})
	assert.Empty(t, matched)
}

func TestMatchesFilter_StripsTimeOfDay(t *testing.T) {
	entry := testEntry("Rahim", "Dhanmondi", "2024-05-01", "0", "0")
	entry.EntryDate = entry.EntryDate.Add(14*time.Hour + 30*time.Minute)

	assert.True(t, accounting.MatchesFilter(entry, domain.EntryFilter{FromDate: dayPtr("2024-05-01")}))
	assert.False(t, accounting.MatchesFilter(entry, domain.EntryFilter{FromDate: dayPtr("2024-05-02")}))
}

func TestSummarizeEntries(t *testing.T) {
	entries := testCollection()

	matched, summary := accounting.SummarizeEntries(entries, domain.EntryFilter{
		FromDate: dayPtr("2024-05-01"),
		ToDate:   dayPtr("2024-05-31"),
	})

	assert.Len(t, matched, 3)
	// deposits: 1000 + 2000 + 500
	assertDecEqual(t, dec("3500"), summary.TotalDeposit, "TotalDeposit")
	// cash: 500 + (500+300) + 200
	assertDecEqual(t, dec("1500"), summary.TotalCash, "TotalCash")
	// remaining due: 300 + (300-300) + 0
	assertDecEqual(t, dec("300"), summary.TotalRemainingDue, "TotalRemainingDue")
	// balance: 500 + 1200 + 300
	assertDecEqual(t, dec("2000"), summary.TotalBalance, "TotalBalance")
}

func TestSummarizeEntries_EmptyFilterEqualsMatchAll(t *testing.T) {
	entries := testCollection()

	_, unfiltered := accounting.SummarizeEntries(entries, domain.EntryFilter{})
	_, matchAll := accounting.SummarizeEntries(entries, domain.EntryFilter{
		FromDate: dayPtr("2024-01-01"),
		ToDate:   dayPtr("2024-12-31"),
	})

	assertDecEqual(t, unfiltered.TotalDeposit, matchAll.TotalDeposit, "TotalDeposit")
	assertDecEqual(t, unfiltered.TotalCash, matchAll.TotalCash, "TotalCash")
	assertDecEqual(t, unfiltered.TotalRemainingDue, matchAll.TotalRemainingDue, "TotalRemainingDue")
	assertDecEqual(t, unfiltered.TotalBalance, matchAll.TotalBalance, "TotalBalance")
}

func TestSummarizeEntries_IdempotentProjection(t *testing.T) {
	entries := testCollection()
	filter := domain.EntryFilter{SiteName: "Uttara"}

	once, onceSummary := accounting.SummarizeEntries(entries, filter)
	twice, twiceSummary := accounting.SummarizeEntries(once, filter)

	assert.Equal(t, once, twice)
	assertDecEqual(t, onceSummary.TotalDeposit, twiceSummary.TotalDeposit, "TotalDeposit")
	assertDecEqual(t, onceSummary.TotalCash, twiceSummary.TotalCash, "TotalCash")
	assertDecEqual(t, onceSummary.TotalRemainingDue, twiceSummary.TotalRemainingDue, "TotalRemainingDue")
	assertDecEqual(t, onceSummary.TotalBalance, twiceSummary.TotalBalance, "TotalBalance")
}

func TestSummarizeEntries_EmptySubset(t *testing.T) {
	matched, summary := accounting.SummarizeEntries(testCollection(), domain.EntryFilter{ProviderName: "Nobody"})

	assert.Empty(t, matched)
	assertDecEqual(t, decimal.Zero, summary.TotalDeposit, "TotalDeposit")
	assertDecEqual(t, decimal.Zero, summary.TotalCash, "TotalCash")
	assertDecEqual(t, decimal.Zero, summary.TotalRemainingDue, "TotalRemainingDue")
	assertDecEqual(t, decimal.Zero, summary.TotalBalance, "TotalBalance")
}

func TestSummarizeEntries_DuePaidFallback(t *testing.T) {
	// Legacy entry: totals snapshot missing, duePayment present on the entry.
	legacy := domain.ExpenseEntry{
		ProviderName: "Rahim",
		SiteName:     "Dhanmondi",
		EntryDate:    day("2024-05-01"),
		Deposit:      dec("1000"),
		DuePayment:   dec("200"),
		Rows: []domain.ExpenseRow{
			{Amount: dec("600"), CashPaid: dec("100")},
		},
	}

	_, summary := accounting.SummarizeEntries([]domain.ExpenseEntry{legacy}, domain.EntryFilter{})

	// remaining due recomputed from rows: (600-100) - 200
	assertDecEqual(t, dec("300"), summary.TotalRemainingDue, "TotalRemainingDue")
	// cash: 100 + 200
	assertDecEqual(t, dec("300"), summary.TotalCash, "TotalCash")

	// Stored snapshot wins when it carries a due-paid figure.
	snapshot := legacy
	snapshot.DuePayment = decimal.Zero
	snapshot.Totals.DuePaid = dec("200")

	_, fromSnapshot := accounting.SummarizeEntries([]domain.ExpenseEntry{snapshot}, domain.EntryFilter{})
	assertDecEqual(t, summary.TotalRemainingDue, fromSnapshot.TotalRemainingDue, "TotalRemainingDue")
}

func TestSummarizeEntries_DriftedSnapshotIsRecomputed(t *testing.T) {
	entry := testEntry("Rahim", "Dhanmondi", "2024-05-01", "1000", "0",
		domain.ExpenseRow{Amount: dec("500"), CashPaid: dec("200")},
	)
	// Simulate a drifted persisted snapshot.
	entry.Totals.RemainingDue = dec("9999")

	_, summary := accounting.SummarizeEntries([]domain.ExpenseEntry{entry}, domain.EntryFilter{})
	assertDecEqual(t, dec("300"), summary.TotalRemainingDue, "TotalRemainingDue")
}
