package services

import (
	"context"

	"github.com/siteledger/backend/internal/core/domain"
)

// ReportingService defines operations for ledger-wide summaries
type ReportingService interface {
	// SummarizeLedger filters the ledger by the given axes and returns the
	// aggregated totals together with the entries that matched.
	SummarizeLedger(ctx context.Context, filter domain.EntryFilter) (domain.LedgerSummary, []domain.ExpenseEntry, error)
}
