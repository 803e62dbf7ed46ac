package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/utils/accounting"
)

// reportingService produces filtered ledger summaries. It loads entries and
// delegates the filtering and totalling to the accounting package, so report
// figures come from the same calculator that stamped the entries at creation.
type reportingService struct {
	BaseService
	entryRepo portsrepo.EntryReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(entryRepo portsrepo.EntryReader) portssvc.ReportingService {
	return &reportingService{entryRepo: entryRepo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// SummarizeLedger filters the ledger by the given axes and returns aggregated
// totals with the matching entries, newest entry date first.
func (s *reportingService) SummarizeLedger(ctx context.Context, filter domain.EntryFilter) (domain.LedgerSummary, []domain.ExpenseEntry, error) {
	entries, _, err := s.entryRepo.FindEntries(ctx, portsrepo.EntryListOptions{})
	if err != nil {
		s.LogError(ctx, err, "failed to load entries for summary")
		return domain.LedgerSummary{}, nil, fmt.Errorf("failed to load entries: %w", err)
	}

	matched, summary := accounting.SummarizeEntries(entries, filter)

	s.LogDebug(ctx, "ledger summarized",
		slog.Int("total_entries", len(entries)),
		slog.Int("matched_entries", len(matched)))
	return summary, matched, nil
}
