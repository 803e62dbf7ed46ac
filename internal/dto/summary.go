package dto

import (
	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/utils"
)

// SummaryParams defines query parameters for the filtered ledger summary.
// All axes are optional; an empty struct matches every entry.
type SummaryParams struct {
	ProviderName string `form:"providerName"`
	SiteName     string `form:"siteName"`
	FromDate     string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate       string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// SummaryResponse represents the aggregated ledger summary response.
// Amounts are formatted for display with two decimal places.
type SummaryResponse struct {
	TotalDeposit      string          `json:"totalDeposit"`
	TotalCash         string          `json:"totalCash"`
	TotalRemainingDue string          `json:"totalRemainingDue"`
	TotalBalance      string          `json:"totalBalance"`
	EntryCount        int             `json:"entryCount"`
	Entries           []EntryResponse `json:"entries"`
}

// ToSummaryResponse converts a domain.LedgerSummary plus the entries it
// covers to a SummaryResponse DTO.
func ToSummaryResponse(summary domain.LedgerSummary, entries []domain.ExpenseEntry) SummaryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return SummaryResponse{
		TotalDeposit:      utils.FormatAmount(summary.TotalDeposit),
		TotalCash:         utils.FormatAmount(summary.TotalCash),
		TotalRemainingDue: utils.FormatAmount(summary.TotalRemainingDue),
		TotalBalance:      utils.FormatAmount(summary.TotalBalance),
		EntryCount:        len(entries),
		Entries:           responses,
	}
}
