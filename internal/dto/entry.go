package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siteledger/backend/internal/core/domain"
)

// CreateEntryRowRequest defines a single expense line within a new entry.
// Amounts are lenient: non-numeric input coerces to zero rather than
// rejecting the whole entry.
type CreateEntryRowRequest struct {
	Description string         `json:"description"`
	Amount      LenientDecimal `json:"amount"`
	CashPaid    LenientDecimal `json:"cashPaid"`
}

// CreateEntryRequest defines the data needed to record a day's expense entry.
type CreateEntryRequest struct {
	SiteID     string                  `json:"siteID" binding:"required"`
	EntryDate  string                  `json:"entryDate" binding:"required,datetime=2006-01-02"`
	Deposit    LenientDecimal          `json:"deposit"`
	Rows       []CreateEntryRowRequest `json:"rows" binding:"required,min=1"`
	DuePayment LenientDecimal          `json:"duePayment"`
	Note       string                  `json:"note"`
}

// EntryRowResponse defines the data returned for a single expense line.
type EntryRowResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CashPaid    decimal.Decimal `json:"cashPaid"`
	RowDue      decimal.Decimal `json:"rowDue"`
}

// EntryTotalsResponse mirrors domain.EntryTotals.
type EntryTotalsResponse struct {
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	TotalCashFromRows decimal.Decimal `json:"totalCashFromRows"`
	TotalDueFromRows  decimal.Decimal `json:"totalDueFromRows"`
	DuePaid           decimal.Decimal `json:"duePaid"`
	GrandTotalCash    decimal.Decimal `json:"grandTotalCash"`
	RemainingDue      decimal.Decimal `json:"remainingDue"`
	Balance           decimal.Decimal `json:"balance"`
}

// EntryResponse defines the data returned for an expense entry.
type EntryResponse struct {
	EntryID      string              `json:"entryID"`
	ProviderID   string              `json:"providerID"`
	ProviderName string              `json:"providerName"`
	SiteID       string              `json:"siteID"`
	SiteName     string              `json:"siteName"`
	EntryDate    string              `json:"entryDate"`
	Deposit      decimal.Decimal     `json:"deposit"`
	Rows         []EntryRowResponse  `json:"rows"`
	DuePayment   decimal.Decimal     `json:"duePayment"`
	Note         string              `json:"note,omitempty"`
	Totals       EntryTotalsResponse `json:"totals"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListEntriesResponse wraps a page of entries with the cursor for the next one.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken string          `json:"nextToken,omitempty"`
}

// ToEntryRowResponse converts a domain.ExpenseRow to EntryRowResponse DTO.
func ToEntryRowResponse(row *domain.ExpenseRow) EntryRowResponse {
	return EntryRowResponse{
		Description: row.Description,
		Amount:      row.Amount,
		CashPaid:    row.CashPaid,
		RowDue:      row.RowDue(),
	}
}

// ToEntryTotalsResponse converts domain.EntryTotals to EntryTotalsResponse DTO.
func ToEntryTotalsResponse(t domain.EntryTotals) EntryTotalsResponse {
	return EntryTotalsResponse{
		TotalAmount:       t.TotalAmount,
		TotalCashFromRows: t.TotalCashFromRows,
		TotalDueFromRows:  t.TotalDueFromRows,
		DuePaid:           t.DuePaid,
		GrandTotalCash:    t.GrandTotalCash,
		RemainingDue:      t.RemainingDue,
		Balance:           t.Balance,
	}
}

// ToEntryResponse converts a domain.ExpenseEntry to EntryResponse DTO.
func ToEntryResponse(entry *domain.ExpenseEntry) EntryResponse {
	rows := make([]EntryRowResponse, len(entry.Rows))
	for i := range entry.Rows {
		rows[i] = ToEntryRowResponse(&entry.Rows[i])
	}
	return EntryResponse{
		EntryID:      entry.EntryID,
		ProviderID:   entry.ProviderID,
		ProviderName: entry.ProviderName,
		SiteID:       entry.SiteID,
		SiteName:     entry.SiteName,
		EntryDate:    entry.EntryDate.Format("2006-01-02"),
		Deposit:      entry.Deposit,
		Rows:         rows,
		DuePayment:   entry.DuePayment,
		Note:         entry.Note,
		Totals:       ToEntryTotalsResponse(entry.Totals),
		CreatedAt:    entry.CreatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.ExpenseEntry to ListEntriesResponse.
func ToListEntriesResponse(entries []domain.ExpenseEntry, nextToken string) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{
		Entries:   responses,
		NextToken: nextToken,
	}
}
