package services

import (
	"context"

	"github.com/siteledger/backend/internal/core/domain"
	"github.com/siteledger/backend/internal/dto"
)

// EntryReaderSvc defines read operations for expense entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves a single entry with rows and display names.
	GetEntryByID(ctx context.Context, entryID string) (*domain.ExpenseEntry, error)

	// ListEntries retrieves a page of entries, newest entry date first.
	ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// EntryWriterSvc defines write operations for expense entries
type EntryWriterSvc interface {
	// CreateEntry validates, totals and persists a new day's entry for the
	// given provider. Entries are immutable once created.
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.ExpenseEntry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
