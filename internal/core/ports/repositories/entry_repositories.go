package repositories

import (
	"context"

	"github.com/siteledger/backend/internal/core/domain"
)

// EntryListOptions controls pagination of entry listings. NextToken is a
// keyset cursor produced by a previous listing (see utils/pagination).
type EntryListOptions struct {
	Limit     int
	NextToken string
}

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID retrieves a single entry with its rows, provider name
	// and site name resolved.
	FindEntryByID(ctx context.Context, entryID string) (*domain.ExpenseEntry, error)

	// FindEntries retrieves entries sorted by entry date descending, with
	// rows and display names resolved. A zero-valued options struct returns
	// everything.
	FindEntries(ctx context.Context, opts EntryListOptions) ([]domain.ExpenseEntry, string, error)
}

// EntryWriter defines write operations for ledger entries. Entries are
// immutable once saved; there is deliberately no update operation.
type EntryWriter interface {
	// SaveEntry persists an entry and its rows atomically.
	SaveEntry(ctx context.Context, entry domain.ExpenseEntry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx is an entry repository that additionally exposes
// transaction management.
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	RepositoryWithTx
}
