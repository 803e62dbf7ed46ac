package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	"github.com/siteledger/backend/internal/models"
	"github.com/siteledger/backend/internal/utils/mapping"
	"github.com/siteledger/backend/internal/utils/pagination"
)

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(db *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

// entrySelect joins the provider and site names onto the entry columns so a
// single query yields everything the domain entry needs except its rows.
const entrySelect = `
	SELECT e.entry_id, e.provider_id, e.site_id, e.entry_date, e.deposit, e.due_payment, e.note,
	       e.total_amount, e.total_cash_from_rows, e.total_due_from_rows, e.due_paid,
	       e.grand_total_cash, e.remaining_due, e.balance,
	       e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
	       u.name AS provider_name, s.name AS site_name
	FROM expense_entries e
	JOIN users u ON e.provider_id = u.user_id
	JOIN sites s ON e.site_id = s.site_id
`

func scanEntry(row pgx.Row) (*models.ExpenseEntry, error) {
	var m models.ExpenseEntry
	err := row.Scan(
		&m.EntryID,
		&m.ProviderID,
		&m.SiteID,
		&m.EntryDate,
		&m.Deposit,
		&m.DuePayment,
		&m.Note,
		&m.TotalAmount,
		&m.TotalCashFromRows,
		&m.TotalDueFromRows,
		&m.DuePaid,
		&m.GrandTotalCash,
		&m.RemainingDue,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.ProviderName,
		&m.SiteName,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveEntry persists an entry and its rows in a single transaction.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.ExpenseEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelExpenseEntry(entry)
	entryQuery := `
		INSERT INTO expense_entries (
			entry_id, provider_id, site_id, entry_date, deposit, due_payment, note,
			total_amount, total_cash_from_rows, total_due_from_rows, due_paid,
			grand_total_cash, remaining_due, balance,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, entryQuery,
		m.EntryID,
		m.ProviderID,
		m.SiteID,
		m.EntryDate,
		m.Deposit,
		m.DuePayment,
		m.Note,
		m.TotalAmount,
		m.TotalCashFromRows,
		m.TotalDueFromRows,
		m.DuePaid,
		m.GrandTotalCash,
		m.RemainingDue,
		m.Balance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert entry "+m.EntryID, err)
	}

	rowQuery := `
		INSERT INTO expense_rows (row_id, entry_id, row_index, description, amount, cash_paid)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, rowModel := range mapping.ToModelExpenseRows(entry.EntryID, entry.Rows) {
		batch.Queue(rowQuery,
			uuid.NewString(),
			rowModel.EntryID,
			rowModel.RowIndex,
			rowModel.Description,
			rowModel.Amount,
			rowModel.CashPaid,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range entry.Rows {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to insert entry rows for "+m.EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close entry row batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a single entry with its rows.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.ExpenseEntry, error) {
	query := entrySelect + ` WHERE e.entry_id = $1;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}

	rowsByEntry, err := r.loadRows(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}

	entry := mapping.ToDomainExpenseEntry(*m, rowsByEntry[entryID])
	return &entry, nil
}

// FindEntries retrieves entries newest entry date first, using keyset
// pagination over (entry_date, created_at). A non-positive limit disables
// pagination and returns the full ledger.
func (r *PgxEntryRepository) FindEntries(ctx context.Context, opts portsrepo.EntryListOptions) ([]domain.ExpenseEntry, string, error) {
	orderBy := ` ORDER BY e.entry_date DESC, e.created_at DESC`

	var rows pgx.Rows
	var err error
	paginated := opts.Limit > 0
	fetchLimit := opts.Limit + 1

	switch {
	case !paginated:
		rows, err = r.Pool.Query(ctx, entrySelect+orderBy+";")
	case opts.NextToken != "":
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(opts.NextToken)
		if decodeErr != nil {
			return nil, "", apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor condition aligned with the sort order.
		query := entrySelect + ` WHERE (e.entry_date, e.created_at) < ($1, $2)` + orderBy + ` LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, lastEntryDate, lastCreatedAt, fetchLimit)
	default:
		query := entrySelect + orderBy + ` LIMIT ` + strconv.Itoa(fetchLimit) + `;`
		rows, err = r.Pool.Query(ctx, query)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	var ms []models.ExpenseEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan entry row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating entry rows: %w", err)
	}

	nextToken := ""
	if paginated && len(ms) > opts.Limit {
		last := ms[opts.Limit-1]
		nextToken = pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		ms = ms[:opts.Limit]
	}

	if len(ms) == 0 {
		return nil, "", nil
	}

	entryIDs := make([]string, len(ms))
	for i, m := range ms {
		entryIDs[i] = m.EntryID
	}
	rowsByEntry, err := r.loadRows(ctx, entryIDs)
	if err != nil {
		return nil, "", err
	}

	entries := make([]domain.ExpenseEntry, len(ms))
	for i, m := range ms {
		entries[i] = mapping.ToDomainExpenseEntry(m, rowsByEntry[m.EntryID])
	}
	return entries, nextToken, nil
}

// loadRows fetches the expense rows for the given entries, keyed by entry ID
// and ordered by row index.
func (r *PgxEntryRepository) loadRows(ctx context.Context, entryIDs []string) (map[string][]models.ExpenseRow, error) {
	query := `
		SELECT row_id, entry_id, row_index, description, amount, cash_paid
		FROM expense_rows
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, row_index ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense rows: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]models.ExpenseRow, len(entryIDs))
	for rows.Next() {
		var m models.ExpenseRow
		if err := rows.Scan(&m.RowID, &m.EntryID, &m.RowIndex, &m.Description, &m.Amount, &m.CashPaid); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		result[m.EntryID] = append(result[m.EntryID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return result, nil
}
