package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	"github.com/siteledger/backend/internal/models"
	"github.com/siteledger/backend/internal/utils/mapping"
)

type PgxSiteRepository struct {
	db *pgxpool.Pool
}

func newPgxSiteRepository(db *pgxpool.Pool) portsrepo.SiteRepositoryFacade {
	return &PgxSiteRepository{db: db}
}

var _ portsrepo.SiteRepositoryFacade = (*PgxSiteRepository)(nil)

const siteColumns = `site_id, name, address, created_at, created_by, last_updated_at, last_updated_by`

func scanSite(row pgx.Row) (*models.Site, error) {
	var m models.Site
	err := row.Scan(
		&m.SiteID,
		&m.Name,
		&m.Address,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxSiteRepository) SaveSite(ctx context.Context, site domain.Site) error {
	m := mapping.ToModelSite(site)
	query := `
		INSERT INTO sites (site_id, name, address, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.SiteID,
		m.Name,
		m.Address,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: site name already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save site: %w", err)
	}
	return nil
}

func (r *PgxSiteRepository) FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE site_id = $1;`
	m, err := scanSite(r.db.QueryRow(ctx, query, siteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find site by ID %s: %w", siteID, err)
	}
	site := mapping.ToDomainSite(*m)
	return &site, nil
}

func (r *PgxSiteRepository) FindSiteByName(ctx context.Context, name string) (*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites WHERE name = $1;`
	m, err := scanSite(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find site by name %q: %w", name, err)
	}
	site := mapping.ToDomainSite(*m)
	return &site, nil
}

func (r *PgxSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sites: %w", err)
	}
	defer rows.Close()

	var ms []models.Site
	for rows.Next() {
		m, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating site rows: %w", err)
	}
	return mapping.ToDomainSiteSlice(ms), nil
}
