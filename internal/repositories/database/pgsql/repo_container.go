package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	siteRepo := newPgxSiteRepository(dbPool)
	entryRepo := newPgxEntryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:  userRepo,
		SiteRepo:  siteRepo,
		EntryRepo: entryRepo,
	}
}
