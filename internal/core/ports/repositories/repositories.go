package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// It allows services to be initialized with the specific repositories they need.
type RepositoryProvider struct {
	UserRepo  UserRepositoryFacade
	SiteRepo  SiteRepositoryFacade
	EntryRepo EntryRepositoryWithTx
}
