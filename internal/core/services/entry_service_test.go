package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/core/services"
	"github.com/siteledger/backend/internal/dto"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func lenient(s string) dto.LenientDecimal {
	return dto.NewLenientDecimal(dec(s))
}

// --- Mock EntryRepository ---

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.ExpenseEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.ExpenseEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.ExpenseEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.ExpenseEntry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) FindEntries(ctx context.Context, opts portsrepo.EntryListOptions) ([]domain.ExpenseEntry, string, error) {
	args := m.Called(ctx, opts)
	var entries []domain.ExpenseEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ExpenseEntry)
	}
	return entries, args.String(1), args.Error(2)
}

// --- Mock SiteReaderSvc ---

type MockSiteReader struct {
	mock.Mock
}

func (m *MockSiteReader) GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	var site *domain.Site
	if args.Get(0) != nil {
		site = args.Get(0).(*domain.Site)
	}
	return site, args.Error(1)
}

func (m *MockSiteReader) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	var sites []domain.Site
	if args.Get(0) != nil {
		sites = args.Get(0).([]domain.Site)
	}
	return sites, args.Error(1)
}

// --- Mock UserReaderSvc ---

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Suite ---

type EntryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo  *MockEntryRepository
	mockSiteReader *MockSiteReader
	mockUserReader *MockUserReader
	service        portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockSiteReader = new(MockSiteReader)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewEntryService(suite.mockEntryRepo, suite.mockSiteReader, suite.mockUserReader)
}

func (suite *EntryServiceTestSuite) provider() *domain.User {
	return &domain.User{UserID: "provider-1", Name: "Rahim"}
}

func (suite *EntryServiceTestSuite) site() *domain.Site {
	return &domain.Site{SiteID: "site-1", Name: "Dhanmondi"}
}

// --- CreateEntry Tests ---

func (suite *EntryServiceTestSuite) TestCreateEntry_ComputesAndStoresTotals() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "site-1",
		EntryDate: "2024-05-01",
		Deposit:   lenient("1000"),
		Rows: []dto.CreateEntryRowRequest{
			{Description: "cement", Amount: lenient("500"), CashPaid: lenient("500")},
			{Description: "sand", Amount: lenient("300"), CashPaid: lenient("0")},
		},
		DuePayment: lenient("300"),
		Note:       "cleared old due",
	}

	suite.mockUserReader.On("GetUserByID", ctx, "provider-1").Return(suite.provider(), nil).Once()
	suite.mockSiteReader.On("GetSiteByID", ctx, "site-1").Return(suite.site(), nil).Once()

	var saved domain.ExpenseEntry
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.MatchedBy(func(entry domain.ExpenseEntry) bool {
		saved = entry
		return entry.EntryID != ""
	})).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "provider-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)

	// Name snapshots come from the referenced records.
	suite.Equal("Rahim", entry.ProviderName)
	suite.Equal("Dhanmondi", entry.SiteName)
	suite.Equal(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), entry.EntryDate)

	// Stored totals must be exactly what the calculator produces.
	suite.True(saved.Totals.TotalAmount.Equal(dec("800")))
	suite.True(saved.Totals.TotalCashFromRows.Equal(dec("500")))
	suite.True(saved.Totals.TotalDueFromRows.Equal(dec("300")))
	suite.True(saved.Totals.DuePaid.Equal(dec("300")))
	suite.True(saved.Totals.GrandTotalCash.Equal(dec("800")))
	suite.True(saved.Totals.RemainingDue.Equal(dec("0")))
	suite.True(saved.Totals.Balance.Equal(dec("200")))

	suite.Require().Len(saved.Rows, 2)
	suite.Equal("cement", saved.Rows[0].Description)
	suite.True(saved.Rows[1].Amount.Equal(dec("300")))
	suite.True(saved.Rows[1].CashPaid.IsZero())

	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UnknownSite() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "missing-site",
		EntryDate: "2024-05-01",
		Rows:      []dto.CreateEntryRowRequest{{Amount: lenient("100")}},
	}

	suite.mockUserReader.On("GetUserByID", ctx, "provider-1").Return(suite.provider(), nil).Once()
	suite.mockSiteReader.On("GetSiteByID", ctx, "missing-site").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "provider-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_UnknownProvider() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "site-1",
		EntryDate: "2024-05-01",
		Rows:      []dto.CreateEntryRowRequest{{Amount: lenient("100")}},
	}

	suite.mockUserReader.On("GetUserByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_NoRows() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "site-1",
		EntryDate: "2024-05-01",
	}

	entry, err := suite.service.CreateEntry(ctx, req, "provider-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_BadDate() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "site-1",
		EntryDate: "01-05-2024",
		Rows:      []dto.CreateEntryRowRequest{{Amount: lenient("100")}},
	}

	entry, err := suite.service.CreateEntry(ctx, req, "provider-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entry)
}

func (suite *EntryServiceTestSuite) TestCreateEntry_NegativeAmountsClampedInTotals() {
	ctx := context.Background()
	req := dto.CreateEntryRequest{
		SiteID:    "site-1",
		EntryDate: "2024-05-01",
		Rows: []dto.CreateEntryRowRequest{
			{Description: "bricks", Amount: lenient("-100"), CashPaid: lenient("-50")},
			{Description: "labor", Amount: lenient("200"), CashPaid: lenient("200")},
		},
	}

	suite.mockUserReader.On("GetUserByID", ctx, "provider-1").Return(suite.provider(), nil).Once()
	suite.mockSiteReader.On("GetSiteByID", ctx, "site-1").Return(suite.site(), nil).Once()
	suite.mockEntryRepo.On("SaveEntry", ctx, mock.Anything).Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, "provider-1")

	suite.Require().NoError(err)
	suite.True(entry.Totals.TotalAmount.Equal(dec("200")))
	suite.True(entry.Totals.TotalCashFromRows.Equal(dec("200")))
}

// --- Read Tests ---

func (suite *EntryServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()

	suite.mockEntryRepo.On("FindEntryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(entry)
}

func (suite *EntryServiceTestSuite) TestListEntries_DefaultsLimit() {
	ctx := context.Background()
	entries := []domain.ExpenseEntry{{EntryID: "e1", EntryDate: time.Now()}}

	suite.mockEntryRepo.On("FindEntries", ctx, portsrepo.EntryListOptions{Limit: 20}).Return(entries, "tok", nil).Once()

	resp, err := suite.service.ListEntries(ctx, dto.ListEntriesParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Entries, 1)
	suite.Equal("tok", resp.NextToken)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
