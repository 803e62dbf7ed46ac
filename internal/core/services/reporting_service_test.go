package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	service       portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewReportingService(suite.mockEntryRepo)
}

func (suite *ReportingServiceTestSuite) ledgerEntry(provider, site string, date time.Time, deposit, amount, cash, duePayment string) domain.ExpenseEntry {
	return domain.ExpenseEntry{
		EntryID:      provider + "-" + site + "-" + date.Format("2006-01-02"),
		ProviderName: provider,
		SiteName:     site,
		EntryDate:    date,
		Deposit:      dec(deposit),
		Rows: []domain.ExpenseRow{
			{Description: "materials", Amount: dec(amount), CashPaid: dec(cash)},
		},
		DuePayment: dec(duePayment),
	}
}

func (suite *ReportingServiceTestSuite) TestSummarizeLedger_FiltersAndSums() {
	ctx := context.Background()
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	may2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	june := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	entries := []domain.ExpenseEntry{
		suite.ledgerEntry("Rahim", "Dhanmondi", may1, "1000", "800", "500", "0"),
		suite.ledgerEntry("Karim", "Uttara", may2, "500", "400", "400", "0"),
		suite.ledgerEntry("Rahim", "Dhanmondi", june, "2000", "100", "100", "0"),
	}

	suite.mockEntryRepo.On("FindEntries", ctx, portsrepo.EntryListOptions{}).Return(entries, "", nil).Once()

	from := may1
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)
	summary, matched, err := suite.service.SummarizeLedger(ctx, domain.EntryFilter{FromDate: &from, ToDate: &to})

	suite.Require().NoError(err)
	suite.Require().Len(matched, 2)

	// 1000 + 500 deposits; 500 + 400 cash; 300 + 0 remaining due; 500 + 100 balance.
	suite.True(summary.TotalDeposit.Equal(dec("1500")))
	suite.True(summary.TotalCash.Equal(dec("900")))
	suite.True(summary.TotalRemainingDue.Equal(dec("300")))
	suite.True(summary.TotalBalance.Equal(dec("600")))
}

func (suite *ReportingServiceTestSuite) TestSummarizeLedger_EmptyFilterMatchesAll() {
	ctx := context.Background()
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.ExpenseEntry{
		suite.ledgerEntry("Rahim", "Dhanmondi", may1, "1000", "800", "800", "0"),
	}

	suite.mockEntryRepo.On("FindEntries", ctx, portsrepo.EntryListOptions{}).Return(entries, "", nil).Once()

	summary, matched, err := suite.service.SummarizeLedger(ctx, domain.EntryFilter{})

	suite.Require().NoError(err)
	suite.Len(matched, 1)
	suite.True(summary.TotalDeposit.Equal(dec("1000")))
}

func (suite *ReportingServiceTestSuite) TestSummarizeLedger_NoMatchesIsZero() {
	ctx := context.Background()
	may1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	entries := []domain.ExpenseEntry{
		suite.ledgerEntry("Rahim", "Dhanmondi", may1, "1000", "800", "800", "0"),
	}

	suite.mockEntryRepo.On("FindEntries", ctx, portsrepo.EntryListOptions{}).Return(entries, "", nil).Once()

	summary, matched, err := suite.service.SummarizeLedger(ctx, domain.EntryFilter{ProviderName: "Nobody"})

	suite.Require().NoError(err)
	suite.Empty(matched)
	suite.True(summary.TotalDeposit.Equal(decimal.Zero))
	suite.True(summary.TotalBalance.Equal(decimal.Zero))
}

func (suite *ReportingServiceTestSuite) TestSummarizeLedger_RepositoryError() {
	ctx := context.Background()
	repoErr := errors.New("connection refused")

	suite.mockEntryRepo.On("FindEntries", ctx, portsrepo.EntryListOptions{}).Return(nil, "", repoErr).Once()

	_, _, err := suite.service.SummarizeLedger(ctx, domain.EntryFilter{})

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
