package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/siteledger/backend/internal/apperrors"
	"github.com/siteledger/backend/internal/core/domain"
	portsrepo "github.com/siteledger/backend/internal/core/ports/repositories"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/dto"
	"github.com/siteledger/backend/internal/utils/accounting"
)

const entryDateLayout = "2006-01-02"

// entryService records and reads daily expense entries. Totals are computed
// once at creation time and stored alongside the entry; the stored snapshot
// always matches what the calculator produces for the same inputs.
type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	siteSvc   portssvc.SiteReaderSvc
	userSvc   portssvc.UserReaderSvc
}

// NewEntryService creates a new entry service.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade, siteSvc portssvc.SiteReaderSvc, userSvc portssvc.UserReaderSvc) portssvc.EntrySvcFacade {
	return &entryService{
		entryRepo: entryRepo,
		siteSvc:   siteSvc,
		userSvc:   userSvc,
	}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// CreateEntry validates, totals and persists a new day's expense entry.
func (s *entryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.ExpenseEntry, error) {
	if creatorUserID == "" {
		return nil, fmt.Errorf("%w: provider is required", apperrors.ErrValidation)
	}
	if req.SiteID == "" {
		return nil, fmt.Errorf("%w: site is required", apperrors.ErrValidation)
	}
	if len(req.Rows) == 0 {
		return nil, fmt.Errorf("%w: entry must have at least one expense row", apperrors.ErrValidation)
	}

	entryDate, err := time.Parse(entryDateLayout, req.EntryDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entry date %q", apperrors.ErrValidation, req.EntryDate)
	}

	provider, err := s.userSvc.GetUserByID(ctx, creatorUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown provider", apperrors.ErrValidation)
	}
	site, err := s.siteSvc.GetSiteByID(ctx, req.SiteID)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown site", apperrors.ErrValidation)
	}

	// Replay the request through the draft transitions so server-side
	// assembly matches the entry form's semantics exactly.
	draft := domain.NewEntryDraft(provider.UserID, entryDate).
		SetSite(site.SiteID).
		SetDeposit(req.Deposit.Decimal).
		SetDuePayment(req.DuePayment.Decimal).
		SetNote(req.Note)
	for i, rowReq := range req.Rows {
		if i > 0 {
			draft = draft.AddRow()
		}
		draft = draft.UpdateRowDescription(i, rowReq.Description).
			UpdateRowAmount(i, rowReq.Amount.Decimal).
			UpdateRowCash(i, rowReq.CashPaid.Decimal)
	}
	entry, err := draft.Finalize(accounting.ComputeEntryTotals)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now().UTC()
	entry.EntryID = uuid.NewString()
	entry.ProviderName = provider.Name
	entry.SiteName = site.Name
	entry.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to save entry", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("site_id", entry.SiteID),
		slog.String("entry_date", req.EntryDate))
	return &entry, nil
}

// GetEntryByID retrieves a single entry with rows and display names.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.ExpenseEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries retrieves a page of entries, newest entry date first.
func (s *entryService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	entries, nextToken, err := s.entryRepo.FindEntries(ctx, portsrepo.EntryListOptions{
		Limit:     limit,
		NextToken: params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "failed to list entries")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	resp := dto.ToListEntriesResponse(entries, nextToken)
	return &resp, nil
}
