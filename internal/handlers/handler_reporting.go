package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siteledger/backend/internal/core/domain"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/dto"
	"github.com/siteledger/backend/internal/middleware"
)

// reportingHandler handles ledger summary requests.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Filtered ledger summary
// @Description Aggregates entries matching the given provider name, site name and date filters. With only fromDate set, matches that exact day; with both dates set, matches the inclusive range.
// @Tags reports
// @Produce json
// @Param providerName query string false "Exact provider name"
// @Param siteName query string false "Exact site name"
// @Param fromDate query string false "Date (YYYY-MM-DD)"
// @Param toDate query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid date format"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.EntryFilter{
		ProviderName: params.ProviderName,
		SiteName:     params.SiteName,
	}
	if params.FromDate != "" {
		from, err := time.Parse("2006-01-02", params.FromDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid fromDate, expected YYYY-MM-DD"})
			return
		}
		filter.FromDate = &from
	}
	if params.ToDate != "" {
		to, err := time.Parse("2006-01-02", params.ToDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid toDate, expected YYYY-MM-DD"})
			return
		}
		filter.ToDate = &to
	}

	summary, entries, err := h.reportingService.SummarizeLedger(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to summarize ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary, entries))
}
