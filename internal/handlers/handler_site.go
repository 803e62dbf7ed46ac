package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siteledger/backend/internal/apperrors"
	portssvc "github.com/siteledger/backend/internal/core/ports/services"
	"github.com/siteledger/backend/internal/dto"
	"github.com/siteledger/backend/internal/middleware"
)

// siteHandler handles HTTP requests related to work sites.
type siteHandler struct {
	siteService portssvc.SiteSvcFacade
}

func newSiteHandler(ss portssvc.SiteSvcFacade) *siteHandler {
	return &siteHandler{
		siteService: ss,
	}
}

// registerSiteRoutes registers all site-related routes.
func registerSiteRoutes(rg *gin.RouterGroup, siteService portssvc.SiteSvcFacade) {
	h := newSiteHandler(siteService)

	sites := rg.Group("/sites")
	{
		sites.POST("", h.createSite)
		sites.GET("", h.listSites)
		sites.GET("/:id", h.getSite)
	}
}

// createSite godoc
// @Summary Register a work site
// @Description Creates a new work site. Site names are unique.
// @Tags sites
// @Accept json
// @Produce json
// @Param site body dto.CreateSiteRequest true "Site details"
// @Success 201 {object} dto.SiteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Site name already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites [post]
func (h *siteHandler) createSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	site, err := h.siteService.CreateSite(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Site name already exists"})
			return
		}
		logger.Error("Failed to create site", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create site"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToSiteResponse(site))
}

// listSites godoc
// @Summary List work sites
// @Description Retrieves all registered sites, newest first.
// @Tags sites
// @Produce json
// @Success 200 {object} dto.ListSitesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites [get]
func (h *siteHandler) listSites(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sites, err := h.siteService.ListSites(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list sites", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list sites"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSitesResponse(sites))
}

// getSite godoc
// @Summary Get a site by ID
// @Tags sites
// @Produce json
// @Param id path string true "Site ID"
// @Success 200 {object} dto.SiteResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sites/{id} [get]
func (h *siteHandler) getSite(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	siteID := c.Param("id")

	site, err := h.siteService.GetSiteByID(c.Request.Context(), siteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Site not found"})
			return
		}
		logger.Error("Failed to get site", slog.String("error", err.Error()), slog.String("site_id", siteID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve site"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSiteResponse(site))
}
