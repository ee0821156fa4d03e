package handler

import (
	"context"
	"net/http"

	"github.com/osse101/Alchemy_Go/internal/brewing"
	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/logger"
)

// CatalogReloader rebuilds the active catalog snapshot from its source
type CatalogReloader interface {
	Reload(ctx context.Context) (*catalog.Catalog, error)
}

// ReloadResponse reports the snapshot installed by a reload
type ReloadResponse struct {
	Message        string `json:"message"`
	CatalogVersion string `json:"catalog_version"`
	Effects        int    `json:"effects"`
	Ingredients    int    `json:"ingredients"`
}

// AdminHandler handles catalog and cache administration
type AdminHandler struct {
	reloader CatalogReloader
	service  brewing.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reloader CatalogReloader, service brewing.Service) *AdminHandler {
	return &AdminHandler{reloader: reloader, service: service}
}

// HandleReloadCatalog reloads the catalog. On failure the previous snapshot stays active.
// POST /api/v1/admin/catalog/reload
// @Summary Reload catalog
// @Description Rebuilds the catalog from its source and installs it
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/admin/catalog/reload [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	c, err := h.reloader.Reload(r.Context())
	if err != nil {
		log.Error(ErrMsgReloadCatalogFailed, "error", err)
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrMsgReloadCatalogFailed + ": " + err.Error()})
		return
	}

	log.Info(MsgCatalogReloaded, "version", c.Version())
	respondJSON(w, http.StatusOK, ReloadResponse{
		Message:        MsgCatalogReloaded,
		CatalogVersion: c.Version(),
		Effects:        c.EffectCount(),
		Ingredients:    c.IngredientCount(),
	})
}

// HandleGetCacheStats returns brew cache statistics
// GET /api/v1/admin/cache/stats
// @Summary Get brew cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} brewing.CacheStats
// @Router /api/v1/admin/cache/stats [get]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}

// HandleClearCache drops every cached brew result
// POST /api/v1/admin/cache/clear
// @Summary Clear brew cache
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /api/v1/admin/cache/clear [post]
// @Security ApiKeyAuth
func (h *AdminHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	h.service.ClearCache()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgCacheCleared})
}
