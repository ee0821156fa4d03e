package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/domain"
)

// CatalogReader hands out the active catalog snapshot
type CatalogReader interface {
	Current() (*catalog.Catalog, error)
}

// EffectResponse is an effect with its derived base value
type EffectResponse struct {
	domain.Effect
	BaseValue int `json:"base_value"`
}

// IngredientResponse is an ingredient with multiplier flags
type IngredientResponse struct {
	domain.Ingredient
	Buffed bool `json:"buffed"`
	Nerfed bool `json:"nerfed"`
}

// ListResponse wraps a listing with its count and snapshot version
type ListResponse[T any] struct {
	CatalogVersion string `json:"catalog_version"`
	Count          int    `json:"count"`
	Items          []T    `json:"items"`
}

// CatalogHandler serves effect and ingredient lookups
type CatalogHandler struct {
	catalogs CatalogReader
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogs CatalogReader) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs}
}

// HandleListEffects lists effects
// GET /api/v1/effects?school=&type=&sortby=
// @Summary List effects
// @Tags catalog
// @Produce json
// @Param school query string false "Magic school"
// @Param type query string false "Effect type"
// @Param sortby query string false "Sort order"
// @Success 200 {object} ListResponse[EffectResponse]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/effects [get]
func (h *CatalogHandler) HandleListEffects(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalogs.Current()
	if err != nil {
		respondServiceError(w, r, OpListEffects, err)
		return
	}

	effects := c.Effects(catalog.EffectFilter{
		School: r.URL.Query().Get(ParamSchool),
		Type:   r.URL.Query().Get(ParamType),
	})
	if err := catalog.SortEffects(effects, r.URL.Query().Get(ParamSortBy)); err != nil {
		respondServiceError(w, r, OpListEffects, err)
		return
	}

	items := make([]EffectResponse, len(effects))
	for i, e := range effects {
		items[i] = newEffectResponse(e)
	}
	respondJSON(w, http.StatusOK, ListResponse[EffectResponse]{
		CatalogVersion: c.Version(),
		Count:          len(items),
		Items:          items,
	})
}

// HandleGetEffect returns one effect, matched case-insensitively
// GET /api/v1/effects/{name}
// @Summary Get effect
// @Tags catalog
// @Produce json
// @Param name path string true "Effect name"
// @Success 200 {object} EffectResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/effects/{name} [get]
func (h *CatalogHandler) HandleGetEffect(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalogs.Current()
	if err != nil {
		respondServiceError(w, r, OpGetEffect, err)
		return
	}

	effect, err := c.ResolveEffect(chi.URLParam(r, ParamName))
	if err != nil {
		respondNotFound(w, ErrMsgEffectNotFound, err)
		return
	}
	respondJSON(w, http.StatusOK, newEffectResponse(effect))
}

// HandleListIngredients lists ingredients
// GET /api/v1/ingredients?effects=a,b&farmable=&sortby=
// @Summary List ingredients
// @Description Lists ingredients, optionally only those carrying every listed effect
// @Tags catalog
// @Produce json
// @Param effects query string false "Comma-separated effect names"
// @Param farmable query bool false "Farmable only"
// @Param sortby query string false "Sort order"
// @Success 200 {object} ListResponse[IngredientResponse]
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/ingredients [get]
func (h *CatalogHandler) HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalogs.Current()
	if err != nil {
		respondServiceError(w, r, OpListIngredient, err)
		return
	}

	farmable, err := parseOptionalBool(r, ParamFarmable)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidFarmable)
		return
	}

	// filter on canonical effect names so "waterbreathing" works
	var effectNames []string
	for _, name := range GetListQueryParam(r, ParamEffects) {
		effect, err := c.ResolveEffect(name)
		if err != nil {
			respondServiceError(w, r, OpListIngredient, err)
			return
		}
		effectNames = append(effectNames, effect.Name)
	}

	ings := c.Ingredients(catalog.IngredientFilter{Effects: effectNames, Farmable: farmable})
	if err := catalog.SortIngredients(ings, r.URL.Query().Get(ParamSortBy)); err != nil {
		respondServiceError(w, r, OpListIngredient, err)
		return
	}

	items := make([]IngredientResponse, len(ings))
	for i, ing := range ings {
		items[i] = newIngredientResponse(ing)
	}
	respondJSON(w, http.StatusOK, ListResponse[IngredientResponse]{
		CatalogVersion: c.Version(),
		Count:          len(items),
		Items:          items,
	})
}

// HandleGetIngredient returns one ingredient, matched case-insensitively
// GET /api/v1/ingredients/{name}
// @Summary Get ingredient
// @Tags catalog
// @Produce json
// @Param name path string true "Ingredient name"
// @Success 200 {object} IngredientResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/ingredients/{name} [get]
func (h *CatalogHandler) HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalogs.Current()
	if err != nil {
		respondServiceError(w, r, OpGetIngredient, err)
		return
	}

	ing, err := c.ResolveIngredient(chi.URLParam(r, ParamName))
	if err != nil {
		respondNotFound(w, ErrMsgIngredientNotFound, err)
		return
	}
	respondJSON(w, http.StatusOK, newIngredientResponse(ing))
}

func respondNotFound(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{Error: message}
	var unknown *catalog.UnknownNameError
	if errors.As(err, &unknown) {
		resp.Suggestions = unknown.Suggestions
	}
	respondJSON(w, http.StatusNotFound, resp)
}

func newEffectResponse(e *domain.Effect) EffectResponse {
	return EffectResponse{Effect: *e, BaseValue: e.BaseValue()}
}

func newIngredientResponse(ing *domain.Ingredient) IngredientResponse {
	return IngredientResponse{Ingredient: *ing, Buffed: ing.Buffed(), Nerfed: ing.Nerfed()}
}
