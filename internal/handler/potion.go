package handler

import (
	"net/http"

	"github.com/osse101/Alchemy_Go/internal/brewing"
	"github.com/osse101/Alchemy_Go/internal/logger"
)

// BrewRequest is the body of POST /api/v1/potions/brew
type BrewRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,max=50,dive,notblank,max=100"`
	Limit       int      `json:"limit" validate:"min=0,max=1000"`
	SortBy      string   `json:"sortby" validate:"sortkey"`
}

// SearchRequest is the body of POST /api/v1/potions/search
type SearchRequest struct {
	Effects []string `json:"effects" validate:"required,min=1,max=8,dive,notblank,max=100"`
	Limit   int      `json:"limit" validate:"min=0,max=1000"`
	SortBy  string   `json:"sortby" validate:"sortkey"`
}

// PotionHandler serves brewing requests
type PotionHandler struct {
	service brewing.Service
}

// NewPotionHandler creates a new potion handler
func NewPotionHandler(service brewing.Service) *PotionHandler {
	return &PotionHandler{service: service}
}

// HandleBrewQuery brews the ingredients listed in the query string
// GET /api/v1/potions?ingredients=a,b,c&limit=&sortby=
// @Summary Brew ingredients
// @Description Ranks every distinct potion the listed ingredients can make
// @Tags potions
// @Produce json
// @Param ingredients query string true "Comma-separated ingredient names"
// @Param limit query int false "Maximum potions returned, 0 for all"
// @Param sortby query string false "value or name"
// @Success 200 {object} brewing.Result
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/potions [get]
func (h *PotionHandler) HandleBrewQuery(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetQueryParam(r, w, ParamIngredients); !ok {
		return
	}
	opts, ok := queryOptions(w, r)
	if !ok {
		return
	}
	h.brew(w, r, GetListQueryParam(r, ParamIngredients), opts)
}

// HandleBrew brews the ingredients in the JSON body
// POST /api/v1/potions/brew
// @Summary Brew ingredients
// @Description Ranks every distinct potion the ingredients in the body can make
// @Tags potions
// @Accept json
// @Produce json
// @Param request body BrewRequest true "Ingredients and options"
// @Success 200 {object} brewing.Result
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/potions/brew [post]
func (h *PotionHandler) HandleBrew(w http.ResponseWriter, r *http.Request) {
	var req BrewRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpBrew); err != nil {
		return
	}
	h.brew(w, r, req.Ingredients, brewing.Options{Limit: req.Limit, SortBy: brewing.SortKey(req.SortBy)})
}

// HandleByEffectsQuery finds potions carrying every effect in the query string
// GET /api/v1/potions/by-effects?effects=a,b&limit=&sortby=
// @Summary Find potions by effects
// @Description Ranks potions whose effects include every requested effect
// @Tags potions
// @Produce json
// @Param effects query string true "Comma-separated effect names"
// @Param limit query int false "Maximum potions returned, 0 for all"
// @Param sortby query string false "value or name"
// @Success 200 {object} brewing.Result
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/potions/by-effects [get]
func (h *PotionHandler) HandleByEffectsQuery(w http.ResponseWriter, r *http.Request) {
	if _, ok := GetQueryParam(r, w, ParamEffects); !ok {
		return
	}
	opts, ok := queryOptions(w, r)
	if !ok {
		return
	}
	h.search(w, r, GetListQueryParam(r, ParamEffects), opts)
}

// HandleSearch finds potions carrying every effect in the JSON body
// POST /api/v1/potions/search
// @Summary Find potions by effects
// @Description Ranks potions whose effects include every effect in the body
// @Tags potions
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Effects and options"
// @Success 200 {object} brewing.Result
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/potions/search [post]
func (h *PotionHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSearchEffects); err != nil {
		return
	}
	h.search(w, r, req.Effects, brewing.Options{Limit: req.Limit, SortBy: brewing.SortKey(req.SortBy)})
}

func (h *PotionHandler) brew(w http.ResponseWriter, r *http.Request, ingredients []string, opts brewing.Options) {
	logger.FromContext(r.Context()).Debug("Brew request", "ingredients", ingredients, "limit", opts.Limit)

	result, err := h.service.Brew(r.Context(), ingredients, opts)
	if err != nil {
		respondServiceError(w, r, OpBrew, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *PotionHandler) search(w http.ResponseWriter, r *http.Request, effects []string, opts brewing.Options) {
	logger.FromContext(r.Context()).Debug("Search request", "effects", effects, "limit", opts.Limit)

	result, err := h.service.BrewByEffects(r.Context(), effects, opts)
	if err != nil {
		respondServiceError(w, r, OpSearchEffects, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// queryOptions reads limit and sortby. If ok is false the response has been written.
func queryOptions(w http.ResponseWriter, r *http.Request) (brewing.Options, bool) {
	limit, err := parseLimit(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return brewing.Options{}, false
	}
	sortBy, err := brewing.ParseSortKey(r.URL.Query().Get(ParamSortBy))
	if err != nil {
		respondServiceError(w, r, OpBrew, err)
		return brewing.Options{}, false
	}
	return brewing.Options{Limit: limit, SortBy: sortBy}, true
}
