// Package http exposes the catalog search API over HTTP.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ashford-menswear/catalog-search/pkg/httputil"
	"github.com/ashford-menswear/catalog-search/pkg/validator"

	"github.com/ashford-menswear/catalog-search/internal/domain"
	"github.com/ashford-menswear/catalog-search/internal/service"
)

// SearchHandler handles HTTP requests for catalog search endpoints.
type SearchHandler struct {
	service *service.SearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a new search HTTP handler.
func NewSearchHandler(svc *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: svc,
		logger:  logger,
	}
}

// SearchRequest is the JSON request body for POST searches. It mirrors the
// query-parameter contract of the GET endpoint.
type SearchRequest struct {
	Search string `json:"search"`

	Type       []string `json:"type" validate:"omitempty,dive,oneof=individual bundle"`
	Category   []string `json:"category"`
	BundleTier []string `json:"bundle_tier" validate:"omitempty,dive,oneof=starter professional executive premium"`

	Color      []string `json:"color"`
	SuitColor  []string `json:"suit_color"`
	ShirtColor []string `json:"shirt_color"`
	TieColor   []string `json:"tie_color"`

	MinPrice *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice *float64 `json:"max_price" validate:"omitempty,gte=0"`

	Occasions []string `json:"occasions"`
	Material  []string `json:"material"`
	Fit       []string `json:"fit"`

	Trending    bool `json:"trending"`
	OnSale      bool `json:"on_sale"`
	NewArrivals bool `json:"new_arrivals"`

	MinAIScore *float64 `json:"min_ai_score" validate:"omitempty,gte=0,lte=10"`

	Sizes []string `json:"sizes"`

	IncludeBundles    *bool `json:"include_bundles"`
	IncludeIndividual *bool `json:"include_individual"`

	SortBy string `json:"sort_by" validate:"omitempty,oneof=price-asc price-desc name trending ai-score newest"`

	Page  int `json:"page" validate:"omitempty,gte=1"`
	Limit int `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

func (req *SearchRequest) toFilterConfig() *domain.FilterConfig {
	return &domain.FilterConfig{
		Search:            req.Search,
		Type:              req.Type,
		Category:          req.Category,
		BundleTier:        req.BundleTier,
		Color:             req.Color,
		SuitColor:         req.SuitColor,
		ShirtColor:        req.ShirtColor,
		TieColor:          req.TieColor,
		MinPrice:          req.MinPrice,
		MaxPrice:          req.MaxPrice,
		Occasions:         req.Occasions,
		Material:          req.Material,
		Fit:               req.Fit,
		Trending:          req.Trending,
		OnSale:            req.OnSale,
		NewArrivals:       req.NewArrivals,
		MinAIScore:        req.MinAIScore,
		Sizes:             req.Sizes,
		IncludeBundles:    req.IncludeBundles,
		IncludeIndividual: req.IncludeIndividual,
		SortBy:            req.SortBy,
		Page:              req.Page,
		Limit:             req.Limit,
	}
}

// Search handles GET /api/v1/catalog/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f := &domain.FilterConfig{
		Search:     strings.TrimSpace(q.Get("search")),
		Type:       listParam(q["type"]),
		Category:   listParam(q["category"]),
		BundleTier: listParam(q["bundle_tier"]),
		Color:      listParam(q["color"]),
		SuitColor:  listParam(q["suit_color"]),
		ShirtColor: listParam(q["shirt_color"]),
		TieColor:   listParam(q["tie_color"]),
		Occasions:  listParam(q["occasions"]),
		Material:   listParam(q["material"]),
		Fit:        listParam(q["fit"]),
		Sizes:      listParam(q["sizes"]),
	}

	sortBy := q.Get("sort_by")
	if sortBy != "" && !domain.IsValidSort(sortBy) {
		writeParamError(w, "sort_by must be one of: "+strings.Join(domain.ValidSortOptions(), ", "))
		return
	}
	f.SortBy = sortBy

	var ok bool
	if f.MinPrice, ok = priceParam(w, q.Get("min_price"), "min_price"); !ok {
		return
	}
	if f.MaxPrice, ok = priceParam(w, q.Get("max_price"), "max_price"); !ok {
		return
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		writeParamError(w, "min_price must not exceed max_price")
		return
	}

	if v := q.Get("min_ai_score"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil || score < 0 || score > 10 {
			writeParamError(w, "min_ai_score must be a number between 0 and 10")
			return
		}
		f.MinAIScore = &score
	}

	if f.Trending, ok = boolParam(w, q.Get("trending"), "trending"); !ok {
		return
	}
	if f.OnSale, ok = boolParam(w, q.Get("on_sale"), "on_sale"); !ok {
		return
	}
	if f.NewArrivals, ok = boolParam(w, q.Get("new_arrivals"), "new_arrivals"); !ok {
		return
	}

	if f.IncludeBundles, ok = boolPtrParam(w, q.Get("include_bundles"), "include_bundles"); !ok {
		return
	}
	if f.IncludeIndividual, ok = boolPtrParam(w, q.Get("include_individual"), "include_individual"); !ok {
		return
	}

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			writeParamError(w, "page must be a positive integer")
			return
		}
		f.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > domain.MaxLimit {
			writeParamError(w, "limit must be an integer between 1 and 100")
			return
		}
		f.Limit = limit
	}

	result, err := h.service.Search(r.Context(), f)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// SearchPost handles POST /api/v1/catalog/search
func (h *SearchHandler) SearchPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		writeParamError(w, "min_price must not exceed max_price")
		return
	}

	result, err := h.service.Search(r.Context(), req.toFilterConfig())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// listParam merges repeated query parameters and comma-separated values into
// one list, dropping empty entries.
func listParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func writeParamError(w http.ResponseWriter, message string) {
	httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
		Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: message},
	})
}

func priceParam(w http.ResponseWriter, raw, name string) (*float64, bool) {
	if raw == "" {
		return nil, true
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeParamError(w, name+" must be a valid number")
		return nil, false
	}
	if price < 0 {
		writeParamError(w, name+" must not be negative")
		return nil, false
	}
	return &price, true
}

func boolParam(w http.ResponseWriter, raw, name string) (bool, bool) {
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		writeParamError(w, name+" must be true or false")
		return false, false
	}
	return v, true
}

func boolPtrParam(w http.ResponseWriter, raw, name string) (*bool, bool) {
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		writeParamError(w, name+" must be true or false")
		return nil, false
	}
	return &v, true
}
