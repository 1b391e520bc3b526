package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pillgood/backend/internal/db"
)

// parseQueryInt parses an integer query parameter with default and max values
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// parsePathID parses the {id} path segment as an int64.
func parsePathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// parseShapes splits the comma-separated shapes parameter:
// ?shapes=정(알약),액상
func parseShapes(r *http.Request) []string {
	raw := r.URL.Query().Get("shapes")
	if raw == "" {
		return nil
	}
	var shapes []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// handleListPills lists the catalog with optional search and shape filters
func (s *Server) handleListPills(w http.ResponseWriter, r *http.Request) {
	filter := db.PillFilter{
		SearchType: r.URL.Query().Get("search_type"),
		Keyword:    r.URL.Query().Get("keyword"),
		Shapes:     parseShapes(r),
		Page:       parseQueryInt(r, "page", 1, 0),
		PageSize:   parseQueryInt(r, "page_size", db.DefaultPageSize, 100),
	}
	if filter.SearchType == "" {
		filter.SearchType = "name"
	}

	pills, total, err := s.store.ListPills(r.Context(), filter)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"pills":     pills,
		"total":     total,
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
}

// handleGetPill retrieves a pill with nutrients and allergens
func (s *Server) handleGetPill(w http.ResponseWriter, r *http.Request) {
	pillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pill ID")
		return
	}

	pill, err := s.store.GetPill(r.Context(), pillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if pill == nil {
		s.errorResponse(w, http.StatusNotFound, "Pill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, pill)
}

// handleListCategories lists all categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"categories": categories})
}

// handleGetCategory retrieves a category with its substances
func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	category, err := s.store.GetCategory(r.Context(), categoryID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if category == nil {
		s.errorResponse(w, http.StatusNotFound, "Category not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, category)
}

// handleGetSubstance retrieves a functional substance
func (s *Server) handleGetSubstance(w http.ResponseWriter, r *http.Request) {
	substanceID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid substance ID")
		return
	}

	substance, err := s.store.GetSubstance(r.Context(), substanceID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if substance == nil {
		s.errorResponse(w, http.StatusNotFound, "Substance not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, substance)
}

// handleListPillsBySubstance lists pills containing a substance
func (s *Server) handleListPillsBySubstance(w http.ResponseWriter, r *http.Request) {
	substanceID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid substance ID")
		return
	}

	page := parseQueryInt(r, "page", 1, 0)
	pageSize := parseQueryInt(r, "page_size", db.DefaultPageSize, 100)

	pills, total, err := s.store.ListPillsBySubstance(r.Context(), substanceID, page, pageSize)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"pills":     pills,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
