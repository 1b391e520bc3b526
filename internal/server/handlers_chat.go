package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/recommend"
	"github.com/pillgood/backend/internal/types"
)

// handleChatRecommend answers a chat message with product recommendations.
// Each request ranks over a fresh catalog snapshot so newly loaded pills are
// visible immediately.
func (s *Server) handleChatRecommend(w http.ResponseWriter, r *http.Request) {
	if s.recommender == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Chat is not configured")
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	entries, err := s.store.CatalogSnapshot(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	result := s.recommender.Recommend(r.Context(), req.Message, catalogToProducts(entries))

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reply":      result.Reply,
		"candidates": result.Candidates,
	})
}

// catalogToProducts converts catalog rows into the ranker's product form.
func catalogToProducts(entries []db.CatalogEntry) []recommend.Product {
	products := make([]recommend.Product, 0, len(entries))
	for _, e := range entries {
		shapeInfo := e.Shape
		if e.Appearance != "" {
			if shapeInfo != "" {
				shapeInfo = fmt.Sprintf("%s (%s)", e.Shape, e.Appearance)
			} else {
				shapeInfo = e.Appearance
			}
		}
		products = append(products, recommend.Product{
			Name:      e.Name,
			Function:  e.Function,
			ShapeInfo: shapeInfo,
			Usage:     e.Usage,
		})
	}
	return products
}
