package server

import (
	"encoding/json"
	"net/http"

	"github.com/pillgood/backend/internal/server/middleware"
	"github.com/pillgood/backend/internal/types"
)

// handleListCabinet returns the user's enrolled catalog pills
func (s *Server) handleListCabinet(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := s.store.ListUserPills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"pills": entries})
}

// handleToggleCabinetPill enrolls or removes a catalog pill from the cabinet
func (s *Server) handleToggleCabinetPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

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

	enrolled, err := s.store.ToggleUserPill(r.Context(), userID, pillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"enrolled": enrolled})
}

// handleGetCabinetPill reports whether a catalog pill is in the cabinet
func (s *Server) handleGetCabinetPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pill ID")
		return
	}

	enrolled, err := s.store.IsEnrolled(r.Context(), userID, pillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"enrolled": enrolled})
}

// handleListCustomPills returns the user's custom pills
func (s *Server) handleListCustomPills(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	pills, err := s.store.ListCustomPills(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"custom_pills": pills})
}

// handleCreateCustomPill records a product outside the catalog
func (s *Server) handleCreateCustomPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.CustomPillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	id, err := s.store.CreateCustomPill(r.Context(), userID, req.Name, req.Brand, req.Memo, req.Ingredients)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleGetCustomPill retrieves one of the user's custom pills
func (s *Server) handleGetCustomPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customPillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid custom pill ID")
		return
	}

	pill, err := s.store.GetCustomPill(r.Context(), userID, customPillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if pill == nil {
		s.errorResponse(w, http.StatusNotFound, "Custom pill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, pill)
}

// handleUpdateCustomPill rewrites one of the user's custom pills
func (s *Server) handleUpdateCustomPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customPillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid custom pill ID")
		return
	}

	var req types.CustomPillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updated, err := s.store.UpdateCustomPill(r.Context(), userID, customPillID, req.Name, req.Brand, req.Memo, req.Ingredients)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "Custom pill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Custom pill updated"})
}

// handleDeleteCustomPill removes one of the user's custom pills
func (s *Server) handleDeleteCustomPill(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	customPillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid custom pill ID")
		return
	}

	deleted, err := s.store.DeleteCustomPill(r.Context(), userID, customPillID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "Custom pill not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Custom pill deleted"})
}
