package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/pillgood/backend/internal/server/middleware"
)

// parsePathUserID parses the {id} path segment as a user uuid.
func parsePathUserID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// handleGetUserProfile returns a user's public profile with follow counts
func (s *Server) handleGetUserProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parsePathUserID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleToggleFollow follows a user, or unfollows when already following
func (s *Server) handleToggleFollow(w http.ResponseWriter, r *http.Request) {
	followerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	followeeID, ok := parsePathUserID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	if followeeID == followerID {
		s.errorResponse(w, http.StatusBadRequest, "Cannot follow yourself")
		return
	}

	profile, err := s.store.GetProfile(r.Context(), followeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "User not found")
		return
	}

	followed, followers, followings, err := s.store.ToggleFollow(r.Context(), followerID, followeeID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"is_followed":      followed,
		"followers_count":  followers,
		"followings_count": followings,
	})
}
