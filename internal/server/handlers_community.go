package server

import (
	"encoding/json"
	"net/http"

	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/server/middleware"
	"github.com/pillgood/backend/internal/types"
)

// handleListThreads lists a pill's community threads, newest first
func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	pillID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid pill ID")
		return
	}
	page := parseQueryInt(r, "page", 1, 0)
	pageSize := parseQueryInt(r, "page_size", db.DefaultPageSize, 100)

	threads, total, err := s.store.ListThreads(r.Context(), pillID, page, pageSize)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"threads":   threads,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// handleCreateThread creates a community post on a pill
func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
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

	var req types.CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	id, err := s.store.CreateThread(r.Context(), userID, pillID, req.Title, req.Body)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleGetThread retrieves a thread with its counts
func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	thread, err := s.store.GetThread(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if thread == nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, thread)
}

// handleUpdateThread edits a thread the user authored
func (s *Server) handleUpdateThread(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	var req types.UpdateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	updated, err := s.store.UpdateThread(r.Context(), userID, threadID, req.Title, req.Body)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !updated {
		// Either the thread is gone or the user is not its author; check
		// which so authors get 404 and everyone else gets 403.
		thread, err := s.store.GetThread(r.Context(), threadID)
		if err == nil && thread != nil {
			s.errorResponse(w, http.StatusForbidden, "Not allowed to modify this thread")
			return
		}
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Thread updated"})
}

// handleDeleteThread removes a thread the user authored
func (s *Server) handleDeleteThread(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	deleted, err := s.store.DeleteThread(r.Context(), userID, threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		thread, err := s.store.GetThread(r.Context(), threadID)
		if err == nil && thread != nil {
			s.errorResponse(w, http.StatusForbidden, "Not allowed to modify this thread")
			return
		}
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Thread deleted"})
}

// handleToggleThreadLike likes or unlikes a thread
func (s *Server) handleToggleThreadLike(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	thread, err := s.store.GetThread(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if thread == nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	liked, likeCount, err := s.store.ToggleThreadLike(r.Context(), userID, threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"liked":      liked,
		"like_count": likeCount,
	})
}

// handleListComments lists a thread's comments, oldest first
func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	thread, err := s.store.GetThread(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if thread == nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	comments, err := s.store.ListComments(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"comments": comments})
}

// handleCreateComment replies on a thread
func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	threadID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid thread ID")
		return
	}

	var req types.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	thread, err := s.store.GetThread(r.Context(), threadID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if thread == nil {
		s.errorResponse(w, http.StatusNotFound, "Thread not found")
		return
	}

	id, err := s.store.CreateComment(r.Context(), userID, threadID, req.Body)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{"id": id})
}

// handleDeleteComment removes a comment the user authored
func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	commentID, ok := parsePathID(r)
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	deleted, err := s.store.DeleteComment(r.Context(), userID, commentID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !deleted {
		// Zero rows means the comment is gone or belongs to someone else;
		// re-read to answer 403 vs 404.
		comment, err := s.store.GetComment(r.Context(), commentID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if comment != nil {
			s.errorResponse(w, http.StatusForbidden, "Not allowed to modify this comment")
			return
		}
		s.errorResponse(w, http.StatusNotFound, "Comment not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
