// Package server provides the HTTP REST API for the pillgood backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pillgood/backend/internal/config"
	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/llm"
	"github.com/pillgood/backend/internal/recommend"
	"github.com/pillgood/backend/internal/server/middleware"
	"github.com/pillgood/backend/internal/server/ratelimit"
)

// Recommender produces a chatbot reply for a user message over the catalog.
type Recommender interface {
	Recommend(ctx context.Context, userInput string, catalog []recommend.Product) recommend.Result
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       Store
	recommender Recommender
	geminiClose func() error
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port int
	App  *config.App
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.App.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:    database,
		store: database,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// The chatbot is optional: without an API key the endpoint answers 503.
	if cfg.App.GeminiAPIKey != "" {
		gemini, err := llm.NewGeminiClient(context.Background(), cfg.App.GeminiAPIKey, cfg.App.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		s.recommender = recommend.NewService(gemini, cfg.App.ChatTimeout)
		s.geminiClose = gemini.Close
	} else {
		log.Println("[server] GEMINI_API_KEY not set, chat endpoint disabled")
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the ServeMux with public and authenticated endpoints.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Catalog endpoints (public)
	mux.HandleFunc("GET /pills", s.handleListPills)
	mux.HandleFunc("GET /pills/{id}", s.handleGetPill)
	mux.HandleFunc("GET /categories", s.handleListCategories)
	mux.HandleFunc("GET /categories/{id}", s.handleGetCategory)
	mux.HandleFunc("GET /substances/{id}", s.handleGetSubstance)
	mux.HandleFunc("GET /substances/{id}/pills", s.handleListPillsBySubstance)

	// User profiles (public)
	mux.HandleFunc("GET /users/{id}", s.handleGetUserProfile)

	// Community reads (public)
	mux.HandleFunc("GET /pills/{id}/threads", s.handleListThreads)
	mux.HandleFunc("GET /threads/{id}", s.handleGetThread)
	mux.HandleFunc("GET /threads/{id}/comments", s.handleListComments)

	// Chatbot
	mux.HandleFunc("POST /chat/recommend", s.handleChatRecommend)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Authenticated endpoints
	authed := http.NewServeMux()
	authed.HandleFunc("PUT /auth/password", s.handleUpdatePassword)

	authed.HandleFunc("GET /cabinet", s.handleListCabinet)
	authed.HandleFunc("POST /cabinet/pills/{id}", s.handleToggleCabinetPill)
	authed.HandleFunc("GET /cabinet/pills/{id}", s.handleGetCabinetPill)
	authed.HandleFunc("GET /cabinet/custom", s.handleListCustomPills)
	authed.HandleFunc("POST /cabinet/custom", s.handleCreateCustomPill)
	authed.HandleFunc("GET /cabinet/custom/{id}", s.handleGetCustomPill)
	authed.HandleFunc("PUT /cabinet/custom/{id}", s.handleUpdateCustomPill)
	authed.HandleFunc("DELETE /cabinet/custom/{id}", s.handleDeleteCustomPill)

	authed.HandleFunc("POST /users/{id}/follow", s.handleToggleFollow)

	authed.HandleFunc("POST /pills/{id}/threads", s.handleCreateThread)
	authed.HandleFunc("PUT /threads/{id}", s.handleUpdateThread)
	authed.HandleFunc("DELETE /threads/{id}", s.handleDeleteThread)
	authed.HandleFunc("POST /threads/{id}/like", s.handleToggleThreadLike)
	authed.HandleFunc("POST /threads/{id}/comments", s.handleCreateComment)
	authed.HandleFunc("DELETE /comments/{id}", s.handleDeleteComment)

	requireAuth := middleware.RequireAuth(s.jwtService.AsTokenValidator())
	mux.Handle("PUT /auth/password", requireAuth(authed))
	mux.Handle("/cabinet", requireAuth(authed))
	mux.Handle("/cabinet/", requireAuth(authed))
	mux.Handle("POST /users/{id}/follow", requireAuth(authed))
	mux.Handle("POST /pills/{id}/threads", requireAuth(authed))
	mux.Handle("PUT /threads/{id}", requireAuth(authed))
	mux.Handle("DELETE /threads/{id}", requireAuth(authed))
	mux.Handle("POST /threads/{id}/like", requireAuth(authed))
	mux.Handle("POST /threads/{id}/comments", requireAuth(authed))
	mux.Handle("DELETE /comments/{id}", requireAuth(authed))

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.geminiClose != nil {
		if err := s.geminiClose(); err != nil {
			log.Printf("Error closing gemini client: %v", err)
		}
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword routes to the auth handler with the authenticated user.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// RemoteAddr is used directly; X-Forwarded-For is only safe behind a
// trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Error encoding rate limit response: %v", err)
	}
}
