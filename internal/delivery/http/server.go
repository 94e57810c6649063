// Package http serves the assistant's outward surface: room-token
// issuance for callers joining a voice session, and a text-mode chat
// endpoint driving the same session pipeline without audio.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/twiddles/voice-assistant/internal/infrastructure/livekit"
	"github.com/twiddles/voice-assistant/internal/usecase"
)

// Server is the HTTP delivery layer.
type Server struct {
	issuer   *livekit.TokenIssuer
	rooms    *livekit.RoomServiceClient
	sessions usecase.SessionUseCase
	logger   *slog.Logger
	srv      *http.Server
}

// NewServer wires the HTTP endpoints.
func NewServer(port string, issuer *livekit.TokenIssuer, rooms *livekit.RoomServiceClient, sessions usecase.SessionUseCase, logger *slog.Logger) *Server {
	s := &Server{
		issuer:   issuer,
		rooms:    rooms,
		sessions: sessions,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /getToken", s.handleGetToken)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.srv = &http.Server{
		Addr:              ":" + port,
		Handler:           s.withCORS(s.withLogging(mux)),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving requests until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("http server listening", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

type tokenRequest struct {
	Name   string `json:"name"`
	RoomID string `json:"room_id"`
	Email  string `json:"email"`
	Number string `json:"number"`
}

type tokenResponse struct {
	Token string `json:"token"`
	Room  string `json:"room"`
}

// handleGetToken issues a signed room-join token. The room is either the
// one the caller asked for or a freshly generated non-colliding name.
func (s *Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" {
		s.writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if !strings.Contains(req.Email, "@") {
		s.writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	room := req.RoomID
	if room == "" {
		generated, err := s.rooms.GenerateRoomName(r.Context())
		if err != nil {
			s.logger.Error("failed to generate room name", "error", err)
			s.writeError(w, http.StatusBadGateway, "could not allocate a room")
			return
		}
		room = generated
	}

	meta := livekit.ParticipantMetadata{
		UserID: req.Name,
		Email:  req.Email,
		Number: req.Number,
	}
	token, err := s.issuer.RoomJoinToken(req.Name, req.Name, meta, room)
	if err != nil {
		s.logger.Error("failed to issue token", "error", err)
		s.writeError(w, http.StatusInternalServerError, "could not issue a token")
		return
	}

	s.writeJSON(w, http.StatusOK, tokenResponse{Token: token, Room: room})
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Text      string `json:"text"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// handleChat runs one conversation turn over plain HTTP.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SessionID == "" || req.UserID == "" || req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "session_id, user_id and text are required")
		return
	}

	reply, err := s.sessions.ProcessTurn(r.Context(), req.SessionID, req.UserID, req.Text)
	if err != nil {
		s.logger.Error("chat turn failed", "session_id", req.SessionID, "error", err)
		s.writeError(w, http.StatusBadGateway, "the assistant could not reply")
		return
	}

	s.writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// withCORS mirrors the permissive policy the web client expects.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
