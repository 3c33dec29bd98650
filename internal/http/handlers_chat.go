package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"paisa/internal/advisor"
)

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := sanitizeInput(req.Message)
	if message == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "Please enter a message")
		return
	}

	if s.advisor == nil {
		writeJSON(w, http.StatusOK, chatResponse{Reply: advisor.FallbackReply, Fallback: true})
		return
	}

	user, _ := sessionUser(r)

	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to load transactions for chat", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{Reply: advisor.FallbackReply, Fallback: true})
		return
	}

	now := time.Now()
	summary := s.engine.Summarize(txs, now.Year(), int(now.Month()))

	reply, err := s.advisor.Ask(r.Context(), user.Name, summary, message)
	if err != nil {
		if errors.Is(err, advisor.ErrEmptyMessage) {
			errorJSON(w, http.StatusUnprocessableEntity, "Please enter a message")
			return
		}
		slog.ErrorContext(r.Context(), "Chat completion failed", "error", err)
		writeJSON(w, http.StatusOK, chatResponse{Reply: advisor.FallbackReply, Fallback: true})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply, Fallback: false})
}
