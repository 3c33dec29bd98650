package http

import (
	"log/slog"
	"net/http"

	"paisa/internal/voice"
)

type voiceParseRequest struct {
	Transcript string `json:"transcript"`
}

type voiceParseResponse struct {
	Parsed    bool           `json:"parsed"`
	Usable    bool           `json:"usable"`
	Threshold float64        `json:"threshold"`
	Candidate *candidateJSON `json:"candidate,omitempty"`
	Message   string         `json:"message,omitempty"`
}

type candidateJSON struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
}

func (s *Server) handleVoiceParse(w http.ResponseWriter, r *http.Request) {
	var req voiceParseRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	transcript := sanitizeInput(req.Transcript)
	if transcript == "" {
		errorJSON(w, http.StatusUnprocessableEntity, "Please provide a transcript")
		return
	}

	candidate, ok := s.parser.Parse(transcript)
	if !ok {
		// No recognizable amount is a normal outcome, not an error.
		writeJSON(w, http.StatusOK, voiceParseResponse{
			Parsed:    false,
			Threshold: s.parser.Threshold(),
			Message:   "Could not detect an amount. Try something like: " + voice.SampleTranscripts()[0],
		})
		return
	}

	slog.InfoContext(r.Context(), "Voice transcript parsed",
		"type", candidate.Type,
		"amount_cents", candidate.Amount.Cents,
		"category", candidate.Category,
		"confidence", candidate.Confidence)

	writeJSON(w, http.StatusOK, voiceParseResponse{
		Parsed:    true,
		Usable:    s.parser.Usable(candidate),
		Threshold: s.parser.Threshold(),
		Candidate: &candidateJSON{
			Type:        string(candidate.Type),
			Amount:      candidate.Amount.Rupees(),
			Description: candidate.Description,
			Category:    candidate.Category,
			Confidence:  candidate.Confidence,
		},
	})
}

func (s *Server) handleVoiceSamples(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"samples": voice.SampleTranscripts()})
}
