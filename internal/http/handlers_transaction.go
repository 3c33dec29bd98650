package http

import (
	"log/slog"
	"net/http"

	"paisa/internal/core"
)

type transactionJSON struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// transactionRequest mirrors the mobile form: the amount arrives as the raw
// text-field string so parsing and validation live server-side.
type transactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func toTransactionJSON(tx core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount.Rupees(),
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date.String(),
	}
}

// draftFromRequest converts the request into an unvalidated draft. Field
// errors surface as the form messages the app displays.
func draftFromRequest(req transactionRequest) (core.Transaction, error) {
	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		Type:        core.TransactionType(req.Type),
		Amount:      core.Money{Cents: cents},
		Category:    sanitizeInput(req.Category),
		Description: sanitizeInput(req.Description),
		Date:        date,
	}, nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	out := make([]transactionJSON, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionJSON(tx))
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := draftFromRequest(req)
	if err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	id, err := s.svc.Create(r.Context(), draft)
	if err != nil {
		if msg := validationMessage(err); msg != "Invalid transaction" {
			errorJSON(w, http.StatusUnprocessableEntity, msg)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to create transaction", "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	s.invalidateDashboards()

	draft.ID = id
	slog.InfoContext(r.Context(), "Transaction created", "transaction_id", id, "type", draft.Type, "amount_cents", draft.Amount.Cents)
	writeJSON(w, http.StatusCreated, toTransactionJSON(draft))
}

func (s *Server) handleReplaceTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		errorJSON(w, http.StatusBadRequest, "Missing transaction id")
		return
	}

	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	draft, err := draftFromRequest(req)
	if err != nil {
		errorJSON(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	if err := s.svc.Replace(r.Context(), id, draft); err != nil {
		if msg := validationMessage(err); msg != "Invalid transaction" {
			errorJSON(w, http.StatusUnprocessableEntity, msg)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to replace transaction", "transaction_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	s.invalidateDashboards()

	draft.ID = id
	writeJSON(w, http.StatusOK, toTransactionJSON(draft))
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		errorJSON(w, http.StatusBadRequest, "Missing transaction id")
		return
	}

	if err := s.svc.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "transaction_id", id, "error", err)
		errorJSON(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	s.invalidateDashboards()

	slog.InfoContext(r.Context(), "Transaction deleted", "transaction_id", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("type"); raw != "" {
		t := core.TransactionType(raw)
		if err := t.Validate(); err != nil {
			errorJSON(w, http.StatusBadRequest, "Transaction type must be income or expense")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"categories": core.CategoriesFor(t)})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"expense": core.CategoriesFor(core.Expense),
		"income":  core.CategoriesFor(core.Income),
	})
}
