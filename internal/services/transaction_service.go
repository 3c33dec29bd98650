// Package services orchestrates transaction mutations across the store and
// the sync queue.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"paisa/internal/amqp"
	"paisa/internal/core"
	"paisa/internal/store"
)

// EventPublisher announces transaction mutations to the export worker.
type EventPublisher interface {
	PublishSync(ctx context.Context, id string) error
	PublishDelete(ctx context.Context, id string) error
}

var _ EventPublisher = (*amqp.Client)(nil)

// TransactionService validates drafts, applies them to the store and
// publishes sync events. Publishing is best-effort: the local write is the
// source of truth and never fails because the queue is down.
type TransactionService struct {
	store     store.Store
	publisher EventPublisher // nil when no queue is configured
}

func NewTransactionService(s store.Store, publisher EventPublisher) *TransactionService {
	return &TransactionService{store: s, publisher: publisher}
}

// List returns all transactions, newest first.
func (s *TransactionService) List(ctx context.Context) ([]core.Transaction, error) {
	return s.store.List(ctx)
}

// Create validates and stores a draft, then announces it. No partial
// transaction is ever created: validation failures leave the store untouched.
func (s *TransactionService) Create(ctx context.Context, draft core.Transaction) (string, error) {
	draft.ID = "" // ids are assigned by the store
	if err := validateDraft(draft); err != nil {
		return "", err
	}

	id, err := s.store.Add(ctx, draft)
	if err != nil {
		return "", fmt.Errorf("save transaction: %w", err)
	}

	s.publishSync(ctx, id)
	return id, nil
}

// Replace swaps the data of an existing transaction. Absent ids are a no-op
// per the store contract.
func (s *TransactionService) Replace(ctx context.Context, id string, draft core.Transaction) error {
	draft.ID = ""
	if err := validateDraft(draft); err != nil {
		return err
	}

	if err := s.store.Replace(ctx, id, draft); err != nil {
		return fmt.Errorf("replace transaction: %w", err)
	}

	s.publishSync(ctx, id)
	return nil
}

// Remove deletes a transaction and announces the deletion.
func (s *TransactionService) Remove(ctx context.Context, id string) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove transaction: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishDelete(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish delete event", "transaction_id", id, "error", err)
		}
	}
	return nil
}

func (s *TransactionService) publishSync(ctx context.Context, id string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishSync(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sync event", "transaction_id", id, "error", err)
	}
}

func validateDraft(draft core.Transaction) error {
	return draft.Validate()
}
