// Package worker moves locally stored transactions into the Google Sheets
// export in response to queue events, with a periodic sweep for anything the
// queue missed.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"paisa/internal/amqp"
	"paisa/internal/sheets"
	"paisa/internal/storage"
)

type SyncWorker struct {
	storage   *storage.SQLiteRepository
	exporter  sheets.Exporter
	batchSize int
}

func NewSyncWorker(repo *storage.SQLiteRepository, exporter sheets.Exporter, batchSize int) *SyncWorker {
	return &SyncWorker{
		storage:   repo,
		exporter:  exporter,
		batchSize: batchSize,
	}
}

// HandleMessage processes one queue event. Sync failures are reported back so
// the delivery is requeued; a transaction that vanished locally is dropped.
func (w *SyncWorker) HandleMessage(ctx context.Context, msg *amqp.Message) error {
	slog.InfoContext(ctx, "Processing transaction event",
		"kind", msg.Kind,
		"id", msg.ID)

	switch msg.Kind {
	case amqp.KindSync:
		return w.syncTransaction(ctx, msg.ID)
	case amqp.KindDelete:
		return w.exporter.RemoveTransaction(ctx, msg.ID)
	default:
		slog.WarnContext(ctx, "Unknown message kind, dropping", "kind", msg.Kind, "id", msg.ID)
		return nil
	}
}

func (w *SyncWorker) syncTransaction(ctx context.Context, id string) error {
	tx, err := w.storage.Get(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		slog.WarnContext(ctx, "Transaction no longer in storage, skipping sync", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get transaction from storage: %w", err)
	}

	if _, err := w.exporter.AppendTransaction(ctx, tx); err != nil {
		if markErr := w.storage.MarkSyncError(ctx, id); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark sync error", "id", id, "error", markErr)
		}
		return fmt.Errorf("export transaction: %w", err)
	}

	return w.storage.MarkSynced(ctx, id)
}

// ProcessPending sweeps rows still flagged pending, in creation order. Queue
// deliveries normally beat the sweep; this catches restarts and lost messages.
func (w *SyncWorker) ProcessPending(ctx context.Context) error {
	ids, err := w.storage.PendingSync(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("load pending transactions: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Sweeping pending transactions", "count", len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.syncTransaction(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Pending sweep failed for transaction", "id", id, "error", err)
			// keep going; the row stays pending or flagged for the next sweep
		}
	}
	return nil
}
