// Package sheets declares the outbound ports of the spreadsheet export.
package sheets

import (
	"context"

	"paisa/internal/core"
)

type (
	// RowAppender exports one transaction as a spreadsheet row.
	RowAppender interface {
		AppendTransaction(ctx context.Context, tx core.Transaction) (rowRef string, err error)
	}

	// RowRemover deletes the exported row of a transaction by its id.
	RowRemover interface {
		RemoveTransaction(ctx context.Context, id string) error
	}

	// Exporter is the full export surface used by the sync worker.
	Exporter interface {
		RowAppender
		RowRemover
	}
)
