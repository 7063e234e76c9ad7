package services

import (
	"context"

	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/ledgercraft/bookkeeper/internal/dto"
)

// BookSvcFacade exposes the ledger operations consumed by the transport
// layer: committing balanced entries, voiding, approval, and reads.
type BookSvcFacade interface {
	// CreateEntry builds and commits a balanced entry in the given book,
	// returning the new journal.
	CreateEntry(ctx context.Context, book string, req dto.CreateEntryRequest) (*domain.Journal, error)

	// GetJournalByID retrieves a journal with its transactions populated.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// VoidJournal logically reverses a journal: flags the original records
	// and commits an offsetting reversal journal, which it returns.
	VoidJournal(ctx context.Context, journalID string, reason string) (*domain.Journal, error)

	// ApproveJournal propagates a journal's approval to its transactions on
	// the false-to-true edge.
	ApproveJournal(ctx context.Context, journalID string) (*domain.Journal, error)
}
