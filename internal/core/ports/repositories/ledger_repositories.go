package repositories

import (
	"context"

	"github.com/ledgercraft/bookkeeper/internal/core/domain"
)

// LedgerReader defines read operations for journal and transaction data.
type LedgerReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindTransactionsByJournalID retrieves all transactions referencing a journal.
	FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error)
}

// LedgerWriter defines write operations for journal and transaction data.
type LedgerWriter interface {
	// SaveJournal persists a journal and all of its transactions.
	SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error

	// SaveTransaction persists a single transaction record. Voiding writes
	// each transaction individually so per-record store side effects still
	// fire.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// MarkJournalVoided sets voided/void_reason on a journal only if it is
	// not voided yet, atomically where the store supports it. It reports
	// whether the write applied; false means another caller won the race or
	// the journal was already voided.
	MarkJournalVoided(ctx context.Context, journalID string, reason string) (bool, error)

	// UpdateJournalApproval sets the approved flag on a journal record.
	UpdateJournalApproval(ctx context.Context, journalID string, approved bool) error
}

// SessionManager groups a sequence of writes into a single store session so
// they share one durability unit where the store supports it. The callback
// context carries the session; every persistence call inside must use it.
type SessionManager interface {
	WithSession(ctx context.Context, fn func(ctx context.Context) error) error
}

// LedgerRepositoryFacade combines the ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithSession extends the facade with session capabilities.
type LedgerRepositoryWithSession interface {
	LedgerRepositoryFacade
	SessionManager
}
