package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ledgercraft/bookkeeper/internal/apperrors"
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	portsrepo "github.com/ledgercraft/bookkeeper/internal/core/ports/repositories"
	portssvc "github.com/ledgercraft/bookkeeper/internal/core/ports/services"
	"github.com/ledgercraft/bookkeeper/internal/dto"
	"github.com/ledgercraft/bookkeeper/internal/middleware"
)

// bookService provides the core ledger operations over a ledger repository.
type bookService struct {
	repo portsrepo.LedgerRepositoryWithSession
}

// NewBookService creates a new BookService.
func NewBookService(repo portsrepo.LedgerRepositoryWithSession) portssvc.BookSvcFacade {
	return &bookService{repo: repo}
}

// Ensure bookService implements the portssvc.BookSvcFacade interface
var _ portssvc.BookSvcFacade = (*bookService)(nil)

// entry starts an entry builder bound to this service's repository.
func (s *bookService) entry(book, memo string, datetime time.Time, originalJournalID string) *Entry {
	return newEntry(s.repo, book, memo, datetime, originalJournalID)
}

// CreateEntry builds a balanced entry from the request lines and commits it.
func (s *bookService) CreateEntry(ctx context.Context, book string, req dto.CreateEntryRequest) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var datetime time.Time
	if req.Datetime != nil {
		datetime = *req.Datetime
	}

	entry := s.entry(book, req.Memo, datetime, "")
	for _, line := range req.Lines {
		switch {
		case line.Credit != nil && line.Debit != nil:
			return nil, fmt.Errorf("%w: line on account %q sets both credit and debit", apperrors.ErrValidation, line.Account)
		case line.Credit != nil:
			entry.Credit(line.Account, *line.Credit, line.Meta)
		case line.Debit != nil:
			entry.Debit(line.Account, *line.Debit, line.Meta)
		default:
			return nil, fmt.Errorf("%w: line on account %q sets neither credit nor debit", apperrors.ErrValidation, line.Account)
		}
	}

	journal, err := entry.Commit(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to commit entry", slog.String("book", book), slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Entry committed", slog.String("journal_id", journal.JournalID), slog.String("book", book), slog.Int("transaction_count", len(journal.Transactions)))
	return journal, nil
}

// GetJournalByID retrieves a journal with its transactions populated.
func (s *bookService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.repo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	transactions, err := s.repo.FindTransactionsByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch transactions for journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, err)
	}
	journal.Transactions = transactions

	return journal, nil
}

// reversalMeta carries an original line's metadata onto its reversal line.
// The record id and primary journal reference are dropped outright; the rest
// crosses through the filter with the journal-void reserved set.
func reversalMeta(src map[string]any) map[string]any {
	meta := make(map[string]any, len(src))
	for key, value := range src {
		if key == "_id" || key == "_journal" {
			continue
		}
		domain.SafeSetKeyToMeta(meta, key, value, domain.JournalVoidReservedKeys)
	}
	if len(meta) == 0 {
		return nil
	}
	return meta
}

// VoidJournal logically reverses a journal. The original journal and its
// transactions are flagged voided with the resolved reason, then an
// offsetting reversal entry is committed in the same session: each original
// credit becomes a debit of the same amount on the same account path and
// vice versa, with the original line's metadata carried over through the
// meta filter.
//
// There is no rollback across the steps: a persistence failure can leave
// the journal voided with some transactions not yet flagged, or everything
// flagged with no reversal committed. Callers must treat a failed void as
// indeterminate and inspect store state before retrying.
func (s *bookService) VoidJournal(ctx context.Context, journalID string, reason string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var reversal *domain.Journal
	err := s.repo.WithSession(ctx, func(ctx context.Context) error {
		journal, err := s.repo.FindJournalByID(ctx, journalID)
		if err != nil {
			return fmt.Errorf("failed to find journal %s: %w", journalID, err)
		}
		if journal.Voided {
			return apperrors.ErrAlreadyVoided
		}

		reason = domain.ResolveVoidReason(reason, journal.Memo)

		// Conditional flip: a concurrent voider that loses the race is
		// reported as already voided even though its read above saw false.
		applied, err := s.repo.MarkJournalVoided(ctx, journalID, reason)
		if err != nil {
			return fmt.Errorf("failed to mark journal %s voided: %w", journalID, err)
		}
		if !applied {
			return apperrors.ErrAlreadyVoided
		}

		transactions, err := s.repo.FindTransactionsByJournalID(ctx, journalID)
		if err != nil {
			return fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, err)
		}

		// The per-transaction writes are mutually independent; each record
		// is persisted individually so per-record store side effects still
		// fire. All must complete before the reversal is committed.
		g, gctx := errgroup.WithContext(ctx)
		for i := range transactions {
			transactions[i].Voided = true
			transactions[i].VoidReason = reason
			txn := transactions[i]
			g.Go(func() error {
				return s.repo.SaveTransaction(gctx, txn)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to void transactions of journal %s: %w", journalID, err)
		}

		entry := s.entry(journal.Book, reason, time.Time{}, journal.JournalID)
		for _, txn := range transactions {
			meta := reversalMeta(txn.Meta)
			if txn.IsCredit() {
				entry.Debit(txn.Accounts, txn.Credit, meta)
			}
			if txn.IsDebit() {
				entry.Credit(txn.Accounts, txn.Debit, meta)
			}
		}

		reversal, err = entry.Commit(ctx)
		if err != nil {
			return fmt.Errorf("failed to commit reversal for journal %s: %w", journalID, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyVoided) {
			logger.Warn("Void attempted on already voided journal", slog.String("journal_id", journalID))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to void journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}

	logger.Info("Journal voided", slog.String("journal_id", journalID), slog.String("reversal_journal_id", reversal.JournalID))
	return reversal, nil
}

// ApproveJournal propagates a journal's approval to its transactions. The
// cascade runs only on the false-to-true edge: an already-approved journal
// is left untouched. Transaction approvals are persisted before the
// journal's own approval write is issued, so there is a window where
// transactions are durably approved while the journal write has not yet
// committed.
func (s *bookService) ApproveJournal(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var approved *domain.Journal
	err := s.repo.WithSession(ctx, func(ctx context.Context) error {
		journal, err := s.repo.FindJournalByID(ctx, journalID)
		if err != nil {
			return fmt.Errorf("failed to find journal %s: %w", journalID, err)
		}
		if journal.Approved {
			approved = journal
			return nil
		}

		transactions, err := s.repo.FindTransactionsByJournalID(ctx, journalID)
		if err != nil {
			return fmt.Errorf("failed to retrieve transactions for journal %s: %w", journalID, err)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := range transactions {
			transactions[i].Approved = true
			txn := transactions[i]
			g.Go(func() error {
				return s.repo.SaveTransaction(gctx, txn)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to approve transactions of journal %s: %w", journalID, err)
		}

		if err := s.repo.UpdateJournalApproval(ctx, journalID, true); err != nil {
			return fmt.Errorf("failed to approve journal %s: %w", journalID, err)
		}

		journal.Approved = true
		approved = journal
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to approve journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}

	logger.Info("Journal approved", slog.String("journal_id", journalID))
	return approved, nil
}
