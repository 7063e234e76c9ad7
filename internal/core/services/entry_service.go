package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgercraft/bookkeeper/internal/apperrors"
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	portsrepo "github.com/ledgercraft/bookkeeper/internal/core/ports/repositories"
	"github.com/ledgercraft/bookkeeper/internal/utils/accounting"
)

// maxAccountPathDepth bounds the hierarchical account address.
const maxAccountPathDepth = 3

var (
	ErrEntryUnbalanced  = fmt.Errorf("%w: entry credits and debits do not balance", apperrors.ErrValidation)
	ErrEntryMinLines    = fmt.Errorf("%w: entry must have at least one credit and one debit line", apperrors.ErrValidation)
	ErrAccountPathDepth = fmt.Errorf("%w: account path is too deep", apperrors.ErrValidation)
	ErrNegativeAmount   = fmt.Errorf("%w: entry amounts must not be negative", apperrors.ErrValidation)
)

// Entry accumulates the lines of a balanced journal before committing them
// as one unit. Line-level validation failures are collected and surfaced at
// Commit so that the builder stays chainable.
type Entry struct {
	repo         portsrepo.LedgerRepositoryFacade
	journal      domain.Journal
	transactions []domain.Transaction
	errs         []error
}

// newEntry starts an entry in the given book. A zero datetime defaults to
// now; originalJournalID is set only when the entry reverses a voided
// journal.
func newEntry(repo portsrepo.LedgerRepositoryFacade, book, memo string, datetime time.Time, originalJournalID string) *Entry {
	if datetime.IsZero() {
		datetime = time.Now().UTC()
	}
	return &Entry{
		repo: repo,
		journal: domain.Journal{
			JournalID:         uuid.NewString(),
			Book:              book,
			Memo:              memo,
			Datetime:          datetime,
			Approved:          true,
			OriginalJournalID: originalJournalID,
		},
	}
}

// Credit adds a credit line on the given account path.
func (e *Entry) Credit(account string, amount decimal.Decimal, meta map[string]any) *Entry {
	return e.addLine(account, amount, decimal.Zero, meta)
}

// Debit adds a debit line on the given account path.
func (e *Entry) Debit(account string, amount decimal.Decimal, meta map[string]any) *Entry {
	return e.addLine(account, decimal.Zero, amount, meta)
}

func (e *Entry) addLine(account string, credit, debit decimal.Decimal, meta map[string]any) *Entry {
	path := strings.Split(account, ":")
	if len(path) > maxAccountPathDepth {
		e.errs = append(e.errs, fmt.Errorf("%w: %q has %d segments", ErrAccountPathDepth, account, len(path)))
		return e
	}
	if credit.IsNegative() || debit.IsNegative() {
		e.errs = append(e.errs, fmt.Errorf("%w: account %q", ErrNegativeAmount, account))
		return e
	}

	txn := domain.Transaction{
		TransactionID:     uuid.NewString(),
		JournalID:         e.journal.JournalID,
		OriginalJournalID: e.journal.OriginalJournalID,
		Book:              e.journal.Book,
		Memo:              e.journal.Memo,
		Datetime:          e.journal.Datetime,
		AccountPath:       path,
		Accounts:          strings.Join(path, ":"),
		Credit:            credit,
		Debit:             debit,
		Approved:          true,
	}

	// Reserved-field extraction: the secondary journal reference moves onto
	// the record itself; everything else crosses into meta only through the
	// filter.
	if len(meta) > 0 {
		txnMeta := make(map[string]any, len(meta))
		for key, value := range meta {
			if domain.IsPrototypeAttribute(key) {
				continue
			}
			if key == "_journal2" {
				if journal2, ok := value.(string); ok {
					txn.Journal2ID = journal2
				}
				continue
			}
			domain.SafeSetKeyToMeta(txnMeta, key, value, domain.TransactionReservedKeys)
		}
		if len(txnMeta) > 0 {
			txn.Meta = txnMeta
		}
	}

	e.transactions = append(e.transactions, txn)
	return e
}

// Commit validates the accumulated lines and persists the journal with its
// transactions. The balance invariant (credit sum == debit sum) is enforced
// here, before anything is written.
func (e *Entry) Commit(ctx context.Context) (*domain.Journal, error) {
	if len(e.errs) > 0 {
		return nil, errors.Join(e.errs...)
	}

	hasCredit, hasDebit := false, false
	for _, txn := range e.transactions {
		if txn.IsCredit() {
			hasCredit = true
		}
		if txn.IsDebit() {
			hasDebit = true
		}
	}
	if !hasCredit || !hasDebit {
		return nil, ErrEntryMinLines
	}

	credits := accounting.SumCredits(e.transactions)
	debits := accounting.SumDebits(e.transactions)
	if !credits.Equal(debits) {
		return nil, fmt.Errorf("%w: credits sum is %s and debits sum is %s", ErrEntryUnbalanced, credits.String(), debits.String())
	}

	now := time.Now().UTC()
	ids := make([]string, len(e.transactions))
	for i := range e.transactions {
		e.transactions[i].Timestamp = now
		ids[i] = e.transactions[i].TransactionID
	}
	e.journal.TransactionIDs = ids

	if err := e.repo.SaveJournal(ctx, e.journal, e.transactions); err != nil {
		return nil, fmt.Errorf("failed to save journal %s: %w", e.journal.JournalID, err)
	}

	journal := e.journal
	journal.Transactions = e.transactions
	return &journal, nil
}
