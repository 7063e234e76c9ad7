package mapping

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/ledgercraft/bookkeeper/internal/models"
)

// ToModelTransaction converts a domain transaction to its persistence
// document. Amounts are serialized as decimal strings.
func ToModelTransaction(txn domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:     txn.TransactionID,
		Credit:            txn.Credit.String(),
		Debit:             txn.Debit.String(),
		Meta:              txn.Meta,
		Datetime:          txn.Datetime,
		AccountPath:       txn.AccountPath,
		Accounts:          txn.Accounts,
		Book:              txn.Book,
		Memo:              txn.Memo,
		JournalID:         txn.JournalID,
		Journal2ID:        txn.Journal2ID,
		Timestamp:         txn.Timestamp,
		Voided:            txn.Voided,
		VoidReason:        txn.VoidReason,
		Approved:          txn.Approved,
		OriginalJournalID: txn.OriginalJournalID,
	}
}

// ToModelTransactions converts a slice of domain transactions.
func ToModelTransactions(txns []domain.Transaction) []models.Transaction {
	result := make([]models.Transaction, len(txns))
	for i, txn := range txns {
		result[i] = ToModelTransaction(txn)
	}
	return result
}

// ToDomainTransaction converts a persistence document back to a domain
// transaction. Fails when a stored amount is not a valid decimal.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	credit, err := decimal.NewFromString(m.Credit)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid credit amount %q on transaction %s: %w", m.Credit, m.TransactionID, err)
	}
	debit, err := decimal.NewFromString(m.Debit)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid debit amount %q on transaction %s: %w", m.Debit, m.TransactionID, err)
	}

	return domain.Transaction{
		TransactionID:     m.TransactionID,
		Credit:            credit,
		Debit:             debit,
		Meta:              m.Meta,
		Datetime:          m.Datetime,
		AccountPath:       m.AccountPath,
		Accounts:          m.Accounts,
		Book:              m.Book,
		Memo:              m.Memo,
		JournalID:         m.JournalID,
		Journal2ID:        m.Journal2ID,
		Timestamp:         m.Timestamp,
		Voided:            m.Voided,
		VoidReason:        m.VoidReason,
		Approved:          m.Approved,
		OriginalJournalID: m.OriginalJournalID,
	}, nil
}

// ToDomainTransactions converts a slice of persistence documents.
func ToDomainTransactions(ms []models.Transaction) ([]domain.Transaction, error) {
	result := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		txn, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		result[i] = txn
	}
	return result, nil
}
