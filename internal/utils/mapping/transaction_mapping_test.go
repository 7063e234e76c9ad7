package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/ledgercraft/bookkeeper/internal/models"
	"github.com/ledgercraft/bookkeeper/internal/utils/mapping"
)

func TestTransactionMapping_RoundTrip(t *testing.T) {
	credit, err := decimal.NewFromString("700.25")
	require.NoError(t, err)

	txn := domain.Transaction{
		TransactionID:     "txn-1",
		JournalID:         "journal-1",
		Journal2ID:        "journal-2",
		OriginalJournalID: "journal-0",
		Book:              "MyBook",
		Memo:              "Rent",
		Datetime:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Timestamp:         time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC),
		AccountPath:       []string{"Assets", "Receivable"},
		Accounts:          "Assets:Receivable",
		Credit:            credit,
		Debit:             decimal.Zero,
		Meta:              map[string]any{"clientId": "12345"},
		Voided:            true,
		VoidReason:        "[VOID] Rent",
		Approved:          true,
	}

	doc := mapping.ToModelTransaction(txn)
	assert.Equal(t, "700.25", doc.Credit)
	assert.Equal(t, "0", doc.Debit)

	got, err := mapping.ToDomainTransaction(doc)
	require.NoError(t, err)
	assert.True(t, got.Credit.Equal(txn.Credit))
	assert.True(t, got.Debit.IsZero())
	got.Credit, got.Debit = txn.Credit, txn.Debit
	assert.Equal(t, txn, got)
}

func TestToDomainTransaction_InvalidAmount(t *testing.T) {
	_, err := mapping.ToDomainTransaction(models.Transaction{
		TransactionID: "txn-1",
		Credit:        "not-a-number",
		Debit:         "0",
	})
	assert.Error(t, err)

	_, err = mapping.ToDomainTransaction(models.Transaction{
		TransactionID: "txn-1",
		Credit:        "0",
		Debit:         "",
	})
	assert.Error(t, err)
}

func TestJournalMapping_RoundTrip(t *testing.T) {
	journal := domain.Journal{
		JournalID:         "journal-1",
		Datetime:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Memo:              "Rent",
		TransactionIDs:    []string{"txn-1", "txn-2"},
		Book:              "MyBook",
		Voided:            false,
		Approved:          true,
		OriginalJournalID: "journal-0",
	}

	got := mapping.ToDomainJournal(mapping.ToModelJournal(journal))
	assert.Equal(t, journal, got)
}
