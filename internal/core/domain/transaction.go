package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger line within a Journal. Exactly one of
// Credit/Debit is the active side; the other stays zero. Structural fields
// are fixed; anything caller-supplied lives in Meta, mediated by the meta
// filter.
type Transaction struct {
	TransactionID     string          `json:"transactionID"`      // Primary Key (UUID)
	JournalID         string          `json:"journalID"`          // Owning journal (Not Null)
	Journal2ID        string          `json:"journal2ID"`         // Optional cross-reference journal
	OriginalJournalID string          `json:"originalJournalID"`  // Set on reversal lines only; links back to the voided journal
	Book              string          `json:"book"`               // Ledger partition
	Memo              string          `json:"memo"`
	Datetime          time.Time       `json:"datetime"`           // When the economic event occurred
	Timestamp         time.Time       `json:"timestamp"`          // When the record was committed
	AccountPath       []string        `json:"accountPath"`        // Hierarchical account address, e.g. ["Assets","Receivable"]
	Accounts          string          `json:"accounts"`           // Flattened path, e.g. "Assets:Receivable"
	Credit            decimal.Decimal `json:"credit"`             // Non-negative; zero means "not this side"
	Debit             decimal.Decimal `json:"debit"`              // Non-negative; zero means "not this side"
	Meta              map[string]any  `json:"meta,omitempty"`     // Free-form metadata, reserved keys excluded
	Voided            bool            `json:"voided"`
	VoidReason        string          `json:"voidReason,omitempty"`
	Approved          bool            `json:"approved"`
}

// IsCredit reports whether the credit side of this line is active.
func (t Transaction) IsCredit() bool {
	return t.Credit.IsPositive()
}

// IsDebit reports whether the debit side of this line is active.
func (t Transaction) IsDebit() bool {
	return t.Debit.IsPositive()
}
