package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryLineRequest is one credit or debit line of an entry. Exactly one of
// Credit/Debit must be set; Meta is free-form and passes through the meta
// filter before it reaches a transaction record.
type EntryLineRequest struct {
	Account string           `json:"account" binding:"required,account_path"` // e.g. "Assets:Receivable"
	Credit  *decimal.Decimal `json:"credit,omitempty"`
	Debit   *decimal.Decimal `json:"debit,omitempty"`
	Meta    map[string]any   `json:"meta,omitempty"`
}

// CreateEntryRequest defines the payload to build and commit a balanced
// entry in a book.
type CreateEntryRequest struct {
	Memo     string             `json:"memo" binding:"required"`
	Datetime *time.Time         `json:"datetime,omitempty"`
	Lines    []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// VoidJournalRequest defines the payload for voiding a journal. Reason is
// optional; when absent the reversal memo is derived by rotating the void
// tag on the original memo.
type VoidJournalRequest struct {
	Reason string `json:"reason"`
}
