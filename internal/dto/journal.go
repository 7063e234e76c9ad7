package dto

import (
	"time"

	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a transaction line.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	JournalID         string          `json:"journalID"`
	Journal2ID        string          `json:"journal2ID,omitempty"`
	OriginalJournalID string          `json:"originalJournalID,omitempty"`
	Book              string          `json:"book"`
	Memo              string          `json:"memo"`
	Datetime          time.Time       `json:"datetime"`
	Timestamp         time.Time       `json:"timestamp"`
	Accounts          string          `json:"accounts"`
	AccountPath       []string        `json:"accountPath"`
	Credit            decimal.Decimal `json:"credit"`
	Debit             decimal.Decimal `json:"debit"`
	Meta              map[string]any  `json:"meta,omitempty"`
	Voided            bool            `json:"voided"`
	VoidReason        string          `json:"voidReason,omitempty"`
	Approved          bool            `json:"approved"`
}

// JournalResponse defines the data returned for a journal entry.
type JournalResponse struct {
	JournalID         string                `json:"journalID"`
	Datetime          time.Time             `json:"datetime"`
	Memo              string                `json:"memo"`
	Book              string                `json:"book"`
	Voided            bool                  `json:"voided"`
	VoidReason        string                `json:"voidReason,omitempty"`
	Approved          bool                  `json:"approved"`
	OriginalJournalID string                `json:"originalJournalID,omitempty"`
	Transactions      []TransactionResponse `json:"transactions,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:     txn.TransactionID,
		JournalID:         txn.JournalID,
		Journal2ID:        txn.Journal2ID,
		OriginalJournalID: txn.OriginalJournalID,
		Book:              txn.Book,
		Memo:              txn.Memo,
		Datetime:          txn.Datetime,
		Timestamp:         txn.Timestamp,
		Accounts:          txn.Accounts,
		AccountPath:       txn.AccountPath,
		Credit:            txn.Credit,
		Debit:             txn.Debit,
		Meta:              txn.Meta,
		Voided:            txn.Voided,
		VoidReason:        txn.VoidReason,
		Approved:          txn.Approved,
	}
}

// ToTransactionResponses converts a slice of domain transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ToJournalResponse converts a domain.Journal (with any hydrated
// transactions) to its DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:         j.JournalID,
		Datetime:          j.Datetime,
		Memo:              j.Memo,
		Book:              j.Book,
		Voided:            j.Voided,
		VoidReason:        j.VoidReason,
		Approved:          j.Approved,
		OriginalJournalID: j.OriginalJournalID,
	}
	if len(j.Transactions) > 0 {
		resp.Transactions = ToTransactionResponses(j.Transactions)
	}
	return resp
}
