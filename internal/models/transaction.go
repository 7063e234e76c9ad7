package models

import "time"

// Transaction is the persistence document for a ledger line. Field names
// form the reserved-field contract: the entry builder writes exactly these
// keys, and the meta filter refuses them as metadata.
// Amounts are stored as decimal strings to avoid float drift.
type Transaction struct {
	TransactionID     string         `bson:"_id"`
	Credit            string         `bson:"credit"`
	Debit             string         `bson:"debit"`
	Meta              map[string]any `bson:"meta,omitempty"`
	Datetime          time.Time      `bson:"datetime"`
	AccountPath       []string       `bson:"account_path"`
	Accounts          string         `bson:"accounts"`
	Book              string         `bson:"book"`
	Memo              string         `bson:"memo"`
	JournalID         string         `bson:"_journal"`
	Journal2ID        string         `bson:"_journal2,omitempty"`
	Timestamp         time.Time      `bson:"timestamp"`
	Voided            bool           `bson:"voided"`
	VoidReason        string         `bson:"void_reason,omitempty"`
	Approved          bool           `bson:"approved"`
	OriginalJournalID string         `bson:"_original_journal,omitempty"`
}
