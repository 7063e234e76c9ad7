package models

import "time"

// Journal is the persistence document for an atomic, balanced group of
// transactions. Transactions are referenced by id, not embedded.
type Journal struct {
	JournalID         string    `bson:"_id"`
	Datetime          time.Time `bson:"datetime"`
	Memo              string    `bson:"memo"`
	TransactionIDs    []string  `bson:"_transactions"`
	Book              string    `bson:"book"`
	Voided            bool      `bson:"voided"`
	VoidReason        string    `bson:"void_reason,omitempty"`
	Approved          bool      `bson:"approved"`
	OriginalJournalID string    `bson:"_original_journal,omitempty"`
}
