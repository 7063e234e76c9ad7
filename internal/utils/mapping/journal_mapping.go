package mapping

import (
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/ledgercraft/bookkeeper/internal/models"
)

// ToModelJournal converts a domain journal to its persistence document.
// Hydrated transactions are not part of the journal record.
func ToModelJournal(j domain.Journal) models.Journal {
	return models.Journal{
		JournalID:         j.JournalID,
		Datetime:          j.Datetime,
		Memo:              j.Memo,
		TransactionIDs:    j.TransactionIDs,
		Book:              j.Book,
		Voided:            j.Voided,
		VoidReason:        j.VoidReason,
		Approved:          j.Approved,
		OriginalJournalID: j.OriginalJournalID,
	}
}

// ToDomainJournal converts a persistence document back to a domain journal.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:         m.JournalID,
		Datetime:          m.Datetime,
		Memo:              m.Memo,
		TransactionIDs:    m.TransactionIDs,
		Book:              m.Book,
		Voided:            m.Voided,
		VoidReason:        m.VoidReason,
		Approved:          m.Approved,
		OriginalJournalID: m.OriginalJournalID,
	}
}
