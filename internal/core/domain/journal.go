package domain

import (
	"strings"
	"time"
)

// Journal is an atomic, balanced group of transaction lines. Transactions
// are owned by reference; they are independent records in the store.
type Journal struct {
	JournalID         string    `json:"journalID"` // Primary Key (UUID)
	Datetime          time.Time `json:"datetime"`
	Memo              string    `json:"memo"`
	TransactionIDs    []string  `json:"transactionIDs"`
	Book              string    `json:"book"`
	Voided            bool      `json:"voided"`
	VoidReason        string    `json:"voidReason,omitempty"`
	Approved          bool      `json:"approved"`
	OriginalJournalID string    `json:"originalJournalID,omitempty"` // Set on reversal journals; the journal being voided

	// Transactions is populated on reads that hydrate the journal's lines.
	// It is never persisted as part of the journal record itself.
	Transactions []Transaction `json:"transactions,omitempty"`
}

// VoidTag is the bracket tag state at the start of a journal memo. Voiding
// without an explicit reason derives the reversal memo by advancing this
// tag: none -> [VOID], [VOID] -> [UNVOID], [UNVOID] -> [REVOID],
// [REVOID] -> [UNVOID].
type VoidTag int

const (
	VoidTagNone VoidTag = iota
	VoidTagVoid
	VoidTagUnvoid
	VoidTagRevoid
)

const (
	voidTagLiteral   = "[VOID]"
	unvoidTagLiteral = "[UNVOID]"
	revoidTagLiteral = "[REVOID]"
)

// String returns the literal memo prefix for the tag, empty for VoidTagNone.
func (t VoidTag) String() string {
	switch t {
	case VoidTagVoid:
		return voidTagLiteral
	case VoidTagUnvoid:
		return unvoidTagLiteral
	case VoidTagRevoid:
		return revoidTagLiteral
	default:
		return ""
	}
}

// Next returns the tag a reversal memo carries, given the current tag.
func (t VoidTag) Next() VoidTag {
	switch t {
	case VoidTagNone:
		return VoidTagVoid
	case VoidTagVoid:
		return VoidTagUnvoid
	case VoidTagUnvoid:
		return VoidTagRevoid
	case VoidTagRevoid:
		return VoidTagUnvoid
	default:
		return VoidTagVoid
	}
}

// ParseVoidTag extracts the leading void tag from a memo. The remainder is
// the memo text with the tag still attached for VoidTagNone, or the text
// following the tag otherwise.
func ParseVoidTag(memo string) (VoidTag, string) {
	switch {
	case strings.HasPrefix(memo, voidTagLiteral):
		return VoidTagVoid, memo[len(voidTagLiteral):]
	case strings.HasPrefix(memo, unvoidTagLiteral):
		return VoidTagUnvoid, memo[len(unvoidTagLiteral):]
	case strings.HasPrefix(memo, revoidTagLiteral):
		return VoidTagRevoid, memo[len(revoidTagLiteral):]
	default:
		return VoidTagNone, memo
	}
}

// NextVoidMemo derives the memo for a reversal journal from the memo of the
// journal being voided. Only the leading tag is replaced; the rest of the
// memo is untouched.
func NextVoidMemo(memo string) string {
	tag, rest := ParseVoidTag(memo)
	if tag == VoidTagNone {
		return voidTagLiteral + " " + memo
	}
	return tag.Next().String() + rest
}

// ResolveVoidReason returns the string used both as the void_reason on the
// original records and as the reversal journal's memo. An explicit reason
// wins verbatim; otherwise the memo tag is rotated.
func ResolveVoidReason(reason, memo string) string {
	if reason != "" {
		return reason
	}
	return NextVoidMemo(memo)
}
