package domain

// Reserved field names are the structural keys the entry builder writes.
// They may never be treated as free-form metadata; the filter below is the
// only place caller-supplied or historical fields cross into a meta map.

// TransactionReservedKeys is the fixed reserved set for transaction records.
var TransactionReservedKeys = []string{
	"_id",
	"credit",
	"debit",
	"meta",
	"datetime",
	"account_path",
	"accounts",
	"book",
	"memo",
	"_journal",
	"_journal2",
	"timestamp",
	"voided",
	"void_reason",
	"approved",
	"_original_journal",
}

// JournalVoidReservedKeys is the reserved set used by the journal-level
// voiding flow. The record id and the primary journal reference are not
// listed here; that flow skips them unconditionally before consulting the
// set.
var JournalVoidReservedKeys = []string{
	"credit",
	"debit",
	"account_path",
	"accounts",
	"datetime",
	"book",
	"memo",
	"timestamp",
	"voided",
	"void_reason",
	"_original_journal",
}

// IsPrototypeAttribute reports whether key would corrupt a plain mutable
// mapping if copied as a property. Checked unconditionally, independent of
// any reserved set.
func IsPrototypeAttribute(key string) bool {
	switch key {
	case "__proto__", "constructor", "prototype":
		return true
	}
	return false
}

// IsValidMetaKey reports whether key is NOT one of the reserved structural
// field names.
func IsValidMetaKey(key string, reserved []string) bool {
	for _, r := range reserved {
		if key == r {
			return false
		}
	}
	return true
}

// SafeSetKeyToMeta copies key/value into meta only when the key is neither
// prototype-polluting nor reserved. Prototype-unsafe keys are skipped
// before the reserved set is consulted.
func SafeSetKeyToMeta(meta map[string]any, key string, value any, reserved []string) {
	if IsPrototypeAttribute(key) {
		return
	}
	if IsValidMetaKey(key, reserved) {
		meta[key] = value
	}
}

// FilterMeta returns a new meta map holding every entry of src that passes
// the filter against the given reserved set.
func FilterMeta(src map[string]any, reserved []string) map[string]any {
	meta := make(map[string]any, len(src))
	for k, v := range src {
		SafeSetKeyToMeta(meta, k, v, reserved)
	}
	return meta
}
