package accounting

import (
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumCredits returns the sum of the credit side across the given lines.
func SumCredits(transactions []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(txn.Credit)
	}
	return sum
}

// SumDebits returns the sum of the debit side across the given lines.
func SumDebits(transactions []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(txn.Debit)
	}
	return sum
}

// IsBalanced reports whether the credit and debit sides sum to the same
// total. For double-entry accounting this must hold for every journal.
func IsBalanced(transactions []domain.Transaction) bool {
	return SumCredits(transactions).Equal(SumDebits(transactions))
}
