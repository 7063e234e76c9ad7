package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ledgercraft/bookkeeper/internal/apperrors"
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	portsrepo "github.com/ledgercraft/bookkeeper/internal/core/ports/repositories"
	"github.com/ledgercraft/bookkeeper/internal/core/services"
	"github.com/ledgercraft/bookkeeper/internal/utils/accounting"
)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryWithSession
var _ portsrepo.LedgerRepositoryWithSession = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	args := m.Called(ctx, journal, transactions)
	return args.Error(0)
}

func (m *MockLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockLedgerRepository) MarkJournalVoided(ctx context.Context, journalID string, reason string) (bool, error) {
	args := m.Called(ctx, journalID, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepository) UpdateJournalApproval(ctx context.Context, journalID string, approved bool) error {
	args := m.Called(ctx, journalID, approved)
	return args.Error(0)
}

// WithSession runs the callback directly; session semantics belong to the
// store and are not part of these tests.
func (m *MockLedgerRepository) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Fixtures ---

func postedJournal(memo string) *domain.Journal {
	return &domain.Journal{
		JournalID: uuid.NewString(),
		Memo:      memo,
		Book:      "MyBook",
		Approved:  true,
	}
}

func journalLines(journalID string) []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			JournalID:     journalID,
			Book:          "MyBook",
			AccountPath:   []string{"Assets", "Receivable"},
			Accounts:      "Assets:Receivable",
			Credit:        decimal.NewFromInt(700),
			Debit:         decimal.Zero,
			Approved:      true,
			Meta:          map[string]any{"clientId": "12345"},
		},
		{
			TransactionID: uuid.NewString(),
			JournalID:     journalID,
			Book:          "MyBook",
			AccountPath:   []string{"Income", "Rent"},
			Accounts:      "Income:Rent",
			Credit:        decimal.Zero,
			Debit:         decimal.NewFromInt(700),
			Approved:      true,
		},
	}
}

// --- VoidJournal ---

func TestVoidJournal_CommitsBalancedReversal(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)
	ctx := context.Background()

	journal := postedJournal("Rent")
	lines := journalLines(journal.JournalID)

	var savedJournal domain.Journal
	var savedTxns []domain.Transaction

	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
	mockRepo.On("MarkJournalVoided", mock.Anything, journal.JournalID, "[VOID] Rent").Return(true, nil)
	mockRepo.On("FindTransactionsByJournalID", mock.Anything, journal.JournalID).Return(lines, nil)
	mockRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Voided && txn.VoidReason == "[VOID] Rent"
	})).Return(nil).Times(2)
	mockRepo.On("SaveJournal", mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			savedJournal = args.Get(1).(domain.Journal)
			savedTxns = args.Get(2).([]domain.Transaction)
		}).Return(nil)

	reversal, err := svc.VoidJournal(ctx, journal.JournalID, "")

	require.NoError(t, err)
	require.NotNil(t, reversal)
	mockRepo.AssertExpectations(t)

	// Exactly one reversal journal referencing the original.
	assert.Equal(t, journal.JournalID, reversal.OriginalJournalID)
	assert.Equal(t, "[VOID] Rent", reversal.Memo)
	assert.Equal(t, reversal.JournalID, savedJournal.JournalID)

	// Exactly N reversal transactions, sides flipped, same account path.
	require.Len(t, savedTxns, len(lines))
	assert.Equal(t, "Assets:Receivable", savedTxns[0].Accounts)
	assert.True(t, savedTxns[0].Debit.Equal(decimal.NewFromInt(700)))
	assert.True(t, savedTxns[0].Credit.IsZero())
	assert.Equal(t, "Income:Rent", savedTxns[1].Accounts)
	assert.True(t, savedTxns[1].Credit.Equal(decimal.NewFromInt(700)))
	assert.True(t, savedTxns[1].Debit.IsZero())

	// Balance round-trip: reversal credits equal original debits and vice versa.
	assert.True(t, accounting.SumCredits(savedTxns).Equal(accounting.SumDebits(lines)))
	assert.True(t, accounting.SumDebits(savedTxns).Equal(accounting.SumCredits(lines)))

	for _, txn := range savedTxns {
		assert.Equal(t, journal.JournalID, txn.OriginalJournalID)
		assert.Equal(t, reversal.JournalID, txn.JournalID)
	}

	// Custom meta survives; reserved keys never do.
	assert.Equal(t, "12345", savedTxns[0].Meta["clientId"])
	for _, key := range domain.JournalVoidReservedKeys {
		_, found := savedTxns[0].Meta[key]
		assert.False(t, found, key)
	}
}

func TestVoidJournal_AlreadyVoided(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	journal := postedJournal("Rent")
	journal.Voided = true
	journal.VoidReason = "[VOID] Rent"
	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)

	reversal, err := svc.VoidJournal(context.Background(), journal.JournalID, "")

	assert.Nil(t, reversal)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVoided)

	// No writes after the guard fires.
	mockRepo.AssertNotCalled(t, "MarkJournalVoided", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func TestVoidJournal_LosesConditionalUpdateRace(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	// The initial read still sees voided == false; the store-side
	// conditional update is what decides the race.
	journal := postedJournal("Rent")
	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
	mockRepo.On("MarkJournalVoided", mock.Anything, journal.JournalID, "[VOID] Rent").Return(false, nil)

	reversal, err := svc.VoidJournal(context.Background(), journal.JournalID, "")

	assert.Nil(t, reversal)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVoided)
	mockRepo.AssertNotCalled(t, "FindTransactionsByJournalID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func TestVoidJournal_ExplicitReasonUsedVerbatim(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	journal := postedJournal("Rent")
	lines := journalLines(journal.JournalID)

	var savedJournal domain.Journal

	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
	mockRepo.On("MarkJournalVoided", mock.Anything, journal.JournalID, "entered in error").Return(true, nil)
	mockRepo.On("FindTransactionsByJournalID", mock.Anything, journal.JournalID).Return(lines, nil)
	mockRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Voided && txn.VoidReason == "entered in error"
	})).Return(nil).Times(2)
	mockRepo.On("SaveJournal", mock.Anything, mock.AnythingOfType("domain.Journal"), mock.AnythingOfType("[]domain.Transaction")).
		Run(func(args mock.Arguments) {
			savedJournal = args.Get(1).(domain.Journal)
		}).Return(nil)

	reversal, err := svc.VoidJournal(context.Background(), journal.JournalID, "entered in error")

	require.NoError(t, err)
	assert.Equal(t, "entered in error", reversal.Memo)
	assert.Equal(t, "entered in error", savedJournal.Memo)
	mockRepo.AssertExpectations(t)
}

func TestVoidJournal_RotatesTaggedMemo(t *testing.T) {
	tests := []struct {
		memo string
		want string
	}{
		{memo: "[VOID] Rent", want: "[UNVOID] Rent"},
		{memo: "[UNVOID] Rent", want: "[REVOID] Rent"},
		{memo: "[REVOID] Rent", want: "[UNVOID] Rent"},
	}

	for _, tt := range tests {
		t.Run(tt.memo, func(t *testing.T) {
			mockRepo := new(MockLedgerRepository)
			svc := services.NewBookService(mockRepo)

			journal := postedJournal(tt.memo)
			lines := journalLines(journal.JournalID)

			mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
			mockRepo.On("MarkJournalVoided", mock.Anything, journal.JournalID, tt.want).Return(true, nil)
			mockRepo.On("FindTransactionsByJournalID", mock.Anything, journal.JournalID).Return(lines, nil)
			mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil)
			mockRepo.On("SaveJournal", mock.Anything, mock.Anything, mock.Anything).Return(nil)

			reversal, err := svc.VoidJournal(context.Background(), journal.JournalID, "")

			require.NoError(t, err)
			assert.Equal(t, tt.want, reversal.Memo)
		})
	}
}

func TestVoidJournal_NotFound(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	mockRepo.On("FindJournalByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	reversal, err := svc.VoidJournal(context.Background(), "missing", "")

	assert.Nil(t, reversal)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

// --- ApproveJournal ---

func TestApproveJournal_CascadesToTransactions(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	journal := postedJournal("Rent")
	journal.Approved = false
	lines := journalLines(journal.JournalID)
	lines[0].Approved = false
	lines[1].Approved = false

	var callOrder []string

	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
	mockRepo.On("FindTransactionsByJournalID", mock.Anything, journal.JournalID).Return(lines, nil)
	mockRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Approved
	})).Run(func(mock.Arguments) {
		callOrder = append(callOrder, "transaction")
	}).Return(nil).Times(2)
	mockRepo.On("UpdateJournalApproval", mock.Anything, journal.JournalID, true).Run(func(mock.Arguments) {
		callOrder = append(callOrder, "journal")
	}).Return(nil)

	approved, err := svc.ApproveJournal(context.Background(), journal.JournalID)

	require.NoError(t, err)
	assert.True(t, approved.Approved)
	mockRepo.AssertExpectations(t)

	// Transaction approvals complete before the journal's own write.
	require.Len(t, callOrder, 3)
	assert.Equal(t, "journal", callOrder[2])
}

func TestApproveJournal_AlreadyApprovedIsNoOp(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	journal := postedJournal("Rent")
	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)

	approved, err := svc.ApproveJournal(context.Background(), journal.JournalID)

	require.NoError(t, err)
	assert.True(t, approved.Approved)
	mockRepo.AssertNotCalled(t, "FindTransactionsByJournalID", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "SaveTransaction", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "UpdateJournalApproval", mock.Anything, mock.Anything, mock.Anything)
}

// --- GetJournalByID ---

func TestGetJournalByID_HydratesTransactions(t *testing.T) {
	mockRepo := new(MockLedgerRepository)
	svc := services.NewBookService(mockRepo)

	journal := postedJournal("Rent")
	lines := journalLines(journal.JournalID)

	mockRepo.On("FindJournalByID", mock.Anything, journal.JournalID).Return(journal, nil)
	mockRepo.On("FindTransactionsByJournalID", mock.Anything, journal.JournalID).Return(lines, nil)

	got, err := svc.GetJournalByID(context.Background(), journal.JournalID)

	require.NoError(t, err)
	assert.Equal(t, journal.JournalID, got.JournalID)
	assert.Len(t, got.Transactions, 2)
}
