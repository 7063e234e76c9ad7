package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ledgercraft/bookkeeper/internal/apperrors"
	"github.com/ledgercraft/bookkeeper/internal/core/domain"
	portsrepo "github.com/ledgercraft/bookkeeper/internal/core/ports/repositories"
	"github.com/ledgercraft/bookkeeper/internal/models"
	"github.com/ledgercraft/bookkeeper/internal/utils/mapping"
)

const (
	journalsCollection     = "journals"
	transactionsCollection = "transactions"
)

// MongoLedgerRepository implements the ledger repository ports over two
// MongoDB collections.
type MongoLedgerRepository struct {
	client       *mongo.Client
	journals     *mongo.Collection
	transactions *mongo.Collection
}

// NewMongoLedgerRepository creates a new repository for journal and
// transaction documents.
func NewMongoLedgerRepository(db *mongo.Database) *MongoLedgerRepository {
	return &MongoLedgerRepository{
		client:       db.Client(),
		journals:     db.Collection(journalsCollection),
		transactions: db.Collection(transactionsCollection),
	}
}

var _ portsrepo.LedgerRepositoryWithSession = (*MongoLedgerRepository)(nil)

// EnsureIndexes creates the indexes the repository queries rely on. Called
// once at startup.
func (r *MongoLedgerRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.transactions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "_journal", Value: 1}}},
		{Keys: bson.D{{Key: "book", Value: 1}, {Key: "accounts", Value: 1}, {Key: "datetime", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}

	_, err = r.journals.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "book", Value: 1}, {Key: "datetime", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create journal indexes: %w", err)
	}
	return nil
}

// WithSession runs fn with a context bound to a single store session so the
// contained writes share one causally consistent unit.
func (r *MongoLedgerRepository) WithSession(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := r.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		return fn(sc)
	})
}

// FindJournalByID retrieves a journal by its ID.
func (r *MongoLedgerRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	var doc models.Journal
	err := r.journals.FindOne(ctx, bson.M{"_id": journalID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	journal := mapping.ToDomainJournal(doc)
	return &journal, nil
}

// FindTransactionsByJournalID retrieves all transactions referencing a
// journal, in commit order.
func (r *MongoLedgerRepository) FindTransactionsByJournalID(ctx context.Context, journalID string) ([]domain.Transaction, error) {
	cursor, err := r.transactions.Find(ctx, bson.M{"_journal": journalID}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for journal %s: %w", journalID, err)
	}

	var docs []models.Transaction
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions for journal %s: %w", journalID, err)
	}

	return mapping.ToDomainTransactions(docs)
}

// SaveJournal inserts a journal document and all of its transaction
// documents.
func (r *MongoLedgerRepository) SaveJournal(ctx context.Context, journal domain.Journal, transactions []domain.Transaction) error {
	if _, err := r.journals.InsertOne(ctx, mapping.ToModelJournal(journal)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("journal %s: %w", journal.JournalID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert journal %s: %w", journal.JournalID, err)
	}

	if len(transactions) == 0 {
		return nil
	}

	docs := make([]interface{}, len(transactions))
	for i, txn := range transactions {
		docs[i] = mapping.ToModelTransaction(txn)
	}
	if _, err := r.transactions.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert transactions for journal %s: %w", journal.JournalID, err)
	}
	return nil
}

// SaveTransaction writes a single transaction document in full.
func (r *MongoLedgerRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	doc := mapping.ToModelTransaction(txn)
	_, err := r.transactions.ReplaceOne(ctx, bson.M{"_id": txn.TransactionID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

// MarkJournalVoided flips voided/void_reason only when the journal is not
// voided yet. The filter makes the check-then-act atomic at the store; a
// losing concurrent caller sees applied == false.
func (r *MongoLedgerRepository) MarkJournalVoided(ctx context.Context, journalID string, reason string) (bool, error) {
	res, err := r.journals.UpdateOne(ctx,
		bson.M{"_id": journalID, "voided": false},
		bson.M{"$set": bson.M{"voided": true, "void_reason": reason}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark journal %s voided: %w", journalID, err)
	}
	return res.MatchedCount == 1, nil
}

// UpdateJournalApproval sets the approved flag on a journal document.
func (r *MongoLedgerRepository) UpdateJournalApproval(ctx context.Context, journalID string, approved bool) error {
	res, err := r.journals.UpdateOne(ctx,
		bson.M{"_id": journalID},
		bson.M{"$set": bson.M{"approved": approved}},
	)
	if err != nil {
		return fmt.Errorf("failed to update approval of journal %s: %w", journalID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
