package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growline.backend/internal/domain/entities"
	"growline.backend/internal/infrastructure/models"
)

// PaymentRepository implements payment record operations on MongoDB
type PaymentRepository struct {
	col *mongo.Collection
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(models.PaymentCollection)}
}

// GetOrCreate returns the member's payment record, creating it atomically
// with the given seed transactions when it does not exist yet. Concurrent
// first reads converge on a single document.
func (r *PaymentRepository) GetOrCreate(ctx context.Context, firebaseUID string, seed []entities.Transaction) (*entities.PaymentRecord, error) {
	txs := make([]models.Transaction, 0, len(seed))
	for _, t := range seed {
		txs = append(txs, models.Transaction{
			Amount:     t.Amount,
			Note:       t.Note,
			RecordedAt: t.RecordedAt,
			RecordedBy: t.RecordedBy,
		})
	}

	var m models.PaymentRecord
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"firebase_uid": firebaseUID},
		bson.M{"$setOnInsert": bson.M{
			"transactions": txs,
			"last_updated": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&m)
	if err != nil {
		return nil, err
	}

	return toPaymentEntity(&m), nil
}

func toPaymentEntity(m *models.PaymentRecord) *entities.PaymentRecord {
	txs := make([]entities.Transaction, 0, len(m.Transactions))
	for _, t := range m.Transactions {
		txs = append(txs, entities.Transaction{
			Amount:     t.Amount,
			Note:       t.Note,
			RecordedAt: t.RecordedAt,
			RecordedBy: t.RecordedBy,
		})
	}
	return &entities.PaymentRecord{
		FirebaseUID:  m.FirebaseUID,
		Transactions: txs,
		LastUpdated:  m.LastUpdated,
	}
}

// AdminPaymentRepository implements read access to admin-recorded
// payment entries
type AdminPaymentRepository struct {
	col *mongo.Collection
}

// NewAdminPaymentRepository creates a new admin payment repository
func NewAdminPaymentRepository(db *mongo.Database) *AdminPaymentRepository {
	return &AdminPaymentRepository{col: db.Collection(models.AdminPaymentCollection)}
}

// ListByUID lists admin payment entries for a member, oldest first. An
// unknown member yields an empty list, not an error.
func (r *AdminPaymentRepository) ListByUID(ctx context.Context, firebaseUID string) ([]entities.Transaction, error) {
	cursor, err := r.col.Find(ctx,
		bson.M{"firebase_uid": firebaseUID},
		options.Find().SetSort(bson.D{{Key: "recorded_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ms []models.AdminPayment
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, err
	}

	txs := make([]entities.Transaction, 0, len(ms))
	for _, m := range ms {
		txs = append(txs, entities.Transaction{
			Amount:     m.Amount,
			Note:       m.Note,
			RecordedAt: m.RecordedAt,
			RecordedBy: m.RecordedBy,
		})
	}
	return txs, nil
}
