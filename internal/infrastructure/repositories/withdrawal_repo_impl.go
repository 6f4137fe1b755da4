package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growline.backend/internal/domain/entities"
	"growline.backend/internal/infrastructure/models"
	"growline.backend/pkg/utils"
)

// WithdrawalRepository implements withdrawal request operations on MongoDB
type WithdrawalRepository struct {
	col *mongo.Collection
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *mongo.Database) *WithdrawalRepository {
	return &WithdrawalRepository{col: db.Collection(models.WithdrawalCollection)}
}

// Create appends a withdrawal request and fills in its generated ID
func (r *WithdrawalRepository) Create(ctx context.Context, req *entities.WithdrawalRequest) error {
	m := models.Withdrawal{
		FirebaseUID: req.FirebaseUID,
		Name:        req.Name,
		Amount:      req.Amount,
		RequestedAt: req.RequestedAt,
	}

	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid.Hex()
	}
	return nil
}

// ListByUID lists a page of a member's withdrawal requests, newest
// first, and the total count
func (r *WithdrawalRepository) ListByUID(ctx context.Context, firebaseUID string, pagination utils.PaginationParams) ([]*entities.WithdrawalRequest, int64, error) {
	filter := bson.M{"firebase_uid": firebaseUID}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}})
	if pagination.Limit > 0 {
		opts = opts.SetSkip(int64(pagination.CalculateOffset())).SetLimit(int64(pagination.Limit))
	}

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var ms []models.Withdrawal
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, 0, err
	}

	reqs := make([]*entities.WithdrawalRequest, 0, len(ms))
	for _, m := range ms {
		reqs = append(reqs, &entities.WithdrawalRequest{
			ID:          m.ID.Hex(),
			FirebaseUID: m.FirebaseUID,
			Name:        m.Name,
			Amount:      m.Amount,
			RequestedAt: m.RequestedAt,
		})
	}
	return reqs, total, nil
}
