package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growline.backend/internal/infrastructure/models"
)

// EnsureIndexes creates the indexes the repositories rely on. Creation is
// idempotent; existing indexes with the same spec are left untouched.
func EnsureIndexes(ctx context.Context, users, admin *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "firebase_uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "referral_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "referred_by", Value: 1}},
		},
	}
	if _, err := users.Collection(models.UserCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", models.UserCollection, err)
	}

	paymentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "firebase_uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := users.Collection(models.PaymentCollection).Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", models.PaymentCollection, err)
	}

	adminPaymentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "firebase_uid", Value: 1}},
		},
	}
	if _, err := admin.Collection(models.AdminPaymentCollection).Indexes().CreateMany(ctx, adminPaymentIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", models.AdminPaymentCollection, err)
	}

	withdrawalIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "firebase_uid", Value: 1}, {Key: "requested_at", Value: -1}},
		},
	}
	if _, err := admin.Collection(models.WithdrawalCollection).Indexes().CreateMany(ctx, withdrawalIndexes); err != nil {
		return fmt.Errorf("failed to create %s indexes: %w", models.WithdrawalCollection, err)
	}

	return nil
}
