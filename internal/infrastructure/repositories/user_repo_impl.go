package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growline.backend/internal/domain/entities"
	domainerrors "growline.backend/internal/domain/errors"
	"growline.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations on MongoDB
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(models.UserCollection)}
}

// GetByUID gets a user by Firebase UID
func (r *UserRepository) GetByUID(ctx context.Context, firebaseUID string) (*entities.User, error) {
	var m models.User
	if err := r.col.FindOne(ctx, bson.M{"firebase_uid": firebaseUID}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// GetByReferralCode gets a user by their referral code
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	var m models.User
	if err := r.col.FindOne(ctx, bson.M{"referral_code": code}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&m), nil
}

// ReferralCodeExists reports whether any user already holds the code
func (r *UserRepository) ReferralCodeExists(ctx context.Context, code string) (bool, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{"referral_code": code}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Upsert writes the profile fields of the payload and, on first insert,
// the immutable defaults (referral code, payment status, referrer).
// Profile fields are written as-is, so an explicit null clears a field,
// matching what callers of the public API expect from a full-document
// update.
func (r *UserRepository) Upsert(ctx context.Context, input *entities.UpsertUserInput, defaults *entities.UserDefaults) error {
	now := time.Now().UTC()

	set := bson.M{
		"name":         input.Name,
		"email":        input.Email,
		"sex":          input.Sex,
		"state":        input.State,
		"district":     input.District,
		"pin_code":     input.PinCode,
		"bank_details": toBankModel(input.BankDetails),
		"updated_at":   now,
	}
	setOnInsert := bson.M{
		"referral_code":  defaults.ReferralCode,
		"payment_status": defaults.PaymentStatus,
		"referred_by":    defaults.ReferredBy,
		"created_at":     now,
	}

	_, err := r.col.UpdateOne(ctx,
		bson.M{"firebase_uid": input.FirebaseUID},
		bson.M{"$set": set, "$setOnInsert": setOnInsert},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListByReferredBy lists users whose referred_by matches any of the
// given referral codes, oldest first.
func (r *UserRepository) ListByReferredBy(ctx context.Context, codes []string) ([]*entities.User, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	cursor, err := r.col.Find(ctx,
		bson.M{"referred_by": bson.M{"$in": codes}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ms []models.User
	if err := cursor.All(ctx, &ms); err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		users = append(users, toUserEntity(&ms[i]))
	}
	return users, nil
}

func toUserEntity(m *models.User) *entities.User {
	u := &entities.User{
		FirebaseUID:   m.FirebaseUID,
		Name:          m.Name,
		Email:         m.Email,
		Sex:           m.Sex,
		State:         m.State,
		District:      m.District,
		PinCode:       m.PinCode,
		ReferralCode:  m.ReferralCode,
		ReferredBy:    m.ReferredBy,
		PaymentStatus: m.PaymentStatus,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.BankDetails != nil {
		u.BankDetails = &entities.BankDetails{
			BankName:      m.BankDetails.BankName,
			AccountNumber: m.BankDetails.AccountNumber,
			IFSCCode:      m.BankDetails.IFSCCode,
			BranchName:    m.BankDetails.BranchName,
		}
	}
	return u
}

func toBankModel(b *entities.BankDetails) *models.BankDetails {
	if b == nil {
		return nil
	}
	return &models.BankDetails{
		BankName:      b.BankName,
		AccountNumber: b.AccountNumber,
		IFSCCode:      b.IFSCCode,
		BranchName:    b.BranchName,
	}
}
