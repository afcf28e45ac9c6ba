package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/db"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

const feesCollection = "fees"

// IFeeRepository defines the interface for fee-related store operations
type IFeeRepository interface {
	Create(ctx context.Context, fee *models.Fee) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Fee, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error)
	Pay(ctx context.Context, id primitive.ObjectID, method, transactionID string, when time.Time) (*models.Fee, error)
	CountByStatus(ctx context.Context, statuses ...models.FeeStatus) (int64, error)
	SumCollected(ctx context.Context) (float64, error)
}

// FeeRepository accesses the fees collection
type FeeRepository struct {
	provider *db.Provider
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(provider *db.Provider) *FeeRepository {
	return &FeeRepository{provider: provider}
}

func (r *FeeRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	database, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(feesCollection), nil
}

// Create inserts a new fee record
func (r *FeeRepository) Create(ctx context.Context, fee *models.Fee) (primitive.ObjectID, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	fee.CreatedAt = time.Now()
	if fee.Status == "" {
		fee.Status = models.FeeStatusPending
	}

	res, err := col.InsertOne(ctx, fee)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	fee.ID = id
	return id, nil
}

// GetByID retrieves one fee record
func (r *FeeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Fee, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var fee models.Fee
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&fee); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFeeNotFound
		}
		return nil, err
	}
	return &fee, nil
}

// ListByStudent returns a student's fees, most recent first
func (r *FeeRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, bson.M{"studentId": studentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	fees := []models.Fee{}
	if err := cursor.All(ctx, &fees); err != nil {
		return nil, err
	}
	return fees, nil
}

// Pay transitions a pending or overdue fee to paid in a single conditional
// update. The status guard in the filter keeps a concurrent second payment
// from double-stamping: whoever loses the race sees ErrFeeAlreadyPaid.
func (r *FeeRepository) Pay(ctx context.Context, id primitive.ObjectID, method, transactionID string, when time.Time) (*models.Fee, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": bson.A{models.FeeStatusPending, models.FeeStatusOverdue}},
	}
	update := bson.M{"$set": bson.M{
		"status":        models.FeeStatusPaid,
		"paymentDate":   when,
		"paymentMethod": method,
		"transactionId": transactionID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var fee models.Fee
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&fee)
	if err == nil {
		return &fee, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// No match: either the record is missing or it was already paid.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apperrors.ErrFeeAlreadyPaid
}

// CountByStatus counts fee records in any of the given states
func (r *FeeRepository) CountByStatus(ctx context.Context, statuses ...models.FeeStatus) (int64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{"status": bson.M{"$in": statuses}})
}

// SumCollected totals the amount of all paid fees
func (r *FeeRepository) SumCollected(ctx context.Context) (float64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.FeeStatusPaid}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var buckets []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &buckets); err != nil {
		return 0, err
	}
	if len(buckets) == 0 {
		return 0, nil
	}
	return buckets[0].Total, nil
}
