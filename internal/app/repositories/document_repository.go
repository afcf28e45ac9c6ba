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

const documentsCollection = "documents"

// IDocumentRepository defines the interface for document request operations
type IDocumentRepository interface {
	Create(ctx context.Context, doc *models.DocumentRequest) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.DocumentRequest, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.DocumentRequest, error)
	ListPending(ctx context.Context) ([]models.DocumentRequest, error)
	Review(ctx context.Context, id primitive.ObjectID, action models.DocumentStatus, remarks, reviewedBy string, when time.Time) (*models.DocumentRequest, error)
}

// DocumentRepository accesses the documents collection
type DocumentRepository struct {
	provider *db.Provider
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(provider *db.Provider) *DocumentRepository {
	return &DocumentRepository{provider: provider}
}

func (r *DocumentRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	database, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(documentsCollection), nil
}

// Create inserts a new request; status always starts at pending
func (r *DocumentRepository) Create(ctx context.Context, doc *models.DocumentRequest) (primitive.ObjectID, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	doc.Status = models.DocumentStatusPending
	doc.CreatedAt = time.Now()

	res, err := col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	doc.ID = id
	return id, nil
}

// GetByID retrieves one document request
func (r *DocumentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.DocumentRequest, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var doc models.DocumentRequest
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// ListByStudent returns a student's document requests, most recent first
func (r *DocumentRepository) ListByStudent(ctx context.Context, studentID string) ([]models.DocumentRequest, error) {
	return r.list(ctx, bson.M{"studentId": studentID})
}

// ListPending returns all requests awaiting review, most recent first
func (r *DocumentRepository) ListPending(ctx context.Context) ([]models.DocumentRequest, error) {
	return r.list(ctx, bson.M{"status": models.DocumentStatusPending})
}

func (r *DocumentRepository) list(ctx context.Context, filter bson.M) ([]models.DocumentRequest, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []models.DocumentRequest{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Review resolves a pending request exactly once. The pending guard in the
// filter makes a second review attempt fail with ErrAlreadyReviewed rather
// than overwrite the first decision.
func (r *DocumentRepository) Review(ctx context.Context, id primitive.ObjectID, action models.DocumentStatus, remarks, reviewedBy string, when time.Time) (*models.DocumentRequest, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"_id":    id,
		"status": models.DocumentStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"status":     action,
		"remarks":    remarks,
		"reviewedBy": reviewedBy,
		"reviewedAt": when,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc models.DocumentRequest
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return &doc, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, apperrors.ErrAlreadyReviewed
}
