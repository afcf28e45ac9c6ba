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

const (
	examsCollection   = "exams"
	resultsCollection = "results"
)

// IExamRepository defines the interface for exam store operations
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) (primitive.ObjectID, error)
	List(ctx context.Context, department string, semester int) ([]models.Exam, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exam, error)
}

// IResultRepository defines the interface for result store operations
type IResultRepository interface {
	Create(ctx context.Context, result *models.Result) (primitive.ObjectID, error)
	ListByStudent(ctx context.Context, studentID string) ([]models.Result, error)
}

// ExamRepository accesses the exams collection
type ExamRepository struct {
	provider *db.Provider
}

// NewExamRepository creates a new ExamRepository
func NewExamRepository(provider *db.Provider) *ExamRepository {
	return &ExamRepository{provider: provider}
}

func (r *ExamRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	database, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(examsCollection), nil
}

// Create schedules a new exam
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) (primitive.ObjectID, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	exam.CreatedAt = time.Now()

	res, err := col.InsertOne(ctx, exam)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	exam.ID = id
	return id, nil
}

// List returns exams matching the optional filters, ascending by
// scheduled date
func (r *ExamRepository) List(ctx context.Context, department string, semester int) ([]models.Exam, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if department != "" {
		filter["department"] = department
	}
	if semester > 0 {
		filter["semester"] = semester
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	exams := []models.Exam{}
	if err := cursor.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// GetByID retrieves one exam
func (r *ExamRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Exam, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var exam models.Exam
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&exam); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, err
	}
	return &exam, nil
}

// ResultRepository accesses the results collection
type ResultRepository struct {
	provider *db.Provider
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(provider *db.Provider) *ResultRepository {
	return &ResultRepository{provider: provider}
}

func (r *ResultRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	database, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(resultsCollection), nil
}

// Create records a result
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) (primitive.ObjectID, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	result.CreatedAt = time.Now()

	res, err := col.InsertOne(ctx, result)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	result.ID = id
	return id, nil
}

// ListByStudent returns a student's results, most recent first
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Result, error) {
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

	results := []models.Result{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
