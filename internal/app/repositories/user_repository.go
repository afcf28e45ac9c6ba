package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/db"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

const usersCollection = "users"

// DepartmentStudentCount is one bucket of the per-department aggregation
type DepartmentStudentCount struct {
	Department string `bson:"_id"`
	Students   int64  `bson:"students"`
}

// IUserRepository defines the interface for user-related store operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CountByRole(ctx context.Context, role models.Role) (int64, error)
	CountStudentsByDepartment(ctx context.Context) ([]DepartmentStudentCount, error)
}

// UserRepository accesses the users collection
type UserRepository struct {
	provider *db.Provider
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(provider *db.Provider) *UserRepository {
	return &UserRepository{provider: provider}
}

func (r *UserRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	database, err := r.provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return database.Collection(usersCollection), nil
}

// Create inserts a new user and returns the generated id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, apperrors.ErrDuplicateAccount
		}
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	user.ID = id
	return id, nil
}

// GetByID retrieves a user by object id
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmailAndRole retrieves a user whose email and role both match
func (r *UserRepository) GetByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := col.FindOne(ctx, bson.M{"email": email, "role": role}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// EmailExists checks whether an account with this email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return false, err
	}

	count, err := col.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountByRole counts users carrying the given role tag
func (r *UserRepository) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	return col.CountDocuments(ctx, bson.M{"role": role})
}

// CountStudentsByDepartment groups student accounts by department
func (r *UserRepository) CountStudentsByDepartment(ctx context.Context) ([]DepartmentStudentCount, error) {
	col, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": models.RoleStudent}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$profile.department",
			"students": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var counts []DepartmentStudentCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
