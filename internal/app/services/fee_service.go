package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// FeeService handles fee listing and payment
type FeeService struct {
	feeRepo repositories.IFeeRepository
}

// NewFeeService creates a new FeeService
func NewFeeService(feeRepo repositories.IFeeRepository) *FeeService {
	return &FeeService{feeRepo: feeRepo}
}

// ListByStudent returns a student's fees, most recent first
func (s *FeeService) ListByStudent(ctx context.Context, studentID string) ([]models.Fee, error) {
	if studentID == "" {
		return nil, apperrors.NewMissingParameterError("studentId")
	}
	return s.feeRepo.ListByStudent(ctx, studentID)
}

// Get retrieves one fee record by its hex id
func (s *FeeService) Get(ctx context.Context, feeID string) (*models.Fee, error) {
	id, err := primitive.ObjectIDFromHex(feeID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid fee id")
	}
	return s.feeRepo.GetByID(ctx, id)
}

// Pay settles a pending or overdue fee. The transaction id is a freshly
// generated UUID, unique per payment event.
func (s *FeeService) Pay(ctx context.Context, req *dto.PayFeeRequest) (*models.Fee, error) {
	id, err := primitive.ObjectIDFromHex(req.FeeID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid fee id")
	}

	transactionID := uuid.New().String()
	return s.feeRepo.Pay(ctx, id, req.PaymentMethod, transactionID, time.Now())
}

// Create adds a fee record for a student
func (s *FeeService) Create(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid due date")
	}

	fee := &models.Fee{
		StudentID:   req.StudentID,
		Description: req.Description,
		Amount:      req.Amount,
		DueDate:     dueDate,
		Status:      models.FeeStatusPending,
	}

	if _, err := s.feeRepo.Create(ctx, fee); err != nil {
		return nil, err
	}
	return fee, nil
}

// parseDate accepts RFC 3339 timestamps or bare dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
