package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// DocumentService handles document requests and their review
type DocumentService struct {
	documentRepo repositories.IDocumentRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(documentRepo repositories.IDocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// ListByStudent returns a student's document requests, most recent first
func (s *DocumentService) ListByStudent(ctx context.Context, studentID string) ([]models.DocumentRequest, error) {
	if studentID == "" {
		return nil, apperrors.NewMissingParameterError("studentId")
	}
	return s.documentRepo.ListByStudent(ctx, studentID)
}

// ListPending returns all requests awaiting faculty review
func (s *DocumentService) ListPending(ctx context.Context) ([]models.DocumentRequest, error) {
	return s.documentRepo.ListPending(ctx)
}

// Create submits a new request on behalf of a student; it always starts
// in the pending state
func (s *DocumentService) Create(ctx context.Context, studentID string, req *dto.CreateDocumentRequest) (*models.DocumentRequest, error) {
	if studentID == "" {
		return nil, apperrors.NewMissingParameterError("studentId")
	}

	doc := &models.DocumentRequest{
		StudentID: studentID,
		Type:      models.DocumentType(req.Type),
		Urgent:    req.Urgent,
	}

	if _, err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Review resolves a pending request. The reviewer identity comes from the
// authenticated session; remarks are persisted verbatim, an omitted remarks
// field is stored as the empty string.
func (s *DocumentService) Review(ctx context.Context, reviewedBy string, req *dto.ReviewApplicationRequest) (*models.DocumentRequest, error) {
	id, err := primitive.ObjectIDFromHex(req.ApplicationID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid application id")
	}

	action := models.DocumentStatus(req.Action)
	if action != models.DocumentStatusApproved && action != models.DocumentStatusRejected {
		return nil, apperrors.ErrInvalidAction
	}

	remarks := ""
	if req.Remarks != nil {
		remarks = *req.Remarks
	}

	return s.documentRepo.Review(ctx, id, action, remarks, reviewedBy, time.Now())
}
