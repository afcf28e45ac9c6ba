package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// ExamService handles exam scheduling and results
type ExamService struct {
	examRepo   repositories.IExamRepository
	resultRepo repositories.IResultRepository
}

// NewExamService creates a new ExamService
func NewExamService(examRepo repositories.IExamRepository, resultRepo repositories.IResultRepository) *ExamService {
	return &ExamService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
	}
}

// List returns exams matching the filter, ascending by scheduled date.
// When the filter names a student, that student's results ride along.
func (s *ExamService) List(ctx context.Context, filter dto.ExamFilter) (*dto.ExamListResponse, error) {
	exams, err := s.examRepo.List(ctx, filter.Department, filter.Semester)
	if err != nil {
		return nil, err
	}

	response := &dto.ExamListResponse{Exams: exams}

	if filter.StudentID != "" {
		results, err := s.resultRepo.ListByStudent(ctx, filter.StudentID)
		if err != nil {
			return nil, err
		}
		response.Results = results
	}

	return response, nil
}

// Schedule creates a new exam
func (s *ExamService) Schedule(ctx context.Context, req *dto.CreateExamRequest) (*models.Exam, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid exam date")
	}

	exam := &models.Exam{
		Subject:    req.Subject,
		Department: req.Department,
		Semester:   req.Semester,
		Date:       date,
		StartTime:  req.StartTime,
		Duration:   req.Duration,
		Venue:      req.Venue,
		MaxMarks:   req.MaxMarks,
	}

	if _, err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}
	return exam, nil
}

// RecordResult stores a student's marks for an existing exam. The exam
// reference is checked up front; grade and pass/fail are derived here,
// never taken from the caller.
func (s *ExamService) RecordResult(ctx context.Context, req *dto.RecordResultRequest) (*models.Result, error) {
	examID, err := primitive.ObjectIDFromHex(req.ExamID)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "invalid exam id")
	}

	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	if req.MarksObtained > exam.MaxMarks {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "marks exceed the exam maximum")
	}

	grade, status := models.GradeFor(req.MarksObtained, exam.MaxMarks)

	result := &models.Result{
		ExamID:        examID,
		StudentID:     req.StudentID,
		MarksObtained: req.MarksObtained,
		Grade:         grade,
		Status:        status,
	}

	if _, err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}
