package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/models/dto"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

func seedDocument(t *testing.T, repo *fakeDocumentRepo, studentID string) *models.DocumentRequest {
	t.Helper()
	doc := &models.DocumentRequest{
		StudentID: studentID,
		Type:      models.DocumentTypeBonafide,
	}
	_, err := repo.Create(context.Background(), doc)
	require.NoError(t, err)
	return doc
}

func TestCreateDocumentStartsPending(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)

	doc, err := svc.Create(context.Background(), "STU2024001", &dto.CreateDocumentRequest{
		Type:   "transcript",
		Urgent: true,
	})
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusPending, doc.Status)
	require.Equal(t, models.DocumentTypeTranscript, doc.Type)
	require.True(t, doc.Urgent)
	require.False(t, doc.ID.IsZero())
}

func TestCreateDocumentRequiresStudentID(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo())

	_, err := svc.Create(context.Background(), "", &dto.CreateDocumentRequest{Type: "bonafide"})
	require.ErrorIs(t, err, apperrors.ErrMissingParameter)
}

func TestReviewApproves(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)
	doc := seedDocument(t, repo, "STU2024001")

	remarks := "  verified against the register  "
	reviewed, err := svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: doc.ID.Hex(),
		Action:        "approved",
		Remarks:       &remarks,
	})
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusApproved, reviewed.Status)
	require.Equal(t, "faculty@college.edu", reviewed.ReviewedBy)
	require.NotNil(t, reviewed.ReviewedAt)
	// Remarks survive exactly as submitted, whitespace included.
	require.Equal(t, remarks, reviewed.Remarks)
}

func TestReviewWithoutRemarks(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)
	doc := seedDocument(t, repo, "STU2024001")

	reviewed, err := svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: doc.ID.Hex(),
		Action:        "rejected",
	})
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusRejected, reviewed.Status)
	require.Equal(t, "", reviewed.Remarks)
}

func TestReviewTwice(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)
	doc := seedDocument(t, repo, "STU2024001")

	req := &dto.ReviewApplicationRequest{ApplicationID: doc.ID.Hex(), Action: "approved"}
	_, err := svc.Review(context.Background(), "faculty@college.edu", req)
	require.NoError(t, err)

	req.Action = "rejected"
	_, err = svc.Review(context.Background(), "other@college.edu", req)
	require.ErrorIs(t, err, apperrors.ErrAlreadyReviewed)

	// The first decision stands.
	current, err := repo.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, models.DocumentStatusApproved, current.Status)
	require.Equal(t, "faculty@college.edu", current.ReviewedBy)
}

func TestReviewErrors(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)
	doc := seedDocument(t, repo, "STU2024001")

	_, err := svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: doc.ID.Hex(),
		Action:        "ready",
	})
	require.ErrorIs(t, err, apperrors.ErrInvalidAction)

	_, err = svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: "not-a-hex-id",
		Action:        "approved",
	})
	require.ErrorIs(t, err, apperrors.ErrBadRequest)

	_, err = svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: "64f000000000000000000000",
		Action:        "approved",
	})
	require.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}

func TestListPendingExcludesReviewed(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := NewDocumentService(repo)
	first := seedDocument(t, repo, "STU2024001")
	seedDocument(t, repo, "STU2024002")

	_, err := svc.Review(context.Background(), "faculty@college.edu", &dto.ReviewApplicationRequest{
		ApplicationID: first.ID.Hex(),
		Action:        "approved",
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "STU2024002", pending[0].StudentID)
}
