package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sufiyanali07/erp-backend/internal/app/models"
	"github.com/Sufiyanali07/erp-backend/internal/app/repositories"
	"github.com/Sufiyanali07/erp-backend/internal/pkg/apperrors"
)

// In-memory repository fakes mirroring the store-level guarantees the
// real repositories provide (duplicate detection, status-guarded updates).

type fakeUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if _, ok := r.users[user.Email]; ok {
		return primitive.NilObjectID, apperrors.ErrDuplicateAccount
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user
	return user.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmailAndRole(_ context.Context, email string, role models.Role) (*models.User, error) {
	u, ok := r.users[email]
	if !ok || u.Role != role {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *fakeUserRepo) CountByRole(_ context.Context, role models.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *fakeUserRepo) CountStudentsByDepartment(_ context.Context) ([]repositories.DepartmentStudentCount, error) {
	counts := map[string]int64{}
	for _, u := range r.users {
		if u.Role == models.RoleStudent {
			counts[u.Profile.Department]++
		}
	}
	out := []repositories.DepartmentStudentCount{}
	for dept, n := range counts {
		out = append(out, repositories.DepartmentStudentCount{Department: dept, Students: n})
	}
	return out, nil
}

type fakeFeeRepo struct {
	fees map[primitive.ObjectID]*models.Fee
}

func newFakeFeeRepo() *fakeFeeRepo {
	return &fakeFeeRepo{fees: map[primitive.ObjectID]*models.Fee{}}
}

func (r *fakeFeeRepo) Create(_ context.Context, fee *models.Fee) (primitive.ObjectID, error) {
	if fee.ID.IsZero() {
		fee.ID = primitive.NewObjectID()
	}
	fee.CreatedAt = time.Now()
	r.fees[fee.ID] = fee
	return fee.ID, nil
}

func (r *fakeFeeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Fee, error) {
	fee, ok := r.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	return fee, nil
}

func (r *fakeFeeRepo) ListByStudent(_ context.Context, studentID string) ([]models.Fee, error) {
	out := []models.Fee{}
	for _, fee := range r.fees {
		if fee.StudentID == studentID {
			out = append(out, *fee)
		}
	}
	return out, nil
}

func (r *fakeFeeRepo) Pay(_ context.Context, id primitive.ObjectID, method, transactionID string, when time.Time) (*models.Fee, error) {
	fee, ok := r.fees[id]
	if !ok {
		return nil, apperrors.ErrFeeNotFound
	}
	if fee.Status != models.FeeStatusPending && fee.Status != models.FeeStatusOverdue {
		return nil, apperrors.ErrFeeAlreadyPaid
	}
	fee.Status = models.FeeStatusPaid
	fee.PaymentDate = &when
	fee.PaymentMethod = method
	fee.TransactionID = transactionID
	return fee, nil
}

func (r *fakeFeeRepo) CountByStatus(_ context.Context, statuses ...models.FeeStatus) (int64, error) {
	var n int64
	for _, fee := range r.fees {
		for _, status := range statuses {
			if fee.Status == status {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *fakeFeeRepo) SumCollected(_ context.Context) (float64, error) {
	var total float64
	for _, fee := range r.fees {
		if fee.Status == models.FeeStatusPaid {
			total += fee.Amount
		}
	}
	return total, nil
}

type fakeDocumentRepo struct {
	docs map[primitive.ObjectID]*models.DocumentRequest
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: map[primitive.ObjectID]*models.DocumentRequest{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *models.DocumentRequest) (primitive.ObjectID, error) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	doc.Status = models.DocumentStatusPending
	doc.CreatedAt = time.Now()
	r.docs[doc.ID] = doc
	return doc.ID, nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.DocumentRequest, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) ListByStudent(_ context.Context, studentID string) ([]models.DocumentRequest, error) {
	out := []models.DocumentRequest{}
	for _, doc := range r.docs {
		if doc.StudentID == studentID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) ListPending(_ context.Context) ([]models.DocumentRequest, error) {
	out := []models.DocumentRequest{}
	for _, doc := range r.docs {
		if doc.Status == models.DocumentStatusPending {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) Review(_ context.Context, id primitive.ObjectID, action models.DocumentStatus, remarks, reviewedBy string, when time.Time) (*models.DocumentRequest, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	if doc.Status != models.DocumentStatusPending {
		return nil, apperrors.ErrAlreadyReviewed
	}
	doc.Status = action
	doc.Remarks = remarks
	doc.ReviewedBy = reviewedBy
	doc.ReviewedAt = &when
	return doc, nil
}

type fakeExamRepo struct {
	exams map[primitive.ObjectID]*models.Exam
}

func newFakeExamRepo() *fakeExamRepo {
	return &fakeExamRepo{exams: map[primitive.ObjectID]*models.Exam{}}
}

func (r *fakeExamRepo) Create(_ context.Context, exam *models.Exam) (primitive.ObjectID, error) {
	if exam.ID.IsZero() {
		exam.ID = primitive.NewObjectID()
	}
	exam.CreatedAt = time.Now()
	r.exams[exam.ID] = exam
	return exam.ID, nil
}

func (r *fakeExamRepo) List(_ context.Context, department string, semester int) ([]models.Exam, error) {
	out := []models.Exam{}
	for _, exam := range r.exams {
		if department != "" && exam.Department != department {
			continue
		}
		if semester > 0 && exam.Semester != semester {
			continue
		}
		out = append(out, *exam)
	}
	return out, nil
}

func (r *fakeExamRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Exam, error) {
	exam, ok := r.exams[id]
	if !ok {
		return nil, apperrors.ErrExamNotFound
	}
	return exam, nil
}

type fakeResultRepo struct {
	results []models.Result
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{}
}

func (r *fakeResultRepo) Create(_ context.Context, result *models.Result) (primitive.ObjectID, error) {
	if result.ID.IsZero() {
		result.ID = primitive.NewObjectID()
	}
	result.CreatedAt = time.Now()
	r.results = append(r.results, *result)
	return result.ID, nil
}

func (r *fakeResultRepo) ListByStudent(_ context.Context, studentID string) ([]models.Result, error) {
	out := []models.Result{}
	for _, result := range r.results {
		if result.StudentID == studentID {
			out = append(out, result)
		}
	}
	return out, nil
}
