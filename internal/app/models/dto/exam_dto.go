package dto

import "github.com/Sufiyanali07/erp-backend/internal/app/models"

// ExamFilter narrows the exam listing. All fields are optional.
type ExamFilter struct {
	StudentID  string
	Department string
	Semester   int
}

// CreateExamRequest schedules an exam (faculty only)
type CreateExamRequest struct {
	Subject    string `json:"subject" binding:"required"`
	Department string `json:"department" binding:"required"`
	Semester   int    `json:"semester" binding:"required,min=1,max=8"`
	Date       string `json:"date" binding:"required"` // RFC 3339 date
	StartTime  string `json:"startTime" binding:"required"`
	Duration   int    `json:"duration" binding:"required,gt=0"`
	Venue      string `json:"venue" binding:"required"`
	MaxMarks   int    `json:"maxMarks" binding:"required,gt=0"`
}

// RecordResultRequest records a student's marks for an existing exam
// (faculty only). Grade and pass/fail outcome are derived server-side.
type RecordResultRequest struct {
	ExamID        string `json:"examId" binding:"required"`
	StudentID     string `json:"studentId" binding:"required"`
	MarksObtained int    `json:"marksObtained" binding:"min=0"`
}

// ExamListResponse is the exam listing, with the student's results
// included when the listing was scoped to a student
type ExamListResponse struct {
	Exams   []models.Exam   `json:"exams"`
	Results []models.Result `json:"results,omitempty"`
}
