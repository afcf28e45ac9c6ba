package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exam is a scheduled examination
type Exam struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Subject    string             `bson:"subject" json:"subject"`
	Department string             `bson:"department" json:"department"`
	Semester   int                `bson:"semester" json:"semester"`
	Date       time.Time          `bson:"date" json:"date"`
	StartTime  string             `bson:"startTime" json:"startTime"`
	Duration   int                `bson:"duration" json:"duration"` // minutes
	Venue      string             `bson:"venue" json:"venue"`
	MaxMarks   int                `bson:"maxMarks" json:"maxMarks"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// ResultStatus is the pass/fail outcome of a result
type ResultStatus string

const (
	ResultStatusPass ResultStatus = "pass"
	ResultStatusFail ResultStatus = "fail"
)

// Result references an exam and a student. ExamID is a soft reference;
// existence is checked on creation but not enforced transactionally.
type Result struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ExamID        primitive.ObjectID `bson:"examId" json:"examId"`
	StudentID     string             `bson:"studentId" json:"studentId"`
	MarksObtained int                `bson:"marksObtained" json:"marksObtained"`
	Grade         string             `bson:"grade" json:"grade"`
	Status        ResultStatus       `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// GradeFor derives the letter grade and pass/fail outcome from obtained
// and maximum marks. Below 40 percent is a fail.
func GradeFor(marks, maxMarks int) (string, ResultStatus) {
	if maxMarks <= 0 {
		return "F", ResultStatusFail
	}
	pct := float64(marks) / float64(maxMarks) * 100

	switch {
	case pct >= 90:
		return "A+", ResultStatusPass
	case pct >= 80:
		return "A", ResultStatusPass
	case pct >= 70:
		return "B", ResultStatusPass
	case pct >= 60:
		return "C", ResultStatusPass
	case pct >= 50:
		return "D", ResultStatusPass
	case pct >= 40:
		return "E", ResultStatusPass
	default:
		return "F", ResultStatusFail
	}
}
