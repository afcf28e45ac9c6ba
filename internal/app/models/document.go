package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentStatus is the review state of a document request
type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
	DocumentStatusReady    DocumentStatus = "ready"
)

// DocumentType enumerates the kinds of documents a student can request
type DocumentType string

const (
	DocumentTypeBonafide   DocumentType = "bonafide"
	DocumentTypeTranscript DocumentType = "transcript"
	DocumentTypeMigration  DocumentType = "migration"
	DocumentTypeCharacter  DocumentType = "character"
)

// DocumentRequest starts at pending and transitions only through the
// faculty review action. Remarks are stored verbatim, empty string included.
type DocumentRequest struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID  string             `bson:"studentId" json:"studentId"`
	Type       DocumentType       `bson:"type" json:"type"`
	Urgent     bool               `bson:"urgent" json:"urgent"`
	Status     DocumentStatus     `bson:"status" json:"status"`
	Remarks    string             `bson:"remarks" json:"remarks"`
	ReviewedBy string             `bson:"reviewedBy,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time         `bson:"reviewedAt,omitempty" json:"reviewedAt,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
