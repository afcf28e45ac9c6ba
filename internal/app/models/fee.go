package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FeeStatus is the payment state of a fee record
type FeeStatus string

const (
	FeeStatusPending FeeStatus = "pending"
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusOverdue FeeStatus = "overdue"
)

// Fee belongs to one student via the external student identifier.
// Status moves pending/overdue -> paid only through the payment operation,
// which also stamps the payment date and transaction id.
type Fee struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID     string             `bson:"studentId" json:"studentId"`
	Description   string             `bson:"description" json:"description"`
	Amount        float64            `bson:"amount" json:"amount"`
	DueDate       time.Time          `bson:"dueDate" json:"dueDate"`
	Status        FeeStatus          `bson:"status" json:"status"`
	PaymentDate   *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
