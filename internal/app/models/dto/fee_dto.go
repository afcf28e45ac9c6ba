package dto

// PayFeeRequest initiates payment of a single fee record. The gateway is
// simulated; paymentMethod is recorded as submitted.
type PayFeeRequest struct {
	FeeID         string `json:"feeId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card netbanking upi cash"`
}

// CreateFeeRequest creates a fee record for a student (admin only)
type CreateFeeRequest struct {
	StudentID   string  `json:"studentId" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	DueDate     string  `json:"dueDate" binding:"required"` // RFC 3339 date
}
