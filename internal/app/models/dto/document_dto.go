package dto

// CreateDocumentRequest submits a new document request for the
// authenticated student
type CreateDocumentRequest struct {
	Type   string `json:"type" binding:"required,oneof=bonafide transcript migration character"`
	Urgent bool   `json:"urgent"`
}

// ReviewApplicationRequest resolves a pending document request. Remarks may
// be empty; whatever is submitted is stored verbatim.
type ReviewApplicationRequest struct {
	ApplicationID string  `json:"applicationId" binding:"required"`
	Action        string  `json:"action" binding:"required,oneof=approved rejected"`
	Remarks       *string `json:"remarks"`
}
