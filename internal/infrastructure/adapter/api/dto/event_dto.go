package dto

// WithdrawalEventRequest is the document-creation event payload for a
// withdrawal request
type WithdrawalEventRequest struct {
	RequestID string `json:"requestId" binding:"required"`
	UID       string `json:"uid"`
	Amount    int64  `json:"amount"`
	ProjectID string `json:"projectId"`
}

// UserCreatedEventRequest is the document-creation event payload for a user
type UserCreatedEventRequest struct {
	UID        string `json:"uid" binding:"required"`
	ProjectID  string `json:"projectId" binding:"required"`
	ReferredBy string `json:"referredBy"`
}

// WithdrawalEventResponse reports the terminal status written back onto the
// triggering request document
type WithdrawalEventResponse struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
}

// EventAck acknowledges an event that produces no document update
type EventAck struct {
	Accepted bool `json:"accepted"`
}
