package domain

import "time"

// Event types published for verification decisions.
const (
	EventVerificationApproved = "seller.verification.approved"
	EventVerificationRejected = "seller.verification.rejected"
)

// DomainEvent is an event raised by the verification aggregate.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// VerificationApprovedEvent is emitted when an admin approves a seller.
type VerificationApprovedEvent struct {
	SellerID   string    `json:"sellerId"`
	ApprovedAt time.Time `json:"approvedAt"`
}

func (e *VerificationApprovedEvent) EventType() string {
	return EventVerificationApproved
}

func (e *VerificationApprovedEvent) AggregateID() string {
	return e.SellerID
}

// VerificationRejectedEvent is emitted when an admin rejects a seller.
type VerificationRejectedEvent struct {
	SellerID   string    `json:"sellerId"`
	Reason     string    `json:"reason"`
	RejectedAt time.Time `json:"rejectedAt"`
}

func (e *VerificationRejectedEvent) EventType() string {
	return EventVerificationRejected
}

func (e *VerificationRejectedEvent) AggregateID() string {
	return e.SellerID
}
