package domain

import (
	"time"

	"github.com/google/uuid"
)

// InquiryStatus represents the workflow state of an inquiry.
type InquiryStatus string

const (
	StatusNew        InquiryStatus = "new"
	StatusInProgress InquiryStatus = "in_progress"
	StatusReplied    InquiryStatus = "replied"
	StatusClosed     InquiryStatus = "closed"
)

// InquiryChannel represents the channel an inquiry arrived on.
type InquiryChannel string

const (
	ChannelEmail InquiryChannel = "email"
	ChannelWeb   InquiryChannel = "web"
)

// Inquiry is one inbound customer message subject to classification.
// The raw body lives in the body store (MongoDB); Body here is the plain
// text used for classification and may be empty until hydrated.
type Inquiry struct {
	ID             uuid.UUID
	EmailAccountID uuid.UUID
	ThreadID       string
	ExternalID     string // provider message ID
	FromEmail      string
	FromName       string
	Subject        string
	Body           string
	Channel        InquiryChannel
	Status         InquiryStatus
	AssignedTo     *uuid.UUID
	ShipmentID     *uuid.UUID
	ReceivedAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// InquiryFilter narrows inquiry listings.
type InquiryFilter struct {
	EmailAccountIDs []uuid.UUID
	Status          *InquiryStatus
	AssignedTo      *uuid.UUID
	Limit           int
	Offset          int
}
