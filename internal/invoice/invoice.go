package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("invoice not found")

// Status represents the payment state of an invoice.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusPartial   Status = "partial"
	StatusCancelled Status = "cancelled"
)

// Invoice represents a bill issued to a client. Monetary fields are in cents.
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	Status        Status
	Amount        int64
	TaxAmount     int64
	TotalAmount   int64
	Currency      string
	IssueDate     *time.Time
	DueDate       *time.Time
	Notes         string
	ClientID      *uuid.UUID
	ProjectID     *uuid.UUID
	Client        *ClientRef // Loaded via JOIN
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	DeletedAt     *time.Time
}

type ClientRef struct {
	ID   uuid.UUID
	Name string
}
