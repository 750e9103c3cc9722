package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("project not found")

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusPipeline  Status = "pipeline"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Project represents an engagement for a client. Monetary fields are in cents.
type Project struct {
	ID              uuid.UUID
	Name            string
	Status          Status
	Description     string
	StartDate       *time.Time
	DueDate         *time.Time
	Budget          int64
	Expenses        int64
	PaymentReceived int64
	PaymentPending  int64
	Currency        string
	ClientID        *uuid.UUID
	Client          *ClientRef // Loaded via JOIN
	CreatedAt       time.Time
	UpdatedAt       *time.Time
	DeletedAt       *time.Time
}

// ClientRef is the client summary carried on list/detail responses.
type ClientRef struct {
	ID   uuid.UUID
	Name string
}
