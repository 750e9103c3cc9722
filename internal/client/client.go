package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("client not found")

// Status represents the relationship state of a client.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Client represents a person or company work is billed to.
type Client struct {
	ID        uuid.UUID
	Name      string
	Company   string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Country   string
	Status    Status
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}
