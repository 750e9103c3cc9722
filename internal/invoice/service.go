package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	InvoiceNumber string
	Status        Status
	Amount        int64
	TaxAmount     int64
	// TotalAmount is derived as amount + tax when nil.
	TotalAmount *int64
	Currency    string
	IssueDate   *time.Time
	DueDate     *time.Time
	Notes       string
	ClientID    *uuid.UUID
	ProjectID   *uuid.UUID
}

type ListFilter struct {
	Status    *Status
	ClientID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	number := strings.TrimSpace(params.InvoiceNumber)
	if number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}

	status := params.Status
	if status == "" {
		status = StatusPending
	}

	total := params.Amount + params.TaxAmount
	if params.TotalAmount != nil {
		total = *params.TotalAmount
		slog.Debug("using explicit total_amount", "invoice", number, "total", total)
	} else {
		slog.Debug("computed total_amount", "invoice", number, "total", total)
	}

	inv := &Invoice{
		InvoiceNumber: number,
		Status:        status,
		Amount:        params.Amount,
		TaxAmount:     params.TaxAmount,
		TotalAmount:   total,
		Currency:      params.Currency,
		IssueDate:     params.IssueDate,
		DueDate:       params.DueDate,
		Notes:         params.Notes,
		ClientID:      params.ClientID,
		ProjectID:     params.ProjectID,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Update(ctx context.Context, inv *Invoice) error {
	return s.repo.UpdateInvoice(ctx, inv)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInvoice(ctx, id)
}
