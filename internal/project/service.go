package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	ListProjects(ctx context.Context, filter ListFilter) ([]*Project, error)
	UpdateProject(ctx context.Context, p *Project) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name            string
	Status          Status
	Description     string
	StartDate       *time.Time
	DueDate         *time.Time
	Budget          int64
	Expenses        int64
	PaymentReceived int64
	// PaymentPending is derived from budget and received payments when nil.
	PaymentPending *int64
	Currency       string
	ClientID       *uuid.UUID
}

type ListFilter struct {
	Status    *Status
	ClientID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	status := params.Status
	if status == "" {
		status = StatusActive
	}

	pending := max(0, params.Budget-params.PaymentReceived)
	if params.PaymentPending != nil {
		pending = *params.PaymentPending
		slog.Debug("using explicit payment_pending", "project", name, "pending", pending)
	} else {
		slog.Debug("computed payment_pending", "project", name, "pending", pending)
	}

	p := &Project{
		Name:            name,
		Status:          status,
		Description:     params.Description,
		StartDate:       params.StartDate,
		DueDate:         params.DueDate,
		Budget:          params.Budget,
		Expenses:        params.Expenses,
		PaymentReceived: params.PaymentReceived,
		PaymentPending:  pending,
		Currency:        params.Currency,
		ClientID:        params.ClientID,
	}
	if err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Project, error) {
	return s.repo.ListProjects(ctx, filter)
}

func (s *Service) Update(ctx context.Context, p *Project) error {
	return s.repo.UpdateProject(ctx, p)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProject(ctx, id)
}
