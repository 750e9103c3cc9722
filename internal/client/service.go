package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	FindClientByName(ctx context.Context, name string) (*Client, error)
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Company string
	Email   string
	Phone   string
	Address string
	City    string
	State   string
	ZipCode string
	Country string
}

type ListFilter struct {
	Status *Status
	Search string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	if strings.TrimSpace(params.Name) == "" {
		return nil, fmt.Errorf("client name is required")
	}

	c := &Client{
		Name:    strings.TrimSpace(params.Name),
		Company: params.Company,
		Email:   params.Email,
		Phone:   params.Phone,
		Address: params.Address,
		City:    params.City,
		State:   params.State,
		ZipCode: params.ZipCode,
		Country: params.Country,
		Status:  StatusActive,
	}
	if err := s.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

// FindByName looks up a client by exact name. Returns (nil, nil) when no
// client exists, so the import path can distinguish "absent" from failure.
func (s *Service) FindByName(ctx context.Context, name string) (*Client, error) {
	c, err := s.repo.FindClientByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	return s.repo.ListClients(ctx, filter)
}

func (s *Service) Update(ctx context.Context, c *Client) error {
	return s.repo.UpdateClient(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}
