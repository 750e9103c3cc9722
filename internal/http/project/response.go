package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/project"
)

type projectResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Status          project.Status  `json:"status"`
	Description     string          `json:"description,omitempty"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	Budget          int64           `json:"budget"`
	Expenses        int64           `json:"expenses"`
	PaymentReceived int64           `json:"payment_received"`
	PaymentPending  int64           `json:"payment_pending"`
	Currency        string          `json:"currency"`
	ClientID        *uuid.UUID      `json:"client_id,omitempty"`
	Client          *clientResponse `json:"client,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       *time.Time      `json:"updated_at,omitempty"`
}

type clientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(p *project.Project) projectResponse {
	resp := projectResponse{
		ID:              p.ID,
		Name:            p.Name,
		Status:          p.Status,
		Description:     p.Description,
		StartDate:       p.StartDate,
		DueDate:         p.DueDate,
		Budget:          p.Budget,
		Expenses:        p.Expenses,
		PaymentReceived: p.PaymentReceived,
		PaymentPending:  p.PaymentPending,
		Currency:        p.Currency,
		ClientID:        p.ClientID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if p.Client != nil {
		resp.Client = &clientResponse{
			ID:   p.Client.ID,
			Name: p.Client.Name,
		}
	}

	return resp
}

func toResponseList(projects []*project.Project) []projectResponse {
	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = toResponse(p)
	}

	return resp
}
