package client

import (
	"time"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/client"
)

type clientResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Company   string        `json:"company,omitempty"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Address   string        `json:"address,omitempty"`
	City      string        `json:"city,omitempty"`
	State     string        `json:"state,omitempty"`
	ZipCode   string        `json:"zip_code,omitempty"`
	Country   string        `json:"country,omitempty"`
	Status    client.Status `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Company:   c.Company,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Country:   c.Country,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}
