package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/invoice"
)

type invoiceResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	Status        invoice.Status  `json:"status"`
	Amount        int64           `json:"amount"`
	TaxAmount     int64           `json:"tax_amount"`
	TotalAmount   int64           `json:"total_amount"`
	Currency      string          `json:"currency"`
	IssueDate     *time.Time      `json:"issue_date,omitempty"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	ClientID      *uuid.UUID      `json:"client_id,omitempty"`
	ProjectID     *uuid.UUID      `json:"project_id,omitempty"`
	Client        *clientResponse `json:"client,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     *time.Time      `json:"updated_at,omitempty"`
}

type clientResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	resp := invoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Status:        inv.Status,
		Amount:        inv.Amount,
		TaxAmount:     inv.TaxAmount,
		TotalAmount:   inv.TotalAmount,
		Currency:      inv.Currency,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Notes:         inv.Notes,
		ClientID:      inv.ClientID,
		ProjectID:     inv.ProjectID,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}

	if inv.Client != nil {
		resp.Client = &clientResponse{
			ID:   inv.Client.ID,
			Name: inv.Client.Name,
		}
	}

	return resp
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}
