package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/importer/normalize"
	"github.com/jithinio/brillo/internal/invoice"
	"github.com/jithinio/brillo/internal/project"
)

// createRecord builds and persists the row's primary entity. Any error it
// returns is row-local: the caller records it and moves on.
func (e *Engine) createRecord(ctx context.Context, kind Kind, values map[string]string, clientID *uuid.UUID, batchStart int64, row int) error {
	switch kind {
	case KindProject:
		return e.createProject(ctx, values, clientID)
	case KindInvoice:
		return e.createInvoice(ctx, values, clientID, batchStart, row)
	}

	return fmt.Errorf("unknown import kind: %s", kind)
}

func (e *Engine) createProject(ctx context.Context, values map[string]string, clientID *uuid.UUID) error {
	// A mapped budget cell with a value must come out positive; a blank
	// cell just means no budget was recorded.
	if v, ok := values["budget"]; ok && strings.TrimSpace(v) != "" {
		if normalize.Amount(v) <= 0 {
			return fmt.Errorf("budget must be greater than 0")
		}
	}

	params := project.CreateParams{
		Name:            values["name"],
		Status:          project.Status(normalize.Status(values["status"])),
		Description:     values["description"],
		StartDate:       normalize.DatePtr(values["start_date"], e.settings.DateFormat),
		DueDate:         normalize.DatePtr(values["due_date"], e.settings.DateFormat),
		Budget:          normalize.Amount(values["budget"]),
		Expenses:        normalize.Amount(values["expenses"]),
		PaymentReceived: normalize.Amount(values["payment_received"]),
		Currency:        normalize.Currency(values["currency"], e.settings.DefaultCurrency),
		ClientID:        clientID,
	}

	if v, ok := values["payment_pending"]; ok && strings.TrimSpace(v) != "" {
		pending := normalize.Amount(v)
		params.PaymentPending = &pending
	}

	_, err := e.projects.Create(ctx, params)

	return err
}

func (e *Engine) createInvoice(ctx context.Context, values map[string]string, clientID *uuid.UUID, batchStart int64, row int) error {
	number := strings.TrimSpace(values["invoice_number"])
	if number == "" {
		// Batch timestamp plus row ordinal keeps generated numbers unique
		// within the run.
		number = fmt.Sprintf("INV-%d-%d", batchStart, row+1)
	}

	params := invoice.CreateParams{
		InvoiceNumber: number,
		Status:        invoice.Status(normalize.PaymentStatus(values["status"])),
		Amount:        normalize.Amount(values["amount"]),
		TaxAmount:     normalize.Amount(values["tax_amount"]),
		Currency:      normalize.Currency(values["currency"], e.settings.DefaultCurrency),
		IssueDate:     normalize.DatePtr(values["issue_date"], e.settings.DateFormat),
		DueDate:       normalize.DatePtr(values["due_date"], e.settings.DateFormat),
		Notes:         values["notes"],
		ClientID:      clientID,
	}

	if v, ok := values["total_amount"]; ok && strings.TrimSpace(v) != "" {
		total := normalize.Amount(v)
		params.TotalAmount = &total
	}

	_, err := e.invoices.Create(ctx, params)

	return err
}
