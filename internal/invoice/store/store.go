package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/invoice"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectInvoiceColumns = `
	i.id, i.invoice_number, i.status, i.amount, i.tax_amount, i.total_amount,
	i.currency, i.issue_date, i.due_date, i.notes, i.client_id, i.project_id,
	c.name AS client_name, i.created_at, i.updated_at, i.deleted_at
`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var inv invoice.Invoice

	var statusStr string

	var clientID, projectID *uuid.UUID

	var clientName sql.NullString

	if err := s.Scan(
		&inv.ID, &inv.InvoiceNumber, &statusStr, &inv.Amount, &inv.TaxAmount, &inv.TotalAmount,
		&inv.Currency, &inv.IssueDate, &inv.DueDate, &inv.Notes, &clientID, &projectID,
		&clientName, &inv.CreatedAt, &inv.UpdatedAt, &inv.DeletedAt,
	); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(statusStr)
	inv.ClientID = clientID
	inv.ProjectID = projectID

	if clientID != nil && clientName.Valid {
		inv.Client = &invoice.ClientRef{ID: *clientID, Name: clientName.String}
	}

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (invoice_number, status, amount, tax_amount, total_amount, currency, issue_date, due_date, notes, client_id, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.InvoiceNumber, inv.Status, inv.Amount, inv.TaxAmount, inv.TotalAmount,
		inv.Currency, inv.IssueDate, inv.DueDate, inv.Notes, inv.ClientID, inv.ProjectID,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		LEFT JOIN clients c ON i.client_id = c.id
		WHERE i.id = $1 AND i.deleted_at IS NULL`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectInvoiceColumns + `
		FROM invoices i
		LEFT JOIN clients c ON i.client_id = c.id
		WHERE i.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND i.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.ClientID != nil {
		query += fmt.Sprintf(" AND i.client_id = $%d", argIdx)

		args = append(args, *filter.ClientID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND i.issue_date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND i.issue_date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY i.issue_date DESC NULLS LAST, i.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice rows: %w", err)
	}

	return invoices, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number = $1, status = $2, amount = $3, tax_amount = $4, total_amount = $5,
			currency = $6, issue_date = $7, due_date = $8, notes = $9,
			client_id = $10, project_id = $11, updated_at = NOW()
		WHERE id = $12 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query,
		inv.InvoiceNumber, inv.Status, inv.Amount, inv.TaxAmount, inv.TotalAmount,
		inv.Currency, inv.IssueDate, inv.DueDate, inv.Notes,
		inv.ClientID, inv.ProjectID, inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}

	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status invoice.Status) error {
	query := `
		UPDATE invoices
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL
	`

	_, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating invoice status: %w", err)
	}

	return nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE invoices
		SET deleted_at = NOW()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	return nil
}
