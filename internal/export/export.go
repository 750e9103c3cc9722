// Package export renders domain entities as downloadable tables: CSV,
// XLSX, and the blank sample templates offered before an import.
package export

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jithinio/brillo/internal/client"
	"github.com/jithinio/brillo/internal/invoice"
	"github.com/jithinio/brillo/internal/project"
)

// Table is a rendered export: a header row plus data rows, every cell
// already formatted as text.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ClientTable renders clients for export.
func ClientTable(clients []*client.Client) Table {
	t := Table{
		Headers: []string{"name", "company", "email", "phone", "address", "city", "state", "zip_code", "country", "status"},
	}

	for _, c := range clients {
		t.Rows = append(t.Rows, []string{
			c.Name, c.Company, c.Email, c.Phone, c.Address,
			c.City, c.State, c.ZipCode, c.Country, string(c.Status),
		})
	}

	return t
}

// ProjectTable renders projects for export.
func ProjectTable(projects []*project.Project) Table {
	t := Table{
		Headers: []string{"name", "status", "description", "start_date", "due_date", "budget", "expenses", "payment_received", "payment_pending", "currency", "client_name"},
	}

	for _, p := range projects {
		clientName := ""
		if p.Client != nil {
			clientName = p.Client.Name
		}

		t.Rows = append(t.Rows, []string{
			p.Name, string(p.Status), p.Description,
			formatDate(p.StartDate), formatDate(p.DueDate),
			formatAmount(p.Budget), formatAmount(p.Expenses),
			formatAmount(p.PaymentReceived), formatAmount(p.PaymentPending),
			p.Currency, clientName,
		})
	}

	return t
}

// InvoiceTable renders invoices for export.
func InvoiceTable(invoices []*invoice.Invoice) Table {
	t := Table{
		Headers: []string{"invoice_number", "status", "amount", "tax_amount", "total_amount", "currency", "issue_date", "due_date", "notes", "client_name"},
	}

	for _, inv := range invoices {
		clientName := ""
		if inv.Client != nil {
			clientName = inv.Client.Name
		}

		t.Rows = append(t.Rows, []string{
			inv.InvoiceNumber, string(inv.Status),
			formatAmount(inv.Amount), formatAmount(inv.TaxAmount), formatAmount(inv.TotalAmount),
			inv.Currency, formatDate(inv.IssueDate), formatDate(inv.DueDate),
			inv.Notes, clientName,
		})
	}

	return t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}

	return t.Format("2006-01-02")
}

// formatAmount renders stored cents as a plain decimal, e.g. 123456 -> "1234.56".
func formatAmount(cents int64) string {
	return decimal.New(cents, -2).String()
}
