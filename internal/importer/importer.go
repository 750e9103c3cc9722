// Package importer runs the CSV import pipeline: tokenized rows are mapped
// through a field mapping, normalized per field type, and written row by row
// with per-row error isolation. A malformed row never halts the batch;
// partial success is a normal terminal state.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/client"
	"github.com/jithinio/brillo/internal/config"
	"github.com/jithinio/brillo/internal/importer/csvx"
	"github.com/jithinio/brillo/internal/importer/mapping"
	"github.com/jithinio/brillo/internal/invoice"
	"github.com/jithinio/brillo/internal/project"
)

type Kind string

const (
	KindProject Kind = "project"
	KindInvoice Kind = "invoice"
)

// ClientDirectory resolves and creates clients during an import run.
// Implemented by client.Service.
type ClientDirectory interface {
	FindByName(ctx context.Context, name string) (*client.Client, error)
	Create(ctx context.Context, params client.CreateParams) (*client.Client, error)
}

// ProjectCreator is implemented by project.Service.
type ProjectCreator interface {
	Create(ctx context.Context, params project.CreateParams) (*project.Project, error)
}

// InvoiceCreator is implemented by invoice.Service.
type InvoiceCreator interface {
	Create(ctx context.Context, params invoice.CreateParams) (*invoice.Invoice, error)
}

type Engine struct {
	clients  ClientDirectory
	projects ProjectCreator
	invoices InvoiceCreator
	settings config.Settings
}

func NewEngine(clients ClientDirectory, projects ProjectCreator, invoices InvoiceCreator, settings config.Settings) *Engine {
	return &Engine{
		clients:  clients,
		projects: projects,
		invoices: invoices,
		settings: settings,
	}
}

// Job is a confirmed import: a tokenized table plus finalized mappings.
type Job struct {
	Kind          Kind
	Table         *csvx.Table
	Mappings      []mapping.Mapping
	ImportClients bool
	// Progress, when set, is called after every row with the rounded
	// percentage, success or failure.
	Progress func(pct int)
}

type Tally struct {
	Success int `json:"success"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}

type Result struct {
	Records       Tally    `json:"records"`
	Clients       Tally    `json:"clients"`
	ErrorMessages []string `json:"error_messages"`
}

// Run executes the import sequentially, one row at a time. Row-local
// failures are accumulated as "Row N: reason" messages; only structural
// problems (unknown kind, invalid mapping) fail the run itself.
func (e *Engine) Run(ctx context.Context, job Job) (*Result, error) {
	cat, _, ok := mapping.CatalogFor(string(job.Kind))
	if !ok {
		return nil, fmt.Errorf("unknown import kind: %s", job.Kind)
	}

	if job.Table == nil || len(job.Table.Rows) == 0 {
		return nil, fmt.Errorf("no data rows to import")
	}

	if err := mapping.Validate(job.Mappings, cat); err != nil {
		return nil, err
	}

	st, err := start(job)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	result.Records.Total = len(job.Table.Rows)

	// Batch-scoped dedup: client name to id, owned exclusively by this loop.
	resolved := make(map[string]uuid.UUID)
	batchStart := time.Now().Unix()

	for i := range job.Table.Rows {
		values := rowValues(job.Table, job.Mappings, i)

		var clientID *uuid.UUID
		if job.ImportClients {
			clientID = e.resolveClient(ctx, values, resolved, result)
		}

		if err := e.createRecord(ctx, job.Kind, values, clientID, batchStart, i); err != nil {
			result.Records.Errors++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %v", i+1, err))
		} else {
			result.Records.Success++
		}

		pct := int(math.Round(float64(i+1) / float64(result.Records.Total) * 100))

		st, err = Next(st, Progressed{Percent: pct})
		if err != nil {
			return nil, err
		}

		if job.Progress != nil {
			job.Progress(pct)
		}
	}

	if _, err := Next(st, Finished{Result: result}); err != nil {
		return nil, err
	}

	return result, nil
}

// start walks the flow from upload to importing for an already-confirmed job.
func start(job Job) (State, error) {
	var st State = UploadState{}

	for _, ev := range []Event{
		FileParsed{Table: job.Table, Mappings: job.Mappings},
		MappingConfirmed{ImportClients: job.ImportClients},
		ImportStarted{},
	} {
		var err error

		st, err = Next(st, ev)
		if err != nil {
			return nil, err
		}
	}

	return st, nil
}

// rowValues extracts a row into target-field keyed values. When two columns
// map to the same target, the later column wins.
func rowValues(table *csvx.Table, mappings []mapping.Mapping, row int) map[string]string {
	values := make(map[string]string)

	for col, m := range mappings {
		if !m.Mapped() {
			continue
		}

		values[m.Target] = table.Cell(row, col)
	}

	return values
}

// resolveClient returns the client id for the row's client fields, creating
// the client when it is new to both this batch and the store. Failures here
// degrade to "no client link"; they never fail the row.
func (e *Engine) resolveClient(ctx context.Context, values map[string]string, resolved map[string]uuid.UUID, result *Result) *uuid.UUID {
	draft := clientDraft(values)
	if draft.Name == "" {
		return nil
	}

	if id, ok := resolved[draft.Name]; ok {
		return &id
	}

	existing, err := e.clients.FindByName(ctx, draft.Name)
	if err != nil {
		slog.Warn("client lookup failed, importing without client link", "client", draft.Name, "error", err)
		return nil
	}

	if existing != nil {
		resolved[draft.Name] = existing.ID
		return &existing.ID
	}

	result.Clients.Total++

	created, err := e.clients.Create(ctx, draft)
	if err != nil {
		result.Clients.Errors++
		slog.Warn("client create failed, importing without client link", "client", draft.Name, "error", err)

		return nil
	}

	result.Clients.Success++
	resolved[draft.Name] = created.ID

	return &created.ID
}

func clientDraft(values map[string]string) client.CreateParams {
	return client.CreateParams{
		Name:    values["client_name"],
		Company: values["client_company"],
		Email:   values["client_email"],
		Phone:   values["client_phone"],
	}
}
