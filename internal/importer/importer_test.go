package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinio/brillo/internal/client"
	"github.com/jithinio/brillo/internal/config"
	"github.com/jithinio/brillo/internal/importer"
	"github.com/jithinio/brillo/internal/importer/csvx"
	"github.com/jithinio/brillo/internal/importer/mapping"
	"github.com/jithinio/brillo/internal/invoice"
	"github.com/jithinio/brillo/internal/project"
)

// In-memory repositories so the engine runs against the real domain
// services end to end.

type memClientRepo struct {
	clients    []*client.Client
	failCreate bool
}

func (m *memClientRepo) CreateClient(_ context.Context, c *client.Client) error {
	if m.failCreate {
		return errors.New("client insert failed")
	}

	c.ID = uuid.New()
	m.clients = append(m.clients, c)

	return nil
}

func (m *memClientRepo) FindClientByName(_ context.Context, name string) (*client.Client, error) {
	for _, c := range m.clients {
		if c.Name == name {
			return c, nil
		}
	}

	return nil, client.ErrNotFound
}

func (m *memClientRepo) GetClient(_ context.Context, _ uuid.UUID) (*client.Client, error) {
	return nil, client.ErrNotFound
}

func (m *memClientRepo) ListClients(_ context.Context, _ client.ListFilter) ([]*client.Client, error) {
	return m.clients, nil
}

func (m *memClientRepo) UpdateClient(_ context.Context, _ *client.Client) error { return nil }
func (m *memClientRepo) DeleteClient(_ context.Context, _ uuid.UUID) error      { return nil }

type memProjectRepo struct {
	projects []*project.Project
}

func (m *memProjectRepo) CreateProject(_ context.Context, p *project.Project) error {
	p.ID = uuid.New()
	m.projects = append(m.projects, p)

	return nil
}

func (m *memProjectRepo) GetProject(_ context.Context, _ uuid.UUID) (*project.Project, error) {
	return nil, project.ErrNotFound
}

func (m *memProjectRepo) ListProjects(_ context.Context, _ project.ListFilter) ([]*project.Project, error) {
	return m.projects, nil
}

func (m *memProjectRepo) UpdateProject(_ context.Context, _ *project.Project) error { return nil }
func (m *memProjectRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ project.Status) error {
	return nil
}
func (m *memProjectRepo) DeleteProject(_ context.Context, _ uuid.UUID) error { return nil }

type memInvoiceRepo struct {
	invoices []*invoice.Invoice
}

func (m *memInvoiceRepo) CreateInvoice(_ context.Context, inv *invoice.Invoice) error {
	inv.ID = uuid.New()
	m.invoices = append(m.invoices, inv)

	return nil
}

func (m *memInvoiceRepo) GetInvoice(_ context.Context, _ uuid.UUID) (*invoice.Invoice, error) {
	return nil, invoice.ErrNotFound
}

func (m *memInvoiceRepo) ListInvoices(_ context.Context, _ invoice.ListFilter) ([]*invoice.Invoice, error) {
	return m.invoices, nil
}

func (m *memInvoiceRepo) UpdateInvoice(_ context.Context, _ *invoice.Invoice) error { return nil }
func (m *memInvoiceRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ invoice.Status) error {
	return nil
}
func (m *memInvoiceRepo) DeleteInvoice(_ context.Context, _ uuid.UUID) error { return nil }

func testSettings() config.Settings {
	return config.Settings{DateFormat: "2006-01-02", DefaultCurrency: "USD"}
}

func newEngine(cr *memClientRepo, pr *memProjectRepo, ir *memInvoiceRepo) *importer.Engine {
	return importer.NewEngine(
		client.NewService(cr),
		project.NewService(pr),
		invoice.NewService(ir),
		testSettings(),
	)
}

func TestEngine_ProjectImportEndToEnd(t *testing.T) {
	table, err := csvx.Tokenize(strings.Join([]string{
		"name,status,budget,client_name",
		"Website,active,5000,Acme",
		"App,invalid_status,0,",
		"Logo,completed,1200,Acme",
	}, "\n"))
	require.NoError(t, err)

	cat := mapping.ProjectCatalog()
	mappings := mapping.AutoMap(table.Headers, cat, mapping.Strict)
	require.NoError(t, mapping.Validate(mappings, cat))

	clientRepo := &memClientRepo{}
	projectRepo := &memProjectRepo{}

	var progress []int

	engine := newEngine(clientRepo, projectRepo, &memInvoiceRepo{})
	result, err := engine.Run(context.Background(), importer.Job{
		Kind:          importer.KindProject,
		Table:         table,
		Mappings:      mappings,
		ImportClients: true,
		Progress:      func(pct int) { progress = append(progress, pct) },
	})
	require.NoError(t, err)

	assert.Equal(t, importer.Tally{Success: 2, Errors: 1, Total: 3}, result.Records)
	assert.Equal(t, importer.Tally{Success: 1, Errors: 0, Total: 1}, result.Clients)

	require.Len(t, result.ErrorMessages, 1)
	assert.Contains(t, result.ErrorMessages[0], "Row 2:")
	assert.Contains(t, result.ErrorMessages[0], "greater than 0")

	// One Acme, not two; both successful projects link to it.
	require.Len(t, clientRepo.clients, 1)
	acmeID := clientRepo.clients[0].ID

	require.Len(t, projectRepo.projects, 2)
	assert.Equal(t, project.StatusActive, projectRepo.projects[0].Status)
	assert.Equal(t, int64(500000), projectRepo.projects[0].Budget)
	require.NotNil(t, projectRepo.projects[0].ClientID)
	assert.Equal(t, acmeID, *projectRepo.projects[0].ClientID)

	assert.Equal(t, project.StatusCompleted, projectRepo.projects[1].Status)
	require.NotNil(t, projectRepo.projects[1].ClientID)
	assert.Equal(t, acmeID, *projectRepo.projects[1].ClientID)

	// Progress reaches exactly 100 and never decreases.
	assert.Equal(t, []int{33, 67, 100}, progress)
}

func TestEngine_InvoiceImport(t *testing.T) {
	table, err := csvx.Tokenize(strings.Join([]string{
		"invoice_number,amount,tax_amount,status,issue_date",
		"INV-A,1000,230,paid,2024-01-15",
		",500,,sent,June 25 2025",
		"INV-C,0,,unpaid,",
	}, "\n"))
	require.NoError(t, err)

	cat := mapping.InvoiceCatalog()
	mappings := mapping.AutoMap(table.Headers, cat, mapping.Permissive)
	require.NoError(t, mapping.Validate(mappings, cat))

	invoiceRepo := &memInvoiceRepo{}

	engine := newEngine(&memClientRepo{}, &memProjectRepo{}, invoiceRepo)
	result, err := engine.Run(context.Background(), importer.Job{
		Kind:     importer.KindInvoice,
		Table:    table,
		Mappings: mappings,
	})
	require.NoError(t, err)

	assert.Equal(t, importer.Tally{Success: 2, Errors: 1, Total: 3}, result.Records)
	require.Len(t, result.ErrorMessages, 1)
	assert.Contains(t, result.ErrorMessages[0], "Row 3: amount must be greater than 0")

	require.Len(t, invoiceRepo.invoices, 2)

	first := invoiceRepo.invoices[0]
	assert.Equal(t, "INV-A", first.InvoiceNumber)
	assert.Equal(t, invoice.StatusPaid, first.Status)
	assert.Equal(t, int64(123000), first.TotalAmount)
	require.NotNil(t, first.IssueDate)
	assert.Equal(t, "2024-01-15", first.IssueDate.Format("2006-01-02"))

	second := invoiceRepo.invoices[1]
	assert.True(t, strings.HasPrefix(second.InvoiceNumber, "INV-"), "generated number %q", second.InvoiceNumber)
	assert.Equal(t, invoice.StatusPending, second.Status)
	assert.Equal(t, int64(50000), second.TotalAmount)
}

func TestEngine_ClientFailureDoesNotFailRow(t *testing.T) {
	table, err := csvx.Tokenize("name,budget,client_name\nWebsite,5000,Acme\n")
	require.NoError(t, err)

	cat := mapping.ProjectCatalog()
	mappings := mapping.AutoMap(table.Headers, cat, mapping.Strict)

	clientRepo := &memClientRepo{failCreate: true}
	projectRepo := &memProjectRepo{}

	engine := newEngine(clientRepo, projectRepo, &memInvoiceRepo{})
	result, err := engine.Run(context.Background(), importer.Job{
		Kind:          importer.KindProject,
		Table:         table,
		Mappings:      mappings,
		ImportClients: true,
	})
	require.NoError(t, err)

	assert.Equal(t, importer.Tally{Success: 1, Errors: 0, Total: 1}, result.Records)
	assert.Equal(t, importer.Tally{Success: 0, Errors: 1, Total: 1}, result.Clients)

	require.Len(t, projectRepo.projects, 1)
	assert.Nil(t, projectRepo.projects[0].ClientID)
}

func TestEngine_MissingRequiredMappingBlocks(t *testing.T) {
	table, err := csvx.Tokenize("status,budget\nactive,5000\n")
	require.NoError(t, err)

	mappings := mapping.AutoMap(table.Headers, mapping.ProjectCatalog(), mapping.Strict)

	engine := newEngine(&memClientRepo{}, &memProjectRepo{}, &memInvoiceRepo{})
	_, err = engine.Run(context.Background(), importer.Job{
		Kind:     importer.KindProject,
		Table:    table,
		Mappings: mappings,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not mapped")
}

func TestEngine_LaterColumnWinsForDuplicateTargets(t *testing.T) {
	table := &csvx.Table{
		Headers: []string{"a", "b"},
		Rows:    [][]string{{"First", "Second"}},
	}
	mappings := []mapping.Mapping{
		{Source: "a", Target: "name"},
		{Source: "b", Target: "name"},
	}

	projectRepo := &memProjectRepo{}

	engine := newEngine(&memClientRepo{}, projectRepo, &memInvoiceRepo{})
	result, err := engine.Run(context.Background(), importer.Job{
		Kind:     importer.KindProject,
		Table:    table,
		Mappings: mappings,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Records.Success)
	require.Len(t, projectRepo.projects, 1)
	assert.Equal(t, "Second", projectRepo.projects[0].Name)
}
