package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinio/brillo/internal/importer/csvx"
	"github.com/jithinio/brillo/internal/importer/mapping"
)

func targets(mappings []mapping.Mapping) []string {
	out := make([]string, len(mappings))
	for i, m := range mappings {
		out[i] = m.Target
	}

	return out
}

func TestAutoMap_OneMappingPerHeader(t *testing.T) {
	headers := []string{"Project Name", "Status", "Budget", "mystery column"}
	mappings := mapping.AutoMap(headers, mapping.ProjectCatalog(), mapping.Strict)

	require.Len(t, mappings, len(headers))

	for i, m := range mappings {
		assert.Equal(t, headers[i], m.Source)
	}

	assert.Equal(t, []string{"name", "status", "budget", ""}, targets(mappings))
}

func TestAutoMap_NormalizesHeaders(t *testing.T) {
	headers := []string{"project_name", "START-DATE", " Payment Received "}
	mappings := mapping.AutoMap(headers, mapping.ProjectCatalog(), mapping.Strict)

	assert.Equal(t, []string{"name", "start_date", "payment_received"}, targets(mappings))
}

func TestAutoMap_StrictUsesAliasesNotSubstrings(t *testing.T) {
	cat := mapping.ProjectCatalog()

	// "deadline" is an explicit alias; "some date" is not, and strict mode
	// must not substring-match it onto a date field.
	mappings := mapping.AutoMap([]string{"Deadline", "some date"}, cat, mapping.Strict)
	assert.Equal(t, []string{"due_date", ""}, targets(mappings))
}

func TestAutoMap_PermissiveSubstrings(t *testing.T) {
	cat := mapping.InvoiceCatalog()

	mappings := mapping.AutoMap([]string{"Invoice Amount", "Client"}, cat, mapping.Permissive)
	assert.Equal(t, []string{"amount", "client_name"}, targets(mappings))
}

func TestAutoMap_ExactMatchBeatsSubstring(t *testing.T) {
	cat := mapping.InvoiceCatalog()

	// "Tax Amount" contains "amount" but must land on its own field.
	mappings := mapping.AutoMap([]string{"Amount", "Tax Amount", "Total Amount"}, cat, mapping.Permissive)
	assert.Equal(t, []string{"amount", "tax_amount", "total_amount"}, targets(mappings))
}

func TestMapping_Mapped(t *testing.T) {
	assert.True(t, mapping.Mapping{Source: "a", Target: "name"}.Mapped())
	assert.False(t, mapping.Mapping{Source: "a", Target: ""}.Mapped())
	assert.False(t, mapping.Mapping{Source: "a", Target: mapping.TargetNone}.Mapped())
}

func TestValidate_RequiredFieldMissing(t *testing.T) {
	cat := mapping.InvoiceCatalog()
	mappings := mapping.AutoMap([]string{"notes", "status"}, cat, mapping.Permissive)

	err := mapping.Validate(mappings, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Amount")
}

func TestValidate_CreatedAtIsHardError(t *testing.T) {
	cat := mapping.InvoiceCatalog()
	mappings := []mapping.Mapping{
		{Source: "amount", Target: "amount"},
		{Source: "created", Target: "created_at"},
	}

	err := mapping.Validate(mappings, cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at")
}

func TestValidate_DuplicateTargetsAllowed(t *testing.T) {
	cat := mapping.InvoiceCatalog()
	mappings := []mapping.Mapping{
		{Source: "a", Target: "amount"},
		{Source: "b", Target: "amount"},
	}

	assert.NoError(t, mapping.Validate(mappings, cat))
}

func TestReview_Warnings(t *testing.T) {
	table, err := csvx.Tokenize("amount,issue_date\nlots,someday\n")
	require.NoError(t, err)

	cat := mapping.InvoiceCatalog()
	mappings := mapping.AutoMap(table.Headers, cat, mapping.Permissive)

	warnings := mapping.Review(mappings, table, cat, "2006-01-02")
	require.Len(t, warnings, 2)
	assert.Equal(t, "amount", warnings[0].Column)
	assert.Equal(t, "issue_date", warnings[1].Column)
}

func TestReview_CleanDataNoWarnings(t *testing.T) {
	table, err := csvx.Tokenize("amount,issue_date\n1500,2024-06-25\n")
	require.NoError(t, err)

	cat := mapping.InvoiceCatalog()
	mappings := mapping.AutoMap(table.Headers, cat, mapping.Permissive)

	assert.Empty(t, mapping.Review(mappings, table, cat, "2006-01-02"))
}
