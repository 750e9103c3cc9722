package csvx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jithinio/brillo/internal/importer/csvx"
)

func TestTokenize_Simple(t *testing.T) {
	table, err := csvx.Tokenize("name,status,budget\nWebsite,active,5000\nApp,completed,1200\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "status", "budget"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Website", "active", "5000"}, table.Rows[0])
	assert.Equal(t, []string{"App", "completed", "1200"}, table.Rows[1])
}

func TestTokenize_QuotedFieldWithComma(t *testing.T) {
	table, err := csvx.Tokenize("name,client\n\"Acme, Inc. rebrand\",Acme\n")
	require.NoError(t, err)

	assert.Equal(t, "Acme, Inc. rebrand", table.Rows[0][0])
	assert.Equal(t, "Acme", table.Rows[0][1])
}

func TestTokenize_EscapedQuotes(t *testing.T) {
	table, err := csvx.Tokenize("name,notes\nLogo,\"said \"\"yes\"\" twice\"\n")
	require.NoError(t, err)

	assert.Equal(t, `said "yes" twice`, table.Rows[0][1])
}

func TestTokenize_QuotedNewline(t *testing.T) {
	table, err := csvx.Tokenize("name,notes\nLogo,\"line one\nline two\"\n")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "line one\nline two", table.Rows[0][1])
}

func TestTokenize_CRLF(t *testing.T) {
	table, err := csvx.Tokenize("name,status\r\nWebsite,active\r\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "status"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"Website", "active"}, table.Rows[0])
}

func TestTokenize_TrimsWhitespace(t *testing.T) {
	table, err := csvx.Tokenize(" name , status \n Website ,  active \n")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "status"}, table.Headers)
	assert.Equal(t, []string{"Website", "active"}, table.Rows[0])
}

func TestTokenize_SkipsBlankLines(t *testing.T) {
	table, err := csvx.Tokenize("name,status\n\nWebsite,active\n\n\n")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
}

func TestTokenize_HeaderOnly(t *testing.T) {
	_, err := csvx.Tokenize("name,status\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header row and at least one data row")
}

func TestTokenize_Empty(t *testing.T) {
	_, err := csvx.Tokenize("")
	assert.Error(t, err)
}

func TestTable_CellPadsShortRows(t *testing.T) {
	table, err := csvx.Tokenize("name,status,budget\nWebsite,active\n")
	require.NoError(t, err)

	assert.Equal(t, "Website", table.Cell(0, 0))
	assert.Equal(t, "active", table.Cell(0, 1))
	assert.Equal(t, "", table.Cell(0, 2))
	assert.Equal(t, "", table.Cell(5, 0))
}

func TestTokenize_DuplicateHeaders(t *testing.T) {
	table, err := csvx.Tokenize("date,date\n2024-01-01,2024-02-02\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"date", "date"}, table.Headers)
}
