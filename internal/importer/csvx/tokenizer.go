// Package csvx tokenizes uploaded CSV text into a header row and data rows.
//
// The stdlib encoding/csv reader is deliberately not used here: uploads from
// spreadsheet apps need fields trimmed during tokenization, short rows padded
// against the header, and parsing that never rejects a whole file over one
// sloppy cell. Those rules are easier to state directly than to bolt onto
// csv.Reader.
package csvx

import (
	"fmt"
	"strings"
)

// Table is the tokenized form of an upload. Headers may contain duplicates;
// columns are addressed positionally.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Cell returns the trimmed value at (row, col), or "" when the row is
// shorter than the header. Out-of-range access is how short rows get their
// implicit empty-string padding.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}

	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}

	return r[col]
}

// Tokenize parses raw CSV text. The first record is the header; at least one
// data record must follow.
//
// Quoting rules: a double quote toggles quoted mode, a doubled quote inside a
// quoted field is unescaped to one literal quote, and commas and newlines
// inside quotes are literal. A \r directly before a record-ending \n is
// dropped. Fields are trimmed of surrounding whitespace.
func Tokenize(text string) (*Table, error) {
	records := splitRecords(text)
	if len(records) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return &Table{
		Headers: records[0],
		Rows:    records[1:],
	}, nil
}

func splitRecords(text string) [][]string {
	var (
		records  [][]string
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	runes := []rune(text)

	endField := func() {
		fields = append(fields, strings.TrimSpace(field.String()))
		field.Reset()
	}

	endRecord := func() {
		endField()

		if !blank(fields) {
			records = append(records, fields)
		}

		fields = nil
	}

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++

				continue
			}

			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			endField()
		case c == '\n' && !inQuotes:
			endRecord()
		case c == '\r' && !inQuotes && i+1 < len(runes) && runes[i+1] == '\n':
			// Swallowed; the \n on the next iteration ends the record.
		default:
			field.WriteRune(c)
		}
	}

	if field.Len() > 0 || len(fields) > 0 {
		endRecord()
	}

	return records
}

// blank reports whether every field in the record is empty, which is how
// stray trailing newlines and spacer lines are dropped.
func blank(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}

	return true
}
