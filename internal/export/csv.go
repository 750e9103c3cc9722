package export

import (
	"fmt"
	"io"
	"strings"
)

// WriteCSV writes the table with the same quoting the import tokenizer
// understands: fields containing a comma, quote, or newline are wrapped in
// double quotes, with embedded quotes doubled.
func WriteCSV(w io.Writer, t Table) error {
	if err := writeRecord(w, t.Headers); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if err := writeRecord(w, row); err != nil {
			return err
		}
	}

	return nil
}

func writeRecord(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteField(f)
	}

	if _, err := io.WriteString(w, strings.Join(quoted, ",")+"\n"); err != nil {
		return fmt.Errorf("writing csv record: %w", err)
	}

	return nil
}

func quoteField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}

	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
