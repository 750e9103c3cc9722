package mapping

import (
	"fmt"
	"strings"

	"github.com/jithinio/brillo/internal/importer/csvx"
	norm "github.com/jithinio/brillo/internal/importer/normalize"
)

// Warning is a non-blocking advisory shown on the mapping review screen.
type Warning struct {
	Column  string
	Message string
}

// sampleRows is how many data rows are probed for a representative value.
const sampleRows = 5

// Review checks each mapped column's sample value against the target field's
// expected shape. Warnings never block the import; they exist so the user
// can fix an obviously wrong mapping before committing.
func Review(mappings []Mapping, table *csvx.Table, cat Catalog, dateLayout string) []Warning {
	var warnings []Warning

	for col, m := range mappings {
		if !m.Mapped() {
			continue
		}

		f, ok := cat.FieldByKey(m.Target)
		if !ok {
			continue
		}

		sample := firstSample(table, col)
		if sample == "" {
			continue
		}

		switch f.Type {
		case TypeDate:
			if _, ok := norm.Date(sample, dateLayout); !ok {
				warnings = append(warnings, Warning{
					Column:  m.Source,
					Message: fmt.Sprintf("value %q does not look like a date; unparseable dates import as empty", sample),
				})
			}
		case TypeAmount:
			if !strings.ContainsAny(sample, "0123456789") {
				warnings = append(warnings, Warning{
					Column:  m.Source,
					Message: fmt.Sprintf("value %q is not numeric; it will import as 0", sample),
				})
			}
		}
	}

	return warnings
}

func firstSample(table *csvx.Table, col int) string {
	for row := 0; row < sampleRows && row < len(table.Rows); row++ {
		if v := table.Cell(row, col); v != "" {
			return v
		}
	}

	return ""
}
