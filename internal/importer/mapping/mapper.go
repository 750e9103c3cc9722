// Package mapping proposes and validates CSV column to target field
// assignments for imports.
package mapping

import (
	"fmt"
	"strings"
)

// TargetNone is the sentinel dropdown value for "do not import this column".
const TargetNone = "none"

// Strictness selects how aggressively headers are matched to fields.
type Strictness int

const (
	// Permissive matches on normalized equality or substring containment in
	// either direction.
	Permissive Strictness = iota
	// Strict matches on normalized equality or an explicit catalog alias.
	// Trades recall for precision.
	Strict
)

// Mapping assigns a CSV column to a target field. A Target of "" or "none"
// means the column is not imported.
type Mapping struct {
	Source string
	Target string
}

// Mapped reports whether this column will be imported.
func (m Mapping) Mapped() bool {
	return m.Target != "" && m.Target != TargetNone
}

// AutoMap proposes one Mapping per header. The catalog is scanned in
// declaration order and the first match wins; unmatched headers get an empty
// target. The result is mutable UI state the user overrides per column.
func AutoMap(headers []string, cat Catalog, mode Strictness) []Mapping {
	mappings := make([]Mapping, len(headers))

	for i, header := range headers {
		mappings[i] = Mapping{
			Source: header,
			Target: match(header, cat, mode),
		}
	}

	return mappings
}

func match(header string, cat Catalog, mode Strictness) string {
	nh := normalize(header)
	if nh == "" {
		return ""
	}

	// Exact matches beat substring matches for every field: "Tax Amount"
	// must land on tax_amount even though it contains "amount".
	for _, f := range cat.Fields {
		if nh == normalize(f.Key) || nh == normalize(f.Label) {
			return f.Key
		}
	}

	if mode == Permissive {
		for _, f := range cat.Fields {
			if contains(nh, normalize(f.Key)) || contains(nh, normalize(f.Label)) {
				return f.Key
			}
		}
	}

	if mode == Strict {
		if key, ok := cat.Aliases[nh]; ok {
			return key
		}
	}

	return ""
}

// normalize lowercases and strips everything but letters and digits, so
// "Client Name", "client_name" and "CLIENT-NAME" all compare equal.
func normalize(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// contains reports substring containment in either direction.
func contains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Validate is the blocking pre-import check: every required catalog field
// must be mapped by at least one column, and no column may target the
// system-managed created_at field.
func Validate(mappings []Mapping, cat Catalog) error {
	for _, m := range mappings {
		if m.Mapped() && m.Target == "created_at" {
			return fmt.Errorf("column %q maps to created_at, which is system-managed and cannot be imported", m.Source)
		}
	}

	for _, key := range cat.Required() {
		if !covered(mappings, key) {
			f, _ := cat.FieldByKey(key)
			return fmt.Errorf("required field %q is not mapped to any column", f.Label)
		}
	}

	return nil
}

func covered(mappings []Mapping, key string) bool {
	for _, m := range mappings {
		if m.Mapped() && m.Target == key {
			return true
		}
	}

	return false
}
