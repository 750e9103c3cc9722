package mapping

// FieldType drives which normalizer a cell value is run through.
type FieldType int

const (
	TypeText FieldType = iota
	TypeDate
	TypeAmount
	TypeStatus
	TypePaymentStatus
	TypeCurrency
)

func (t FieldType) String() string {
	switch t {
	case TypeDate:
		return "date"
	case TypeAmount:
		return "amount"
	case TypeStatus:
		return "status"
	case TypePaymentStatus:
		return "payment_status"
	case TypeCurrency:
		return "currency"
	default:
		return "text"
	}
}

// Field is one entry of an import target catalog.
type Field struct {
	Key      string
	Label    string
	Type     FieldType
	Required bool
}

// Catalog is the set of target fields an import kind accepts. Aliases are
// extra normalized-header to field-key pairs honored in Strict mode, where
// generic substring matching is too loose (an unrelated "Date" column must
// not land on start_date).
type Catalog struct {
	Fields  []Field
	Aliases map[string]string
}

// FieldByKey returns the catalog entry for key, or false.
func (c Catalog) FieldByKey(key string) (Field, bool) {
	for _, f := range c.Fields {
		if f.Key == key {
			return f, true
		}
	}

	return Field{}, false
}

// Required returns the catalog's required field keys, in declaration order.
func (c Catalog) Required() []string {
	var keys []string

	for _, f := range c.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}

	return keys
}

// ProjectCatalog is the target catalog for project imports. Client fields
// carry the client_ prefix; the row importer peels them off into a client
// draft.
func ProjectCatalog() Catalog {
	return Catalog{
		Fields: []Field{
			{Key: "name", Label: "Project Name", Type: TypeText, Required: true},
			{Key: "status", Label: "Status", Type: TypeStatus},
			{Key: "description", Label: "Description", Type: TypeText},
			{Key: "start_date", Label: "Start Date", Type: TypeDate},
			{Key: "due_date", Label: "Due Date", Type: TypeDate},
			{Key: "budget", Label: "Budget", Type: TypeAmount},
			{Key: "expenses", Label: "Expenses", Type: TypeAmount},
			{Key: "payment_received", Label: "Payment Received", Type: TypeAmount},
			{Key: "payment_pending", Label: "Payment Pending", Type: TypeAmount},
			{Key: "currency", Label: "Currency", Type: TypeCurrency},
			{Key: "client_name", Label: "Client Name", Type: TypeText},
			{Key: "client_company", Label: "Client Company", Type: TypeText},
			{Key: "client_email", Label: "Client Email", Type: TypeText},
			{Key: "client_phone", Label: "Client Phone", Type: TypeText},
		},
		Aliases: map[string]string{
			"projectname":   "name",
			"project":       "name",
			"title":         "name",
			"projectstatus": "status",
			"startdate":     "start_date",
			"start":         "start_date",
			"begindate":     "start_date",
			"duedate":       "due_date",
			"enddate":       "due_date",
			"deadline":      "due_date",
			"totalbudget":   "budget",
			"projectbudget": "budget",
			"value":         "budget",
			"cost":          "expenses",
			"spent":         "expenses",
			"received":      "payment_received",
			"paid":          "payment_received",
			"pending":       "payment_pending",
			"outstanding":   "payment_pending",
			"client":        "client_name",
			"customer":      "client_name",
			"customername":  "client_name",
			"company":       "client_company",
			"email":         "client_email",
			"phone":         "client_phone",
			"notes":         "description",
		},
	}
}

// InvoiceCatalog is the target catalog for invoice imports. Invoice headers
// in the wild are less ambiguous, so this catalog is matched permissively.
func InvoiceCatalog() Catalog {
	return Catalog{
		Fields: []Field{
			{Key: "amount", Label: "Amount", Type: TypeAmount, Required: true},
			{Key: "invoice_number", Label: "Invoice Number", Type: TypeText},
			{Key: "status", Label: "Payment Status", Type: TypePaymentStatus},
			{Key: "tax_amount", Label: "Tax Amount", Type: TypeAmount},
			{Key: "total_amount", Label: "Total Amount", Type: TypeAmount},
			{Key: "currency", Label: "Currency", Type: TypeCurrency},
			{Key: "issue_date", Label: "Issue Date", Type: TypeDate},
			{Key: "due_date", Label: "Due Date", Type: TypeDate},
			{Key: "notes", Label: "Notes", Type: TypeText},
			{Key: "client_name", Label: "Client Name", Type: TypeText},
			{Key: "client_company", Label: "Client Company", Type: TypeText},
			{Key: "client_email", Label: "Client Email", Type: TypeText},
		},
	}
}

// CatalogFor returns the catalog and match strictness for an import kind.
func CatalogFor(kind string) (Catalog, Strictness, bool) {
	switch kind {
	case "project", "projects":
		return ProjectCatalog(), Strict, true
	case "invoice", "invoices":
		return InvoiceCatalog(), Permissive, true
	}

	return Catalog{}, Permissive, false
}
