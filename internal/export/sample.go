package export

// Sample returns the blank import template for the given entity kind: a
// header row plus one illustrative data row.
func Sample(kind string) (string, bool) {
	switch kind {
	case "project":
		return "name,status,description,start_date,due_date,budget,expenses,payment_received,currency,client_name\n" +
			"Website Redesign,active,Marketing site refresh,2024-01-15,2024-03-01,5000,250,1000,USD,Acme Inc\n", true
	case "invoice":
		return "invoice_number,amount,tax_amount,currency,status,issue_date,due_date,notes,client_name\n" +
			"INV-001,1500,150,USD,pending,2024-01-15,2024-02-14,First milestone,Acme Inc\n", true
	case "client":
		return "name,company,email,phone,address,city,state,zip_code,country\n" +
			"Jane Cooper,Acme Inc,jane@acme.com,+1 555 0100,1 Main St,Austin,TX,78701,USA\n", true
	}

	return "", false
}
