package normalize

import "strings"

// statusSynonyms maps the free-text project statuses seen in real uploads
// onto the canonical vocabulary. Lookups are on lowercased, trimmed input.
var statusSynonyms = map[string]string{
	"active":         "active",
	"in progress":    "active",
	"in-progress":    "active",
	"inprogress":     "active",
	"wip":            "active",
	"ongoing":        "active",
	"current":        "active",
	"open":           "active",
	"started":        "active",
	"working":        "active",
	"in development": "active",
	"in design":      "active",
	"live":           "active",

	"pipeline":    "pipeline",
	"lead":        "pipeline",
	"prospect":    "pipeline",
	"quoted":      "pipeline",
	"quote":       "pipeline",
	"proposal":    "pipeline",
	"potential":   "pipeline",
	"negotiation": "pipeline",
	"opportunity": "pipeline",
	"planned":     "pipeline",
	"upcoming":    "pipeline",

	"completed": "completed",
	"complete":  "completed",
	"done":      "completed",
	"delivered": "completed",
	"shipped":   "completed",
	"finished":  "completed",
	"closed":    "completed",
	"finalized": "completed",
	"launched":  "completed",

	"on hold":   "on_hold",
	"on-hold":   "on_hold",
	"onhold":    "on_hold",
	"hold":      "on_hold",
	"paused":    "on_hold",
	"pause":     "on_hold",
	"blocked":   "on_hold",
	"pending":   "on_hold",
	"waiting":   "on_hold",
	"suspended": "on_hold",
	"stalled":   "on_hold",

	"cancelled":  "cancelled",
	"canceled":   "cancelled",
	"cancel":     "cancelled",
	"lost":       "cancelled",
	"rejected":   "cancelled",
	"failed":     "cancelled",
	"abandoned":  "cancelled",
	"terminated": "cancelled",
	"dropped":    "cancelled",
	"declined":   "cancelled",
	"dead":       "cancelled",
}

// Status normalizes a free-text project status. Unrecognized input passes
// through lowercased with spaces replaced by underscores rather than being
// rejected.
func Status(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}

	if canonical, ok := statusSynonyms[key]; ok {
		return canonical
	}

	return strings.ReplaceAll(key, " ", "_")
}

// paymentSynonyms maps free-text invoice payment states onto
// {pending, paid, overdue, partial, cancelled}.
var paymentSynonyms = map[string]string{
	"paid":             "paid",
	"payment received": "paid",
	"received":         "paid",
	"settled":          "paid",
	"cleared":          "paid",
	"complete":         "paid",
	"completed":        "paid",
	"done":             "paid",

	"pending":          "pending",
	"unpaid":           "pending",
	"due":              "pending",
	"open":             "pending",
	"sent":             "pending",
	"issued":           "pending",
	"invoiced":         "pending",
	"awaiting payment": "pending",
	"not paid":         "pending",
	"outstanding":      "pending",

	"overdue":  "overdue",
	"late":     "overdue",
	"past due": "overdue",
	"pastdue":  "overdue",

	"partial":        "partial",
	"partially paid": "partial",
	"part paid":      "partial",
	"deposit":        "partial",
	"installment":    "partial",

	"cancelled":   "cancelled",
	"canceled":    "cancelled",
	"void":        "cancelled",
	"voided":      "cancelled",
	"written off": "cancelled",
	"refunded":    "cancelled",
}

// PaymentStatus normalizes a free-text payment status. The target vocabulary
// is closed, so unrecognized input falls back to "pending".
func PaymentStatus(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}

	if canonical, ok := paymentSynonyms[key]; ok {
		return canonical
	}

	return "pending"
}
