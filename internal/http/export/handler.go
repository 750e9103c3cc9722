package export

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jithinio/brillo/internal/client"
	"github.com/jithinio/brillo/internal/export"
	"github.com/jithinio/brillo/internal/invoice"
	"github.com/jithinio/brillo/internal/project"
)

type Handler struct {
	clients  *client.Service
	projects *project.Service
	invoices *invoice.Service
}

func NewHandler(clients *client.Service, projects *project.Service, invoices *invoice.Service) *Handler {
	return &Handler{
		clients:  clients,
		projects: projects,
		invoices: invoices,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{kind}.csv", h.csv)
	r.Get("/{kind}.xlsx", h.xlsx)
	r.Get("/{kind}/sample.csv", h.sample)
}

func (h *Handler) table(r *http.Request) (export.Table, string, error) {
	kind := chi.URLParam(r, "kind")

	switch kind {
	case "client":
		clients, err := h.clients.List(r.Context(), client.ListFilter{})
		if err != nil {
			return export.Table{}, kind, err
		}

		return export.ClientTable(clients), kind, nil
	case "project":
		projects, err := h.projects.List(r.Context(), project.ListFilter{})
		if err != nil {
			return export.Table{}, kind, err
		}

		return export.ProjectTable(projects), kind, nil
	case "invoice":
		invoices, err := h.invoices.List(r.Context(), invoice.ListFilter{})
		if err != nil {
			return export.Table{}, kind, err
		}

		return export.InvoiceTable(invoices), kind, nil
	}

	return export.Table{}, kind, errUnknownKind
}

var errUnknownKind = errors.New("unknown export kind")

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	table, kind, err := h.table(r)
	if err != nil {
		if errors.Is(err, errUnknownKind) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", attachment(kind, "csv"))

	if err := export.WriteCSV(w, table); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) xlsx(w http.ResponseWriter, r *http.Request) {
	table, kind, err := h.table(r)
	if err != nil {
		if errors.Is(err, errUnknownKind) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", attachment(kind, "xlsx"))

	if err := export.WriteXLSX(w, kind, table); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) sample(w http.ResponseWriter, r *http.Request) {
	body, ok := export.Sample(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "unknown export kind", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="sample.csv"`)

	_, _ = w.Write([]byte(body))
}

func attachment(kind, ext string) string {
	return fmt.Sprintf("attachment; filename=\"%ss_%s.%s\"", kind, time.Now().Format("20060102"), ext)
}
