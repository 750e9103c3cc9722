package importcsv

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jithinio/brillo/internal/config"
	"github.com/jithinio/brillo/internal/importer"
	"github.com/jithinio/brillo/internal/importer/csvx"
	"github.com/jithinio/brillo/internal/importer/mapping"
	"github.com/jithinio/brillo/internal/notify"
	"github.com/jithinio/brillo/internal/textenc"
)

const maxUploadBytes = 10 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	engine   *importer.Engine
	settings config.Settings
	notifier notify.Notifier
}

func NewHandler(engine *importer.Engine, settings config.Settings, notifier notify.Notifier) *Handler {
	return &Handler{
		engine:   engine,
		settings: settings,
		notifier: notifier,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{kind}/analyze", h.analyze)
	r.Post("/{kind}/run", h.run)
}

type fieldDTO struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

type mappingDTO struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type warningDTO struct {
	Column  string `json:"column"`
	Message string `json:"message"`
}

type analyzeResponse struct {
	Headers    []string     `json:"headers"`
	Fields     []fieldDTO   `json:"fields"`
	Mappings   []mappingDTO `json:"mappings"`
	SampleRows [][]string   `json:"sample_rows"`
	Warnings   []warningDTO `json:"warnings"`
	TotalRows  int          `json:"total_rows"`
}

const sampleRows = 5

func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	cat, mode, ok := mapping.CatalogFor(chi.URLParam(r, "kind"))
	if !ok {
		http.Error(w, "unknown import kind", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	text, err := textenc.DecodeString(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table, err := csvx.Tokenize(text)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mappings := mapping.AutoMap(table.Headers, cat, mode)
	warnings := mapping.Review(mappings, table, cat, h.settings.DateFormat)

	resp := analyzeResponse{
		Headers:    table.Headers,
		Fields:     make([]fieldDTO, 0, len(cat.Fields)),
		Mappings:   make([]mappingDTO, 0, len(mappings)),
		SampleRows: table.Rows[:min(sampleRows, len(table.Rows))],
		Warnings:   make([]warningDTO, 0, len(warnings)),
		TotalRows:  len(table.Rows),
	}

	for _, f := range cat.Fields {
		resp.Fields = append(resp.Fields, fieldDTO{
			Key:      f.Key,
			Label:    f.Label,
			Type:     f.Type.String(),
			Required: f.Required,
		})
	}

	for _, m := range mappings {
		resp.Mappings = append(resp.Mappings, mappingDTO{Source: m.Source, Target: m.Target})
	}

	for _, warn := range warnings {
		resp.Warnings = append(resp.Warnings, warningDTO{Column: warn.Column, Message: warn.Message})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type runRequest struct {
	Headers       []string     `json:"headers" validate:"required,min=1"`
	Rows          [][]string   `json:"rows" validate:"required,min=1"`
	Mappings      []mappingDTO `json:"mappings" validate:"required,min=1"`
	ImportClients bool         `json:"import_clients"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	kind := importer.Kind(chi.URLParam(r, "kind"))

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	mappings := make([]mapping.Mapping, 0, len(req.Mappings))
	for _, m := range req.Mappings {
		mappings = append(mappings, mapping.Mapping{Source: m.Source, Target: m.Target})
	}

	result, err := h.engine.Run(r.Context(), importer.Job{
		Kind:          kind,
		Table:         &csvx.Table{Headers: req.Headers, Rows: req.Rows},
		Mappings:      mappings,
		ImportClients: req.ImportClients,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if result.Records.Errors > 0 {
		h.notifier.Error("import finished with errors",
			"kind", kind, "imported", result.Records.Success, "failed", result.Records.Errors)
	} else {
		h.notifier.Success("import finished",
			"kind", kind, "imported", result.Records.Success)
	}

	result.ErrorMessages = truncateErrors(result.ErrorMessages)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

const maxErrorMessages = 5

// truncateErrors keeps the first few row errors and collapses the rest into
// a "+N more" line; a 500-row failure should not ship 500 messages.
func truncateErrors(msgs []string) []string {
	if len(msgs) <= maxErrorMessages {
		return msgs
	}

	out := append([]string{}, msgs[:maxErrorMessages]...)

	return append(out, fmt.Sprintf("+%d more", len(msgs)-maxErrorMessages))
}
