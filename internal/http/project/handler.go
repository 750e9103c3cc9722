package project

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jithinio/brillo/internal/project"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Handler struct {
	svc *project.Service
}

func NewHandler(svc *project.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Patch("/{id}/status", h.updateStatus)
	r.Delete("/{id}", h.delete)
}

type createProjectRequest struct {
	Name            string         `json:"name" validate:"required"`
	Status          project.Status `json:"status" validate:"omitempty,oneof=active pipeline on_hold completed cancelled"`
	Description     string         `json:"description"`
	StartDate       *time.Time     `json:"start_date,omitempty"`
	DueDate         *time.Time     `json:"due_date,omitempty"`
	Budget          int64          `json:"budget" validate:"gte=0"`
	Expenses        int64          `json:"expenses" validate:"gte=0"`
	PaymentReceived int64          `json:"payment_received" validate:"gte=0"`
	PaymentPending  *int64         `json:"payment_pending,omitempty" validate:"omitempty,gte=0"`
	Currency        string         `json:"currency" validate:"omitempty,len=3,alpha"`
	ClientID        *uuid.UUID     `json:"client_id,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Create(r.Context(), project.CreateParams{
		Name:            req.Name,
		Status:          req.Status,
		Description:     req.Description,
		StartDate:       req.StartDate,
		DueDate:         req.DueDate,
		Budget:          req.Budget,
		Expenses:        req.Expenses,
		PaymentReceived: req.PaymentReceived,
		PaymentPending:  req.PaymentPending,
		Currency:        req.Currency,
		ClientID:        req.ClientID,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := project.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(project.Status(s))
	}

	if s := r.URL.Query().Get("client_id"); s != "" {
		if id, err := uuid.Parse(s); err == nil {
			filter.ClientID = new(id)
		}
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	projects, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(projects)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateProjectRequest struct {
	Name            *string     `json:"name,omitempty"`
	Description     *string     `json:"description,omitempty"`
	StartDate       *time.Time  `json:"start_date,omitempty"`
	DueDate         *time.Time  `json:"due_date,omitempty"`
	Budget          *int64      `json:"budget,omitempty" validate:"omitempty,gte=0"`
	Expenses        *int64      `json:"expenses,omitempty" validate:"omitempty,gte=0"`
	PaymentReceived *int64      `json:"payment_received,omitempty" validate:"omitempty,gte=0"`
	PaymentPending  *int64      `json:"payment_pending,omitempty" validate:"omitempty,gte=0"`
	Currency        *string    `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	// Raw so an explicit "client_id": null (detach) is distinguishable from
	// the key being absent (leave the link alone).
	ClientID json.RawMessage `json:"client_id,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}

	if req.Description != nil {
		p.Description = *req.Description
	}

	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}

	if req.DueDate != nil {
		p.DueDate = req.DueDate
	}

	if req.Budget != nil {
		p.Budget = *req.Budget
	}

	if req.Expenses != nil {
		p.Expenses = *req.Expenses
	}

	if req.PaymentReceived != nil {
		p.PaymentReceived = *req.PaymentReceived
	}

	if req.PaymentPending != nil {
		p.PaymentPending = *req.PaymentPending
	} else if req.Budget != nil || req.PaymentReceived != nil {
		p.PaymentPending = max(0, p.Budget-p.PaymentReceived)
	}

	if req.Currency != nil {
		p.Currency = *req.Currency
	}

	if len(req.ClientID) > 0 {
		if string(req.ClientID) == "null" {
			p.ClientID = nil
		} else {
			var clientID uuid.UUID
			if err := json.Unmarshal(req.ClientID, &clientID); err != nil {
				http.Error(w, "invalid client_id", http.StatusBadRequest)
				return
			}

			p.ClientID = &clientID
		}
	}

	if err := h.svc.Update(r.Context(), p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(p)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateStatusRequest struct {
	Status project.Status `json:"status" validate:"required,oneof=active pipeline on_hold completed cancelled"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateStatus(r.Context(), id, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
