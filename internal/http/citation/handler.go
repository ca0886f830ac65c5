package citation

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rgoodwin/finewarden/internal/citation"
	"github.com/rgoodwin/finewarden/internal/registry"
)

type Handler struct {
	svc      *citation.Service
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(svc *citation.Service) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.issue)
	r.Post("/sweep", h.sweep)
	r.Get("/{number}", h.get)
	r.Post("/{number}/payments", h.pay)
	r.Post("/{number}/settlement", h.settle)
}

// respondError maps domain errors to HTTP statuses.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, registry.ErrDriverNotFound),
		errors.Is(err, registry.ErrVehicleNotFound),
		errors.Is(err, registry.ErrViolationTypeNotFound),
		errors.Is(err, citation.ErrCitationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, registry.ErrInactiveOfficer),
		errors.Is(err, citation.ErrConstraintViolation):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, citation.ErrInvalidCitationState),
		errors.Is(err, citation.ErrOverpaymentRejected),
		errors.Is(err, citation.ErrDuplicateCitationNumber):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type issueCitationRequest struct {
	DriverLicense string    `json:"driver_license" validate:"required"`
	PlateNumber   string    `json:"plate_number"`
	OfficerID     uuid.UUID `json:"officer_id" validate:"required"`
	ViolationCode string    `json:"violation_code" validate:"required"`
	ViolationAt   time.Time `json:"violation_at" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Notes         string    `json:"notes"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req issueCitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Issue(r.Context(), citation.IssueParams{
		DriverLicense: req.DriverLicense,
		PlateNumber:   req.PlateNumber,
		OfficerID:     req.OfficerID,
		ViolationCode: req.ViolationCode,
		ViolationAt:   req.ViolationAt,
		IssuedAt:      h.now().UTC(),
		Location:      req.Location,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCitationResponse(c))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Detail(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toDetailResponse(detail))
}

type paymentRequest struct {
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Method    string `json:"method" validate:"required,oneof=cash card check online"`
	Reference string `json:"reference"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	h.applyPayment(w, r, h.svc.Pay)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	h.applyPayment(w, r, h.svc.SettleWarrant)
}

func (h *Handler) applyPayment(w http.ResponseWriter, r *http.Request, apply func(context.Context, citation.PaymentParams) (*citation.Payment, error)) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := apply(r.Context(), citation.PaymentParams{
		CitationNumber: chi.URLParam(r, "number"),
		Amount:         req.Amount,
		Method:         citation.Method(req.Method),
		Reference:      req.Reference,
		PaidAt:         h.now().UTC(),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, paymentResponse{
		ID:        payment.ID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Reference: payment.Reference,
		PaidAt:    payment.PaidAt,
	})
}

func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	escalated, err := h.svc.Sweep(r.Context(), h.now().UTC())
	if err != nil {
		slog.Error("sweep finished with failures", "escalated", escalated, "error", err)
		http.Error(w, "sweep finished with failures", http.StatusInternalServerError)

		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"escalated": escalated})
}

func (h *Handler) OverdueReport(w http.ResponseWriter, r *http.Request) {
	params := citation.ReportParams{AsOf: h.now().UTC()}

	if s := r.URL.Query().Get("min_days"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			http.Error(w, "invalid min_days", http.StatusBadRequest)
			return
		}

		params.MinDaysOverdue = v
	}

	if s := r.URL.Query().Get("include_warrants"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			http.Error(w, "invalid include_warrants", http.StatusBadRequest)
			return
		}

		params.IncludeWarrants = v
	}

	rows, err := h.svc.OverdueReport(r.Context(), params)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toReportResponse(rows))
}

func (h *Handler) DriverPoints(w http.ResponseWriter, r *http.Request) {
	asOf := h.now().UTC()

	points, err := h.svc.DriverPoints(r.Context(), chi.URLParam(r, "license"), asOf)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"license_number": chi.URLParam(r, "license"),
		"points":         points,
		"as_of":          asOf,
	})
}
