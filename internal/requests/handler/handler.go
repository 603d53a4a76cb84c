// Package handler exposes the request ledger over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"lifebank/internal/platform/metrics"
	"lifebank/internal/platform/middleware"
	"lifebank/internal/requests"
	"lifebank/internal/transport/http/shared"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
)

// Service defines the request ledger operations the handler needs.
type Service interface {
	Create(ctx context.Context, params requests.CreateRequestParams) (requests.BloodRequest, error)
	Get(ctx context.Context, id uint64) (requests.BloodRequest, error)
	Approve(ctx context.Context, id uint64) (requests.BloodRequest, error)
	Cancel(ctx context.Context, id uint64) (requests.BloodRequest, error)
	IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error)
	IDsByHospital(ctx context.Context, hospitalID string) ([]uint64, error)
	IDsByStatus(ctx context.Context, status domain.RequestStatus) ([]uint64, error)
	IDsByUrgency(ctx context.Context, urgency domain.Urgency) ([]uint64, error)
}

// Handler handles blood-request endpoints.
type Handler struct {
	logger    *slog.Logger
	requests  Service
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(reqs Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		requests:  reqs,
		metrics:   m,
		validator: validator,
	}
}

// Register registers the request routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Use(middleware.RequireAuth(h.validator, h.logger))

	router.Post("/", h.handleCreate)
	router.Get("/{id}", h.handleGet)
	router.Post("/{id}/approve", h.handleApprove)
	router.Post("/{id}/cancel", h.handleCancel)
	router.Get("/", h.handleList)

	r.Mount("/requests", router)
}

type createRequestRequest struct {
	BloodType       string            `json:"blood_type"`
	QuantityML      uint32            `json:"quantity_ml"`
	Urgency         string            `json:"urgency"`
	RequiredBy      time.Time         `json:"required_by"`
	DeliveryAddress string            `json:"delivery_address"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	bt, err := domain.ParseBloodType(req.BloodType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	urgency, err := domain.ParseUrgency(req.Urgency)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if !govalidator.StringLength(req.DeliveryAddress, "1", "1024") {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidDeliveryAddress, "delivery_address must be 1-1024 characters"))
		return
	}

	created, err := h.requests.Create(ctx, requests.CreateRequestParams{
		BloodType:       bt,
		QuantityML:      req.QuantityML,
		Urgency:         urgency,
		RequiredBy:      req.RequiredBy,
		DeliveryAddress: req.DeliveryAddress,
		Metadata:        req.Metadata,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "request creation rejected", "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	req, err := h.requests.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	req, err := h.requests.Approve(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "approval rejected", "request_id", id, "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	req, err := h.requests.Cancel(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "cancellation rejected", "request_id", id, "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, req)
}

// handleList serves the index lookups. Exactly one filter must be given.
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	var (
		ids []uint64
		err error
	)
	switch {
	case query.Has("blood_type"):
		var bt domain.BloodType
		if bt, err = domain.ParseBloodType(query.Get("blood_type")); err == nil {
			ids, err = h.requests.IDsByBloodType(ctx, bt)
		}
	case query.Has("hospital"):
		ids, err = h.requests.IDsByHospital(ctx, query.Get("hospital"))
	case query.Has("status"):
		var status domain.RequestStatus
		if status, err = domain.ParseRequestStatus(query.Get("status")); err == nil {
			ids, err = h.requests.IDsByStatus(ctx, status)
		}
	case query.Has("urgency"):
		var urgency domain.Urgency
		if urgency, err = domain.ParseUrgency(query.Get("urgency")); err == nil {
			ids, err = h.requests.IDsByUrgency(ctx, urgency)
		}
	default:
		err = dErrors.New(dErrors.CodeInvalidInput, "one of blood_type, hospital, status or urgency is required")
	}
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, listResponse{IDs: ids})
}

type listResponse struct {
	IDs []uint64 `json:"ids"`
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "id must be a positive integer")
	}
	return id, nil
}
