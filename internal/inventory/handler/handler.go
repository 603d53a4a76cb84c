// Package handler exposes the unit registry over HTTP.
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

	"lifebank/internal/inventory"
	"lifebank/internal/platform/metrics"
	"lifebank/internal/platform/middleware"
	"lifebank/internal/transport/http/shared"
	"lifebank/pkg/domain"
	dErrors "lifebank/pkg/domain-errors"
)

// Service defines the unit registry operations the handler needs.
type Service interface {
	Register(ctx context.Context, params inventory.RegisterUnitParams) (inventory.BloodUnit, error)
	Get(ctx context.Context, id uint64) (inventory.BloodUnit, error)
	IDsByBloodType(ctx context.Context, bt domain.BloodType) ([]uint64, error)
	IDsByBank(ctx context.Context, bankID string) ([]uint64, error)
	IDsByStatus(ctx context.Context, status domain.UnitStatus) ([]uint64, error)
	IDsByDonor(ctx context.Context, donorID string) ([]uint64, error)
}

// Handler handles blood-unit endpoints.
type Handler struct {
	logger    *slog.Logger
	inventory Service
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(inv Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		inventory: inv,
		metrics:   m,
		validator: validator,
	}
}

// Register registers the unit routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Use(middleware.RequireAuth(h.validator, h.logger))

	router.Post("/", h.handleRegister)
	router.Get("/{id}", h.handleGet)
	router.Get("/", h.handleList)

	r.Mount("/units", router)
}

type registerUnitRequest struct {
	BloodType           string            `json:"blood_type"`
	QuantityML          uint32            `json:"quantity_ml"`
	DonorID             *string           `json:"donor_id,omitempty"`
	DonationTimestamp   time.Time         `json:"donation_timestamp"`
	ExpirationTimestamp time.Time         `json:"expiration_timestamp"`
	Metadata            map[string]string `json:"metadata,omitempty"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req registerUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	bt, err := domain.ParseBloodType(req.BloodType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if req.DonorID != nil && !govalidator.StringLength(*req.DonorID, "1", "255") {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "donor_id must be 1-255 characters"))
		return
	}

	unit, err := h.inventory.Register(ctx, inventory.RegisterUnitParams{
		BloodType:           bt,
		QuantityML:          req.QuantityML,
		DonorID:             req.DonorID,
		DonationTimestamp:   req.DonationTimestamp,
		ExpirationTimestamp: req.ExpirationTimestamp,
		Metadata:            req.Metadata,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "unit registration rejected", "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, unit)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	unit, err := h.inventory.Get(r.Context(), id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, unit)
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
			ids, err = h.inventory.IDsByBloodType(ctx, bt)
		}
	case query.Has("bank"):
		ids, err = h.inventory.IDsByBank(ctx, query.Get("bank"))
	case query.Has("status"):
		var status domain.UnitStatus
		if status, err = domain.ParseUnitStatus(query.Get("status")); err == nil {
			ids, err = h.inventory.IDsByStatus(ctx, status)
		}
	case query.Has("donor"):
		ids, err = h.inventory.IDsByDonor(ctx, query.Get("donor"))
	default:
		err = dErrors.New(dErrors.CodeInvalidInput, "one of blood_type, bank, status or donor is required")
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
