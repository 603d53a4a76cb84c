// Package handler exposes the participant directory over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"

	"lifebank/internal/directory"
	"lifebank/internal/platform/metrics"
	"lifebank/internal/platform/middleware"
	"lifebank/internal/transport/http/shared"
	dErrors "lifebank/pkg/domain-errors"
)

// Service defines the directory operations the handler needs.
type Service interface {
	Initialize(ctx context.Context, admin string) error
	Admin(ctx context.Context) (string, error)
	Authorize(ctx context.Context, role directory.Role, id string) error
	Revoke(ctx context.Context, role directory.Role, id string) error
	IsAuthorized(ctx context.Context, role directory.Role, id string) (bool, error)
}

// Handler handles network bootstrap and allow-list endpoints.
type Handler struct {
	logger    *slog.Logger
	directory Service
	metrics   *metrics.Metrics
	validator middleware.TokenValidator
}

func New(directory Service, logger *slog.Logger, m *metrics.Metrics, validator middleware.TokenValidator) *Handler {
	return &Handler{
		logger:    logger,
		directory: directory,
		metrics:   m,
		validator: validator,
	}
}

// Register registers the directory routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.RequestTime)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.ContentTypeJSON)
	router.Use(middleware.Latency(h.metrics))
	router.Use(middleware.RequireAuth(h.validator, h.logger))

	router.Post("/initialize", h.handleInitialize)
	router.Get("/admin", h.handleGetAdmin)

	router.Post("/banks", h.handleAuthorize(directory.RoleBank))
	router.Delete("/banks/{id}", h.handleRevoke(directory.RoleBank))
	router.Get("/banks/{id}", h.handleIsAuthorized(directory.RoleBank))

	router.Post("/hospitals", h.handleAuthorize(directory.RoleHospital))
	router.Delete("/hospitals/{id}", h.handleRevoke(directory.RoleHospital))
	router.Get("/hospitals/{id}", h.handleIsAuthorized(directory.RoleHospital))

	r.Mount("/network", router)
}

type initializeRequest struct {
	Admin string `json:"admin"`
}

func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req initializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
		return
	}
	if !govalidator.StringLength(req.Admin, "1", "255") {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "admin must be 1-255 characters"))
		return
	}

	if err := h.directory.Initialize(ctx, req.Admin); err != nil {
		h.logger.WarnContext(ctx, "initialize failed", "error", err.Error())
		shared.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := h.directory.Admin(r.Context())
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{"admin": admin})
}

type participantRequest struct {
	ID string `json:"id"`
}

func (h *Handler) handleAuthorize(role directory.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req participantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid request body"))
			return
		}
		if !govalidator.StringLength(req.ID, "1", "255") {
			shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "id must be 1-255 characters"))
			return
		}

		if err := h.directory.Authorize(ctx, role, req.ID); err != nil {
			h.logger.WarnContext(ctx, "authorize failed", "role", string(role), "error", err.Error())
			shared.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handleRevoke(role directory.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")

		if err := h.directory.Revoke(ctx, role, id); err != nil {
			h.logger.WarnContext(ctx, "revoke failed", "role", string(role), "error", err.Error())
			shared.WriteError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) handleIsAuthorized(role directory.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		allowed, err := h.directory.IsAuthorized(r.Context(), role, id)
		if err != nil {
			shared.WriteError(w, err)
			return
		}
		shared.WriteJSON(w, http.StatusOK, map[string]bool{"authorized": allowed})
	}
}
