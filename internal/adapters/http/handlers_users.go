package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/application"
	"github.com/bistrolabs/ordering-service/internal/domain"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var req application.RegisterUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "register_user", err)
		return
	}

	res, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "register_user", err)
		return
	}
	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	writeSuccess(w, status, res)
}

func (h *Handler) adminStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "admin_status", domain.ErrMissingCredential)
		return
	}

	res, err := h.service.AdminStatus(r.Context(), claims, chi.URLParam(r, "email"))
	if err != nil {
		writeMappedError(r.Context(), w, "admin_status", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_users", err)
		return
	}
	writeSuccess(w, http.StatusOK, users)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeValidationError(r.Context(), w, "update_user", err)
		return
	}
	var req application.UpdateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "update_user", err)
		return
	}

	updated, err := h.service.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeMappedError(r.Context(), w, "update_user", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"updated": updated})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		writeValidationError(r.Context(), w, "delete_user", err)
		return
	}

	deleted, err := h.service.DeleteUser(r.Context(), userID)
	if err != nil {
		writeMappedError(r.Context(), w, "delete_user", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": deleted})
}
