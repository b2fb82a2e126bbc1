package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/application"
	"github.com/bistrolabs/ordering-service/internal/domain"
)

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "list_cart", domain.ErrMissingCredential)
		return
	}

	entries, err := h.service.ListCart(r.Context(), claims, r.URL.Query().Get("email"))
	if err != nil {
		writeMappedError(r.Context(), w, "list_cart", err)
		return
	}
	writeSuccess(w, http.StatusOK, entries)
}

func (h *Handler) addCartEntry(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "add_cart_entry", domain.ErrMissingCredential)
		return
	}
	var req application.AddCartEntryRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "add_cart_entry", err)
		return
	}

	entry, err := h.service.AddCartEntry(r.Context(), claims, req)
	if err != nil {
		writeMappedError(r.Context(), w, "add_cart_entry", err)
		return
	}
	writeSuccess(w, http.StatusCreated, entry)
}

func (h *Handler) removeCartEntry(w http.ResponseWriter, r *http.Request) {
	entryID, err := uuid.Parse(chi.URLParam(r, "entry_id"))
	if err != nil {
		writeValidationError(r.Context(), w, "remove_cart_entry", err)
		return
	}

	deleted, err := h.service.RemoveCartEntry(r.Context(), entryID)
	if err != nil {
		writeMappedError(r.Context(), w, "remove_cart_entry", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": deleted})
}
