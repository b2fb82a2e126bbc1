package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bistrolabs/ordering-service/internal/application"
)

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMenu(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_menu", err)
		return
	}
	writeSuccess(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req application.CreateMenuItemRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_menu_item", err)
		return
	}

	item, err := h.service.CreateMenuItem(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_menu_item", err)
		return
	}
	writeSuccess(w, http.StatusCreated, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil {
		writeValidationError(r.Context(), w, "delete_menu_item", err)
		return
	}

	deleted, err := h.service.DeleteMenuItem(r.Context(), itemID)
	if err != nil {
		writeMappedError(r.Context(), w, "delete_menu_item", err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": deleted})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		writeMappedError(r.Context(), w, "list_reviews", err)
		return
	}
	writeSuccess(w, http.StatusOK, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var req application.CreateReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_review", err)
		return
	}

	review, err := h.service.CreateReview(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_review", err)
		return
	}
	writeSuccess(w, http.StatusCreated, review)
}
