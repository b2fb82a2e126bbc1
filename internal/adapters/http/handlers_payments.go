package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bistrolabs/ordering-service/internal/application"
	"github.com/bistrolabs/ordering-service/internal/domain"
)

func (h *Handler) createChargeIntent(w http.ResponseWriter, r *http.Request) {
	var req application.CreateChargeIntentRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "create_charge_intent", err)
		return
	}

	res, err := h.service.CreateChargeIntent(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "create_charge_intent", err)
		return
	}
	writeSuccess(w, http.StatusOK, res)
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var req application.SettleRequest
	if err := decodeBody(r, &req); err != nil {
		writeValidationError(r.Context(), w, "settle", err)
		return
	}

	res, err := h.service.Settle(r.Context(), req)
	if err != nil {
		writeMappedError(r.Context(), w, "settle", err)
		return
	}
	// The payment record is durable even when the cart retraction failed, so
	// a partial outcome is still a created settlement.
	writeSuccess(w, http.StatusCreated, res)
}

func (h *Handler) paymentHistory(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeMappedError(r.Context(), w, "payment_history", domain.ErrMissingCredential)
		return
	}

	payments, err := h.service.PaymentHistory(r.Context(), claims, chi.URLParam(r, "email"))
	if err != nil {
		writeMappedError(r.Context(), w, "payment_history", err)
		return
	}
	writeSuccess(w, http.StatusOK, payments)
}
