package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers all HTTP routes and the middleware stack.
// Centralizing routes here ensures consistent gate and error behavior across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/token", handler.issueToken)
		r.Post("/users", handler.registerUser)
		r.Get("/menu", handler.listMenu)
		r.Get("/reviews", handler.listReviews)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Get("/users/admin/{email}", handler.adminStatus)
			r.Patch("/users/{user_id}", handler.updateUser)
			r.Post("/reviews", handler.createReview)
			r.Get("/carts", handler.listCart)
			r.Post("/carts", handler.addCartEntry)
			r.Delete("/carts/{entry_id}", handler.removeCartEntry)
			r.Post("/payments/intent", handler.createChargeIntent)
			r.Post("/payments", handler.settle)
			r.Get("/payments/{email}", handler.paymentHistory)

			r.Group(func(r chi.Router) {
				r.Use(handler.adminMiddleware)
				r.Get("/users", handler.listUsers)
				r.Delete("/users/{user_id}", handler.deleteUser)
				r.Post("/menu", handler.createMenuItem)
				r.Delete("/menu/{item_id}", handler.deleteMenuItem)
			})
		})
	})

	return r
}
