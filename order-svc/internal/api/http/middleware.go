package httpapi

import (
	"net/http"
	"strings"

	"food-ordering/order-svc/internal/service"
)

type authedHandler func(w http.ResponseWriter, r *http.Request, claims *service.Claims)

// requireUser rejects requests without a valid bearer token.
func (h *Handler) requireUser(next authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}
		claims, err := h.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		next(w, r, claims)
	}
}
