package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Accounts service.AccountServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Tokens   service.TokenVerifier
}

func NewHandler(accounts service.AccountServiceInterface, catalog service.CatalogServiceInterface,
	orders service.OrderServiceInterface, tokens service.TokenVerifier) *Handler {
	return &Handler{
		Accounts: accounts,
		Catalog:  catalog,
		Orders:   orders,
		Tokens:   tokens,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/users", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")
	r.HandleFunc("/api/me/password", h.requireUser(h.changePassword)).Methods("PUT")
	r.HandleFunc("/api/me", h.requireUser(h.deleteAccount)).Methods("DELETE")

	r.HandleFunc("/api/foods", h.listFoods).Methods("GET")
	r.HandleFunc("/api/foods/{id}", h.getFood).Methods("GET")
	r.HandleFunc("/api/establishments", h.listEstablishments).Methods("GET")

	r.HandleFunc("/api/draft", h.requireUser(h.getDraft)).Methods("GET")
	r.HandleFunc("/api/draft", h.requireUser(h.clearDraft)).Methods("DELETE")
	r.HandleFunc("/api/draft/items", h.requireUser(h.addDraftItem)).Methods("POST")
	r.HandleFunc("/api/draft/items/{foodId}", h.requireUser(h.decreaseDraftItem)).Methods("PATCH")
	r.HandleFunc("/api/draft/items/{foodId}", h.requireUser(h.removeDraftItem)).Methods("DELETE")
	r.HandleFunc("/api/draft/submit", h.requireUser(h.submitDraft)).Methods("POST")

	r.HandleFunc("/api/orders", h.requireUser(h.listOrders)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.requireUser(h.deleteOrder)).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/rating", h.requireUser(h.rateOrder)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/items/{foodId}", h.requireUser(h.editOrderItem)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.requireUser(h.getOrderQRCode)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	user, err := h.Accounts.Register(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	session, err := h.Accounts.Login(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	var input service.PasswordInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Accounts.ChangePassword(r.Context(), claims.Email, input); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	if err := h.Accounts.DeleteAccount(r.Context(), claims.Email); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if foods == nil {
		foods = []domain.FoodSummary{}
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	detail, err := h.Catalog.Detail(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsText(r) {
		writeText(w, http.StatusOK, renderFoodDetail(detail))
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *Handler) listEstablishments(w http.ResponseWriter, r *http.Request) {
	establishments, err := h.Catalog.Establishments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if establishments == nil {
		establishments = []domain.Establishment{}
	}
	writeJSON(w, http.StatusOK, establishments)
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	draft, err := h.Orders.Draft(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeDraft(w, r, http.StatusOK, draft)
}

func (h *Handler) clearDraft(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	if err := h.Orders.ClearDraft(r.Context(), claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addDraftItem(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	var payload struct {
		FoodID   int `json:"food_id"`
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	draft, err := h.Orders.AddToDraft(r.Context(), claims.UserID, payload.FoodID, payload.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeDraft(w, r, http.StatusOK, draft)
}

func (h *Handler) decreaseDraftItem(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	foodID, ok := pathInt(w, r, "foodId")
	if !ok {
		return
	}
	var payload struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	draft, err := h.Orders.DecreaseDraftItem(r.Context(), claims.UserID, foodID, payload.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeDraft(w, r, http.StatusOK, draft)
}

func (h *Handler) removeDraftItem(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	foodID, ok := pathInt(w, r, "foodId")
	if !ok {
		return
	}
	draft, err := h.Orders.RemoveFromDraft(r.Context(), claims.UserID, foodID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeDraft(w, r, http.StatusOK, draft)
}

func (h *Handler) submitDraft(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	order, err := h.Orders.Submit(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orders, err := h.Orders.ListOrders(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if wantsText(r) {
		writeText(w, http.StatusOK, renderOrders(orders))
		return
	}
	if orders == nil {
		orders = []domain.OrderSummary{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) rateOrder(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orderID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		Rating *int `json:"rating"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Rating == nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Orders.Rate(r.Context(), claims.UserID, orderID, *payload.Rating); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"order_id": orderID, "rating": *payload.Rating})
}

func (h *Handler) editOrderItem(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orderID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	foodID, ok := pathInt(w, r, "foodId")
	if !ok {
		return
	}
	var payload struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Quantity == nil {
		http.Error(w, "Invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Orders.EditItem(r.Context(), claims.UserID, orderID, foodID, *payload.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{
		"order_id": orderID,
		"food_id":  foodID,
		"quantity": *payload.Quantity,
	})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orderID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	if err := h.Orders.Delete(r.Context(), claims.UserID, orderID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request, claims *service.Claims) {
	orderID, ok := pathInt(w, r, "id")
	if !ok {
		return
	}
	qrCode, err := h.Orders.QRCode(r.Context(), claims.UserID, orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) writeDraft(w http.ResponseWriter, r *http.Request, status int, draft *domain.Order) {
	if wantsText(r) {
		writeText(w, status, renderDraft(draft))
		return
	}
	writeJSON(w, status, draft)
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return value, true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrNilFood),
		errors.Is(err, domain.ErrInvalidUser),
		errors.Is(err, domain.ErrEmptyOrder):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrFoodNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrItemNotInOrder):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
