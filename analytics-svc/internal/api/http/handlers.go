package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"food-ordering/analytics-svc/internal/domain"
	"food-ordering/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.HandleFunc("/api/analytics/top-today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/top-alltime", h.getTopAllTime).Methods("GET")
	r.HandleFunc("/api/analytics/rating-distribution", h.getRatingDistribution).Methods("GET")
	r.HandleFunc("/api/analytics/orders", h.getOrderCounters).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "analytics-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Rankings degrade to an empty list so dashboards keep rendering.
func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday(r.Context())
	if err != nil {
		log.Printf("Error loading top today: %v", err)
		data = nil
	}
	writeRanking(w, data)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime(r.Context())
	if err != nil {
		log.Printf("Error loading top all time: %v", err)
		data = nil
	}
	writeRanking(w, data)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	distribution, err := h.Analytics.RatingDistribution(r.Context())
	if err != nil {
		log.Printf("Error loading rating distribution: %v", err)
		http.Error(w, "rating distribution unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, distribution)
}

func (h *Handler) getOrderCounters(w http.ResponseWriter, r *http.Request) {
	counters, err := h.Analytics.OrderCounters(r.Context())
	if err != nil {
		log.Printf("Error loading order counters: %v", err)
		http.Error(w, "order counters unavailable", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, counters)
}

func writeRanking(w http.ResponseWriter, data []domain.FoodAnalytics) {
	if data == nil {
		data = []domain.FoodAnalytics{}
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
