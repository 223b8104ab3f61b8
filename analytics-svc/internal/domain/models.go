package domain

type FoodAnalytics struct {
	FoodID          int     `json:"food_id"`
	FoodName        string  `json:"food_name"`
	EstablishmentID int     `json:"establishment_id"`
	Score           float64 `json:"score"`
}

// OrderCounters mirrors the analytics:orders hash. Active is derived.
type OrderCounters struct {
	Created int64 `json:"created"`
	Deleted int64 `json:"deleted"`
	Active  int64 `json:"active"`
}

// RatingScale lists every rating an order can carry.
var RatingScale = []int{0, 1, 2, 3, 4, 5}
