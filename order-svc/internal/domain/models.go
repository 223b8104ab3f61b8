package domain

import (
	"time"

	"github.com/samber/mo"
)

// User passwords are stored and compared in plaintext.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

type Establishment struct {
	ID      int     `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Catalog []*Food `json:"catalog"`
}

// AddFood appends food to the catalog and points it back at e.
func (e *Establishment) AddFood(food *Food) {
	if food == nil {
		return
	}
	food.EstablishmentID = e.ID
	food.EstablishmentName = e.Name
	e.Catalog = append(e.Catalog, food)
}

type OrderItemView struct {
	FoodID   int    `json:"food_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OrderSummary struct {
	ID        int             `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Rating    mo.Option[int]  `json:"rating"`
	Items     []OrderItemView `json:"items"`
}
