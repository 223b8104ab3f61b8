package domain

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

const (
	MinRating = 0
	MaxRating = 5
)

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

type OrderLine struct {
	Food     *Food `json:"food"`
	Quantity int   `json:"quantity"`
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Food.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order aggregates line items keyed by food id. It is not safe for
// concurrent use.
type Order struct {
	ID        int
	CreatedAt time.Time
	UserID    int

	rating mo.Option[int]
	items  map[int]*OrderLine
}

func NewOrder(userID int) *Order {
	return &Order{
		UserID:    userID,
		CreatedAt: time.Now(),
		items:     make(map[int]*OrderLine),
	}
}

func (o *Order) Rating() mo.Option[int] {
	return o.rating
}

// SetRating accepts an absent rating or a value in [MinRating, MaxRating].
func (o *Order) SetRating(rating mo.Option[int]) error {
	if value, ok := rating.Get(); ok {
		if err := ValidateRating(value); err != nil {
			return err
		}
	}
	o.rating = rating
	return nil
}

// AddItem sums qty into the existing line for food or starts a new one.
func (o *Order) AddItem(food *Food, qty int) error {
	if food == nil {
		return ErrNilFood
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if o.items == nil {
		o.items = make(map[int]*OrderLine)
	}
	if line, ok := o.items[food.ID]; ok {
		line.Quantity += qty
		return nil
	}
	o.items[food.ID] = &OrderLine{Food: food, Quantity: qty}
	return nil
}

// RemoveItem drops the line for foodID and reports whether one existed.
func (o *Order) RemoveItem(foodID int) bool {
	if _, ok := o.items[foodID]; !ok {
		return false
	}
	delete(o.items, foodID)
	return true
}

// DecreaseItem subtracts amount and removes the line once it reaches zero.
// Unknown food ids are ignored.
func (o *Order) DecreaseItem(foodID, amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	line, ok := o.items[foodID]
	if !ok {
		return nil
	}
	line.Quantity -= amount
	if line.Quantity <= 0 {
		delete(o.items, foodID)
	}
	return nil
}

func (o *Order) Find(foodID int) (OrderLine, bool) {
	line, ok := o.items[foodID]
	if !ok {
		return OrderLine{}, false
	}
	return *line, true
}

func (o *Order) Quantity(foodID int) int {
	if line, ok := o.items[foodID]; ok {
		return line.Quantity
	}
	return 0
}

// Lines returns a copy of the line items ordered by food id.
func (o *Order) Lines() []OrderLine {
	lines := lo.MapToSlice(o.items, func(_ int, line *OrderLine) OrderLine {
		return *line
	})
	sort.Slice(lines, func(i, j int) bool { return lines[i].Food.ID < lines[j].Food.ID })
	return lines
}

func (o *Order) Len() int {
	return len(o.items)
}

func (o *Order) Empty() bool {
	return len(o.items) == 0
}

// Total is the sum of price times quantity. Beverage tax is not included.
func (o *Order) Total() decimal.Decimal {
	return lo.Reduce(o.Lines(), func(acc decimal.Decimal, line OrderLine, _ int) decimal.Decimal {
		return acc.Add(line.Subtotal())
	}, decimal.Zero)
}

type orderJSON struct {
	ID        int             `json:"id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UserID    int             `json:"user_id"`
	Rating    mo.Option[int]  `json:"rating"`
	Items     []OrderLine     `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(orderJSON{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		UserID:    o.UserID,
		Rating:    o.rating,
		Items:     o.Lines(),
		Total:     o.Total(),
	})
}

// UnmarshalJSON rebuilds the order through AddItem and SetRating, so a
// snapshot that breaks an invariant is rejected.
func (o *Order) UnmarshalJSON(data []byte) error {
	var in orderJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	restored := NewOrder(in.UserID)
	restored.ID = in.ID
	if !in.CreatedAt.IsZero() {
		restored.CreatedAt = in.CreatedAt
	}
	if err := restored.SetRating(in.Rating); err != nil {
		return err
	}
	for _, line := range in.Items {
		if err := restored.AddItem(line.Food, line.Quantity); err != nil {
			return err
		}
	}

	*o = *restored
	return nil
}
