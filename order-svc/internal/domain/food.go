package domain

import (
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindRegular  Kind = "COMIDA"
	KindBeverage Kind = "BEBIDA"
)

// InferredAlcoholPercent is assigned to beverages whose stored tax
// percentage is positive. The store keeps no alcohol column.
const InferredAlcoholPercent = 5.0

var beverageTaxRate = decimal.RequireFromString("0.08")

// Variant is implemented only by Regular and Beverage.
type Variant interface {
	Kind() Kind
	sealed()
}

type Regular struct{}

func (Regular) Kind() Kind { return KindRegular }
func (Regular) sealed()    {}

type Beverage struct {
	AlcoholPercent float64
}

func (Beverage) Kind() Kind { return KindBeverage }
func (Beverage) sealed()    {}

// Tax is 8% of price when the beverage contains alcohol.
func (b Beverage) Tax(price decimal.Decimal) decimal.Decimal {
	if b.AlcoholPercent > 0 {
		return price.Mul(beverageTaxRate)
	}
	return decimal.Zero
}

// ParseVariant maps the stored discriminator to a variant. For beverages the
// alcohol percentage is inferred from taxPercent.
func ParseVariant(kind string, taxPercent decimal.NullDecimal) (Variant, error) {
	switch Kind(kind) {
	case KindRegular:
		return Regular{}, nil
	case KindBeverage:
		alcohol := 0.0
		if taxPercent.Valid && taxPercent.Decimal.IsPositive() {
			alcohol = InferredAlcoholPercent
		}
		return Beverage{AlcoholPercent: alcohol}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFoodKind, kind)
	}
}

type Food struct {
	ID                int
	Name              string
	Description       string
	Price             decimal.Decimal
	EstablishmentID   int
	EstablishmentName string
	Variant           Variant
}

func (f *Food) Kind() Kind {
	if f.Variant == nil {
		return KindRegular
	}
	return f.Variant.Kind()
}

// Tax reports the alcohol tax for beverages. The second value is false for
// every other variant.
func (f *Food) Tax() (decimal.Decimal, bool) {
	b, ok := f.Variant.(Beverage)
	if !ok {
		return decimal.Zero, false
	}
	return b.Tax(f.Price), true
}

type foodJSON struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	Kind              Kind            `json:"kind"`
	AlcoholPercent    *float64        `json:"alcohol_percent,omitempty"`
	EstablishmentID   int             `json:"establishment_id,omitempty"`
	EstablishmentName string          `json:"establishment_name,omitempty"`
}

func (f Food) MarshalJSON() ([]byte, error) {
	out := foodJSON{
		ID:                f.ID,
		Name:              f.Name,
		Description:       f.Description,
		Price:             f.Price,
		Kind:              f.Kind(),
		EstablishmentID:   f.EstablishmentID,
		EstablishmentName: f.EstablishmentName,
	}
	if b, ok := f.Variant.(Beverage); ok {
		alcohol := b.AlcoholPercent
		out.AlcoholPercent = &alcohol
	}
	return json.Marshal(out)
}

func (f *Food) UnmarshalJSON(data []byte) error {
	var in foodJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	var variant Variant
	switch in.Kind {
	case KindRegular, "":
		variant = Regular{}
	case KindBeverage:
		beverage := Beverage{}
		if in.AlcoholPercent != nil {
			beverage.AlcoholPercent = *in.AlcoholPercent
		}
		variant = beverage
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFoodKind, in.Kind)
	}

	*f = Food{
		ID:                in.ID,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		EstablishmentID:   in.EstablishmentID,
		EstablishmentName: in.EstablishmentName,
		Variant:           variant,
	}
	return nil
}

type FoodSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type FoodDetail struct {
	ID                int                        `json:"id"`
	Name              string                     `json:"name"`
	Description       mo.Option[string]          `json:"description"`
	Price             decimal.Decimal            `json:"price"`
	Kind              Kind                       `json:"kind"`
	TaxPercent        mo.Option[decimal.Decimal] `json:"tax_percent"`
	EstablishmentName string                     `json:"establishment_name"`
}

// DisplayTax returns the stored tax percentage only for beverages.
func (d FoodDetail) DisplayTax() (decimal.Decimal, bool) {
	if d.Kind != KindBeverage {
		return decimal.Zero, false
	}
	return d.TaxPercent.Get()
}
