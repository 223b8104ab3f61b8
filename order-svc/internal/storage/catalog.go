package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"food-ordering/order-svc/internal/domain"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"
)

type CatalogStore struct{}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

func (s *CatalogStore) ListSummaries(ctx context.Context, q Querier) ([]domain.FoodSummary, error) {
	rows, err := q.QueryContext(ctx, "SELECT id_alimento, nome FROM Alimento ORDER BY nome")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []domain.FoodSummary
	for rows.Next() {
		var food domain.FoodSummary
		if err := rows.Scan(&food.ID, &food.Name); err != nil {
			return nil, fmt.Errorf("scan food summary: %w", err)
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (s *CatalogStore) GetDetail(ctx context.Context, q Querier, id int) (*domain.FoodDetail, error) {
	var (
		detail      domain.FoodDetail
		description sql.NullString
		kind        string
		taxPercent  decimal.NullDecimal
	)
	err := q.QueryRowContext(ctx, `
		SELECT a.id_alimento, a.nome, a.descricao, a.preco, a.tipo_alimento, a.percentual_imposto,
		       e.nome AS nome_estabelecimento
		FROM Alimento a
		JOIN Estabelecimento e ON a.id_estabelecimento = e.id_estabelecimento
		WHERE a.id_alimento = $1`, id).
		Scan(&detail.ID, &detail.Name, &description, &detail.Price, &kind, &taxPercent, &detail.EstablishmentName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrFoodNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	detail.Kind = domain.Kind(kind)
	detail.Description = mo.TupleToOption(description.String, description.Valid)
	detail.TaxPercent = mo.TupleToOption(taxPercent.Decimal, taxPercent.Valid)
	return &detail, nil
}

func (s *CatalogStore) GetFood(ctx context.Context, q Querier, id int) (*domain.Food, error) {
	var (
		food        domain.Food
		description sql.NullString
		kind        string
		taxPercent  decimal.NullDecimal
	)
	err := q.QueryRowContext(ctx, `
		SELECT a.id_alimento, a.nome, a.descricao, a.preco, a.tipo_alimento, a.percentual_imposto,
		       e.id_estabelecimento, e.nome AS nome_estabelecimento
		FROM Alimento a
		JOIN Estabelecimento e ON a.id_estabelecimento = e.id_estabelecimento
		WHERE a.id_alimento = $1`, id).
		Scan(&food.ID, &food.Name, &description, &food.Price, &kind, &taxPercent,
			&food.EstablishmentID, &food.EstablishmentName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrFoodNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	variant, err := domain.ParseVariant(kind, taxPercent)
	if err != nil {
		return nil, err
	}
	food.Description = description.String
	food.Variant = variant
	return &food, nil
}

// ListEstablishments returns every establishment with its catalog ordered
// by food name. Foods with an unknown discriminator are skipped.
func (s *CatalogStore) ListEstablishments(ctx context.Context, q Querier) ([]domain.Establishment, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT e.id_estabelecimento, e.nome, e.endereco,
		       a.id_alimento, a.nome, a.descricao, a.preco, a.tipo_alimento, a.percentual_imposto
		FROM Estabelecimento e
		LEFT JOIN Alimento a ON a.id_estabelecimento = e.id_estabelecimento
		ORDER BY e.nome, e.id_estabelecimento, a.nome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var establishments []domain.Establishment
	index := make(map[int]int)
	for rows.Next() {
		var (
			estID       int
			estName     string
			estAddress  sql.NullString
			foodID      sql.NullInt64
			foodName    sql.NullString
			description sql.NullString
			price       decimal.NullDecimal
			kind        sql.NullString
			taxPercent  decimal.NullDecimal
		)
		if err := rows.Scan(&estID, &estName, &estAddress,
			&foodID, &foodName, &description, &price, &kind, &taxPercent); err != nil {
			return nil, fmt.Errorf("scan establishment: %w", err)
		}

		pos, ok := index[estID]
		if !ok {
			establishments = append(establishments, domain.Establishment{
				ID:      estID,
				Name:    estName,
				Address: estAddress.String,
				Catalog: []*domain.Food{},
			})
			pos = len(establishments) - 1
			index[estID] = pos
		}
		if !foodID.Valid {
			continue
		}

		variant, err := domain.ParseVariant(kind.String, taxPercent)
		if err != nil {
			log.Printf("Skipping food %d: %v", foodID.Int64, err)
			continue
		}
		establishments[pos].AddFood(&domain.Food{
			ID:          int(foodID.Int64),
			Name:        foodName.String,
			Description: description.String,
			Price:       price.Decimal,
			Variant:     variant,
		})
	}
	return establishments, rows.Err()
}
