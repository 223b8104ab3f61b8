package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"food-ordering/order-svc/internal/domain"

	"github.com/samber/mo"
)

type OrderStore struct{}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Create inserts the order header and one item row per line. It is meant to
// run inside a caller-managed transaction.
func (s *OrderStore) Create(ctx context.Context, q Querier, order *domain.Order) error {
	if order == nil || order.UserID <= 0 {
		return domain.ErrInvalidUser
	}

	if err := q.QueryRowContext(ctx,
		"INSERT INTO Pedido (data_hora, avaliacao, id_usuario) VALUES ($1, $2, $3) RETURNING id_pedido",
		order.CreatedAt, order.Rating().ToPointer(), order.UserID).
		Scan(&order.ID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	lines := order.Lines()
	if len(lines) == 0 {
		return nil
	}

	stmt, err := q.PrepareContext(ctx,
		"INSERT INTO Pedido_Alimento (id_pedido, id_alimento, quantidade) VALUES ($1, $2, $3)")
	if err != nil {
		return fmt.Errorf("prepare order items: %w", err)
	}
	defer stmt.Close()

	for _, line := range lines {
		if _, err := stmt.ExecContext(ctx, order.ID, line.Food.ID, line.Quantity); err != nil {
			return fmt.Errorf("insert order item %d: %w", line.Food.ID, err)
		}
	}
	return nil
}

// UpsertItem sets the quantity of one line. A quantity of zero or less
// deletes the line instead.
func (s *OrderStore) UpsertItem(ctx context.Context, q Querier, orderID, foodID, quantity int) error {
	if quantity <= 0 {
		return s.DeleteItem(ctx, q, orderID, foodID)
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO Pedido_Alimento (id_pedido, id_alimento, quantidade) VALUES ($1, $2, $3)
		ON CONFLICT (id_pedido, id_alimento) DO UPDATE SET quantidade = EXCLUDED.quantidade`,
		orderID, foodID, quantity)
	return err
}

func (s *OrderStore) DeleteItem(ctx context.Context, q Querier, orderID, foodID int) error {
	_, err := q.ExecContext(ctx,
		"DELETE FROM Pedido_Alimento WHERE id_pedido = $1 AND id_alimento = $2", orderID, foodID)
	return err
}

// Delete removes the order header; item rows go with it through the
// cascade rule. The bool reports whether a row was deleted.
func (s *OrderStore) Delete(ctx context.Context, q Querier, orderID int) (bool, error) {
	result, err := q.ExecContext(ctx, "DELETE FROM Pedido WHERE id_pedido = $1", orderID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *OrderStore) Rate(ctx context.Context, q Querier, orderID, rating int) error {
	if err := domain.ValidateRating(rating); err != nil {
		return err
	}
	result, err := q.ExecContext(ctx, "UPDATE Pedido SET avaliacao = $1 WHERE id_pedido = $2", rating, orderID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}
	return nil
}

// ListByUser returns order headers newest first. Items are left empty.
func (s *OrderStore) ListByUser(ctx context.Context, q Querier, userID int) ([]domain.OrderSummary, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id_pedido, data_hora, avaliacao FROM Pedido WHERE id_usuario = $1 ORDER BY data_hora DESC",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderSummary
	for rows.Next() {
		var (
			order  domain.OrderSummary
			rating sql.NullInt64
		)
		if err := rows.Scan(&order.ID, &order.CreatedAt, &rating); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.Rating = mo.TupleToOption(int(rating.Int64), rating.Valid)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (s *OrderStore) ListItems(ctx context.Context, q Querier, orderID int) ([]domain.OrderItemView, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT a.id_alimento, a.nome, pa.quantidade
		FROM Pedido_Alimento pa
		JOIN Alimento a ON pa.id_alimento = a.id_alimento
		WHERE pa.id_pedido = $1
		ORDER BY a.nome`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItemView
	for rows.Next() {
		var item domain.OrderItemView
		if err := rows.Scan(&item.FoodID, &item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *OrderStore) ItemExists(ctx context.Context, q Querier, orderID, foodID int) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx,
		"SELECT 1 FROM Pedido_Alimento WHERE id_pedido = $1 AND id_alimento = $2", orderID, foodID).
		Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *OrderStore) BelongsTo(ctx context.Context, q Querier, orderID, userID int) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM Pedido WHERE id_pedido = $1 AND id_usuario = $2
		)`, orderID, userID).Scan(&exists)
	return exists, err
}
