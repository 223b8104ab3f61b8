package storage

import (
	"context"
	"database/sql"
	"errors"

	"food-ordering/order-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type UserStore struct{}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) FindByCredentials(ctx context.Context, q Querier, email, password string) (*domain.User, error) {
	var user domain.User
	err := q.QueryRowContext(ctx,
		"SELECT id_usuario, nome, email, senha FROM Usuario WHERE email = $1 AND senha = $2",
		email, password).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserStore) Insert(ctx context.Context, q Querier, user *domain.User) error {
	err := q.QueryRowContext(ctx,
		"INSERT INTO Usuario (nome, email, senha) VALUES ($1, $2, $3) RETURNING id_usuario",
		user.Name, user.Email, user.Password).
		Scan(&user.ID)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

func (s *UserStore) UpdatePassword(ctx context.Context, q Querier, email, password string) (int64, error) {
	result, err := q.ExecContext(ctx, "UPDATE Usuario SET senha = $1 WHERE email = $2", password, email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *UserStore) DeleteByEmail(ctx context.Context, q Querier, email string) (int64, error) {
	result, err := q.ExecContext(ctx, "DELETE FROM Usuario WHERE email = $1", email)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
