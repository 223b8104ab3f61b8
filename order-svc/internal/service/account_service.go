package service

import (
	"context"
	"errors"
	"strings"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/storage"
)

type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type AccountService struct {
	uow    UnitOfWork
	users  UserRepository
	tokens TokenIssuer
}

func NewAccountService(uow UnitOfWork, users UserRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{uow: uow, users: users, tokens: tokens}
}

func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{Name: input.Name, Email: input.Email, Password: input.Password}
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		return s.users.Insert(ctx, q, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AccountService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var user *domain.User
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		found, err := s.users.FindByCredentials(ctx, q, input.Email, input.Password)
		user = found
		return err
	})
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, User: user}, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, email string, input PasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}
	return s.uow.WithConn(ctx, func(q storage.Querier) error {
		affected, err := s.users.UpdatePassword(ctx, q, email, input.NewPassword)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

func (s *AccountService) DeleteAccount(ctx context.Context, email string) error {
	return s.uow.WithConn(ctx, func(q storage.Querier) error {
		affected, err := s.users.DeleteByEmail(ctx, q, email)
		if err != nil {
			return err
		}
		if affected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

var _ AccountServiceInterface = (*AccountService)(nil)
