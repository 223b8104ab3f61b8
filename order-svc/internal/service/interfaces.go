package service

import (
	"context"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/storage"
)

type UnitOfWork interface {
	WithConn(ctx context.Context, fn func(q storage.Querier) error) error
	WithTx(ctx context.Context, fn func(q storage.Querier) error) error
}

type UserRepository interface {
	FindByCredentials(ctx context.Context, q storage.Querier, email, password string) (*domain.User, error)
	Insert(ctx context.Context, q storage.Querier, user *domain.User) error
	UpdatePassword(ctx context.Context, q storage.Querier, email, password string) (int64, error)
	DeleteByEmail(ctx context.Context, q storage.Querier, email string) (int64, error)
}

type CatalogRepository interface {
	ListSummaries(ctx context.Context, q storage.Querier) ([]domain.FoodSummary, error)
	GetDetail(ctx context.Context, q storage.Querier, id int) (*domain.FoodDetail, error)
	GetFood(ctx context.Context, q storage.Querier, id int) (*domain.Food, error)
	ListEstablishments(ctx context.Context, q storage.Querier) ([]domain.Establishment, error)
}

type OrderRepository interface {
	Create(ctx context.Context, q storage.Querier, order *domain.Order) error
	UpsertItem(ctx context.Context, q storage.Querier, orderID, foodID, quantity int) error
	DeleteItem(ctx context.Context, q storage.Querier, orderID, foodID int) error
	Delete(ctx context.Context, q storage.Querier, orderID int) (bool, error)
	Rate(ctx context.Context, q storage.Querier, orderID, rating int) error
	ListByUser(ctx context.Context, q storage.Querier, userID int) ([]domain.OrderSummary, error)
	ListItems(ctx context.Context, q storage.Querier, orderID int) ([]domain.OrderItemView, error)
	ItemExists(ctx context.Context, q storage.Querier, orderID, foodID int) (bool, error)
	BelongsTo(ctx context.Context, q storage.Querier, orderID, userID int) (bool, error)
}

type DraftStore interface {
	Load(ctx context.Context, userID int) (*domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Reset(ctx context.Context, userID int) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type AccountServiceInterface interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	ChangePassword(ctx context.Context, email string, input PasswordInput) error
	DeleteAccount(ctx context.Context, email string) error
}

type CatalogServiceInterface interface {
	List(ctx context.Context) ([]domain.FoodSummary, error)
	Detail(ctx context.Context, id int) (*domain.FoodDetail, error)
	Establishments(ctx context.Context) ([]domain.Establishment, error)
}

type OrderServiceInterface interface {
	Draft(ctx context.Context, userID int) (*domain.Order, error)
	AddToDraft(ctx context.Context, userID, foodID, quantity int) (*domain.Order, error)
	RemoveFromDraft(ctx context.Context, userID, foodID int) (*domain.Order, error)
	DecreaseDraftItem(ctx context.Context, userID, foodID, amount int) (*domain.Order, error)
	ClearDraft(ctx context.Context, userID int) error
	Submit(ctx context.Context, userID int) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error)
	Rate(ctx context.Context, userID, orderID, rating int) error
	EditItem(ctx context.Context, userID, orderID, foodID, quantity int) error
	Delete(ctx context.Context, userID, orderID int) error
	QRCode(ctx context.Context, userID, orderID int) ([]byte, error)
}

var (
	_ UnitOfWork        = (*storage.Provider)(nil)
	_ UserRepository    = (*storage.UserStore)(nil)
	_ CatalogRepository = (*storage.CatalogStore)(nil)
	_ OrderRepository   = (*storage.OrderStore)(nil)
	_ DraftStore        = (*storage.DraftStore)(nil)
	_ EventPublisher    = (*storage.KafkaPublisher)(nil)
)
