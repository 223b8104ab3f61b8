package tests

import (
	"context"
	"errors"
	"testing"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/mocks"
	"food-ordering/order-svc/internal/service"
	"food-ordering/order-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runInline(_ context.Context, fn func(storage.Querier) error) error {
	return fn(nil)
}

func newUnitOfWork(t *testing.T) *mocks.UnitOfWork {
	uow := mocks.NewUnitOfWork(t)
	uow.On("WithConn", mock.Anything, mock.Anything).Return(runInline).Maybe()
	uow.On("WithTx", mock.Anything, mock.Anything).Return(runInline).Maybe()
	return uow
}

type orderDeps struct {
	catalog   *mocks.CatalogRepository
	orders    *mocks.OrderRepository
	drafts    *mocks.DraftStore
	publisher *mocks.EventPublisher
	qr        *mocks.QRGenerator
}

func newOrderService(t *testing.T) (*service.OrderService, orderDeps) {
	deps := orderDeps{
		catalog:   mocks.NewCatalogRepository(t),
		orders:    mocks.NewOrderRepository(t),
		drafts:    mocks.NewDraftStore(t),
		publisher: mocks.NewEventPublisher(t),
		qr:        mocks.NewQRGenerator(t),
	}
	svc := service.NewOrderService(newUnitOfWork(t), deps.catalog, deps.orders, deps.drafts, deps.publisher, deps.qr)
	return svc, deps
}

func TestAccountService_Register(t *testing.T) {
	tests := []struct {
		name      string
		input     service.RegisterInput
		setupMock func(*mocks.UserRepository)
		wantErr   error
	}{
		{
			name:  "valid user",
			input: service.RegisterInput{Name: " Ana ", Email: "ana@example.com", Password: "secret"},
			setupMock: func(m *mocks.UserRepository) {
				m.On("Insert", mock.Anything, mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
					return u.Name == "Ana" && u.Email == "ana@example.com"
				})).Run(func(args mock.Arguments) {
					args.Get(2).(*domain.User).ID = 7
				}).Return(nil).Once()
			},
		},
		{
			name:      "blank name",
			input:     service.RegisterInput{Name: "   ", Email: "ana@example.com", Password: "secret"},
			setupMock: func(m *mocks.UserRepository) {},
			wantErr:   domain.ErrMissingField,
		},
		{
			name:      "missing password",
			input:     service.RegisterInput{Name: "Ana", Email: "ana@example.com"},
			setupMock: func(m *mocks.UserRepository) {},
			wantErr:   domain.ErrMissingField,
		},
		{
			name:  "email taken",
			input: service.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret"},
			setupMock: func(m *mocks.UserRepository) {
				m.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(domain.ErrEmailTaken).Once()
			},
			wantErr: domain.ErrEmailTaken,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			testCase.setupMock(users)
			svc := service.NewAccountService(newUnitOfWork(t), users, mocks.NewTokenIssuer(t))

			user, err := svc.Register(context.Background(), testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, user.ID)
			assert.Equal(t, "Ana", user.Name)
		})
	}
}

func TestAccountService_Login(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.UserRepository, *mocks.TokenIssuer)
		wantErr   error
	}{
		{
			name: "valid credentials",
			setupMock: func(users *mocks.UserRepository, tokens *mocks.TokenIssuer) {
				user := &domain.User{ID: 3, Name: "Ana", Email: "ana@example.com"}
				users.On("FindByCredentials", mock.Anything, mock.Anything, "ana@example.com", "secret").Return(user, nil).Once()
				tokens.On("Issue", user).Return("signed-token", nil).Once()
			},
		},
		{
			name: "wrong password",
			setupMock: func(users *mocks.UserRepository, tokens *mocks.TokenIssuer) {
				users.On("FindByCredentials", mock.Anything, mock.Anything, "ana@example.com", "secret").
					Return(nil, domain.ErrUserNotFound).Once()
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "store failure",
			setupMock: func(users *mocks.UserRepository, tokens *mocks.TokenIssuer) {
				users.On("FindByCredentials", mock.Anything, mock.Anything, "ana@example.com", "secret").
					Return(nil, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			users := mocks.NewUserRepository(t)
			tokens := mocks.NewTokenIssuer(t)
			testCase.setupMock(users, tokens)
			svc := service.NewAccountService(newUnitOfWork(t), users, tokens)

			session, err := svc.Login(context.Background(), service.LoginInput{Email: "ana@example.com", Password: "secret"})

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed-token", session.Token)
			assert.Equal(t, 3, session.User.ID)
		})
	}
}

func TestAccountService_ChangePasswordAndDelete(t *testing.T) {
	users := mocks.NewUserRepository(t)
	svc := service.NewAccountService(newUnitOfWork(t), users, mocks.NewTokenIssuer(t))
	ctx := context.Background()

	users.On("UpdatePassword", mock.Anything, mock.Anything, "ana@example.com", "new").Return(int64(1), nil).Once()
	users.On("UpdatePassword", mock.Anything, mock.Anything, "ghost@example.com", "new").Return(int64(0), nil).Once()
	users.On("DeleteByEmail", mock.Anything, mock.Anything, "ghost@example.com").Return(int64(0), nil).Once()

	assert.NoError(t, svc.ChangePassword(ctx, "ana@example.com", service.PasswordInput{NewPassword: "new"}))
	assert.ErrorIs(t, svc.ChangePassword(ctx, "ghost@example.com", service.PasswordInput{NewPassword: "new"}), domain.ErrUserNotFound)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "ana@example.com", service.PasswordInput{}), domain.ErrMissingField)
	assert.ErrorIs(t, svc.DeleteAccount(ctx, "ghost@example.com"), domain.ErrUserNotFound)
}

func TestCatalogService_Detail(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		setupMock func(*mocks.CatalogRepository)
		wantErr   error
	}{
		{
			name: "found",
			id:   1,
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("GetDetail", mock.Anything, mock.Anything, 1).Return(&domain.FoodDetail{ID: 1, Name: "Pizza"}, nil).Once()
			},
		},
		{
			name:      "non positive id",
			id:        0,
			setupMock: func(m *mocks.CatalogRepository) {},
			wantErr:   domain.ErrFoodNotFound,
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(m *mocks.CatalogRepository) {
				m.On("GetDetail", mock.Anything, mock.Anything, 99).Return(nil, domain.ErrFoodNotFound).Once()
			},
			wantErr: domain.ErrFoodNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := mocks.NewCatalogRepository(t)
			testCase.setupMock(catalog)
			svc := service.NewCatalogService(newUnitOfWork(t), catalog)

			detail, err := svc.Detail(context.Background(), testCase.id)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Pizza", detail.Name)
		})
	}
}

func TestOrderService_AddToDraft(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		setupMock func(orderDeps)
		wantQty   int
		wantErr   error
	}{
		{
			name:     "adds to existing line",
			quantity: 2,
			setupMock: func(d orderDeps) {
				pizza := newFood(1, "Pizza", "30.00")
				draft := domain.NewOrder(4)
				_ = draft.AddItem(pizza, 1)
				d.catalog.On("GetFood", mock.Anything, mock.Anything, 1).Return(pizza, nil).Once()
				d.drafts.On("Load", mock.Anything, 4).Return(draft, nil).Once()
				d.drafts.On("Save", mock.Anything, draft).Return(nil).Once()
			},
			wantQty: 3,
		},
		{
			name:      "rejects zero quantity",
			quantity:  0,
			setupMock: func(d orderDeps) {},
			wantErr:   domain.ErrInvalidQuantity,
		},
		{
			name:     "unknown food",
			quantity: 1,
			setupMock: func(d orderDeps) {
				d.catalog.On("GetFood", mock.Anything, mock.Anything, 1).Return(nil, domain.ErrFoodNotFound).Once()
			},
			wantErr: domain.ErrFoodNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			testCase.setupMock(deps)

			draft, err := svc.AddToDraft(context.Background(), 4, 1, testCase.quantity)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantQty, draft.Quantity(1))
		})
	}
}

func TestOrderService_RemoveAndDecreaseDraftItem(t *testing.T) {
	svc, deps := newOrderService(t)
	ctx := context.Background()
	draft := domain.NewOrder(4)
	require.NoError(t, draft.AddItem(newFood(1, "Pizza", "30.00"), 3))

	deps.drafts.On("Load", mock.Anything, 4).Return(draft, nil)
	deps.drafts.On("Save", mock.Anything, draft).Return(nil)

	updated, err := svc.DecreaseDraftItem(ctx, 4, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Quantity(1))

	_, err = svc.DecreaseDraftItem(ctx, 4, 2, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotInOrder)

	_, err = svc.DecreaseDraftItem(ctx, 4, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	updated, err = svc.RemoveFromDraft(ctx, 4, 1)
	require.NoError(t, err)
	assert.True(t, updated.Empty())

	_, err = svc.RemoveFromDraft(ctx, 4, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotInOrder)
}

func TestOrderService_Submit(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(orderDeps)
		wantErr   error
	}{
		{
			name: "persists and publishes",
			setupMock: func(d orderDeps) {
				draft := domain.NewOrder(4)
				_ = draft.AddItem(newFood(1, "Pizza", "30.00"), 2)
				d.drafts.On("Load", mock.Anything, 4).Return(draft, nil).Once()
				d.orders.On("Create", mock.Anything, mock.Anything, draft).Run(func(args mock.Arguments) {
					args.Get(2).(*domain.Order).ID = 55
				}).Return(nil).Once()
				d.drafts.On("Reset", mock.Anything, 4).Return(nil).Once()
				d.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderCreated && e.OrderID == 55 && len(e.Items) == 1
				})).Return(nil).Once()
			},
		},
		{
			name: "empty draft",
			setupMock: func(d orderDeps) {
				d.drafts.On("Load", mock.Anything, 4).Return(domain.NewOrder(4), nil).Once()
			},
			wantErr: domain.ErrEmptyOrder,
		},
		{
			name: "store failure keeps draft",
			setupMock: func(d orderDeps) {
				draft := domain.NewOrder(4)
				_ = draft.AddItem(newFood(1, "Pizza", "30.00"), 2)
				d.drafts.On("Load", mock.Anything, 4).Return(draft, nil).Once()
				d.orders.On("Create", mock.Anything, mock.Anything, draft).Return(assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
		{
			name: "publish failure does not fail the order",
			setupMock: func(d orderDeps) {
				draft := domain.NewOrder(4)
				_ = draft.AddItem(newFood(1, "Pizza", "30.00"), 1)
				d.drafts.On("Load", mock.Anything, 4).Return(draft, nil).Once()
				d.orders.On("Create", mock.Anything, mock.Anything, draft).Return(nil).Once()
				d.drafts.On("Reset", mock.Anything, 4).Return(nil).Once()
				d.publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			testCase.setupMock(deps)

			order, err := svc.Submit(context.Background(), 4)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, order.Empty())
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("ListByUser", mock.Anything, mock.Anything, 4).
		Return([]domain.OrderSummary{{ID: 2}, {ID: 1}}, nil).Once()
	deps.orders.On("ListItems", mock.Anything, mock.Anything, 2).
		Return([]domain.OrderItemView{{FoodID: 1, Name: "Pizza", Quantity: 2}}, nil).Once()
	deps.orders.On("ListItems", mock.Anything, mock.Anything, 1).
		Return(nil, nil).Once()

	orders, err := svc.ListOrders(context.Background(), 4)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Items, 1)
	assert.Empty(t, orders[1].Items)
}

func TestOrderService_Rate(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		setupMock func(orderDeps)
		wantErr   error
	}{
		{
			name:   "owner rates",
			rating: 5,
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
				d.orders.On("Rate", mock.Anything, mock.Anything, 10, 5).Return(nil).Once()
				d.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderRated && e.Rating != nil && *e.Rating == 5
				})).Return(nil).Once()
			},
		},
		{
			name:      "invalid rating never reaches the store",
			rating:    7,
			setupMock: func(d orderDeps) {},
			wantErr:   domain.ErrInvalidRating,
		},
		{
			name:   "another user's order",
			rating: 3,
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(false, nil).Once()
			},
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			testCase.setupMock(deps)

			err := svc.Rate(context.Background(), 4, 10, testCase.rating)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_EditItem(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		setupMock func(orderDeps)
		wantErr   error
	}{
		{
			name:     "update quantity",
			quantity: 4,
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
				d.orders.On("UpsertItem", mock.Anything, mock.Anything, 10, 2, 4).Return(nil).Once()
			},
		},
		{
			name:     "zero removes existing item",
			quantity: 0,
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
				d.orders.On("ItemExists", mock.Anything, mock.Anything, 10, 2).Return(true, nil).Once()
				d.orders.On("UpsertItem", mock.Anything, mock.Anything, 10, 2, 0).Return(nil).Once()
			},
		},
		{
			name:     "zero on missing item",
			quantity: 0,
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
				d.orders.On("ItemExists", mock.Anything, mock.Anything, 10, 2).Return(false, nil).Once()
			},
			wantErr: domain.ErrItemNotInOrder,
		},
		{
			name:      "negative quantity",
			quantity:  -1,
			setupMock: func(d orderDeps) {},
			wantErr:   domain.ErrInvalidQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			testCase.setupMock(deps)

			err := svc.EditItem(context.Background(), 4, 10, 2, testCase.quantity)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(orderDeps)
		wantErr   error
	}{
		{
			name: "deleted",
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
				d.orders.On("Delete", mock.Anything, mock.Anything, 10).Return(true, nil).Once()
				d.publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
					return e.Type == domain.EventOrderDeleted && e.OrderID == 10
				})).Return(nil).Once()
			},
		},
		{
			name: "missing order",
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(false, nil).Once()
			},
			wantErr: domain.ErrOrderNotFound,
		},
		{
			name: "store failure",
			setupMock: func(d orderDeps) {
				d.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(false, assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, deps := newOrderService(t)
			testCase.setupMock(deps)

			err := svc.Delete(context.Background(), 4, 10)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrderService_QRCode(t *testing.T) {
	svc, deps := newOrderService(t)
	deps.orders.On("BelongsTo", mock.Anything, mock.Anything, 10, 4).Return(true, nil).Once()
	deps.qr.On("Generate", 10).Return([]byte("png"), nil).Once()

	png, err := svc.QRCode(context.Background(), 4, 10)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestOrderService_RejectsAnonymousUser(t *testing.T) {
	svc, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.Draft(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
	assert.ErrorIs(t, svc.ClearDraft(ctx, -1), domain.ErrInvalidUser)
	_, err = svc.ListOrders(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidUser)
	assert.ErrorIs(t, svc.Delete(ctx, 0, 10), domain.ErrInvalidUser)
}
