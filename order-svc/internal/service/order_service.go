package service

import (
	"context"
	"fmt"
	"log"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/storage"
)

type OrderService struct {
	uow       UnitOfWork
	catalog   CatalogRepository
	orders    OrderRepository
	drafts    DraftStore
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(uow UnitOfWork, catalog CatalogRepository, orders OrderRepository,
	drafts DraftStore, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		uow:       uow,
		catalog:   catalog,
		orders:    orders,
		drafts:    drafts,
		publisher: publisher,
		qrEncoder: qr,
	}
}

func (s *OrderService) Draft(ctx context.Context, userID int) (*domain.Order, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUser
	}
	return s.drafts.Load(ctx, userID)
}

func (s *OrderService) AddToDraft(ctx context.Context, userID, foodID, quantity int) (*domain.Order, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUser
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	var food *domain.Food
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		var err error
		food, err = s.catalog.GetFood(ctx, q, foodID)
		return err
	})
	if err != nil {
		return nil, err
	}

	draft, err := s.drafts.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := draft.AddItem(food, quantity); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *OrderService) RemoveFromDraft(ctx context.Context, userID, foodID int) (*domain.Order, error) {
	draft, err := s.Draft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !draft.RemoveItem(foodID) {
		return nil, fmt.Errorf("%w: food %d", domain.ErrItemNotInOrder, foodID)
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *OrderService) DecreaseDraftItem(ctx context.Context, userID, foodID, amount int) (*domain.Order, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	draft, err := s.Draft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, ok := draft.Find(foodID); !ok {
		return nil, fmt.Errorf("%w: food %d", domain.ErrItemNotInOrder, foodID)
	}
	if err := draft.DecreaseItem(foodID, amount); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *OrderService) ClearDraft(ctx context.Context, userID int) error {
	if userID <= 0 {
		return domain.ErrInvalidUser
	}
	return s.drafts.Reset(ctx, userID)
}

// Submit persists the user's draft as one unit and starts a fresh draft.
func (s *OrderService) Submit(ctx context.Context, userID int) (*domain.Order, error) {
	draft, err := s.Draft(ctx, userID)
	if err != nil {
		return nil, err
	}
	if draft.Empty() {
		return nil, domain.ErrEmptyOrder
	}

	err = s.uow.WithTx(ctx, func(q storage.Querier) error {
		return s.orders.Create(ctx, q, draft)
	})
	if err != nil {
		return nil, err
	}

	if err := s.drafts.Reset(ctx, userID); err != nil {
		log.Printf("Error resetting draft for user %d after order %d: %v", userID, draft.ID, err)
	}
	s.publish(ctx, domain.NewOrderCreatedEvent(draft))

	return draft, nil
}

func (s *OrderService) ListOrders(ctx context.Context, userID int) ([]domain.OrderSummary, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUser
	}

	var orders []domain.OrderSummary
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		headers, err := s.orders.ListByUser(ctx, q, userID)
		if err != nil {
			return err
		}
		for i := range headers {
			items, err := s.orders.ListItems(ctx, q, headers[i].ID)
			if err != nil {
				return fmt.Errorf("list items of order %d: %w", headers[i].ID, err)
			}
			headers[i].Items = items
		}
		orders = headers
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Rate(ctx context.Context, userID, orderID, rating int) error {
	if err := domain.ValidateRating(rating); err != nil {
		return err
	}

	err := s.uow.WithTx(ctx, func(q storage.Querier) error {
		if err := s.ensureOwner(ctx, q, userID, orderID); err != nil {
			return err
		}
		return s.orders.Rate(ctx, q, orderID, rating)
	})
	if err != nil {
		return err
	}

	s.publish(ctx, domain.NewOrderRatedEvent(orderID, userID, rating))
	return nil
}

// EditItem sets the quantity of one line of a stored order. Zero removes
// the line, which must exist.
func (s *OrderService) EditItem(ctx context.Context, userID, orderID, foodID, quantity int) error {
	if quantity < 0 {
		return domain.ErrInvalidQuantity
	}

	return s.uow.WithTx(ctx, func(q storage.Querier) error {
		if err := s.ensureOwner(ctx, q, userID, orderID); err != nil {
			return err
		}
		if quantity == 0 {
			exists, err := s.orders.ItemExists(ctx, q, orderID, foodID)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("%w: food %d in order %d", domain.ErrItemNotInOrder, foodID, orderID)
			}
		}
		return s.orders.UpsertItem(ctx, q, orderID, foodID, quantity)
	})
}

func (s *OrderService) Delete(ctx context.Context, userID, orderID int) error {
	err := s.uow.WithTx(ctx, func(q storage.Querier) error {
		if err := s.ensureOwner(ctx, q, userID, orderID); err != nil {
			return err
		}
		deleted, err := s.orders.Delete(ctx, q, orderID)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, domain.NewOrderDeletedEvent(orderID, userID))
	return nil
}

func (s *OrderService) QRCode(ctx context.Context, userID, orderID int) ([]byte, error) {
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		return s.ensureOwner(ctx, q, userID, orderID)
	})
	if err != nil {
		return nil, err
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr code generation is not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

// ensureOwner reports orders of other users as not found.
func (s *OrderService) ensureOwner(ctx context.Context, q storage.Querier, userID, orderID int) error {
	if userID <= 0 {
		return domain.ErrInvalidUser
	}
	owns, err := s.orders.BelongsTo(ctx, q, orderID, userID)
	if err != nil {
		return err
	}
	if !owns {
		return fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}
	return nil
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("Error publishing %s for order %d: %v", event.Type, event.OrderID, err)
	}
}

var _ OrderServiceInterface = (*OrderService)(nil)
