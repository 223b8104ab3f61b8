package service

import (
	"context"

	"food-ordering/order-svc/internal/domain"
	"food-ordering/order-svc/internal/storage"
)

type CatalogService struct {
	uow     UnitOfWork
	catalog CatalogRepository
}

func NewCatalogService(uow UnitOfWork, catalog CatalogRepository) *CatalogService {
	return &CatalogService{uow: uow, catalog: catalog}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.FoodSummary, error) {
	var foods []domain.FoodSummary
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		var err error
		foods, err = s.catalog.ListSummaries(ctx, q)
		return err
	})
	return foods, err
}

func (s *CatalogService) Detail(ctx context.Context, id int) (*domain.FoodDetail, error) {
	if id <= 0 {
		return nil, domain.ErrFoodNotFound
	}
	var detail *domain.FoodDetail
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		var err error
		detail, err = s.catalog.GetDetail(ctx, q, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *CatalogService) Establishments(ctx context.Context) ([]domain.Establishment, error) {
	var establishments []domain.Establishment
	err := s.uow.WithConn(ctx, func(q storage.Querier) error {
		var err error
		establishments, err = s.catalog.ListEstablishments(ctx, q)
		return err
	})
	return establishments, err
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
