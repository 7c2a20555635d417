package service

import (
	"context"
	"errors"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/repository"
)

// ProductService инкапсулирует бизнес-логику вокруг товаров
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

var ErrInvalidInput = errors.New("invalid input")

func (s *ProductService) Create(ctx context.Context, n domain.NewProduct) (*domain.Product, error) {
	if n.Title == "" || n.Description == "" || n.Code == "" || n.Category == "" {
		return nil, ErrInvalidInput
	}
	if n.Price < 0 || n.Stock < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Add(ctx, n)
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	if patch.Code != nil && *patch.Code == "" {
		return nil, ErrInvalidInput
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrInvalidInput
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, limit int) ([]domain.Product, error) {
	return s.repo.List(ctx, limit)
}
