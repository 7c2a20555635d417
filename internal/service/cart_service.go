package service

import (
	"context"
	"errors"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/repository"
)

// CartService реализует логику корзин: создание, чтение и добавление товара.
// Оба хранилища внедряются при конструировании; сервис не даёт им ссылок
// друг на друга.
type CartService struct {
	products repository.ProductRepository
	carts    repository.CartRepository
}

func NewCartService(products repository.ProductRepository, carts repository.CartRepository) *CartService {
	return &CartService{products: products, carts: carts}
}

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
)

// Create заводит новую пустую корзину
func (s *CartService) Create(ctx context.Context) (*domain.Cart, error) {
	return s.carts.Create(ctx)
}

// Get возвращает корзину по id
func (s *CartService) Get(ctx context.Context, id int64) (*domain.Cart, error) {
	if id <= 0 {
		return nil, ErrInvalidInput
	}
	c, err := s.carts.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	return c, err
}

// AddProduct кладёт товар в корзину: сначала разрешается корзина, затем
// товар, затем хранилище корзин вливает снимок товара. Остаток на складе
// не списывается и не проверяется.
func (s *CartService) AddProduct(ctx context.Context, cartID, productID, quantity int64) (*domain.Cart, error) {
	if cartID <= 0 || productID <= 0 || quantity <= 0 {
		return nil, ErrInvalidInput
	}
	if _, err := s.carts.GetByID(ctx, cartID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	c, err := s.carts.AddItem(ctx, cartID, *p, quantity)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCartNotFound
	}
	return c, err
}
