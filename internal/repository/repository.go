package repository

import (
	"context"
	"errors"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
)

// Ошибки хранилищ
var (
	// ErrNotFound возвращается, когда сущность не найдена
	ErrNotFound = errors.New("not found")
	// ErrDuplicateCode возвращается при попытке завести товар с занятым кодом
	ErrDuplicateCode = errors.New("duplicate product code")
	// ErrStorageUnavailable — файл хранилища не читается или не пишется
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ProductRepository интерфейс хранилища товаров
type ProductRepository interface {
	Add(ctx context.Context, n domain.NewProduct) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit int) ([]domain.Product, error)
}

// CartRepository интерфейс хранилища корзин
type CartRepository interface {
	Create(ctx context.Context) (*domain.Cart, error)
	GetByID(ctx context.Context, id int64) (*domain.Cart, error)
	AddItem(ctx context.Context, cartID int64, p domain.Product, quantity int64) (*domain.Cart, error)
}
