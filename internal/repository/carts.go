package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
)

// CartStore хранит коллекцию корзин; дисциплина та же, что у ProductStore:
// мутации под мьютексом, файл переписывается целиком, память обновляется
// только после успешной записи.
type CartStore struct {
	mu     sync.RWMutex
	file   *File
	items  []domain.Cart
	nextID int64
}

// NewCartStore загружает корзины из файла; инициализация зеркалит NewProductStore.
func NewCartStore(file *File) (*CartStore, error) {
	s := &CartStore{file: file, nextID: 1}
	ok, err := file.Load(&s.items)
	if err != nil {
		return nil, fmt.Errorf("init cart store: %w", err)
	}
	if !ok {
		if err := file.Save([]domain.Cart{}); err != nil {
			return nil, fmt.Errorf("init cart store: %w", err)
		}
	}
	for _, c := range s.items {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
	return s, nil
}

var _ CartRepository = (*CartStore)(nil)

// Create заводит пустую корзину с очередным ID
func (s *CartStore) Create(ctx context.Context) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.Cart{ID: s.nextID, Items: []domain.CartItem{}}
	next := make([]domain.Cart, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, c)
	if err := s.file.Save(next); err != nil {
		return nil, err
	}
	s.items = next
	s.nextID++

	return copyCart(c), nil
}

func (s *CartStore) GetByID(ctx context.Context, id int64) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return copyCart(s.items[i]), nil
		}
	}
	return nil, ErrNotFound
}

// AddItem вливает товар в корзину: повторное добавление того же товара
// увеличивает количество существующей позиции, иначе в конец дописывается
// новая позиция со снимком товара. Весь цикл чтение-слияние-запись идёт
// под мьютексом хранилища.
func (s *CartStore) AddItem(ctx context.Context, cartID int64, p domain.Product, quantity int64) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.items {
		if s.items[i].ID == cartID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	items := make([]domain.CartItem, len(s.items[idx].Items))
	copy(items, s.items[idx].Items)
	merged := false
	for i := range items {
		if items[i].Product.ID == p.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{Product: p, Quantity: quantity})
	}

	next := make([]domain.Cart, len(s.items))
	copy(next, s.items)
	next[idx].Items = items
	if err := s.file.Save(next); err != nil {
		return nil, err
	}
	s.items = next

	return copyCart(next[idx]), nil
}

// copyCart отдаёт копию с собственным срезом позиций
func copyCart(c domain.Cart) *domain.Cart {
	cp := c
	cp.Items = make([]domain.CartItem, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}
