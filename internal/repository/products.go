package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
)

// ProductStore хранит коллекцию товаров в памяти и переписывает файл
// на каждой мутации. Все мутации сериализованы мьютексом хранилища.
type ProductStore struct {
	mu     sync.RWMutex
	file   *File
	items  []domain.Product
	nextID int64
}

// NewProductStore загружает коллекцию из файла. Отсутствующий файл —
// пустое хранилище, и файл сразу создаётся; любая другая ошибка чтения
// прерывает инициализацию.
func NewProductStore(file *File) (*ProductStore, error) {
	s := &ProductStore{file: file, nextID: 1}
	ok, err := file.Load(&s.items)
	if err != nil {
		return nil, fmt.Errorf("init product store: %w", err)
	}
	if !ok {
		if err := file.Save([]domain.Product{}); err != nil {
			return nil, fmt.Errorf("init product store: %w", err)
		}
	}
	for _, p := range s.items {
		if p.ID >= s.nextID {
			s.nextID = p.ID + 1
		}
	}
	return s, nil
}

var _ ProductRepository = (*ProductStore)(nil)

// Add создаёт товар с очередным ID. Занятый код — ErrDuplicateCode,
// коллекция не меняется. В память изменение попадает только после
// успешной записи на диск.
func (s *ProductStore) Add(ctx context.Context, n domain.NewProduct) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.items {
		if p.Code == n.Code {
			return nil, ErrDuplicateCode
		}
	}

	status := true
	if n.Status != nil {
		status = *n.Status
	}
	p := domain.Product{
		ID:          s.nextID,
		Title:       n.Title,
		Description: n.Description,
		Code:        n.Code,
		Price:       n.Price,
		Stock:       n.Stock,
		Category:    n.Category,
		Thumbnails:  n.Thumbnails,
		Status:      status,
	}

	next := make([]domain.Product, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, p)
	if err := s.file.Save(next); err != nil {
		return nil, err
	}
	s.items = next
	s.nextID++

	cp := p
	return &cp, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.items {
		if p.ID == id {
			// return copy
			cp := p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// List возвращает копию первых limit товаров в порядке хранения;
// limit <= 0 — вся коллекция.
func (s *ProductStore) List(ctx context.Context, limit int) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Product, n)
	copy(out, s.items[:n])
	return out, nil
}

// Update переписывает только переданные поля. Смена кода на код другого
// товара — ErrDuplicateCode.
func (s *ProductStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, ErrNotFound
	}

	p := s.items[idx]
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Code != nil {
		for i, other := range s.items {
			if i != idx && other.Code == *patch.Code {
				return nil, ErrDuplicateCode
			}
		}
		p.Code = *patch.Code
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Thumbnails != nil {
		p.Thumbnails = *patch.Thumbnails
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}

	next := make([]domain.Product, len(s.items))
	copy(next, s.items)
	next[idx] = p
	if err := s.file.Save(next); err != nil {
		return nil, err
	}
	s.items = next

	cp := p
	return &cp, nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}

	next := make([]domain.Product, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	if err := s.file.Save(next); err != nil {
		return err
	}
	s.items = next
	return nil
}

// indexOf ищет позицию товара; вызывать под мьютексом
func (s *ProductStore) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
