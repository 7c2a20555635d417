package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
)

func newProductStore(t *testing.T, dir string) *ProductStore {
	t.Helper()
	s, err := NewProductStore(NewFile(filepath.Join(dir, "products.json")))
	if err != nil {
		t.Fatalf("new product store: %v", err)
	}
	return s
}

func addProduct(t *testing.T, s *ProductStore, code string) *domain.Product {
	t.Helper()
	p, err := s.Add(context.Background(), domain.NewProduct{
		Title:       "Product " + code,
		Description: "desc",
		Code:        code,
		Price:       100,
		Stock:       10,
		Category:    "misc",
	})
	if err != nil {
		t.Fatalf("add %s: %v", code, err)
	}
	return p
}

func TestProductStore_InitEstablishesFile(t *testing.T) {
	dir := t.TempDir()
	newProductStore(t, dir)
	if _, err := os.Stat(filepath.Join(dir, "products.json")); err != nil {
		t.Fatalf("expected file created at init: %v", err)
	}
}

func TestProductStore_SequentialIDs(t *testing.T) {
	s := newProductStore(t, t.TempDir())
	for want := int64(1); want <= 3; want++ {
		p := addProduct(t, s, "C"+string(rune('0'+want)))
		if p.ID != want {
			t.Fatalf("expected id %d, got %d", want, p.ID)
		}
	}
}

func TestProductStore_IDsSurviveReinitialize(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := newProductStore(t, dir)
	addProduct(t, s, "C1")
	addProduct(t, s, "C2")

	// fresh instance over the same file
	s2 := newProductStore(t, dir)
	p, err := s2.Add(ctx, domain.NewProduct{Title: "N", Description: "d", Code: "C3", Category: "misc"})
	if err != nil {
		t.Fatalf("add after reinit: %v", err)
	}
	if p.ID != 3 {
		t.Fatalf("expected id 3 after reinit, got %d", p.ID)
	}
}

func TestProductStore_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, t.TempDir())
	addProduct(t, s, "C1")

	if _, err := s.Add(ctx, domain.NewProduct{Title: "Other", Description: "d", Code: "C1", Category: "misc"}); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}

	// collection unchanged and the id was not burned
	list, err := s.List(ctx, 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected 1 product, got %d (%v)", len(list), err)
	}
	p := addProduct(t, s, "C2")
	if p.ID != 2 {
		t.Fatalf("expected id 2 after rejected add, got %d", p.ID)
	}
}

func TestProductStore_GetByID_NotFound(t *testing.T) {
	s := newProductStore(t, t.TempDir())
	if _, err := s.GetByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductStore_ListLimit(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, t.TempDir())
	addProduct(t, s, "C1")
	addProduct(t, s, "C2")
	addProduct(t, s, "C3")

	list, _ := s.List(ctx, 2)
	if len(list) != 2 || list[0].Code != "C1" || list[1].Code != "C2" {
		t.Fatalf("limit 2: %+v", list)
	}
	if list, _ = s.List(ctx, 0); len(list) != 3 {
		t.Fatalf("limit 0 should return all, got %d", len(list))
	}
	if list, _ = s.List(ctx, 10); len(list) != 3 {
		t.Fatalf("limit beyond size should return all, got %d", len(list))
	}
}

func TestProductStore_UpdatePatch(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, t.TempDir())
	p := addProduct(t, s, "C1")

	// zero values must still count as provided
	price := 0.0
	status := false
	up, err := s.Update(ctx, p.ID, domain.ProductPatch{Price: &price, Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if up.Price != 0 || up.Status {
		t.Fatalf("zero values not applied: %+v", up)
	}
	if up.Title != p.Title || up.Code != p.Code || up.Stock != p.Stock {
		t.Fatalf("untouched fields changed: %+v", up)
	}
}

func TestProductStore_UpdateDuplicateCode(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, t.TempDir())
	p1 := addProduct(t, s, "C1")
	p2 := addProduct(t, s, "C2")

	code := p1.Code
	if _, err := s.Update(ctx, p2.ID, domain.ProductPatch{Code: &code}); !errors.Is(err, ErrDuplicateCode) {
		t.Fatalf("expected ErrDuplicateCode, got %v", err)
	}

	// setting a product's code to its own value is fine
	if _, err := s.Update(ctx, p1.ID, domain.ProductPatch{Code: &code}); err != nil {
		t.Fatalf("self code update: %v", err)
	}
}

func TestProductStore_UpdateNotFound(t *testing.T) {
	title := "X"
	if _, err := newProductStore(t, t.TempDir()).Update(context.Background(), 42, domain.ProductPatch{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newProductStore(t, t.TempDir())
	p := addProduct(t, s, "C1")

	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete")
	}
	if err := s.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestProductStore_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s := newProductStore(t, dir)
	want := make([]domain.Product, 0, 3)
	for _, code := range []string{"C1", "C2", "C3"} {
		want = append(want, *addProduct(t, s, code))
	}

	s2 := newProductStore(t, dir)
	got, err := s2.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Code != want[i].Code || got[i].Title != want[i].Title {
			t.Fatalf("mismatch at %d: %+v vs %+v", i, got[i], want[i])
		}
	}
}
