package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/repository"
)

func setupCS(t *testing.T) (*ProductService, *CartService) {
	t.Helper()
	dir := t.TempDir()
	products, err := repository.NewProductStore(repository.NewFile(filepath.Join(dir, "products.json")))
	if err != nil {
		t.Fatalf("product store: %v", err)
	}
	carts, err := repository.NewCartStore(repository.NewFile(filepath.Join(dir, "carts.json")))
	if err != nil {
		t.Fatalf("cart store: %v", err)
	}
	return NewProductService(products), NewCartService(products, carts)
}

func TestCart_CreateEmpty(t *testing.T) {
	ctx := context.Background()
	_, cs := setupCS(t)
	c, err := cs.Create(ctx)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c.ID != 1 || len(c.Items) != 0 {
		t.Fatalf("expected empty cart with id 1, got %+v", c)
	}
}

func TestCart_AddProduct_MergesQuantity(t *testing.T) {
	ctx := context.Background()
	ps, cs := setupCS(t)
	p, _ := ps.Create(ctx, validNewProduct())
	c, _ := cs.Create(ctx)

	cart, err := cs.AddProduct(ctx, c.ID, p.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Fatalf("expected one item qty 2: %+v", cart.Items)
	}

	cart, err = cs.AddProduct(ctx, c.ID, p.ID, 3)
	if err != nil {
		t.Fatalf("repeat add: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 5 {
		t.Fatalf("expected merged qty 5: %+v", cart.Items)
	}
}

func TestCart_AddProduct_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	ps, cs := setupCS(t)
	p, _ := ps.Create(ctx, validNewProduct())
	c, _ := cs.Create(ctx)

	if _, err := cs.AddProduct(ctx, c.ID, p.ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	// later product edits must not leak into the embedded snapshot
	title := "Renamed"
	if _, err := ps.Update(ctx, p.ID, domain.ProductPatch{Title: &title}); err != nil {
		t.Fatalf("update: %v", err)
	}

	cart, err := cs.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := cart.Items[0].Product.Title; got != "T-Shirt" {
		t.Fatalf("snapshot changed after product update: %q", got)
	}
}

func TestCart_AddProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	ps, cs := setupCS(t)

	// missing cart wins even when the product is missing too
	if _, err := cs.AddProduct(ctx, 42, 42, 1); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}

	c, _ := cs.Create(ctx)
	if _, err := cs.AddProduct(ctx, c.ID, 42, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	p, _ := ps.Create(ctx, validNewProduct())
	if _, err := cs.AddProduct(ctx, c.ID, p.ID, 1); err != nil {
		t.Fatalf("happy path after misses: %v", err)
	}
}

func TestCart_AddProduct_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	ps, cs := setupCS(t)
	p, _ := ps.Create(ctx, validNewProduct())
	c, _ := cs.Create(ctx)

	if _, err := cs.AddProduct(ctx, c.ID, p.ID, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("qty 0: expected validation error, got %v", err)
	}
	if _, err := cs.AddProduct(ctx, c.ID, p.ID, -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("qty -1: expected validation error, got %v", err)
	}
}

func TestCart_Get_NotFound(t *testing.T) {
	_, cs := setupCS(t)
	if _, err := cs.Get(context.Background(), 42); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}
