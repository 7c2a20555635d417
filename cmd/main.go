package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	httpapi "github.com/IDGarcia92/ProyectoFinal-1-3/internal/http"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/repository"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/service"

	_ "github.com/IDGarcia92/ProyectoFinal-1-3/docs"
)

const (
	defaultAddr    = ":8080"
	defaultDataDir = "data"
)

func main() {
	addr := envOr("HTTP_ADDR", defaultAddr)
	dataDir := envOr("DATA_DIR", defaultDataDir)

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("data dir: %v", err)
	}

	products, err := repository.NewProductStore(repository.NewFile(filepath.Join(dataDir, "products.json")))
	if err != nil {
		log.Fatalf("product store: %v", err)
	}
	carts, err := repository.NewCartStore(repository.NewFile(filepath.Join(dataDir, "carts.json")))
	if err != nil {
		log.Fatalf("cart store: %v", err)
	}

	productsSvc := service.NewProductService(products)
	cartsSvc := service.NewCartService(products, carts)

	srv := httpapi.NewServer(productsSvc, cartsSvc)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
