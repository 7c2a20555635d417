package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/domain"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/repository"
	"github.com/IDGarcia92/ProyectoFinal-1-3/internal/service"
)

type Server struct {
	engine   *gin.Engine
	products *service.ProductService
	carts    *service.CartService
}

func NewServer(products *service.ProductService, carts *service.CartService) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), RequestID())
	s := &Server{engine: r, products: products, carts: carts}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := s.engine.Group("/api")
	{
		products := api.Group("/products")
		products.POST("", s.createProduct)
		products.GET("", s.listProducts)
		products.GET(":pid", s.getProduct)
		products.PUT(":pid", s.updateProduct)
		products.DELETE(":pid", s.deleteProduct)

		carts := api.Group("/carts")
		carts.POST("", s.createCart)
		carts.GET(":cid", s.getCart)
		carts.POST(":cid/product/:pid", s.addProductToCart)
	}
}

// Product handlers
type createProductReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       *float64 `json:"price"`
	Stock       *int64   `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails"`
	Status      *bool    `json:"status"`
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body createProductReq true "Product"
// @Success 201 {object} map[string]domain.Product
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	// все обязательные поля должны прийти в теле запроса
	if req.Title == "" || req.Description == "" || req.Code == "" ||
		req.Category == "" || req.Price == nil || req.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
		return
	}
	p, err := s.products.Create(c, domain.NewProduct{
		Title:       req.Title,
		Description: req.Description,
		Code:        req.Code,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		Thumbnails:  req.Thumbnails,
		Status:      req.Status,
	})
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": p})
}

// @Summary List products
// @Tags products
// @Produce json
// @Param limit query int false "Max products to return"
// @Success 200 {object} map[string][]domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			limit = x
		}
	}
	list, err := s.products.List(c, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list})
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param pid path int true "Product ID"
// @Success 200 {object} map[string]domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{pid} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.products.GetByID(c, id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param pid path int true "Product ID"
// @Param input body domain.ProductPatch true "Fields to update"
// @Success 200 {object} map[string]domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /products/{pid} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, id, patch)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

// @Summary Delete product
// @Tags products
// @Produce json
// @Param pid path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{pid} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.products.Delete(c, id); err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// Cart handlers

// @Summary Create cart
// @Tags carts
// @Produce json
// @Success 201 {object} map[string]domain.Cart
// @Router /carts [post]
func (s *Server) createCart(c *gin.Context) {
	cart, err := s.carts.Create(c)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"cart": cart})
}

// @Summary Get cart items
// @Tags carts
// @Produce json
// @Param cid path int true "Cart ID"
// @Success 200 {object} map[string][]domain.CartItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{cid} [get]
func (s *Server) getCart(c *gin.Context) {
	id, err := parseID(c.Param("cid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	cart, err := s.carts.Get(c, id)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cart.Items})
}

type addToCartReq struct {
	Quantity *int64 `json:"quantity"`
}

// @Summary Add product to cart
// @Tags carts
// @Accept json
// @Produce json
// @Param cid path int true "Cart ID"
// @Param pid path int true "Product ID"
// @Param input body addToCartReq false "Quantity (default 1)"
// @Success 200 {object} map[string]domain.Cart
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /carts/{cid}/product/{pid} [post]
func (s *Server) addProductToCart(c *gin.Context) {
	cartID, err := parseID(c.Param("cid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart id"})
		return
	}
	productID, err := parseID(c.Param("pid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req addToCartReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
	}
	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	cart, err := s.carts.AddProduct(c, cartID, productID, quantity)
	if err != nil {
		c.JSON(mapErrorToStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart})
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch err {
	case service.ErrInvalidInput:
		return http.StatusBadRequest
	case service.ErrCartNotFound, service.ErrProductNotFound, repository.ErrNotFound:
		return http.StatusNotFound
	case repository.ErrDuplicateCode:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
