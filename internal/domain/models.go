package domain

// Product представляет товар каталога. Code уникален среди всех товаров.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Price       float64  `json:"price"`
	Stock       int64    `json:"stock"`
	Category    string   `json:"category"`
	Thumbnails  []string `json:"thumbnails,omitempty"`
	Status      bool     `json:"status"`
}

// NewProduct поля нового товара; ID назначает хранилище.
// Status == nil трактуется как true.
type NewProduct struct {
	Title       string
	Description string
	Code        string
	Price       float64
	Stock       int64
	Category    string
	Thumbnails  []string
	Status      *bool
}

// ProductPatch частичное обновление: nil — поле не передано,
// ненулевой указатель — поле задано (в том числе нулём или false).
type ProductPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Code        *string   `json:"code"`
	Price       *float64  `json:"price"`
	Stock       *int64    `json:"stock"`
	Category    *string   `json:"category"`
	Thumbnails  *[]string `json:"thumbnails"`
	Status      *bool     `json:"status"`
}

// CartItem позиция корзины: снимок товара на момент добавления плюс количество.
// Последующие правки товара в каталоге снимок не меняют.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int64   `json:"quantity"`
}

// Cart сущность корзины
type Cart struct {
	ID    int64      `json:"id"`
	Items []CartItem `json:"items"`
}
