package handler

import (
	"log/slog"
	"net/http"
	"time"

	"sweetshop/internal/delivery/api/response"
	deliverycontext "sweetshop/internal/delivery/context"
	"sweetshop/internal/domain/entity"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SweetHandlerParams holds dependencies for SweetHandler, injected by Fx.
type SweetHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// SweetHandler serves the sweet catalog
type SweetHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewSweetHandler is the constructor for SweetHandler
func NewSweetHandler(params SweetHandlerParams) *SweetHandler {
	return &SweetHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateSweetRequest represents the request body for adding a sweet
type CreateSweetRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0,lte=1000000"`
	Description *string `json:"description"`
	Img         string  `json:"img" validate:"required"`
}

// UpdateSweetRequest represents a partial update. Absent or null fields are left untouched.
type UpdateSweetRequest struct {
	Name        *string  `json:"name" validate:"omitnil,min=2"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" validate:"omitnil,gt=0"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0,lte=1000000"`
	Description *string  `json:"description"`
	Img         *string  `json:"img"`
}

// ScanSweetRequest carries the text decoded from a shelf-label QR code
type ScanSweetRequest struct {
	Data string `json:"data" validate:"required"`
}

// SweetResponse is the public view of a catalog item
type SweetResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Description *string   `json:"description"`
	Img         string    `json:"img"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newSweetResponse(product *entity.Product) *SweetResponse {
	return &SweetResponse{
		ID:          product.ID,
		Name:        product.Name,
		Category:    product.Category,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Description: product.Description,
		Img:         product.Img,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func newSweetResponses(products []*entity.Product) []*SweetResponse {
	sweets := make([]*SweetResponse, 0, len(products))
	for _, product := range products {
		sweets = append(sweets, newSweetResponse(product))
	}

	return sweets
}

// ListSweets returns the whole catalog, newest first
func (h *SweetHandler) ListSweets(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSweetResponses(products))
}

// SearchSweets filters the catalog by name, category and price range
func (h *SweetHandler) SearchSweets(c echo.Context) error {
	minPrice, err := optionalFloat(c, "min_price")
	if err != nil {
		return err
	}

	maxPrice, err := optionalFloat(c, "max_price")
	if err != nil {
		return err
	}

	filter := entity.ProductFilter{
		Name:     optionalString(c, "name"),
		Category: optionalString(c, "category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}

	products, err := h.catalogUC.SearchProducts(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSweetResponses(products))
}

// GetSweet returns a single sweet
func (h *SweetHandler) GetSweet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSweetResponse(product))
}

// CreateSweet adds a sweet to the catalog (admin only)
func (h *SweetHandler) CreateSweet(c echo.Context) error {
	var req CreateSweetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), deliverycontext.GetUser(c), &usecase.CreateProductInput{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    *req.Quantity,
		Description: req.Description,
		Img:         req.Img,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSweetResponse(product))
}

// UpdateSweet applies a partial update (admin only)
func (h *SweetHandler) UpdateSweet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateSweetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := entity.ProductPatch{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
		Img:         req.Img,
	}

	product, err := h.catalogUC.UpdateProduct(c.Request().Context(), deliverycontext.GetUser(c), id, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSweetResponse(product))
}

// DeleteSweet removes a sweet from the catalog (admin only)
func (h *SweetHandler) DeleteSweet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.catalogUC.DeleteProduct(c.Request().Context(), deliverycontext.GetUser(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// GetSweetQRCode renders the PNG shelf label of a sweet
func (h *SweetHandler) GetSweetQRCode(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	png, err := h.catalogUC.ProductQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ScanSweet resolves a scanned shelf label to the sweet it was printed for
func (h *SweetHandler) ScanSweet(c echo.Context) error {
	var req ScanSweetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.catalogUC.ScanProduct(c.Request().Context(), req.Data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSweetResponse(product))
}
