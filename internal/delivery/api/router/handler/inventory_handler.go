package handler

import (
	"log/slog"
	"net/http"

	"sweetshop/internal/delivery/api/response"
	deliverycontext "sweetshop/internal/delivery/context"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves the stock mutations
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// QuantityRequest is the body of both purchase and restock, capped at one million units
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gt=0,lte=1000000"`
}

// PurchaseResponse summarises a completed purchase
type PurchaseResponse struct {
	Message           string  `json:"message"`
	SweetName         string  `json:"sweet_name"`
	QuantityPurchased int     `json:"quantity_purchased"`
	TotalPrice        float64 `json:"total_price"`
	RemainingStock    int     `json:"remaining_stock"`
}

// RestockResponse summarises a completed restock
type RestockResponse struct {
	Message       string `json:"message"`
	SweetName     string `json:"sweet_name"`
	QuantityAdded int    `json:"quantity_added"`
	NewStock      int    `json:"new_stock"`
}

// Purchase buys a quantity of a sweet for the authenticated user
func (h *InventoryHandler) Purchase(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req QuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.inventoryUC.Purchase(c.Request().Context(), deliverycontext.GetUser(c), id, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PurchaseResponse{
		Message:           "Purchase successful",
		SweetName:         result.ProductName,
		QuantityPurchased: result.QuantityPurchased,
		TotalPrice:        result.TotalPrice,
		RemainingStock:    result.RemainingStock,
	})
}

// Restock adds stock to a sweet (admin only)
func (h *InventoryHandler) Restock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req QuantityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.inventoryUC.Restock(c.Request().Context(), deliverycontext.GetUser(c), id, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &RestockResponse{
		Message:       "Restock successful",
		SweetName:     result.ProductName,
		QuantityAdded: result.QuantityAdded,
		NewStock:      result.NewStock,
	})
}
