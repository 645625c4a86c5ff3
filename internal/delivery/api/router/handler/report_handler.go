package handler

import (
	"net/http"
	"time"

	"sweetshop/internal/delivery/api/response"
	deliverycontext "sweetshop/internal/delivery/context"
	"sweetshop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the purchase and restock history views
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(reportUC usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// PurchaseHistoryItem is a purchase joined with the current catalog row
type PurchaseHistoryItem struct {
	ID             uint      `json:"id"`
	UserID         uint      `json:"user_id"`
	SweetID        uint      `json:"sweet_id"`
	Quantity       int       `json:"quantity"`
	TotalPrice     float64   `json:"total_price"`
	PurchaseDate   time.Time `json:"purchase_date"`
	SweetName      string    `json:"sweet_name"`
	Category       string    `json:"category"`
	Img            string    `json:"img"`
	SweetAvailable bool      `json:"sweet_available"`
}

// RestockHistoryItem is a restock joined with the sweet and the acting admin
type RestockHistoryItem struct {
	ID             uint      `json:"id"`
	SweetID        uint      `json:"sweet_id"`
	AdminID        uint      `json:"admin_id"`
	QuantityAdded  int       `json:"quantity_added"`
	RestockDate    time.Time `json:"restock_date"`
	SweetName      string    `json:"sweet_name"`
	AdminName      string    `json:"admin_name"`
	SweetAvailable bool      `json:"sweet_available"`
}

// PurchaseHistory lists the authenticated user's purchases
func (h *ReportHandler) PurchaseHistory(c echo.Context) error {
	purchases, err := h.reportUC.PurchaseHistory(c.Request().Context(), deliverycontext.GetUser(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*PurchaseHistoryItem, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, &PurchaseHistoryItem{
			ID:             p.ID,
			UserID:         p.UserID,
			SweetID:        p.ProductID,
			Quantity:       p.Quantity,
			TotalPrice:     p.TotalPrice,
			PurchaseDate:   p.PurchaseDate,
			SweetName:      p.ProductName,
			Category:       p.Category,
			Img:            p.Img,
			SweetAvailable: p.ProductAvailable,
		})
	}

	return response.Success(c, http.StatusOK, items)
}

// RestockHistory lists every restock (admin only)
func (h *ReportHandler) RestockHistory(c echo.Context) error {
	restocks, err := h.reportUC.RestockHistory(c.Request().Context(), deliverycontext.GetUser(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]*RestockHistoryItem, 0, len(restocks))
	for _, r := range restocks {
		items = append(items, &RestockHistoryItem{
			ID:             r.ID,
			SweetID:        r.ProductID,
			AdminID:        r.AdminID,
			QuantityAdded:  r.QuantityAdded,
			RestockDate:    r.RestockDate,
			SweetName:      r.ProductName,
			AdminName:      r.AdminName,
			SweetAvailable: r.ProductAvailable,
		})
	}

	return response.Success(c, http.StatusOK, items)
}
