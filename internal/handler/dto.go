package handler

import (
	"time"

	"github.com/msomdec/stockeye/internal/domain"
	"github.com/msomdec/stockeye/internal/service"
)

// UserDTO is the JSON representation of a user.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{ID: u.ID, Email: u.Email}
}

// WarningDTO is the JSON representation of a product warning badge.
type WarningDTO struct {
	Type     string `json:"type"`
	Priority int    `json:"priority"`
}

// ProductDTO is the JSON representation of a product, classified relative to
// the request time.
type ProductDTO struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Quantity            int         `json:"quantity"`
	ExpirationDate      string      `json:"expirationDate"`
	CreatedAt           string      `json:"createdAt"`
	UserID              string      `json:"userId"`
	DaysUntilExpiration int         `json:"daysUntilExpiration"`
	Warning             *WarningDTO `json:"warning"`
}

func toProductDTO(p domain.Product, now time.Time) ProductDTO {
	dto := ProductDTO{
		ID:                  p.ID,
		Name:                p.Name,
		Quantity:            p.Quantity,
		ExpirationDate:      p.ExpirationDate.String(),
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UserID:              p.UserID,
		DaysUntilExpiration: p.ExpirationDate.DaysUntil(now),
	}
	if w := service.Classify(p.ExpirationDate, p.Quantity, now); w != nil {
		dto.Warning = &WarningDTO{Type: string(w.Type), Priority: w.Priority}
	}
	return dto
}

func toProductDTOs(products []domain.Product, now time.Time) []ProductDTO {
	dtos := make([]ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = toProductDTO(p, now)
	}
	return dtos
}

// SaleDTO is the JSON representation of a sale.
type SaleDTO struct {
	ID           string `json:"id"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	QuantitySold int    `json:"quantitySold"`
	SaleDate     string `json:"saleDate"`
	UserID       string `json:"userId"`
}

func toSaleDTO(s domain.Sale) SaleDTO {
	return SaleDTO{
		ID:           s.ID,
		ProductID:    s.ProductID,
		ProductName:  s.ProductName,
		QuantitySold: s.QuantitySold,
		SaleDate:     s.SaleDate.Format(time.RFC3339),
		UserID:       s.UserID,
	}
}

func toSaleDTOs(sales []domain.Sale) []SaleDTO {
	dtos := make([]SaleDTO, len(sales))
	for i, s := range sales {
		dtos[i] = toSaleDTO(s)
	}
	return dtos
}

// TopProductDTO is the JSON representation of the best-selling product.
type TopProductDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SalesStatsDTO is the JSON representation of aggregated sales statistics.
type SalesStatsDTO struct {
	TotalQuantity int            `json:"totalQuantity"`
	TodayQuantity int            `json:"todayQuantity"`
	WeekQuantity  int            `json:"weekQuantity"`
	TopProduct    *TopProductDTO `json:"topProduct"`
}

func toSalesStatsDTO(stats service.SalesStats) SalesStatsDTO {
	dto := SalesStatsDTO{
		TotalQuantity: stats.TotalQuantity,
		TodayQuantity: stats.TodayQuantity,
		WeekQuantity:  stats.WeekQuantity,
	}
	if stats.TopProduct != nil {
		dto.TopProduct = &TopProductDTO{Name: stats.TopProduct.Name, Quantity: stats.TopProduct.Quantity}
	}
	return dto
}

// WarningSummaryDTO carries the dashboard warning tallies. A product with
// both an expiration warning and low stock is counted in both tallies, which
// is why Total can exceed the number of warned products.
type WarningSummaryDTO struct {
	Expired  int `json:"expired"`
	Expiring int `json:"expiring"`
	LowStock int `json:"lowStock"`
	Total    int `json:"total"`
}

func toWarningSummaryDTO(s service.WarningSummary) WarningSummaryDTO {
	return WarningSummaryDTO{
		Expired:  len(s.Expired),
		Expiring: len(s.Expiring),
		LowStock: len(s.LowStock),
		Total:    s.Total(),
	}
}
