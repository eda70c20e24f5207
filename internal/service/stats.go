package service

import (
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// TopProduct is the best-selling product by total units sold.
type TopProduct struct {
	Name     string
	Quantity int
}

// SalesStats aggregates sale volume over the whole log and two trailing
// windows anchored on calendar-day boundaries.
type SalesStats struct {
	TotalQuantity int
	TodayQuantity int
	WeekQuantity  int
	TopProduct    *TopProduct
}

// ComputeStats aggregates the sale log relative to now. Today counts sales
// strictly after the start of the current calendar day; the week window
// counts sales strictly after start-of-day seven days ago. The top product
// is the name with the highest summed quantity; ties go to the name
// encountered first in log order. TopProduct is nil when the log is empty.
func ComputeStats(sales []domain.Sale, now time.Time) SalesStats {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfToday.AddDate(0, 0, -7)

	var stats SalesStats
	totals := make(map[string]int)
	var order []string

	for _, sale := range sales {
		stats.TotalQuantity += sale.QuantitySold
		if sale.SaleDate.After(startOfToday) {
			stats.TodayQuantity += sale.QuantitySold
		}
		if sale.SaleDate.After(startOfWeek) {
			stats.WeekQuantity += sale.QuantitySold
		}

		if _, seen := totals[sale.ProductName]; !seen {
			order = append(order, sale.ProductName)
		}
		totals[sale.ProductName] += sale.QuantitySold
	}

	for _, name := range order {
		if stats.TopProduct == nil || totals[name] > stats.TopProduct.Quantity {
			stats.TopProduct = &TopProduct{Name: name, Quantity: totals[name]}
		}
	}

	return stats
}
