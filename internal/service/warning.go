package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/msomdec/stockeye/internal/domain"
)

// WarningType classifies a product that needs attention.
type WarningType string

const (
	WarningExpired  WarningType = "expired"
	WarningExpiring WarningType = "expiring"
	WarningLowStock WarningType = "low-stock"
)

// Classification thresholds: products within expiringDays calendar days of
// their expiration date are "expiring"; quantities below lowStockThreshold
// are "low stock".
const (
	expiringDays      = 3
	lowStockThreshold = 5
)

// Warning is the badge shown for a product, with its display priority
// (lower is more urgent).
type Warning struct {
	Type     WarningType
	Priority int
}

// Classify returns the warning for a product, or nil when it needs no
// attention. Expiration takes precedence: a product that is expired or
// expiring gets that badge even when its stock is also low; low stock is the
// fallback badge when the expiration date is fine.
//
// Day differences are calendar-day differences, so a product expiring today
// reads as 0 days regardless of the time of day.
func Classify(expiration domain.Date, quantity int, now time.Time) *Warning {
	days := expiration.DaysUntil(now)
	switch {
	case days <= 0:
		return &Warning{Type: WarningExpired, Priority: 1}
	case days <= expiringDays:
		return &Warning{Type: WarningExpiring, Priority: 2}
	case quantity < lowStockThreshold:
		return &Warning{Type: WarningLowStock, Priority: 3}
	}
	return nil
}

// CompareByUrgency is a total order over products for display: warned
// products before unwarned ones, then ascending warning priority, then
// ascending days until expiration. Use with slices.SortStableFunc.
func CompareByUrgency(a, b domain.Product, now time.Time) int {
	wa := Classify(a.ExpirationDate, a.Quantity, now)
	wb := Classify(b.ExpirationDate, b.Quantity, now)

	switch {
	case wa != nil && wb == nil:
		return -1
	case wa == nil && wb != nil:
		return 1
	case wa != nil && wb != nil:
		if c := cmp.Compare(wa.Priority, wb.Priority); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.ExpirationDate.DaysUntil(now), b.ExpirationDate.DaysUntil(now))
}

// SortByUrgency returns a copy of products ordered by CompareByUrgency.
func SortByUrgency(products []domain.Product, now time.Time) []domain.Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b domain.Product) int {
		return CompareByUrgency(a, b, now)
	})
	return sorted
}

// WarningSummary tallies products needing attention. Expired and expiring are
// mutually exclusive buckets, but low stock is counted independently of
// expiration, so one product can appear in both an expiration bucket and
// LowStock. The badge shows one warning; the summary counts both.
type WarningSummary struct {
	Expired  []domain.Product
	Expiring []domain.Product
	LowStock []domain.Product
}

// Total returns the combined number of summary entries.
func (s WarningSummary) Total() int {
	return len(s.Expired) + len(s.Expiring) + len(s.LowStock)
}

// Summarize buckets products into the warning summary.
func Summarize(products []domain.Product, now time.Time) WarningSummary {
	var summary WarningSummary
	for _, p := range products {
		days := p.ExpirationDate.DaysUntil(now)
		if days <= 0 {
			summary.Expired = append(summary.Expired, p)
		} else if days <= expiringDays {
			summary.Expiring = append(summary.Expiring, p)
		}

		if p.Quantity < lowStockThreshold {
			summary.LowStock = append(summary.LowStock, p)
		}
	}
	return summary
}
