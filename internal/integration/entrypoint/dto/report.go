// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/report"
)

// TotalResponse represents a scalar total. Sums are decimal strings so
// amounts survive the wire without floating-point rounding.
type TotalResponse struct {
	Total string `json:"total"`
}

// ToTotalResponse converts a decimal sum to its response DTO.
func ToTotalResponse(total decimal.Decimal) TotalResponse {
	return TotalResponse{Total: total.String()}
}

// CountResponse represents a transaction count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// CategoryTotalResponse represents one category's sum.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Sum      string `json:"sum"`
}

// ToCategoryTotalsResponse converts category totals preserving their order.
func ToCategoryTotalsResponse(totals []report.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = CategoryTotalResponse{Category: t.Category, Sum: t.Sum.String()}
	}
	return out
}

// DateTotalResponse represents one occurrence date's sum.
type DateTotalResponse struct {
	Date string `json:"date"`
	Sum  string `json:"sum"`
}

// ToDateTotalsResponse converts date totals preserving their order.
func ToDateTotalsResponse(totals []report.DateTotal) []DateTotalResponse {
	out := make([]DateTotalResponse, len(totals))
	for i, t := range totals {
		out[i] = DateTotalResponse{Date: t.Date.Format("2006-01-02"), Sum: t.Sum.String()}
	}
	return out
}

// CategoriesResponse represents the distinct category list of a scope.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
