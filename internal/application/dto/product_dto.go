package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta manual de producto desde la UI.
type CreateProductRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	CostPrice decimal.Decimal `json:"costPrice"`
}

// UpdateProductRequest edición parcial; los campos nil no se tocan.
type UpdateProductRequest struct {
	Code      *string          `json:"code"`
	Name      *string          `json:"name"`
	Category  *string          `json:"category"`
	Unit      *string          `json:"unit"`
	CostPrice *decimal.Decimal `json:"costPrice"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Unit      string          `json:"unit"`
	CostPrice decimal.Decimal `json:"costPrice"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ProductListResponse listado del catálogo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
