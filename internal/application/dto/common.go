package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Issues solo viene poblado en errores de disponibilidad de stock,
	// con la lista completa de renglones problemáticos.
	Issues []StockIssueDTO `json:"issues,omitempty"`
}

// StockIssueDTO renglón problemático de un chequeo de disponibilidad.
type StockIssueDTO struct {
	ProductName     string `json:"productName"`
	LotNumber       string `json:"lotNumber,omitempty"`
	Requested       int64  `json:"requested"`
	Available       int64  `json:"available"`
	ProductNotFound bool   `json:"productNotFound,omitempty"`
	Message         string `json:"message"`
}
