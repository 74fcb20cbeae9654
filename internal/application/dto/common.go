package dto

// PageResponse metadatos de paginación en listados.
// Page es 1-based; PageSize es fijo para la tabla del panel.
type PageResponse struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"` // total de filas tras aplicar filtros
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
