package dto

// WarehouseResponse bodega del catálogo de referencia.
type WarehouseResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WarehouseListResponse lista completa del catálogo.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
}
