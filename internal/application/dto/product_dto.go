package dto

import "github.com/shopspring/decimal"

// ProductFilter parámetros de filtrado de la tabla de productos.
// Search aplica substring case-insensitive sobre name, sku e id. Warehouse y
// Status aceptan el centinela "all". Page es 1-based; al cambiar cualquier
// filtro el cliente debe volver a pedir page=1 (el estado es del caller).
type ProductFilter struct {
	Search    string `query:"search"`
	Warehouse string `query:"warehouse"`
	Status    string `query:"status"`
	Page      int    `query:"page"`
}

// ProductResponse fila producto-bodega con su estado derivado.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductListResponse página de la tabla de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// InventorySummaryResponse KPIs agregados del snapshot actual del store.
// Se recalculan en cada petición; nunca se persisten.
type InventorySummaryResponse struct {
	TotalStock  int             `json:"total_stock"`
	TotalDemand int             `json:"total_demand"`
	FillRate    decimal.Decimal `json:"fill_rate"` // porcentaje 0-100, 2 decimales
}
