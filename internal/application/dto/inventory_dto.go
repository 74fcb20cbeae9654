package dto

// UpdateDemandRequest body para PUT /api/products/:id/demand.
// Warehouse es obligatorio: resolver solo por id es ambiguo cuando el
// producto existe en varias bodegas.
type UpdateDemandRequest struct {
	Warehouse string `json:"warehouse" validate:"required"`
	NewDemand *int   `json:"new_demand" validate:"required,min=0"`
}

// TransferStockRequest body para POST /api/inventory/transfers.
// La cantidad se valida en el caso de uso (> 0) para distinguir
// INVALID_QUANTITY de un body malformado.
type TransferStockRequest struct {
	ProductID            string `json:"product_id" validate:"required"`
	SourceWarehouse      string `json:"source_warehouse" validate:"required"`
	DestinationWarehouse string `json:"destination_warehouse" validate:"required"`
	Quantity             int    `json:"quantity"`
}

// TransferStockResponse resultado de una transferencia.
// Trae AMBAS filas afectadas: un caché que reconcilie solo el origen deja la
// fila destino desactualizada hasta el siguiente refetch completo.
type TransferStockResponse struct {
	MovementID  string          `json:"movement_id"`
	Source      ProductResponse `json:"source"`
	Destination ProductResponse `json:"destination"`
}
