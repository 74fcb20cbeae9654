package repository

import "github.com/jhoicas/Inventario-panel/internal/domain/entity"

// WarehouseRepository define el puerto del catálogo de bodegas (solo lectura).
type WarehouseRepository interface {
	// GetByCode busca una bodega por código. Devuelve nil si no existe.
	GetByCode(code string) (*entity.Warehouse, error)
	// List devuelve todas las bodegas del catálogo.
	List() ([]entity.Warehouse, error)
}
