package repository

import "github.com/jhoicas/Inventario-panel/internal/domain/entity"

// ProductRepository define el puerto del Record Store para filas
// producto-bodega (DIP). Todas las operaciones son síncronas sobre la
// colección completa en memoria.
type ProductRepository interface {
	// FindOne busca la primera fila con (id, warehouse). Devuelve nil si no existe.
	FindOne(id, warehouse string) (*entity.ProductRecord, error)
	// All devuelve un snapshot de todas las filas en orden de inserción.
	All() ([]entity.ProductRecord, error)
	// Upsert inserta la fila o reemplaza la primera coincidencia de (ID, Warehouse).
	Upsert(record entity.ProductRecord) error
	// Update aplica fn sobre la primera fila con (id, warehouse).
	// Devuelve domain.ErrNotFound si la fila no existe.
	Update(id, warehouse string, fn func(*entity.ProductRecord)) (*entity.ProductRecord, error)
}
