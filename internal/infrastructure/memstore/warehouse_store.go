package memstore

import "github.com/jhoicas/Inventario-panel/internal/domain/entity"

// WarehouseStore catálogo de bodegas en memoria (solo lectura tras construir).
type WarehouseStore struct {
	warehouses []entity.Warehouse
}

// NewWarehouseStore crea el catálogo con las bodegas indicadas.
func NewWarehouseStore(seed []entity.Warehouse) *WarehouseStore {
	out := make([]entity.Warehouse, len(seed))
	copy(out, seed)
	return &WarehouseStore{warehouses: out}
}

// GetByCode busca una bodega por código. Devuelve nil si no existe.
func (s *WarehouseStore) GetByCode(code string) (*entity.Warehouse, error) {
	for i := range s.warehouses {
		if s.warehouses[i].Code == code {
			w := s.warehouses[i]
			return &w, nil
		}
	}
	return nil, nil
}

// List devuelve todas las bodegas.
func (s *WarehouseStore) List() ([]entity.Warehouse, error) {
	out := make([]entity.Warehouse, len(s.warehouses))
	copy(out, s.warehouses)
	return out, nil
}
