// Package memstore implementa los puertos de repositorio sobre colecciones
// en memoria. Es el "backend" del panel mientras no exista una API real de
// persistencia: un solo store autoritativo, construido una vez e inyectado,
// nunca una variable global mutable de paquete.
package memstore

import (
	"sync"

	"github.com/jhoicas/Inventario-panel/internal/domain"
	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
)

// ProductStore mantiene la lista autoritativa de filas producto-bodega.
// La invariante es que el par (ID, Warehouse) sea único; si se viola, las
// búsquedas resuelven por primera coincidencia.
//
// El mutex existe porque el hub de websocket lee snapshots desde otra
// goroutine; las mutaciones siguen llegando de un solo hilo lógico.
type ProductStore struct {
	mu      sync.RWMutex
	records []entity.ProductRecord
}

// NewProductStore crea el store con las filas semilla indicadas.
func NewProductStore(seed []entity.ProductRecord) *ProductStore {
	s := &ProductStore{}
	s.Reset(seed)
	return s
}

// FindOne devuelve una copia de la primera fila con (id, warehouse), o nil.
func (s *ProductStore) FindOne(id, warehouse string) (*entity.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.records[i].ID == id && s.records[i].Warehouse == warehouse {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, nil
}

// All devuelve un snapshot (copia) de todas las filas en orden de inserción.
func (s *ProductStore) All() ([]entity.ProductRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.ProductRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Upsert reemplaza la primera fila con la misma clave o agrega al final.
func (s *ProductStore) Upsert(record entity.ProductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == record.ID && s.records[i].Warehouse == record.Warehouse {
			s.records[i] = record
			return nil
		}
	}
	s.records = append(s.records, record)
	return nil
}

// Update aplica fn sobre la primera fila con (id, warehouse) y devuelve una
// copia del resultado. ErrNotFound si la fila no existe.
func (s *ProductStore) Update(id, warehouse string, fn func(*entity.ProductRecord)) (*entity.ProductRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id && s.records[i].Warehouse == warehouse {
			fn(&s.records[i])
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Reset reemplaza el contenido completo del store (hook para tests y seed).
func (s *ProductStore) Reset(records []entity.ProductRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]entity.ProductRecord, len(records))
	copy(s.records, records)
}
