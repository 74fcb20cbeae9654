package entity

// Warehouse representa una bodega del catálogo de referencia (solo lectura
// para este núcleo; se usa para validar y etiquetar extremos de transferencia).
type Warehouse struct {
	Code    string // clave única
	Name    string
	City    string
	Country string
}
