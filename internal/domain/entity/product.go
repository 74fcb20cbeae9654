package entity

// ProductRecord representa la presencia de un producto en una bodega concreta.
// El mismo ID puede aparecer una vez por bodega; la clave real de la fila es
// el par (ID, Warehouse). Name y SKU se asumen iguales entre todas las filas
// que comparten ID (el motor no lo exige, solo toma los valores de una fila).
type ProductRecord struct {
	ID        string
	Name      string
	SKU       string
	Warehouse string // código de bodega
	Stock     int
	Demand    int
}
