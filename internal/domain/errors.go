package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidRoute      = errors.New("bodega origen y destino deben ser distintas")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
