package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
)

// Métricas agregadas del inventario (servicio de dominio). Todas las
// funciones son puras sobre un snapshot del store y corren en un solo
// recorrido O(n); el caller decide cuándo recalcular.

// TotalStock suma el stock de todas las filas.
func TotalStock(records []entity.ProductRecord) int {
	total := 0
	for _, r := range records {
		total += r.Stock
	}
	return total
}

// TotalDemand suma la demanda de todas las filas.
func TotalDemand(records []entity.ProductRecord) int {
	total := 0
	for _, r := range records {
		total += r.Demand
	}
	return total
}

// FillRate calcula el porcentaje de demanda agregada cubrible con el stock
// de cada fila, con aporte acotado por fila:
//
//	FillRate = 100 * Σ min(stock_i, demand_i) / Σ demand_i
//
// El excedente de una fila NO cubre el faltante de otra, así que NO equivale
// a TotalStock/TotalDemand. Sin demanda se define como 100 (totalmente
// cubierto). Redondeado a 2 decimales.
func FillRate(records []entity.ProductRecord) decimal.Decimal {
	totalDemand := 0
	fulfilled := 0
	for _, r := range records {
		totalDemand += r.Demand
		fulfilled += min(r.Stock, r.Demand)
	}
	if totalDemand == 0 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(int64(fulfilled)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(totalDemand))).
		Round(2)
}
