package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
	"github.com/jhoicas/Inventario-panel/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func record(stock, demand int) entity.ProductRecord {
	return entity.ProductRecord{ID: "P-1", Name: "x", SKU: "x", Warehouse: "BLR-A", Stock: stock, Demand: demand}
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestTotales_SumanTodasLasFilas(t *testing.T) {
	records := []entity.ProductRecord{record(10, 5), record(20, 15), record(0, 30)}

	assert.Equal(t, 30, inventory.TotalStock(records))
	assert.Equal(t, 50, inventory.TotalDemand(records))
}

func TestTotales_ColeccionVaciaEsCero(t *testing.T) {
	assert.Equal(t, 0, inventory.TotalStock(nil))
	assert.Equal(t, 0, inventory.TotalDemand(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fill rate
// ──────────────────────────────────────────────────────────────────────────────

// Sin demanda agregada el fill rate se define como 100 (totalmente cubierto),
// evitando la división por cero.
func TestFillRate_SinDemandaEs100(t *testing.T) {
	records := []entity.ProductRecord{record(50, 0), record(10, 0)}
	assert.True(t, inventory.FillRate(records).Equal(decimal.NewFromInt(100)))

	// También con la colección vacía.
	assert.True(t, inventory.FillRate(nil).Equal(decimal.NewFromInt(100)))
}

// El aporte de cada fila está acotado por su propia demanda: el excedente de
// una bodega no puede cubrir el faltante de otra. Con stock=100/demanda=10 y
// stock=0/demanda=90 el fill rate es 10%, no 100%.
func TestFillRate_AporteAcotadoPorFila(t *testing.T) {
	records := []entity.ProductRecord{record(100, 10), record(0, 90)}

	got := inventory.FillRate(records)
	assert.True(t, got.Equal(decimal.NewFromInt(10)), "fill rate = %s, esperado 10", got)
}

func TestFillRate_CoberturaTotalEs100(t *testing.T) {
	records := []entity.ProductRecord{record(10, 10), record(80, 40)}
	assert.True(t, inventory.FillRate(records).Equal(decimal.NewFromInt(100)))
}

func TestFillRate_RedondeaADosDecimales(t *testing.T) {
	// 1/3 de la demanda cubierta: 33.33 tras redondear.
	records := []entity.ProductRecord{record(1, 3)}

	got := inventory.FillRate(records)
	assert.True(t, got.Equal(decimal.NewFromFloat(33.33)), "fill rate = %s, esperado 33.33", got)
}

// Propiedad: para conjuntos aleatorios (incluyendo filas con stock > demanda)
// el fill rate queda en [0, 100] y coincide con la fórmula
// 100 * Σ min(stock_i, demand_i) / Σ demand_i calculada aparte.
func TestFillRate_PropiedadConjuntosAleatorios(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for caso := 0; caso < 200; caso++ {
		n := 1 + rnd.Intn(40)
		records := make([]entity.ProductRecord, 0, n)
		fulfilled, totalDemand := 0, 0
		for i := 0; i < n; i++ {
			stock := rnd.Intn(500)
			demand := rnd.Intn(500)
			records = append(records, record(stock, demand))
			totalDemand += demand
			if stock < demand {
				fulfilled += stock
			} else {
				fulfilled += demand
			}
		}

		got := inventory.FillRate(records)

		require.True(t, got.GreaterThanOrEqual(decimal.Zero), "caso %d: fill rate %s < 0", caso, got)
		require.True(t, got.LessThanOrEqual(decimal.NewFromInt(100)), "caso %d: fill rate %s > 100", caso, got)

		if totalDemand == 0 {
			require.True(t, got.Equal(decimal.NewFromInt(100)), "caso %d", caso)
			continue
		}
		expected := decimal.NewFromInt(int64(fulfilled * 100)).
			Div(decimal.NewFromInt(int64(totalDemand))).
			Round(2)
		require.True(t, got.Equal(expected), "caso %d: fill rate %s != %s", caso, got, expected)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Status
// ──────────────────────────────────────────────────────────────────────────────

// Fronteras exactas de la clasificación: igualdad es Low, no Healthy.
func TestStatusOf_Fronteras(t *testing.T) {
	assert.Equal(t, inventory.StatusLow, inventory.StatusOf(100, 100))
	assert.Equal(t, inventory.StatusHealthy, inventory.StatusOf(101, 100))
	assert.Equal(t, inventory.StatusCritical, inventory.StatusOf(99, 100))
}

func TestParseStatus_ValoresConocidos(t *testing.T) {
	for _, s := range []string{"Healthy", "Low", "Critical"} {
		got, ok := inventory.ParseStatus(s)
		require.True(t, ok, "ParseStatus(%q)", s)
		assert.Equal(t, inventory.Status(s), got)
	}
}

func TestParseStatus_ValorDesconocidoFalla(t *testing.T) {
	_, ok := inventory.ParseStatus("healthy") // sensible a mayúsculas
	assert.False(t, ok)

	_, ok = inventory.ParseStatus("Unknown")
	assert.False(t, ok)
}
