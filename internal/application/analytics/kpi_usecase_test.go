package analytics_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-panel/internal/application/analytics"
)

func TestRangeDays_TokensConocidos(t *testing.T) {
	assert.Equal(t, 7, analytics.RangeDays("7d"))
	assert.Equal(t, 14, analytics.RangeDays("14d"))
	assert.Equal(t, 30, analytics.RangeDays("30d"))
}

// Token desconocido o ausente cae al rango por defecto de 7 días.
func TestRangeDays_TokenDesconocidoCaeA7(t *testing.T) {
	assert.Equal(t, 7, analytics.RangeDays(""))
	assert.Equal(t, 7, analytics.RangeDays("90d"))
	assert.Equal(t, 7, analytics.RangeDays("catorce"))
}

// Generate(14): exactamente 14 puntos, fechas calendario consecutivas, la
// última es hoy, stock y demanda no negativos.
func TestGenerate_FormaDeLaSerie(t *testing.T) {
	uc := analytics.NewKpiUseCase()

	points := uc.Generate(14)
	require.Len(t, points, 14)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.True(t, points[len(points)-1].Date.Equal(today), "la serie termina hoy")

	for i, p := range points {
		assert.GreaterOrEqual(t, p.Stock, 0, "punto %d", i)
		assert.GreaterOrEqual(t, p.Demand, 0, "punto %d", i)
		if i > 0 {
			assert.True(t, p.Date.Equal(points[i-1].Date.AddDate(0, 0, 1)), "fechas consecutivas en %d", i)
		}
	}
}

// Varias peticiones del gráfico pueden llegar a la vez; la fuente de
// aleatoriedad compartida debe soportar llamadas concurrentes (verificar
// con -race).
func TestSeries_LlamadasConcurrentes(t *testing.T) {
	uc := analytics.NewKpiUseCase()

	const goroutines = 8
	var wg sync.WaitGroup
	largos := make([]int, goroutines)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			largos[g] = len(uc.Series("30d"))
		}(g)
	}
	wg.Wait()

	for g, largo := range largos {
		assert.Equal(t, 30, largo, "goroutine %d", g)
	}
}

func TestSeries_UsaElTokenDeRango(t *testing.T) {
	uc := analytics.NewKpiUseCase()

	assert.Len(t, uc.Series("30d"), 30)
	assert.Len(t, uc.Series("algo-raro"), 7)

	// Formato de fecha YYYY-MM-DD.
	serie := uc.Series("7d")
	require.NotEmpty(t, serie)
	_, err := time.Parse("2006-01-02", serie[0].Date)
	assert.NoError(t, err)
}
