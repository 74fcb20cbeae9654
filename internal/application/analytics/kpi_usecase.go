// Package analytics contiene los casos de uso de la serie temporal
// stock/demanda que alimenta el gráfico del dashboard.
package analytics

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jhoicas/Inventario-panel/internal/application/dto"
	"github.com/jhoicas/Inventario-panel/internal/domain/entity"
)

// Tokens de rango aceptados por el cliente y su ventana en días.
// Cualquier otro valor (o ausencia) cae al rango por defecto de 7 días.
const defaultRangeDays = 7

var rangeDays = map[string]int{
	"7d":  7,
	"14d": 14,
	"30d": 30,
}

// RangeDays traduce un token de rango (7d/14d/30d) a número de días.
func RangeDays(token string) int {
	if days, ok := rangeDays[token]; ok {
		return days
	}
	return defaultRangeDays
}

// KpiUseCase sintetiza la serie diaria de KPIs. Es un sustituto mientras no
// exista histórico autoritativo: valores plausibles con tendencia alcista
// suave más ruido acotado, no un contrato de exactitud.
type KpiUseCase struct {
	now func() time.Time

	// rand.Rand no es seguro para uso concurrente y cada petición HTTP
	// llama Generate desde su propia goroutine fiber.
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewKpiUseCase construye el caso de uso con reloj y semilla reales.
func NewKpiUseCase() *KpiUseCase {
	return &KpiUseCase{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Series genera la serie para el token de rango indicado.
func (uc *KpiUseCase) Series(rangeToken string) []dto.KpiPointResponse {
	points := uc.Generate(RangeDays(rangeToken))
	out := make([]dto.KpiPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.KpiPointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Stock:  p.Stock,
			Demand: p.Demand,
		})
	}
	return out
}

// Generate produce exactamente days puntos, uno por día calendario, con
// fechas consecutivas que terminan hoy (inclusive), del más antiguo al más
// reciente. Stock y demanda son enteros no negativos.
func (uc *KpiUseCase) Generate(days int) []entity.KpiPoint {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	now := uc.now()
	// Medianoche local: la serie es por día calendario, sin componente horario.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	data := make([]entity.KpiPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		// Ruido acotado (0.8–1.2) sobre una tendencia que crece hasta +30%
		// al final de la ventana.
		randomFactor := 0.8 + uc.rnd.Float64()*0.4
		trend := 1 + (float64(days-1-i)/float64(days))*0.3

		stock := int((9000 + uc.rnd.Float64()*2000) * randomFactor * trend)
		demand := int((7000 + uc.rnd.Float64()*3000) * randomFactor * trend)

		data = append(data, entity.KpiPoint{Date: date, Stock: stock, Demand: demand})
	}
	return data
}
