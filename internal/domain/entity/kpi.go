package entity

import "time"

// KpiPoint es un punto diario de la serie stock/demanda del dashboard.
// La serie es cronológica y única por fecha.
type KpiPoint struct {
	Date   time.Time
	Stock  int
	Demand int
}
