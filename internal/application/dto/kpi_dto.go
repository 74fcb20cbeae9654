package dto

// KpiPointResponse punto diario de la serie stock/demanda del gráfico.
type KpiPointResponse struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}
