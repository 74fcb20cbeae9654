package inventory

// Status clasifica una fila según su stock frente a su demanda.
type Status string

const (
	StatusHealthy  Status = "Healthy"  // stock > demanda
	StatusLow      Status = "Low"      // stock == demanda
	StatusCritical Status = "Critical" // stock < demanda
)

// StatusOf es una función pura de (stock, demanda); el estado nunca se almacena.
func StatusOf(stock, demand int) Status {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// ParseStatus valida un valor de filtro de estado. Devuelve ok=false si el
// texto no corresponde a ningún estado conocido.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusHealthy, StatusLow, StatusCritical:
		return Status(s), true
	}
	return "", false
}
