// Comando auxiliar: vuelca el dataset semilla del panel como JSON, útil para
// inspeccionarlo o cargarlo en otra herramienta.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-panel/internal/infrastructure/memstore"
)

func main() {
	out := map[string]any{
		"warehouses": memstore.SeedWarehouses(),
		"products":   memstore.SeedProducts(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintln(os.Stderr, "serializar seed:", err)
		os.Exit(1)
	}
}
