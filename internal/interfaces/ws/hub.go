// Package ws implementa el stream de eventos de cambio del inventario.
// Cada mutación exitosa se difunde a todos los clientes conectados para que
// el panel reconcilie su caché local sin refetch completo.
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/Inventario-panel/internal/application/inventory"
	"github.com/jhoicas/Inventario-panel/pkg/logger"
)

// Hub registra conexiones websocket y difunde mensajes a todas.
type Hub struct {
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}

	log *logger.Logger
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
		clients:    make(map[*websocket.Conn]struct{}),
		log:        log,
	}
}

// Run atiende registros, bajas y difusión. Debe correr en su propia
// goroutine y vive lo que vive el proceso: no hay ruta de parada, el hub
// muere con el servidor.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			h.mu.Unlock()
			h.log.Debug().Msg("cliente websocket conectado")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Notify implementa inventory.Notifier: serializa el evento y lo difunde.
// Una transferencia incluye las dos filas afectadas (origen y destino).
func (h *Hub) Notify(event inventory.ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("type", event.Type).Msg("serializar evento de cambio")
		return
	}
	h.broadcast <- payload
}

// Handler devuelve el handler fiber-websocket que mantiene viva la conexión.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()

		for {
			// El panel solo recibe; leemos para detectar el cierre.
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
