// Package event provee un despachador de eventos en memoria, síncrono o asíncrono.
// Desacopla quien escribe (motor de inventario) de quien deriva vistas (caché).
package event

import "sync"

// Handler es una función que recibe el payload de un evento.
type Handler func(payload interface{})

// Bus registra listeners por nombre de evento y los despacha.
// Seguro para uso concurrente.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus construye un bus vacío.
func NewBus() *Bus {
	return &Bus{handlers: map[string][]Handler{}}
}

// Listen registra un handler para el evento indicado.
func (b *Bus) Listen(event string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[event] = append(b.handlers[event], handler)
}

// Fire despacha un evento de forma síncrona a todos los listeners registrados.
func (b *Bus) Fire(event string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[event]))
	copy(hs, b.handlers[event])
	b.mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// FireAsync despacha el evento a todos los listeners en goroutines.
// Retorna de inmediato sin esperar a que los handlers terminen.
func (b *Bus) FireAsync(event string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[event]))
	copy(hs, b.handlers[event])
	b.mu.RUnlock()

	for _, h := range hs {
		go h(payload)
	}
}

// Flush elimina todos los listeners (útil en tests).
func (b *Bus) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = map[string][]Handler{}
}
