package event_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/colorstock-api/pkg/event"
)

// Fire entrega el payload de forma síncrona a todos los listeners del evento.
func TestBus_FireEntregaATodosLosListeners(t *testing.T) {
	bus := event.NewBus()

	var got []interface{}
	bus.Listen("stock.changed", func(p interface{}) { got = append(got, p) })
	bus.Listen("stock.changed", func(p interface{}) { got = append(got, p) })
	bus.Listen("otro.evento", func(p interface{}) { t.Error("no debe dispararse") })

	bus.Fire("stock.changed", "linea-1")

	assert.Equal(t, []interface{}{"linea-1", "linea-1"}, got)
}

// Fire sin listeners registrados no hace nada.
func TestBus_FireSinListeners(t *testing.T) {
	bus := event.NewBus()
	assert.NotPanics(t, func() { bus.Fire("nadie.escucha", nil) })
}

// FireAsync despacha en goroutines; sincronizamos con WaitGroup.
func TestBus_FireAsync(t *testing.T) {
	bus := event.NewBus()

	var wg sync.WaitGroup
	wg.Add(2)
	var mu sync.Mutex
	count := 0
	handler := func(interface{}) {
		mu.Lock()
		count++
		mu.Unlock()
		wg.Done()
	}
	bus.Listen("evt", handler)
	bus.Listen("evt", handler)

	bus.FireAsync("evt", nil)
	wg.Wait()

	assert.Equal(t, 2, count)
}

// Flush elimina todos los listeners.
func TestBus_Flush(t *testing.T) {
	bus := event.NewBus()
	bus.Listen("evt", func(interface{}) { t.Error("listener debió eliminarse") })

	bus.Flush()
	bus.Fire("evt", nil)
}
