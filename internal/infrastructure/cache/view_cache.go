// Package cache implementa el caché de vistas sobre Redis. Es una capa
// opcional: cualquier error de Redis degrada a lectura directa de DB.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/colorstock-api/internal/application/dto"
	"github.com/jhoicas/colorstock-api/internal/application/movements"
	"github.com/jhoicas/colorstock-api/internal/application/usecase"
	"github.com/jhoicas/colorstock-api/pkg/logger"
)

const (
	movementKeyPrefix  = "colorstock:movements:"
	inventoryKeyPrefix = "colorstock:inventory:"
)

var (
	_ movements.ViewCache        = (*ViewCache)(nil)
	_ usecase.InventoryViewCache = (*ViewCache)(nil)
)

// ViewCache guarda en Redis las vistas ya consultadas: páginas del ledger
// de movimientos y listados de inventario.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewViewCache construye el caché. ttl aplica a cada entrada guardada.
func NewViewCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *ViewCache {
	return &ViewCache{client: client, ttl: ttl, log: log}
}

// get deserializa la entrada en dest. Devuelve false en miss o ante
// cualquier error de Redis.
func (c *ViewCache) get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Msg("cache get failed")
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn().Err(err).Msg("cache unmarshal failed")
		return false
	}
	return true
}

func (c *ViewCache) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache set failed")
	}
}

func (c *ViewCache) deleteByPrefix(ctx context.Context, prefix string) {
	keys, err := c.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		c.log.Warn().Err(err).Msg("cache invalidate scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache invalidate del failed")
	}
}

// GetMovementPage busca una página del ledger por su huella de filtros.
func (c *ViewCache) GetMovementPage(ctx context.Context, key string) (*dto.MovementListResponse, bool) {
	var page dto.MovementListResponse
	if !c.get(ctx, movementKeyPrefix+key, &page) {
		return nil, false
	}
	return &page, true
}

// SetMovementPage guarda una página bajo su huella de filtros.
func (c *ViewCache) SetMovementPage(ctx context.Context, key string, page *dto.MovementListResponse) {
	c.set(ctx, movementKeyPrefix+key, page)
}

// InvalidateMovements elimina todas las páginas cacheadas del ledger.
// Se dispara desde el bus de eventos tras cada movimiento aplicado.
func (c *ViewCache) InvalidateMovements(ctx context.Context) {
	c.deleteByPrefix(ctx, movementKeyPrefix)
}

// GetInventoryList busca un listado de inventario por término de búsqueda.
func (c *ViewCache) GetInventoryList(ctx context.Context, key string) (*dto.InventoryListResponse, bool) {
	var list dto.InventoryListResponse
	if !c.get(ctx, inventoryKeyPrefix+key, &list) {
		return nil, false
	}
	return &list, true
}

// SetInventoryList guarda un listado bajo su término de búsqueda.
func (c *ViewCache) SetInventoryList(ctx context.Context, key string, list *dto.InventoryListResponse) {
	c.set(ctx, inventoryKeyPrefix+key, list)
}

// InvalidateInventory elimina los listados de inventario cacheados.
// Se dispara cuando cambia el stock de una línea o nace una variante.
func (c *ViewCache) InvalidateInventory(ctx context.Context) {
	c.deleteByPrefix(ctx, inventoryKeyPrefix)
}
