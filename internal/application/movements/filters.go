package movements

import (
	"fmt"
	"time"

	"github.com/jhoicas/colorstock-api/internal/domain"
	"github.com/jhoicas/colorstock-api/internal/domain/entity"
	"github.com/jhoicas/colorstock-api/internal/domain/repository"
)

// Valor que significa "sin filtro" en MovementType y ProductID.
const FilterAll = "all"

// Límites de página.
const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Filters opciones de consulta elegidas por el usuario sobre el ledger.
// Es la representación de la UI: fechas como YYYY-MM-DD y "all" como comodín.
type Filters struct {
	MovementType string // all | IN | OUT
	ProductID    string // all | id
	DateFrom     string // YYYY-MM-DD inclusive
	DateTo       string // YYYY-MM-DD inclusive (se extiende a fin de día)
	Notes        string // substring case-insensitive
	Page         int    // 1-based
	Limit        int
}

// Defaults devuelve el estado "limpiar filtros": todo en comodín, página 1.
func Defaults() Filters {
	return Filters{
		MovementType: FilterAll,
		ProductID:    FilterAll,
		Page:         1,
		Limit:        DefaultLimit,
	}
}

// Normalized aplica valores por defecto y acota página y límite.
func (f Filters) Normalized() Filters {
	if f.MovementType == "" {
		f.MovementType = FilterAll
	}
	if f.ProductID == "" {
		f.ProductID = FilterAll
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}
	if f.Limit > MaxLimit {
		f.Limit = MaxLimit
	}
	return f
}

// ResetPage implementa la regla de la UI: cambiar cualquier filtro distinto
// de la página regresa el resultado a la página 1.
func ResetPage(prev, next Filters) Filters {
	prevPage := prev
	nextPage := next
	prevPage.Page = 0
	nextPage.Page = 0
	if prevPage != nextPage {
		next.Page = 1
	}
	return next
}

// ToRepoFilter traduce los filtros de UI al filtro de repositorio:
// comodines a vacío, fechas parseadas (DateTo extendida a fin de día) y
// offset = (page-1)*limit. Fechas mal formadas fallan con ErrInvalidInput.
func (f Filters) ToRepoFilter() (repository.MovementFilter, error) {
	out := repository.MovementFilter{
		Notes:  f.Notes,
		Limit:  f.Limit,
		Offset: (f.Page - 1) * f.Limit,
	}

	switch f.MovementType {
	case FilterAll, "":
	case entity.MovementTypeIN, entity.MovementTypeOUT:
		out.Type = f.MovementType
	default:
		return out, fmt.Errorf("movement_type %q: %w", f.MovementType, domain.ErrInvalidInput)
	}

	if f.ProductID != FilterAll && f.ProductID != "" {
		out.ProductID = f.ProductID
	}

	if f.DateFrom != "" {
		from, err := time.ParseInLocation("2006-01-02", f.DateFrom, time.Local)
		if err != nil {
			return out, fmt.Errorf("date_from %q: %w", f.DateFrom, domain.ErrInvalidInput)
		}
		out.DateFrom = &from
	}
	if f.DateTo != "" {
		to, err := time.ParseInLocation("2006-01-02", f.DateTo, time.Local)
		if err != nil {
			return out, fmt.Errorf("date_to %q: %w", f.DateTo, domain.ErrInvalidInput)
		}
		// Límite inclusivo: el día completo hasta 23:59:59.999999999
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		out.DateTo = &endOfDay
	}

	return out, nil
}

// CacheKey huella estable de los filtros, usada como clave de la vista cacheada.
func (f Filters) CacheKey() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%d|%d",
		f.MovementType, f.ProductID, f.DateFrom, f.DateTo, f.Notes, f.Page, f.Limit)
}
