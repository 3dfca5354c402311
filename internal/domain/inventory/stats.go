package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/colorstock-api/internal/domain/entity"
)

// Summary estadísticas derivadas de un conjunto de movimientos.
// Funciones puras: sin efectos, sin llamadas externas.
type Summary struct {
	TotalIn            int
	TotalOut           int
	NetChange          int // TotalIn - TotalOut
	Transactions       int
	TopProduct         string // SKU con más movimientos; "" si no hay datos
	AvgTransactionSize decimal.Decimal
}

// Summarize calcula las estadísticas del conjunto de movimientos recibido.
// TopProduct es el SKU con mayor número de movimientos; en empate gana el
// primero visto durante la agregación. AvgTransactionSize es
// (TotalIn+TotalOut)/Transactions, o 0 si el conjunto está vacío.
func Summarize(movements []*entity.MovementWithDetails) Summary {
	s := Summary{AvgTransactionSize: decimal.Zero}
	if len(movements) == 0 {
		return s
	}

	counts := map[string]int{}
	var order []string
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIN:
			s.TotalIn += m.Quantity
		case entity.MovementTypeOUT:
			s.TotalOut += m.Quantity
		}
		sku := m.SKU
		if sku == "" {
			sku = "Unknown"
		}
		if _, seen := counts[sku]; !seen {
			order = append(order, sku)
		}
		counts[sku]++
	}

	s.NetChange = s.TotalIn - s.TotalOut
	s.Transactions = len(movements)

	best := ""
	bestCount := 0
	for _, sku := range order {
		// Empates: se conserva el primero visto (> estricto)
		if counts[sku] > bestCount {
			best = sku
			bestCount = counts[sku]
		}
	}
	s.TopProduct = best

	s.AvgTransactionSize = decimal.NewFromInt(int64(s.TotalIn + s.TotalOut)).
		Div(decimal.NewFromInt(int64(s.Transactions))).
		Round(2)
	return s
}
