package report

import (
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesRow ventas acumuladas de un ítem en el rango.
type SalesRow struct {
	ItemRef
	QuantitySold int64           `json:"quantity_sold"`
	SellingPrice int64           `json:"selling_price"`
	Revenue      int64           `json:"revenue"`
	CostValue    int64           `json:"cost_value"`
	Profit       int64           `json:"profit"`
	ProfitMargin decimal.Decimal `json:"profit_margin"`
}

// SalesSummary totales del reporte; el margen global es total_profit/total_cost_value*100.
type SalesSummary struct {
	TotalQuantity  int64           `json:"total_quantity"`
	TotalRevenue   int64           `json:"total_revenue"`
	TotalCostValue int64           `json:"total_cost_value"`
	TotalProfit    int64           `json:"total_profit"`
	ProfitMargin   decimal.Decimal `json:"profit_margin"`
}

// SalesReport filas por ítem más resumen. Es también la forma del reporte de utilidad.
type SalesReport struct {
	Rows    []SalesRow   `json:"rows"`
	Summary SalesSummary `json:"summary"`
}

// ProfitMargin devuelve profit/costValue*100 a 2 decimales, o 0 cuando costValue es 0.
func ProfitMargin(profit, costValue int64) decimal.Decimal {
	return percent(profit, costValue)
}

// costMode fuente del costo de lo vendido.
type costMode int

const (
	costFromItem   costMode = iota // cost × cantidad; valor del ledger si el ítem no tiene costo
	costFromLedger                 // siempre Σ(valueBefore − valueAfter)
)

// Sales agrega las entradas stock_removed con motivo "sale" por ítem.
// revenue = selling_price × cantidad; cost_value = cost × cantidad (o el valor registrado en el
// ledger si el ítem no tiene costo); profit = revenue − cost_value.
// Los ítems sin ventas aparecen con ceros.
func Sales(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry) SalesReport {
	return aggregateSales(items, entries, costFromItem)
}

// Profit tiene la forma de Sales pero el costo es siempre el realizado según el ledger.
func Profit(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry) SalesReport {
	return aggregateSales(items, entries, costFromLedger)
}

func aggregateSales(items []*entity.InventoryItem, entries []*entity.InventoryLogEntry, mode costMode) SalesReport {
	sold := make(map[int64]int64)
	ledgerCost := make(map[int64]int64)
	for _, e := range entries {
		if e.Action != entity.ActionStockRemoved || !e.HasReason(entity.ReasonSale) {
			continue
		}
		sold[e.ItemID] += e.QuantityDecrease()
		ledgerCost[e.ItemID] += e.ValueDecrease()
	}

	sorted := sortedItems(items)
	rep := SalesReport{Rows: make([]SalesRow, 0, len(sorted))}
	for _, it := range sorted {
		qty := sold[it.ID]
		var price int64
		if it.SellingPrice != nil {
			price = *it.SellingPrice
		}
		revenue := price * qty

		cost := ledgerCost[it.ID]
		if mode == costFromItem && it.Cost > 0 {
			cost = it.Cost * qty
		}
		profit := revenue - cost

		rep.Rows = append(rep.Rows, SalesRow{
			ItemRef:      refOf(it),
			QuantitySold: qty,
			SellingPrice: price,
			Revenue:      revenue,
			CostValue:    cost,
			Profit:       profit,
			ProfitMargin: ProfitMargin(profit, cost),
		})
		rep.Summary.TotalQuantity += qty
		rep.Summary.TotalRevenue += revenue
		rep.Summary.TotalCostValue += cost
		rep.Summary.TotalProfit += profit
	}
	rep.Summary.ProfitMargin = ProfitMargin(rep.Summary.TotalProfit, rep.Summary.TotalCostValue)
	return rep
}
