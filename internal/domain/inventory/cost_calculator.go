package inventory

import (
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ValueAfter calcula el StockValue resultante de llevar la cantidad a newQuantity.
// Redondeo: mitad hacia arriba a unidades menores enteras (decimal.Round(0); los valores no son negativos).
// El valor derivado se calcula como valueBefore*newQuantity/quantityBefore para no acumular
// el error de la división. Sin costo ni existencias, el valor anterior queda sin cambio.
func ValueAfter(cost, quantityBefore, valueBefore, newQuantity int64) int64 {
	if cost > 0 {
		return cost * newQuantity
	}
	if quantityBefore > 0 {
		return decimal.NewFromInt(valueBefore).
			Mul(decimal.NewFromInt(newQuantity)).
			Div(decimal.NewFromInt(quantityBefore)).
			Round(0).
			IntPart()
	}
	return valueBefore
}

// ClassifyCountChange clasifica un cambio de conteo. Con cantidades distintas nunca
// devuelve count_adjustment; ese tipo queda para ajustes de solo valor.
func ClassifyCountChange(quantityBefore, quantityAfter int64) entity.LogAction {
	switch {
	case quantityAfter > quantityBefore:
		return entity.ActionStockAdded
	case quantityAfter < quantityBefore:
		return entity.ActionStockRemoved
	default:
		return entity.ActionCountAdjustment
	}
}
