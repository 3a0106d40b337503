package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/hotel-inventory/internal/application/dto"
	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// CountUpdateUseCase es el único camino por el que cambian la cantidad o el valor de un ítem.
// Cada llamada que cambia algo bloquea la fila (SELECT FOR UPDATE), actualiza el ítem y agrega
// exactamente una entrada al ledger dentro de la misma transacción.
type CountUpdateUseCase struct {
	txRunner TxRunner
	ledger   *LedgerWriter
}

// NewCountUpdateUseCase construye el caso de uso.
func NewCountUpdateUseCase(txRunner TxRunner, ledger *LedgerWriter) *CountUpdateUseCase {
	return &CountUpdateUseCase{txRunner: txRunner, ledger: ledger}
}

// CountUpdateInput entrada de un conteo físico.
type CountUpdateInput struct {
	ItemID      int64
	NewQuantity int64
	Reason      string
	Notes       string
	UserID      string
	UserName    string
}

// ValueAdjustmentInput entrada de un ajuste de solo valor (la cantidad no cambia).
type ValueAdjustmentInput struct {
	ItemID   int64
	NewValue int64
	Reason   string
	Notes    string
	UserID   string
	UserName string
}

// UpdateCountWithLog lleva la cantidad del ítem a NewQuantity.
// Si la cantidad no cambia no escribe nada y devuelve Changed=false.
func (uc *CountUpdateUseCase) UpdateCountWithLog(ctx context.Context, in CountUpdateInput) (*dto.CountUpdateResult, error) {
	if in.NewQuantity < 0 {
		return nil, fmt.Errorf("%w: new_quantity no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.ItemID <= 0 {
		return nil, fmt.Errorf("%w: item_id es requerido", domain.ErrInvalidInput)
	}

	var result *dto.CountUpdateResult
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, logRepo repository.InventoryLogRepository) error {
		item, err := lockItem(ctx, itemRepo, in.ItemID)
		if err != nil {
			return err
		}
		qtyBefore, valueBefore := item.Quantity, item.StockValue
		if in.NewQuantity == qtyBefore {
			result = &dto.CountUpdateResult{ItemID: item.ID, Quantity: qtyBefore, Value: valueBefore}
			return nil
		}

		valueAfter := inventory.ValueAfter(item.Cost, qtyBefore, valueBefore, in.NewQuantity)
		action := inventory.ClassifyCountChange(qtyBefore, in.NewQuantity)

		if err := itemRepo.UpdateStock(ctx, item.ID, in.NewQuantity, valueAfter); err != nil {
			return err
		}
		entry, err := uc.ledger.Append(ctx, logRepo, LedgerInput{
			ItemID:         item.ID,
			Action:         action,
			QuantityBefore: i64(qtyBefore),
			QuantityAfter:  i64(in.NewQuantity),
			ValueBefore:    i64(valueBefore),
			ValueAfter:     i64(valueAfter),
			Reason:         in.Reason,
			Notes:          in.Notes,
			UserID:         in.UserID,
			UserName:       in.UserName,
		})
		if err != nil {
			return err
		}
		result = &dto.CountUpdateResult{
			ItemID:   item.ID,
			Quantity: in.NewQuantity,
			Value:    valueAfter,
			Action:   string(action),
			Changed:  true,
			LogID:    entry.ID,
		}
		return nil
	})
	if err != nil {
		err = domain.WrapStorage("actualizar conteo", err)
		logFailure(err, in.ItemID, "actualizar conteo")
		return nil, err
	}

	if result.Changed {
		log.Info().
			Int64("item_id", result.ItemID).
			Str("action", result.Action).
			Int64("quantity", result.Quantity).
			Int64("value", result.Value).
			Str("reason", strings.TrimSpace(in.Reason)).
			Msg("conteo registrado")
	}
	return result, nil
}

// AdjustStockValue cambia solo StockValue y registra una entrada count_adjustment con
// quantity_before == quantity_after. Si el valor no cambia no escribe nada.
func (uc *CountUpdateUseCase) AdjustStockValue(ctx context.Context, in ValueAdjustmentInput) (*dto.CountUpdateResult, error) {
	if in.NewValue < 0 {
		return nil, fmt.Errorf("%w: new_value no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.ItemID <= 0 {
		return nil, fmt.Errorf("%w: item_id es requerido", domain.ErrInvalidInput)
	}

	var result *dto.CountUpdateResult
	err := uc.txRunner.Run(ctx, func(itemRepo repository.ItemRepository, logRepo repository.InventoryLogRepository) error {
		item, err := lockItem(ctx, itemRepo, in.ItemID)
		if err != nil {
			return err
		}
		if in.NewValue == item.StockValue {
			result = &dto.CountUpdateResult{ItemID: item.ID, Quantity: item.Quantity, Value: item.StockValue}
			return nil
		}
		if err := itemRepo.UpdateStock(ctx, item.ID, item.Quantity, in.NewValue); err != nil {
			return err
		}
		entry, err := uc.ledger.Append(ctx, logRepo, LedgerInput{
			ItemID:         item.ID,
			Action:         entity.ActionCountAdjustment,
			QuantityBefore: i64(item.Quantity),
			QuantityAfter:  i64(item.Quantity),
			ValueBefore:    i64(item.StockValue),
			ValueAfter:     i64(in.NewValue),
			Reason:         in.Reason,
			Notes:          in.Notes,
			UserID:         in.UserID,
			UserName:       in.UserName,
		})
		if err != nil {
			return err
		}
		result = &dto.CountUpdateResult{
			ItemID:   item.ID,
			Quantity: item.Quantity,
			Value:    in.NewValue,
			Action:   string(entity.ActionCountAdjustment),
			Changed:  true,
			LogID:    entry.ID,
		}
		return nil
	})
	if err != nil {
		err = domain.WrapStorage("ajustar valor", err)
		logFailure(err, in.ItemID, "ajustar valor")
		return nil, err
	}
	if result.Changed {
		log.Info().Int64("item_id", result.ItemID).Int64("value", result.Value).Msg("valor de stock ajustado")
	}
	return result, nil
}

// lockItem bloquea la fila del ítem; inexistente o eliminado → ErrNotFound.
func lockItem(ctx context.Context, repo repository.ItemRepository, id int64) (*entity.InventoryItem, error) {
	item, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.IsDeleted() {
		return nil, fmt.Errorf("%w: ítem %d", domain.ErrNotFound, id)
	}
	return item, nil
}

// logFailure registra en error los fallos de almacenamiento; los de validación no.
func logFailure(err error, itemID int64, op string) {
	if errors.Is(err, domain.ErrStorage) {
		log.Error().Err(err).Int64("item_id", itemID).Msg(op)
	}
}
