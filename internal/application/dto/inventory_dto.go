package dto

import "time"

// CountUpdateRequest body para POST /api/items/:id/count.
type CountUpdateRequest struct {
	NewQuantity *int64 `json:"new_quantity"`
	Reason      string `json:"reason"`
	Notes       string `json:"notes,omitempty"`
	UserName    string `json:"user_name,omitempty"`
}

// ValueAdjustmentRequest body para POST /api/items/:id/value.
type ValueAdjustmentRequest struct {
	NewValue *int64 `json:"new_value"`
	Reason   string `json:"reason"`
	Notes    string `json:"notes,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

// CountUpdateResult resultado de un conteo o ajuste de valor.
// Changed=false indica que no hubo nada que registrar (LogID queda en 0).
type CountUpdateResult struct {
	ItemID   int64  `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Value    int64  `json:"value"`
	Action   string `json:"action,omitempty"`
	Changed  bool   `json:"changed"`
	LogID    int64  `json:"log_id,omitempty"`
}

// LogEntryResponse entrada del ledger para la API.
type LogEntryResponse struct {
	ID             int64     `json:"id"`
	ItemID         int64     `json:"item_id"`
	Timestamp      time.Time `json:"timestamp"`
	Action         string    `json:"action"`
	QuantityBefore *int64    `json:"quantity_before"`
	QuantityAfter  *int64    `json:"quantity_after"`
	ValueBefore    *int64    `json:"value_before"`
	ValueAfter     *int64    `json:"value_after"`
	Reason         string    `json:"reason,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	UserID         string    `json:"user_id,omitempty"`
	UserName       string    `json:"user_name,omitempty"`
	DateStamp      string    `json:"date_stamp"`
}
