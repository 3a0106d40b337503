package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/domain"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
)

// ItemQuery especificación inmutable de filtro sobre ítems. Los métodos With* devuelven una copia,
// de modo que componer filtros nunca pisa ni descarta una condición anterior.
// El adaptador la traduce a SQL una sola vez al ejecutar.
type ItemQuery struct {
	category       entity.Category
	subcategory    entity.Subcategory
	search         string
	excludeAssets  bool
	includeDeleted bool
	limit          int
	offset         int
}

// NewItemQuery filtro vacío: todos los ítems no eliminados.
func NewItemQuery() ItemQuery { return ItemQuery{} }

// ParseItemQuery valida categoría y subcategoría opcionales tal como llegan del cliente
// y arma el filtro. Subcategoría sin categoría es entrada inválida.
func ParseItemQuery(category, subcategory string) (ItemQuery, error) {
	q := NewItemQuery()
	if strings.TrimSpace(category) == "" {
		if strings.TrimSpace(subcategory) != "" {
			return q, fmt.Errorf("%w: subcategory requiere category", domain.ErrInvalidInput)
		}
		return q, nil
	}
	cat, err := entity.ParseCategory(category)
	if err != nil {
		return q, err
	}
	q = q.WithCategory(cat)
	if strings.TrimSpace(subcategory) != "" {
		sub, err := entity.ParseSubcategory(cat, subcategory)
		if err != nil {
			return q, err
		}
		q = q.WithSubcategory(sub)
	}
	return q, nil
}

func (q ItemQuery) WithCategory(c entity.Category) ItemQuery       { q.category = c; return q }
func (q ItemQuery) WithSubcategory(s entity.Subcategory) ItemQuery { q.subcategory = s; return q }
func (q ItemQuery) WithSearch(s string) ItemQuery                  { q.search = s; return q }
func (q ItemQuery) WithoutFixedAssets() ItemQuery                  { q.excludeAssets = true; return q }
func (q ItemQuery) IncludingDeleted() ItemQuery                    { q.includeDeleted = true; return q }

// WithPage limita el resultado; limit <= 0 significa sin límite.
func (q ItemQuery) WithPage(limit, offset int) ItemQuery {
	q.limit, q.offset = limit, offset
	return q
}

func (q ItemQuery) Category() entity.Category       { return q.category }
func (q ItemQuery) Subcategory() entity.Subcategory { return q.subcategory }
func (q ItemQuery) Search() string                  { return q.search }
func (q ItemQuery) ExcludesFixedAssets() bool       { return q.excludeAssets }
func (q ItemQuery) IncludesDeleted() bool           { return q.includeDeleted }
func (q ItemQuery) Limit() int                      { return q.limit }
func (q ItemQuery) Offset() int                     { return q.offset }

// LedgerQuery especificación inmutable de filtro sobre el ledger.
// Las fechas se comparan contra date_stamp (fecha calendario), ambos extremos inclusive.
type LedgerQuery struct {
	from        *time.Time
	to          *time.Time
	category    entity.Category
	subcategory entity.Subcategory
	actions     []entity.LogAction
	reason      string
}

// NewLedgerQuery filtro vacío: todo el ledger de ítems no eliminados.
func NewLedgerQuery() LedgerQuery { return LedgerQuery{} }

// Between fija el rango de fechas [from, to].
func (q LedgerQuery) Between(from, to time.Time) LedgerQuery {
	f, t := entity.DateOf(from), entity.DateOf(to)
	q.from, q.to = &f, &t
	return q
}

func (q LedgerQuery) WithCategory(c entity.Category) LedgerQuery       { q.category = c; return q }
func (q LedgerQuery) WithSubcategory(s entity.Subcategory) LedgerQuery { q.subcategory = s; return q }
func (q LedgerQuery) WithReason(r string) LedgerQuery                  { q.reason = r; return q }

// WithActions restringe a las acciones dadas; copia el slice para no compartirlo con el llamador.
func (q LedgerQuery) WithActions(actions ...entity.LogAction) LedgerQuery {
	q.actions = append([]entity.LogAction(nil), actions...)
	return q
}

func (q LedgerQuery) From() *time.Time                { return q.from }
func (q LedgerQuery) To() *time.Time                  { return q.to }
func (q LedgerQuery) Category() entity.Category       { return q.category }
func (q LedgerQuery) Subcategory() entity.Subcategory { return q.subcategory }
func (q LedgerQuery) Reason() string                  { return q.reason }
func (q LedgerQuery) Actions() []entity.LogAction {
	return append([]entity.LogAction(nil), q.actions...)
}
