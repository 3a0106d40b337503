package inventory_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/hotel-inventory/internal/application/inventory"
	"github.com/jhoicas/hotel-inventory/internal/domain/entity"
	"github.com/jhoicas/hotel-inventory/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional (snapshot + restore en error)
// ──────────────────────────────────────────────────────────────────────────────

var errBoom = errors.New("fallo simulado de BD")

type memStore struct {
	items      map[int64]*entity.InventoryItem
	logs       []*entity.InventoryLogEntry
	nextItemID int64
	nextLogID  int64

	failUpdateStock error
	failCreateLog   error
	failList        error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[int64]*entity.InventoryItem)}
}

func clone(it *entity.InventoryItem) *entity.InventoryItem {
	c := *it
	return &c
}

// seed inserta un ítem directamente (sin ledger).
func (s *memStore) seed(it *entity.InventoryItem) *entity.InventoryItem {
	s.nextItemID++
	it.ID = s.nextItemID
	s.items[it.ID] = clone(it)
	return it
}

func (s *memStore) item(id int64) *entity.InventoryItem { return s.items[id] }

func (s *memStore) logsFor(id int64) []*entity.InventoryLogEntry {
	var out []*entity.InventoryLogEntry
	for _, l := range s.logs {
		if l.ItemID == id {
			out = append(out, l)
		}
	}
	return out
}

type memTx struct{ s *memStore }

var _ inventory.TxRunner = memTx{}

func (t memTx) Run(ctx context.Context, fn func(repository.ItemRepository, repository.InventoryLogRepository) error) error {
	itemsSnap := make(map[int64]*entity.InventoryItem, len(t.s.items))
	for id, it := range t.s.items {
		itemsSnap[id] = clone(it)
	}
	logsSnap := append([]*entity.InventoryLogEntry(nil), t.s.logs...)
	nextItem, nextLog := t.s.nextItemID, t.s.nextLogID

	if err := fn(memItems{t.s}, memLogs{t.s}); err != nil {
		t.s.items, t.s.logs = itemsSnap, logsSnap
		t.s.nextItemID, t.s.nextLogID = nextItem, nextLog
		return err
	}
	return nil
}

type memItems struct{ s *memStore }

func (r memItems) Create(_ context.Context, it *entity.InventoryItem) error {
	r.s.nextItemID++
	it.ID = r.s.nextItemID
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt
	r.s.items[it.ID] = clone(it)
	return nil
}

func (r memItems) GetByID(_ context.Context, id int64) (*entity.InventoryItem, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return clone(it), nil
}

func (r memItems) GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r memItems) Update(_ context.Context, it *entity.InventoryItem) error {
	r.s.items[it.ID] = clone(it)
	return nil
}

func (r memItems) UpdateStock(_ context.Context, id, quantity, stockValue int64) error {
	if r.s.failUpdateStock != nil {
		return r.s.failUpdateStock
	}
	it := r.s.items[id]
	it.Quantity, it.StockValue = quantity, stockValue
	return nil
}

func (r memItems) SoftDelete(_ context.Context, id int64, at time.Time) error {
	r.s.items[id].DeletedAt = &at
	return nil
}

func (r memItems) List(_ context.Context, q repository.ItemQuery) ([]*entity.InventoryItem, error) {
	if r.s.failList != nil {
		return nil, r.s.failList
	}
	var out []*entity.InventoryItem
	for _, it := range r.s.items {
		switch {
		case it.IsDeleted() && !q.IncludesDeleted():
		case q.Category() != "" && it.Category != q.Category():
		case q.Subcategory() != "" && it.Subcategory != q.Subcategory():
		case q.ExcludesFixedAssets() && it.IsFixedAsset:
		case q.Search() != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(q.Search())):
		default:
			out = append(out, clone(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memLogs struct{ s *memStore }

func (r memLogs) Create(_ context.Context, e *entity.InventoryLogEntry) error {
	if r.s.failCreateLog != nil {
		return r.s.failCreateLog
	}
	r.s.nextLogID++
	e.ID = r.s.nextLogID
	c := *e
	r.s.logs = append(r.s.logs, &c)
	return nil
}

func (r memLogs) ListByItem(_ context.Context, itemID int64, limit int) ([]*entity.InventoryLogEntry, error) {
	out := r.s.logsFor(itemID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fixedNow reloj de prueba: 2024-03-10 23:30 en Bogotá (04:30 UTC del día siguiente).
var bogota = time.FixedZone("COT", -5*60*60)

var fixedNow = time.Date(2024, 3, 10, 23, 30, 0, 0, bogota)

func newLedger() *inventory.LedgerWriter {
	return inventory.NewLedgerWriter(bogota).WithClock(func() time.Time { return fixedNow.UTC() })
}

func ptr[T any](v T) *T { return &v }
