package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo de artículos en memoria.
type ItemRepo struct {
	scope
}

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	return r.write(ctx, func(st *state) error {
		if err := checkItemRefs(st, item); err != nil {
			return err
		}
		if codeTaken(st, item.Code, 0) {
			return domain.ErrDuplicate
		}
		if item.Stock < 0 {
			return fmt.Errorf("insert item: stock negativo")
		}
		st.itemSeq++
		item.ID = st.itemSeq
		cp := *item
		st.items[cp.ID] = &cp
		return nil
	})
}

func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	var out *entity.Item
	err := r.read(ctx, func(st *state) error {
		if it, ok := st.items[id]; ok {
			out = resolveItem(st, it)
		}
		return nil
	})
	return out, err
}

func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	var out *entity.Item
	err := r.read(ctx, func(st *state) error {
		for _, it := range st.items {
			if it.Code == code {
				out = resolveItem(st, it)
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	return r.write(ctx, func(st *state) error {
		cur, ok := st.items[item.ID]
		if !ok {
			return domain.ErrNotFound
		}
		if err := checkItemRefs(st, item); err != nil {
			return err
		}
		if codeTaken(st, item.Code, item.ID) {
			return domain.ErrDuplicate
		}
		if item.Stock < 0 {
			return fmt.Errorf("update item: stock negativo")
		}
		cp := *item
		cp.CreatedAt = cur.CreatedAt
		cp.CategoryName, cp.SupplierName = "", ""
		st.items[cp.ID] = &cp
		return nil
	})
}

// Delete elimina el artículo y, en cascada, sus transacciones.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	return r.write(ctx, func(st *state) error {
		if _, ok := st.items[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.items, id)
		kept := st.txs[:0:0]
		for _, t := range st.txs {
			if t.ItemID != id {
				kept = append(kept, t)
			}
		}
		st.txs = kept
		return nil
	})
}

func (r *ItemRepo) List(ctx context.Context, keyword string) ([]*entity.Item, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var out []*entity.Item
	err := r.read(ctx, func(st *state) error {
		for _, it := range st.items {
			v := resolveItem(st, it)
			if kw == "" ||
				strings.Contains(strings.ToLower(v.Code), kw) ||
				strings.Contains(strings.ToLower(v.Name), kw) ||
				(v.CategoryID != nil && strings.Contains(strings.ToLower(v.CategoryName), kw)) {
				out = append(out, v)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, err
}

func (r *ItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.read(ctx, func(st *state) error {
		n = int64(len(st.items))
		return nil
	})
	return n, err
}

func (r *ItemRepo) StockSummary(ctx context.Context) (totalItems, totalStock int64, err error) {
	err = r.read(ctx, func(st *state) error {
		totalItems = int64(len(st.items))
		for _, it := range st.items {
			totalStock += it.Stock
		}
		return nil
	})
	return totalItems, totalStock, err
}

func (r *ItemRepo) LowestStock(ctx context.Context, limit int) ([]*entity.Item, error) {
	var out []*entity.Item
	err := r.read(ctx, func(st *state) error {
		for _, it := range st.items {
			out = append(out, resolveItem(st, it))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

// GetStockForUpdate dentro de Store.Run el candado de escritura ya está tomado.
func (r *ItemRepo) GetStockForUpdate(ctx context.Context, itemID int64) (int64, error) {
	var stock int64
	err := r.read(ctx, func(st *state) error {
		it, ok := st.items[itemID]
		if !ok {
			return domain.ErrNotFound
		}
		stock = it.Stock
		return nil
	})
	return stock, err
}

func (r *ItemRepo) ApplyStockDelta(ctx context.Context, itemID, delta int64) error {
	return r.write(ctx, func(st *state) error {
		it, ok := st.items[itemID]
		if !ok {
			return domain.ErrNotFound
		}
		if it.Stock+delta < 0 {
			return fmt.Errorf("update stock: el artículo %d quedaría con stock %d", itemID, it.Stock+delta)
		}
		it.Stock += delta
		return nil
	})
}

func codeTaken(st *state, code string, exceptID int64) bool {
	for _, it := range st.items {
		if it.Code == code && it.ID != exceptID {
			return true
		}
	}
	return false
}

func checkItemRefs(st *state, item *entity.Item) error {
	if item.CategoryID != nil {
		if _, ok := st.categories[*item.CategoryID]; !ok {
			return fmt.Errorf("%w: categoría %d inexistente", domain.ErrInvalidInput, *item.CategoryID)
		}
	}
	if item.SupplierID != nil {
		if _, ok := st.suppliers[*item.SupplierID]; !ok {
			return fmt.Errorf("%w: proveedor %d inexistente", domain.ErrInvalidInput, *item.SupplierID)
		}
	}
	return nil
}

// resolveItem copia el artículo y completa los nombres de categoría y proveedor ("-" si no hay).
func resolveItem(st *state, it *entity.Item) *entity.Item {
	cp := *it
	cp.CategoryName, cp.SupplierName = "-", "-"
	if cp.CategoryID != nil {
		if c, ok := st.categories[*cp.CategoryID]; ok {
			cp.CategoryName = c.Name
		}
	}
	if cp.SupplierID != nil {
		if s, ok := st.suppliers[*cp.SupplierID]; ok {
			cp.SupplierName = s.Name
		}
	}
	return &cp
}
