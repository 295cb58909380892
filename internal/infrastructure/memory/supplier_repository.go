package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo proveedores en memoria.
type SupplierRepo struct {
	scope
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	return r.write(ctx, func(st *state) error {
		st.supplierSeq++
		s.ID = st.supplierSeq
		cp := *s
		st.suppliers[cp.ID] = &cp
		return nil
	})
}

func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var out *entity.Supplier
	err := r.read(ctx, func(st *state) error {
		if s, ok := st.suppliers[id]; ok {
			cp := *s
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	return r.write(ctx, func(st *state) error {
		cur, ok := st.suppliers[s.ID]
		if !ok {
			return domain.ErrNotFound
		}
		cp := *s
		cp.CreatedAt = cur.CreatedAt
		st.suppliers[cp.ID] = &cp
		return nil
	})
}

// Delete elimina el proveedor y deja sin proveedor a los artículos que lo referenciaban.
func (r *SupplierRepo) Delete(ctx context.Context, id int64) error {
	return r.write(ctx, func(st *state) error {
		if _, ok := st.suppliers[id]; !ok {
			return domain.ErrNotFound
		}
		delete(st.suppliers, id)
		for _, it := range st.items {
			if it.SupplierID != nil && *it.SupplierID == id {
				it.SupplierID = nil
			}
		}
		return nil
	})
}

func (r *SupplierRepo) List(ctx context.Context, keyword string) ([]*entity.Supplier, error) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var out []*entity.Supplier
	err := r.read(ctx, func(st *state) error {
		for _, s := range st.suppliers {
			if kw == "" ||
				strings.Contains(strings.ToLower(s.Name), kw) ||
				strings.Contains(strings.ToLower(s.Address), kw) {
				cp := *s
				out = append(out, &cp)
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

func (r *SupplierRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.read(ctx, func(st *state) error {
		n = int64(len(st.suppliers))
		return nil
	})
	return n, err
}
