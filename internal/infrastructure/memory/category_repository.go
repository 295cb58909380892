package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo categorías en memoria.
type CategoryRepo struct {
	scope
}

func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	return r.write(ctx, func(st *state) error {
		for _, existing := range st.categories {
			if existing.Name == c.Name {
				return domain.ErrDuplicate
			}
		}
		st.categorySeq++
		c.ID = st.categorySeq
		cp := *c
		st.categories[cp.ID] = &cp
		return nil
	})
}

func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.read(ctx, func(st *state) error {
		if c, ok := st.categories[id]; ok {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}

// List devuelve las categorías por id, el orden en que se sembraron.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.read(ctx, func(st *state) error {
		for _, c := range st.categories {
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, err
}

func (r *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.read(ctx, func(st *state) error {
		n = int64(len(st.categories))
		return nil
	})
	return n, err
}
