package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria.
type UserRepo struct {
	scope
}

func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	return r.write(ctx, func(st *state) error {
		for _, existing := range st.users {
			if existing.Username == u.Username {
				return domain.ErrDuplicate
			}
		}
		st.userSeq++
		u.ID = st.userSeq
		cp := *u
		st.users[cp.ID] = &cp
		return nil
	})
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var out *entity.User
	err := r.read(ctx, func(st *state) error {
		if u, ok := st.users[id]; ok {
			cp := *u
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var out *entity.User
	err := r.read(ctx, func(st *state) error {
		for _, u := range st.users {
			if u.Username == username {
				cp := *u
				out = &cp
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	return r.mutate(ctx, id, func(u *entity.User) { u.Role = role })
}

func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.mutate(ctx, id, func(u *entity.User) { u.PasswordHash = passwordHash })
}

func (r *UserRepo) mutate(ctx context.Context, id int64, fn func(u *entity.User)) error {
	return r.write(ctx, func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return domain.ErrUserNotFound
		}
		fn(u)
		u.UpdatedAt = time.Now()
		return nil
	})
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	return r.write(ctx, func(st *state) error {
		if _, ok := st.users[id]; !ok {
			return domain.ErrUserNotFound
		}
		delete(st.users, id)
		return nil
	})
}

func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	err := r.read(ctx, func(st *state) error {
		for _, u := range st.users {
			cp := *u
			out = append(out, &cp)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, err
}

func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.read(ctx, func(st *state) error {
		n = int64(len(st.users))
		return nil
	})
	return n, err
}
