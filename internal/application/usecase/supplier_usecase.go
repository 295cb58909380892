package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/validation"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
	now  func() time.Time
}

func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, now: time.Now}
}

// List busca por nombre o dirección.
func (uc *SupplierUseCase) List(ctx context.Context, keyword string) ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, domain.WrapStore("list suppliers", err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.NewSupplierResponse(s))
	}
	return out, nil
}

func (uc *SupplierUseCase) Get(ctx context.Context, id int64) (*dto.SupplierResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStore("get supplier", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) Create(ctx context.Context, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in.Name, in.Address = strings.TrimSpace(in.Name), strings.TrimSpace(in.Address)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	s := &entity.Supplier{Name: in.Name, Address: in.Address, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, domain.WrapStore("create supplier", err)
	}
	out := dto.NewSupplierResponse(s)
	return &out, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id int64, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	in.Name, in.Address = strings.TrimSpace(in.Name), strings.TrimSpace(in.Address)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStore("get supplier", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	current.Name, current.Address, current.UpdatedAt = in.Name, in.Address, uc.now().UTC()
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, domain.WrapStore("update supplier", err)
	}
	out := dto.NewSupplierResponse(current)
	return &out, nil
}

// Delete elimina el proveedor; sus artículos quedan sin proveedor.
func (uc *SupplierUseCase) Delete(ctx context.Context, id int64) error {
	return domain.WrapStore("delete supplier", uc.repo.Delete(ctx, id))
}
