package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/application/validation"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// ItemUseCase casos de uso CRUD del catálogo de artículos.
// El stock normalmente cambia vía el libro de movimientos; Update permite fijarlo directamente.
type ItemUseCase struct {
	repo       repository.ItemRepository
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	log        *logger.Logger
	now        func() time.Time
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	repo repository.ItemRepository,
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	log *logger.Logger,
) *ItemUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ItemUseCase{repo: repo, categories: categories, suppliers: suppliers, log: log.Named("items"), now: time.Now}
}

// List busca por código, nombre o categoría. keyword vacío lista todo.
func (uc *ItemUseCase) List(ctx context.Context, keyword string) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, domain.WrapStore("list items", err)
	}
	return dto.NewItemResponses(list), nil
}

// Get obtiene un artículo por ID.
func (uc *ItemUseCase) Get(ctx context.Context, id int64) (*dto.ItemResponse, error) {
	it, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStore("get item", err)
	}
	if it == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.NewItemResponse(it)
	return &out, nil
}

// Create crea un artículo. Código duplicado -> domain.ErrDuplicate.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, domain.WrapStore("get item by code", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := uc.now().UTC()
	item := &entity.Item{
		Code:          in.Code,
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		Stock:         in.Stock,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		SupplierID:    in.SupplierID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, domain.WrapStore("create item", err)
	}
	uc.log.Info().Int64("item_id", item.ID).Str("code", item.Code).Int64("stock", item.Stock).Msg("artículo creado")
	return uc.Get(ctx, item.ID)
}

// Update reemplaza los datos del artículo. Un cambio de stock aquí no pasa por el libro y se registra en el log.
func (uc *ItemUseCase) Update(ctx context.Context, id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := uc.validate(ctx, &in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.WrapStore("get item", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != current.Code {
		other, err := uc.repo.GetByCode(ctx, in.Code)
		if err != nil {
			return nil, domain.WrapStore("get item by code", err)
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
	}

	item := &entity.Item{
		ID:            id,
		Code:          in.Code,
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		Stock:         in.Stock,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		SupplierID:    in.SupplierID,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     uc.now().UTC(),
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, domain.WrapStore("update item", err)
	}
	if current.Stock != item.Stock {
		uc.log.Warn().Int64("item_id", id).Int64("old_stock", current.Stock).Int64("new_stock", item.Stock).
			Msg("edición directa de stock fuera del libro de movimientos")
	}
	return uc.Get(ctx, id)
}

// Delete elimina el artículo junto con su historial de transacciones.
func (uc *ItemUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return domain.WrapStore("delete item", err)
	}
	uc.log.Info().Int64("item_id", id).Msg("artículo eliminado")
	return nil
}

func (uc *ItemUseCase) validate(ctx context.Context, in *dto.ItemRequest) error {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)

	ve := &domain.ValidationError{}
	if err := validation.Struct(in); err != nil {
		if !errors.As(err, &ve) {
			return err
		}
	}
	if in.PurchasePrice.IsNegative() {
		ve.Invalid = append(ve.Invalid, "purchase_price")
	}
	if in.SellingPrice.IsNegative() {
		ve.Invalid = append(ve.Invalid, "selling_price")
	}
	if len(ve.Missing)+len(ve.Invalid) > 0 {
		return ve
	}

	if in.CategoryID != nil {
		c, err := uc.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return domain.WrapStore("get category", err)
		}
		if c == nil {
			ve.Invalid = append(ve.Invalid, "category_id")
		}
	}
	if in.SupplierID != nil {
		s, err := uc.suppliers.GetByID(ctx, *in.SupplierID)
		if err != nil {
			return domain.WrapStore("get supplier", err)
		}
		if s == nil {
			ve.Invalid = append(ve.Invalid, "supplier_id")
		}
	}
	if len(ve.Invalid) > 0 {
		return ve
	}
	return nil
}
