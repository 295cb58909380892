// Package bootstrap carga los datos iniciales cuando el almacén está vacío.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger/internal/application/auth"
	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
	"github.com/jhoicas/stock-ledger/pkg/logger"
)

// Repositories puertos que necesita la siembra.
type Repositories struct {
	Categories repository.CategoryRepository
	Suppliers  repository.SupplierRepository
	Items      repository.ItemRepository
	Users      repository.UserRepository
}

// Result cuenta lo creado en una ejecución.
type Result struct {
	Categories   int
	Suppliers    int
	Items        int
	Users        int
	Transactions int
}

type seedItem struct {
	code, name     string
	category       int // índice en seedCategories
	stock          int64
	purchase, sell int64
	supplier       int // índice en seedSuppliers
}

var (
	seedCategories = []string{"Sembako", "Minuman", "Perlengkapan", "Elektronik"}
	seedSuppliers  = []entity.Supplier{
		{Name: "PT Nusantara", Address: "Jl. Raya 1"},
		{Name: "CV Sejahtera", Address: "Jl. Mawar 5"},
		{Name: "UD Makmur", Address: "Jl. Anggrek 9"},
	}
	seedItems = []seedItem{
		{"BRG-001", "Beras 5kg", 0, 30, 55000, 65000, 0},
		{"BRG-002", "Gula 1kg", 0, 40, 12000, 15000, 1},
		{"BRG-003", "Minyak Goreng 1L", 1, 25, 14000, 17000, 1},
		{"BRG-004", "Detergen 800gr", 2, 15, 18000, 23000, 2},
		{"BRG-005", "Kabel USB", 3, 20, 10000, 15000, 0},
	}
	seedUsers = []struct{ username, password, role string }{
		{"admin", "admin123", entity.RoleAdmin},
		{"staf", "staf123", entity.RoleStandard},
	}
	seedTransactions = []struct {
		date  string
		item  int // índice en seedItems
		qty   int64
		typ   string
		notes string
	}{
		{"2025-11-01", 0, 10, entity.TransactionTypeIN, "Restock awal"},
		{"2025-11-02", 1, 5, entity.TransactionTypeOUT, "Penjualan pelanggan"},
		{"2025-11-03", 2, 8, entity.TransactionTypeIN, "Pembelian supplier"},
	}
)

// Seeder siembra cada grupo solo si su tabla está vacía, así que es idempotente.
// Las transacciones históricas pasan por el libro para que el stock quede consistente.
type Seeder struct {
	repos  Repositories
	ledger *inventory.RecordTransactionUseCase
	log    *logger.Logger
}

func NewSeeder(repos Repositories, ledger *inventory.RecordTransactionUseCase, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{repos: repos, ledger: ledger, log: log.Named("seed")}
}

func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	var res Result

	categoryIDs, err := s.seedCategories(ctx, &res)
	if err != nil {
		return res, err
	}
	supplierIDs, err := s.seedSuppliers(ctx, &res)
	if err != nil {
		return res, err
	}
	itemIDs, err := s.seedItems(ctx, categoryIDs, supplierIDs, &res)
	if err != nil {
		return res, err
	}
	if err := s.seedUsers(ctx, &res); err != nil {
		return res, err
	}

	// Solo con artículos recién creados: en un almacén existente el historial ya es suyo.
	if itemIDs != nil {
		for _, t := range seedTransactions {
			_, err := s.ledger.RecordTransaction(ctx, inventory.RecordTransactionInput{
				Date:     t.date,
				ItemID:   itemIDs[t.item],
				Quantity: t.qty,
				Type:     t.typ,
				Note:     t.notes,
			})
			if err != nil {
				return res, fmt.Errorf("seed transaction %s: %w", t.date, err)
			}
			res.Transactions++
		}
	}

	s.log.Info().
		Int("categories", res.Categories).
		Int("suppliers", res.Suppliers).
		Int("items", res.Items).
		Int("users", res.Users).
		Int("transactions", res.Transactions).
		Msg("siembra terminada")
	return res, nil
}

// seedCategories devuelve nil si ya había categorías.
func (s *Seeder) seedCategories(ctx context.Context, res *Result) ([]int64, error) {
	n, err := s.repos.Categories.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	if n > 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(seedCategories))
	for _, name := range seedCategories {
		c := &entity.Category{Name: name}
		if err := s.repos.Categories.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("seed category %s: %w", name, err)
		}
		ids = append(ids, c.ID)
		res.Categories++
	}
	return ids, nil
}

func (s *Seeder) seedSuppliers(ctx context.Context, res *Result) ([]int64, error) {
	n, err := s.repos.Suppliers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed suppliers: %w", err)
	}
	if n > 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(seedSuppliers))
	for _, sup := range seedSuppliers {
		sup := sup
		if err := s.repos.Suppliers.Create(ctx, &sup); err != nil {
			return nil, fmt.Errorf("seed supplier %s: %w", sup.Name, err)
		}
		ids = append(ids, sup.ID)
		res.Suppliers++
	}
	return ids, nil
}

// seedItems enlaza categoría y proveedor solo cuando también se sembraron en esta ejecución.
func (s *Seeder) seedItems(ctx context.Context, categoryIDs, supplierIDs []int64, res *Result) ([]int64, error) {
	n, err := s.repos.Items.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("seed items: %w", err)
	}
	if n > 0 {
		return nil, nil
	}
	ids := make([]int64, 0, len(seedItems))
	for _, si := range seedItems {
		item := &entity.Item{
			Code:          si.code,
			Name:          si.name,
			Stock:         si.stock,
			PurchasePrice: decimal.NewFromInt(si.purchase),
			SellingPrice:  decimal.NewFromInt(si.sell),
		}
		if categoryIDs != nil {
			id := categoryIDs[si.category]
			item.CategoryID = &id
		}
		if supplierIDs != nil {
			id := supplierIDs[si.supplier]
			item.SupplierID = &id
		}
		if err := s.repos.Items.Create(ctx, item); err != nil {
			return nil, fmt.Errorf("seed item %s: %w", si.code, err)
		}
		ids = append(ids, item.ID)
		res.Items++
	}
	return ids, nil
}

func (s *Seeder) seedUsers(ctx context.Context, res *Result) error {
	n, err := s.repos.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, u := range seedUsers {
		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return err
		}
		if err := s.repos.Users.Create(ctx, &entity.User{Username: u.username, PasswordHash: hash, Role: u.role}); err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		res.Users++
	}
	s.log.Warn().Msg("usuarios por defecto creados; cambie sus contraseñas")
	return nil
}
