// Package memory implementa los puertos de repositorio en proceso, con la misma semántica
// transaccional que el driver postgres: cada escritura trabaja sobre una copia privada del estado
// que solo se publica si la unidad de trabajo termina sin error.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

type state struct {
	items      map[int64]*entity.Item
	suppliers  map[int64]*entity.Supplier
	categories map[int64]*entity.Category
	users      map[int64]*entity.User
	txs        []*entity.Transaction // orden de inserción

	itemSeq, supplierSeq, categorySeq, userSeq, txSeq int64
}

func newState() *state {
	return &state{
		items:      make(map[int64]*entity.Item),
		suppliers:  make(map[int64]*entity.Supplier),
		categories: make(map[int64]*entity.Category),
		users:      make(map[int64]*entity.User),
	}
}

func (s *state) clone() *state {
	c := &state{
		items:       make(map[int64]*entity.Item, len(s.items)),
		suppliers:   make(map[int64]*entity.Supplier, len(s.suppliers)),
		categories:  make(map[int64]*entity.Category, len(s.categories)),
		users:       make(map[int64]*entity.User, len(s.users)),
		txs:         make([]*entity.Transaction, len(s.txs)),
		itemSeq:     s.itemSeq,
		supplierSeq: s.supplierSeq,
		categorySeq: s.categorySeq,
		userSeq:     s.userSeq,
		txSeq:       s.txSeq,
	}
	for id, v := range s.items {
		cp := *v
		c.items[id] = &cp
	}
	for id, v := range s.suppliers {
		cp := *v
		c.suppliers[id] = &cp
	}
	for id, v := range s.categories {
		cp := *v
		c.categories[id] = &cp
	}
	for id, v := range s.users {
		cp := *v
		c.users[id] = &cp
	}
	// Las transacciones son inmutables; basta con copiar el slice.
	copy(c.txs, s.txs)
	return c
}

// Store es el almacén en memoria. Un único escritor a la vez; los lectores ven siempre un estado confirmado.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn con repositorios atados a una copia del estado y la publica solo si fn no falla.
// El candado de escritura se mantiene toda la unidad de trabajo, por lo que la lectura del stock
// y su actualización no pueden intercalarse con otro escritor.
func (s *Store) Run(ctx context.Context, fn func(items repository.ItemRepository, txs repository.TransactionRepository) error) error {
	return s.update(ctx, func(st *state) error {
		return fn(&ItemRepo{scope{tx: st}}, &TransactionRepo{scope{tx: st}})
	})
}

// Items devuelve el repositorio de artículos fuera de transacción.
func (s *Store) Items() *ItemRepo { return &ItemRepo{scope{store: s}} }

// Transactions devuelve el repositorio del libro fuera de transacción.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{scope{store: s}} }

// Suppliers devuelve el repositorio de proveedores.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{scope{store: s}} }

// Categories devuelve el repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{scope{store: s}} }

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{scope{store: s}} }

func (s *Store) view(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

func (s *Store) update(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	// Commit: un contexto cancelado a mitad de la unidad de trabajo la descarta.
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// scope decide si una operación corre sobre el estado de una transacción abierta o sobre el almacén.
type scope struct {
	store *Store
	tx    *state
}

func (sc scope) read(ctx context.Context, fn func(st *state) error) error {
	if sc.tx != nil {
		return fn(sc.tx)
	}
	return sc.store.view(ctx, fn)
}

func (sc scope) write(ctx context.Context, fn func(st *state) error) error {
	if sc.tx != nil {
		return fn(sc.tx)
	}
	return sc.store.update(ctx, fn)
}
