// Package memory implementa los puertos de repositorio en memoria, con las mismas
// restricciones que el esquema PostgreSQL (únicos, FK, RESTRICT / SET NULL).
// Lo usan los tests de casos de uso y de HTTP.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var (
	_ repository.TxRunner            = (*Store)(nil)
	_ repository.AnalyticsRepository = (*Store)(nil)
)

type state struct {
	seq        int64
	users      map[int64]entity.User
	categories map[int64]entity.Category
	products   map[int64]entity.Product
	customers  map[int64]entity.Customer
	vendors    map[int64]entity.Vendor
	managers   map[int64]entity.Manager
}

func newState() *state {
	return &state{
		users:      map[int64]entity.User{},
		categories: map[int64]entity.Category{},
		products:   map[int64]entity.Product{},
		customers:  map[int64]entity.Customer{},
		vendors:    map[int64]entity.Vendor{},
		managers:   map[int64]entity.Manager{},
	}
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

func (s *state) clone() *state {
	c := &state{
		seq:        s.seq,
		users:      make(map[int64]entity.User, len(s.users)),
		categories: make(map[int64]entity.Category, len(s.categories)),
		products:   make(map[int64]entity.Product, len(s.products)),
		customers:  make(map[int64]entity.Customer, len(s.customers)),
		vendors:    make(map[int64]entity.Vendor, len(s.vendors)),
		managers:   make(map[int64]entity.Manager, len(s.managers)),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.customers {
		c.customers[k] = v
	}
	for k, v := range s.vendors {
		c.vendors[k] = v
	}
	for k, v := range s.managers {
		c.managers[k] = v
	}
	return c
}

// Store base en memoria. Fuera de transacción cada operación toma el mutex;
// Run lo toma durante toda la transacción y trabaja sobre una copia.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Repositories devuelve repositorios no transaccionales sobre el store.
func (s *Store) Repositories() repository.Repositories {
	return reposFor(&access{store: s})
}

// Run ejecuta fn sobre una copia del estado; solo si fn no falla la copia reemplaza al estado.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(reposFor(&access{tx: work})); err != nil {
		return err
	}
	s.st = work
	return nil
}

// GetInventoryStats mismos agregados que la consulta SQL.
func (s *Store) GetInventoryStats(_ context.Context, lowStockThreshold int) (repository.InventoryStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := repository.InventoryStats{InventoryValue: decimal.Zero}
	for _, p := range s.st.products {
		stats.TotalProducts++
		if p.Stock < lowStockThreshold {
			stats.LowStock++
		}
		stats.InventoryValue = stats.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}
	return stats, nil
}

func (s *Store) CountCustomers(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.customers), nil
}

// access resuelve el estado a usar: el de la tx (sin lock) o el del store (con lock).
type access struct {
	store *Store
	tx    *state
}

func (a *access) with(fn func(st *state) error) error {
	if a.tx != nil {
		return fn(a.tx)
	}
	a.store.mu.Lock()
	defer a.store.mu.Unlock()
	return fn(a.store.st)
}

func reposFor(a *access) repository.Repositories {
	return repository.Repositories{
		Categories: &CategoryRepo{a: a},
		Products:   &ProductRepo{a: a},
		Customers:  &CustomerRepo{a: a},
		Vendors:    &VendorRepo{a: a},
		Managers:   &ManagerRepo{a: a},
		Users:      &UserRepo{a: a},
	}
}

func conflict(op string) error { return fmt.Errorf("%s: %w", op, domain.ErrConflict) }

func missingRef(op string) error { return fmt.Errorf("%s: %w", op, domain.ErrNotFound) }

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
