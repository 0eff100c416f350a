package repository

import "context"

// Repositories agrupa los repositorios atados a un mismo Querier (pool o transacción).
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
	Customers  CustomerRepository
	Vendors    VendorRepository
	Managers   ManagerRepository
	Users      UserRepository
}

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a esa tx.
// Si fn devuelve error se hace rollback completo; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}
