package memory

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

var (
	_ repository.CustomerRepository = (*CustomerRepo)(nil)
	_ repository.VendorRepository   = (*VendorRepo)(nil)
	_ repository.ManagerRepository  = (*ManagerRepo)(nil)
)

// CustomerRepo clientes en memoria. Email único; vendedor_id debe existir.
type CustomerRepo struct{ a *access }

func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		if err := checkCustomer(st, 0, customer.Email, customer.VendorID, "insert cliente"); err != nil {
			return err
		}
		id = st.nextID()
		c := *customer
		c.ID = id
		c.VendorID = copyID(customer.VendorID)
		st.customers[id] = c
		return nil
	})
	return id, err
}

func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.a.with(func(st *state) error {
		if c, ok := st.customers[id]; ok {
			out = &c
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepo) GetByEmail(_ context.Context, email string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.a.with(func(st *state) error {
		for _, c := range st.customers {
			if c.Email == email {
				c := c
				out = &c
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	var list []*entity.Customer
	err := r.a.with(func(st *state) error {
		for _, id := range sortedIDs(st.customers) {
			c := st.customers[id]
			list = append(list, &c)
		}
		return nil
	})
	return list, err
}

func (r *CustomerRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.a.with(func(st *state) error {
		_, ok = st.customers[id]
		return nil
	})
	return ok, err
}

func (r *CustomerRepo) Update(_ context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.a.with(func(st *state) error {
		c, ok := st.customers[id]
		if !ok {
			return nil
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.VendorID != nil {
			c.VendorID = copyID(patch.VendorID)
		}
		if err := checkCustomer(st, id, c.Email, c.VendorID, "update cliente"); err != nil {
			return err
		}
		st.customers[id] = c
		out = &c
		return nil
	})
	return out, err
}

func (r *CustomerRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.customers[id]; ok {
			delete(st.customers, id)
			deleted = true
		}
		return nil
	})
	return deleted, err
}

func checkCustomer(st *state, selfID int64, email string, vendorID *int64, op string) error {
	if vendorID != nil {
		if _, ok := st.vendors[*vendorID]; !ok {
			return missingRef(op)
		}
	}
	for id, other := range st.customers {
		if id != selfID && other.Email == email {
			return conflict(op)
		}
	}
	return nil
}

// VendorRepo vendedores en memoria. Email único; gerente_id debe existir.
type VendorRepo struct{ a *access }

func (r *VendorRepo) Create(_ context.Context, vendor *entity.Vendor) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		if err := checkVendor(st, 0, vendor.Email, vendor.ManagerID, "insert vendedor"); err != nil {
			return err
		}
		id = st.nextID()
		v := *vendor
		v.ID = id
		v.ManagerID = copyID(vendor.ManagerID)
		st.vendors[id] = v
		return nil
	})
	return id, err
}

func (r *VendorRepo) GetByID(_ context.Context, id int64) (*entity.Vendor, error) {
	var out *entity.Vendor
	err := r.a.with(func(st *state) error {
		if v, ok := st.vendors[id]; ok {
			out = &v
		}
		return nil
	})
	return out, err
}

func (r *VendorRepo) List(_ context.Context) ([]*entity.Vendor, error) {
	var list []*entity.Vendor
	err := r.a.with(func(st *state) error {
		for _, id := range sortedIDs(st.vendors) {
			v := st.vendors[id]
			list = append(list, &v)
		}
		return nil
	})
	return list, err
}

func (r *VendorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.a.with(func(st *state) error {
		_, ok = st.vendors[id]
		return nil
	})
	return ok, err
}

func (r *VendorRepo) Update(_ context.Context, id int64, patch entity.VendorPatch) (*entity.Vendor, error) {
	var out *entity.Vendor
	err := r.a.with(func(st *state) error {
		v, ok := st.vendors[id]
		if !ok {
			return nil
		}
		if patch.Name != nil {
			v.Name = *patch.Name
		}
		if patch.Email != nil {
			v.Email = *patch.Email
		}
		if patch.ManagerID != nil {
			v.ManagerID = copyID(patch.ManagerID)
		}
		if err := checkVendor(st, id, v.Email, v.ManagerID, "update vendedor"); err != nil {
			return err
		}
		st.vendors[id] = v
		out = &v
		return nil
	})
	return out, err
}

// Delete deja a los clientes del vendedor sin vendedor (SET NULL).
func (r *VendorRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.vendors[id]; !ok {
			return nil
		}
		delete(st.vendors, id)
		for cid, c := range st.customers {
			if c.VendorID != nil && *c.VendorID == id {
				c.VendorID = nil
				st.customers[cid] = c
			}
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func checkVendor(st *state, selfID int64, email string, managerID *int64, op string) error {
	if managerID != nil {
		if _, ok := st.managers[*managerID]; !ok {
			return missingRef(op)
		}
	}
	for id, other := range st.vendors {
		if id != selfID && other.Email == email {
			return conflict(op)
		}
	}
	return nil
}

// ManagerRepo gerentes en memoria. Email único.
type ManagerRepo struct{ a *access }

func (r *ManagerRepo) Create(_ context.Context, manager *entity.Manager) (int64, error) {
	var id int64
	err := r.a.with(func(st *state) error {
		if err := checkManager(st, 0, manager.Email, "insert gerente"); err != nil {
			return err
		}
		id = st.nextID()
		m := *manager
		m.ID = id
		st.managers[id] = m
		return nil
	})
	return id, err
}

func (r *ManagerRepo) GetByID(_ context.Context, id int64) (*entity.Manager, error) {
	var out *entity.Manager
	err := r.a.with(func(st *state) error {
		if m, ok := st.managers[id]; ok {
			out = &m
		}
		return nil
	})
	return out, err
}

func (r *ManagerRepo) List(_ context.Context) ([]*entity.Manager, error) {
	var list []*entity.Manager
	err := r.a.with(func(st *state) error {
		for _, id := range sortedIDs(st.managers) {
			m := st.managers[id]
			list = append(list, &m)
		}
		return nil
	})
	return list, err
}

func (r *ManagerRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	var ok bool
	err := r.a.with(func(st *state) error {
		_, ok = st.managers[id]
		return nil
	})
	return ok, err
}

func (r *ManagerRepo) Update(_ context.Context, id int64, patch entity.ManagerPatch) (*entity.Manager, error) {
	var out *entity.Manager
	err := r.a.with(func(st *state) error {
		m, ok := st.managers[id]
		if !ok {
			return nil
		}
		if patch.Name != nil {
			m.Name = *patch.Name
		}
		if patch.Email != nil {
			m.Email = *patch.Email
		}
		if err := checkManager(st, id, m.Email, "update gerente"); err != nil {
			return err
		}
		st.managers[id] = m
		out = &m
		return nil
	})
	return out, err
}

// Delete deja a los vendedores del gerente sin gerente (SET NULL).
func (r *ManagerRepo) Delete(_ context.Context, id int64) (bool, error) {
	var deleted bool
	err := r.a.with(func(st *state) error {
		if _, ok := st.managers[id]; !ok {
			return nil
		}
		delete(st.managers, id)
		for vid, v := range st.vendors {
			if v.ManagerID != nil && *v.ManagerID == id {
				v.ManagerID = nil
				st.vendors[vid] = v
			}
		}
		deleted = true
		return nil
	})
	return deleted, err
}

func checkManager(st *state, selfID int64, email, op string) error {
	for id, other := range st.managers {
		if id != selfID && other.Email == email {
			return conflict(op)
		}
	}
	return nil
}
