package entity

// Vendor representa un vendedor, opcionalmente supervisado por un gerente.
type Vendor struct {
	ID        int64
	Name      string
	Email     string
	ManagerID *int64
}

// VendorPatch actualización parcial de un vendedor.
type VendorPatch struct {
	Name      *string
	Email     *string
	ManagerID *int64
}

func (p VendorPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.ManagerID == nil
}
