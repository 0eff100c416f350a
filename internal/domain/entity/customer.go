package entity

// Customer representa un cliente. Email es único.
// PasswordHash solo existe para clientes que se registraron por el portal.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	VendorID     *int64
}

// CustomerPatch actualización parcial de un cliente.
type CustomerPatch struct {
	Name     *string
	Email    *string
	VendorID *int64
}

func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.VendorID == nil
}
