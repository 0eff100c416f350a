package dto

// CreateCustomerRequest entrada de POST /clientes. Password opcional: con ella el cliente puede iniciar sesión.
type CreateCustomerRequest struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
	VendorID *int64 `json:"vendedor_id"`
}

// UpdateCustomerRequest actualización parcial de un cliente.
type UpdateCustomerRequest struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	VendorID *int64  `json:"vendedor_id"`
}

// CustomerResponse salida de un cliente (sin hash).
type CustomerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	VendorID *int64 `json:"vendedor_id"`
}

// CreateVendorRequest entrada de POST /vendedores.
type CreateVendorRequest struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	ManagerID *int64 `json:"gerente_id"`
}

// UpdateVendorRequest actualización parcial de un vendedor.
type UpdateVendorRequest struct {
	Name      *string `json:"nome"`
	Email     *string `json:"email"`
	ManagerID *int64  `json:"gerente_id"`
}

// VendorResponse salida de un vendedor.
type VendorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Email     string `json:"email"`
	ManagerID *int64 `json:"gerente_id"`
}

// CreateManagerRequest entrada de POST /gerentes.
type CreateManagerRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
}

// UpdateManagerRequest actualización parcial de un gerente.
type UpdateManagerRequest struct {
	Name  *string `json:"nome"`
	Email *string `json:"email"`
}

// ManagerResponse salida de un gerente.
type ManagerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
}
