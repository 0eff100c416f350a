package entity

// Manager representa un gerente.
type Manager struct {
	ID    int64
	Name  string
	Email string
}

// ManagerPatch actualización parcial de un gerente.
type ManagerPatch struct {
	Name  *string
	Email *string
}

func (p ManagerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil
}
