package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// Price es NUMERIC en la base y viaja como decimal (nunca float) para no perder precisión.
// El par (Name, CategoryID) es único.
type Product struct {
	ID           int64
	Name         string
	Price        decimal.Decimal
	Unit         string // kg, un, g, l, maço...
	CategoryID   *int64
	CategoryName *string // solo en listados (LEFT JOIN)
	Stock        int
}

// ProductPatch campos opcionales para actualización parcial; nil = no tocar.
type ProductPatch struct {
	Name       *string
	Price      *decimal.Decimal
	Unit       *string
	CategoryID *int64
	Stock      *int
}

// Empty indica si el patch no trae ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Price == nil && p.Unit == nil && p.CategoryID == nil && p.Stock == nil
}
