package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Preco acepta número o string decimal
// y es obligatorio (nil = ausente).
type CreateProductRequest struct {
	Name       string           `json:"nome"`
	Price      *decimal.Decimal `json:"preco"`
	Unit       string           `json:"unidade"`
	CategoryID *int64           `json:"categoria_id"`
	Stock      int              `json:"estoque"`
}

// UpdateProductRequest actualización parcial: campo ausente (o null) = no tocar.
type UpdateProductRequest struct {
	Name       *string          `json:"nome"`
	Price      *decimal.Decimal `json:"preco"`
	Unit       *string          `json:"unidade"`
	CategoryID *int64           `json:"categoria_id"`
	Stock      *int             `json:"estoque"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nome"`
	Price        decimal.Decimal `json:"preco"`
	Unit         string          `json:"unidade"`
	CategoryID   *int64          `json:"categoria_id"`
	CategoryName *string         `json:"categoria_nome,omitempty"`
	Stock        int             `json:"estoque"`
}

// CreateCategoryRequest entrada de POST /categorias.
type CreateCategoryRequest struct {
	Name string `json:"nome"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}
