package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de evento de inventario publicados después del commit.
const (
	EventProductCreated = "produto.criado"
	EventProductUpdated = "produto.atualizado"
	EventProductDeleted = "produto.removido"
)

// InventoryEvent notificación de cambio en el catálogo (payload JSON del mensaje).
type InventoryEvent struct {
	Type       string           `json:"tipo"`
	ProductID  int64            `json:"produto_id"`
	Name       string           `json:"nome,omitempty"`
	Price      *decimal.Decimal `json:"preco,omitempty"`
	Stock      *int             `json:"estoque,omitempty"`
	OccurredAt time.Time        `json:"ocorrido_em"`
}

// NewProductEvent construye el evento a partir del producto (nil para borrados).
func NewProductEvent(eventType string, id int64, p *Product, at time.Time) InventoryEvent {
	evt := InventoryEvent{Type: eventType, ProductID: id, OccurredAt: at}
	if p != nil {
		price := p.Price
		stock := p.Stock
		evt.Name = p.Name
		evt.Price = &price
		evt.Stock = &stock
	}
	return evt
}
