package usecase

import (
	"context"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

// EventPublisher puerto de publicación de eventos de inventario.
// Se invoca después del commit y no puede fallar la operación: los errores quedan en el adaptador.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.InventoryEvent)
}

// NopPublisher descarta los eventos (sin KAFKA_BROKERS).
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.InventoryEvent) {}
