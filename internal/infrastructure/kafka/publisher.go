package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/observability/metrics"
)

// Publisher publica eventos de inventario en un tópico Kafka.
// El writer es asíncrono: Publish no bloquea la petición y los fallos de entrega solo se registran.
type Publisher struct {
	writer *kafka.Writer
	log    zerolog.Logger
}

// NewPublisher construye el writer sobre los brokers dados. La clave del mensaje es el id del producto,
// así los eventos de un mismo producto caen en la misma partición y conservan el orden.
func NewPublisher(brokers []string, topic string, log zerolog.Logger) *Publisher {
	p := &Publisher{log: log}
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
		Completion:             p.completion,
	}
	return p
}

// Publish serializa el evento y lo encola.
func (p *Publisher) Publish(ctx context.Context, event entity.InventoryEvent) {
	msg, err := eventMessage(event)
	if err != nil {
		p.log.Error().Err(err).Str("tipo", event.Type).Msg("kafka: serializar evento")
		return
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Error().Err(err).Str("tipo", event.Type).Int64("produto_id", event.ProductID).Msg("kafka: encolar evento")
		return
	}
	metrics.ObserveEvent(event.Type)
}

func eventMessage(event entity.InventoryEvent) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ProductID, 10)),
		Value: data,
		Time:  event.OccurredAt,
	}, nil
}

func (p *Publisher) completion(messages []kafka.Message, err error) {
	if err != nil {
		p.log.Error().Err(err).Int("mensajes", len(messages)).Msg("kafka: entrega fallida")
	}
}

// Close vacía el buffer pendiente y cierra el writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
