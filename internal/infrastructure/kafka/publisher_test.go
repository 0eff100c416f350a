package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

func TestEventMessage_ClaveEsElProducto(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	evt := entity.NewProductEvent(entity.EventProductUpdated, 42, &entity.Product{
		Name: "Arroz", Price: decimal.RequireFromString("22.90"), Stock: 7,
	}, at)

	msg, err := eventMessage(evt)
	require.NoError(t, err)
	assert.Equal(t, "42", string(msg.Key))
	assert.Equal(t, at, msg.Time)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "produto.atualizado", body["tipo"])
	assert.Equal(t, float64(42), body["produto_id"])
	assert.Equal(t, "Arroz", body["nome"])
	assert.Equal(t, "22.9", body["preco"])
	assert.Equal(t, float64(7), body["estoque"])
}

func TestEventMessage_BorradoSinPayload(t *testing.T) {
	msg, err := eventMessage(entity.NewProductEvent(entity.EventProductDeleted, 3, nil, time.Now()))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, "produto.removido", body["tipo"])
	assert.NotContains(t, body, "nome")
	assert.NotContains(t, body, "preco")
	assert.NotContains(t, body, "estoque")
}

func TestNewPublisher_Config(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "inventario.eventos", zerolog.Nop())
	assert.Equal(t, "inventario.eventos", p.writer.Topic)
	assert.True(t, p.writer.Async)
	assert.NotNil(t, p.writer.Completion)
}
