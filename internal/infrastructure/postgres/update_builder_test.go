package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUpdateBuilder_SoloCamposInformados(t *testing.T) {
	price := decimal.RequireFromString("4.20")
	sql, args := newUpdate("produto").
		set("nome", "banana").
		set("preco", price).
		build(7, "id, nome")

	assert.Equal(t, "UPDATE produto SET nome = $1, preco = $2 WHERE id = $3 RETURNING id, nome", sql)
	assert.Equal(t, []any{"banana", price, int64(7)}, args)
}

func TestUpdateBuilder_ValorMaliciosoQuedaComoParametro(t *testing.T) {
	evil := "x'; DROP TABLE produto; --"
	sql, args := newUpdate("categoria").set("nome", evil).build(1, "")

	assert.Equal(t, "UPDATE categoria SET nome = $1 WHERE id = $2", sql)
	assert.NotContains(t, sql, "DROP")
	assert.Equal(t, evil, args[0])
}

func TestUpdateBuilder_Vacio(t *testing.T) {
	b := newUpdate("produto")
	assert.True(t, b.empty())
	b.set("estoque", 3)
	assert.False(t, b.empty())
}
