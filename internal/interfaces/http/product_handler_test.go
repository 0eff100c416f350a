package http_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

func TestProdutos_EscrituraRequiereAdmin(t *testing.T) {
	ts := newTestServer(t, nil)
	userToken := ts.loginAs(t, "joao", entity.RoleUser)
	product := map[string]any{"nome": "Arroz", "preco": 22.9, "unidade": "kg"}

	resp, _ := ts.do(t, http.MethodPost, "/produtos", product, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodPost, "/produtos", product, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// lectura pública
	resp, body := ts.do(t, http.MethodGet, "/produtos", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestProdutos_CategoriaInexistente404SinEscribir(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.loginAs(t, "chefe", entity.RoleAdmin)

	resp, body := ts.do(t, http.MethodPost, "/produtos",
		map[string]any{"nome": "Arroz", "preco": "22.90", "unidade": "kg", "categoria_id": 999}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Categoria não encontrada", decode(t, body)["message"])

	_, body = ts.do(t, http.MethodGet, "/produtos", nil, "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestProdutos_Validacion422SinEscribir(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.loginAs(t, "chefe", entity.RoleAdmin)

	cases := []struct {
		body map[string]any
		msg  string
	}{
		{map[string]any{"nome": "Arroz", "unidade": "kg"}, "preco é obrigatório"},
		{map[string]any{"nome": "Arroz", "preco": nil, "unidade": "kg"}, "preco é obrigatório"},
		{map[string]any{"nome": "Arroz", "preco": "1.005", "unidade": "kg"}, "preco aceita no máximo 2 casas decimais"},
		{map[string]any{"nome": "Arroz", "preco": "10000000000", "unidade": "kg"}, "preco excede o máximo permitido"},
		{map[string]any{"nome": "Arroz", "preco": "1.00", "unidade": "kg", "estoque": 3000000000}, "estoque excede o máximo permitido"},
	}
	for _, tc := range cases {
		resp, body := ts.do(t, http.MethodPost, "/produtos", tc.body, token)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode, string(body))
		assert.Equal(t, tc.msg, decode(t, body)["message"])
	}

	_, body := ts.do(t, http.MethodGet, "/produtos", nil, "")
	assert.JSONEq(t, `[]`, string(body))
}

func TestProdutos_CicloCompleto(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.loginAs(t, "chefe", entity.RoleAdmin)

	resp, body := ts.do(t, http.MethodPost, "/categorias", map[string]string{"nome": "Grãos"}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	catID := int64(decode(t, body)["id"].(float64))

	resp, body = ts.do(t, http.MethodPost, "/produtos",
		map[string]any{"nome": "Arroz", "preco": "22.90", "unidade": "kg", "categoria_id": catID, "estoque": 12}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := int64(decode(t, body)["id"].(float64))
	path := fmt.Sprintf("/produtos/%d", id)

	// duplicado en la misma categoría
	resp, body = ts.do(t, http.MethodPost, "/produtos",
		map[string]any{"nome": "Arroz", "preco": 1, "unidade": "un", "categoria_id": catID}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Produto já cadastrado na mesma categoria", decode(t, body)["message"])

	resp, body = ts.do(t, http.MethodGet, path, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(t, body)
	assert.Equal(t, "Arroz", got["nome"])
	assert.Equal(t, "22.9", got["preco"])
	assert.Equal(t, "kg", got["unidade"])
	assert.Equal(t, "Grãos", got["categoria_nome"])
	original := string(body)

	// PATCH sin campos devuelve el registro sin cambios
	resp, body = ts.do(t, http.MethodPatch, path, map[string]any{}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, original, string(body))

	resp, body = ts.do(t, http.MethodPut, path, map[string]any{"estoque": 3}, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(3), decode(t, body)["estoque"])

	resp, _ = ts.do(t, http.MethodPatch, path, map[string]any{"estoque": -1}, token)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	// categoría con productos no se borra
	resp, body = ts.do(t, http.MethodDelete, fmt.Sprintf("/categorias/%d", catID), nil, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Categoria possui produtos", decode(t, body)["message"])

	resp, _ = ts.do(t, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = ts.do(t, http.MethodDelete, path, nil, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = ts.do(t, http.MethodDelete, fmt.Sprintf("/categorias/%d", catID), nil, token)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestProdutos_IDInvalido(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, body := ts.do(t, http.MethodGet, "/produtos/abc", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode(t, body)["code"])

	resp, _ = ts.do(t, http.MethodGet, "/produtos/0", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestRelatorioPDF(t *testing.T) {
	ts := newTestServer(t, nil)
	userToken := ts.loginAs(t, "joao", entity.RoleUser)
	adminToken := ts.loginAs(t, "chefe", entity.RoleAdmin)

	resp, _ := ts.do(t, http.MethodGet, "/produtos/relatorio.pdf", nil, userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body := ts.do(t, http.MethodGet, "/produtos/relatorio.pdf", nil, adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3 stub", string(body))
}

func TestDashboardStats(t *testing.T) {
	ts := newTestServer(t, nil)
	token := ts.loginAs(t, "chefe", entity.RoleAdmin)

	for _, p := range []map[string]any{
		{"nome": "Arroz", "preco": "10.00", "unidade": "kg", "estoque": 2},
		{"nome": "Feijão", "preco": "5.50", "unidade": "kg", "estoque": 20},
	} {
		resp, body := ts.do(t, http.MethodPost, "/produtos", p, token)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := ts.do(t, http.MethodGet, "/dashboard/stats", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	stats := decode(t, body)
	assert.Equal(t, float64(2), stats["total_produtos"])
	assert.Equal(t, float64(1), stats["estoque_baixo"])
	assert.Equal(t, "130", stats["valor_inventario"])
	assert.Equal(t, float64(0), stats["total_clientes"])
}
