package usecase_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/dto"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/usecase"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/infrastructure/memory"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/pkg/hash"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.InventoryEvent
}

func (p *recordingPublisher) Publish(_ context.Context, e entity.InventoryEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type services struct {
	store      *memory.Store
	events     *recordingPublisher
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	customers  *usecase.CustomerUseCase
	vendors    *usecase.VendorUseCase
	managers   *usecase.ManagerUseCase
	admins     *usecase.AdminUseCase
}

func newServices() *services {
	store := memory.NewStore()
	repos := store.Repositories()
	events := &recordingPublisher{}
	hasher := hash.New(bcrypt.MinCost)
	return &services{
		store:      store,
		events:     events,
		categories: usecase.NewCategoryUseCase(store, repos),
		products:   usecase.NewProductUseCase(store, repos, events),
		customers:  usecase.NewCustomerUseCase(store, repos, hasher),
		vendors:    usecase.NewVendorUseCase(store, repos),
		managers:   usecase.NewManagerUseCase(store, repos),
		admins:     usecase.NewAdminUseCase(store, repos, hasher),
	}
}

func ptr[T any](v T) *T { return &v }

func mustCategory(t *testing.T, s *services, name string) int64 {
	t.Helper()
	out, err := s.categories.Create(context.Background(), dto.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return out.ID
}

func TestCreateProduct_CategoriaInexistenteNoEscribe(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	_, err := s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Banana", Price: ptr(decimal.RequireFromString("4.20")), Unit: "kg", CategoryID: ptr(int64(999)),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgCategoryNotFound, domain.Message(err))

	list, err := s.products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, s.events.types())
}

func TestCreateProduct_DuplicadoEnCategoria(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	cat := mustCategory(t, s, "Frutas")

	first, err := s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Banana", Price: ptr(decimal.RequireFromString("4.20")), Unit: "kg", CategoryID: &cat, Stock: 3,
	})
	require.NoError(t, err)

	_, err = s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Banana", Price: ptr(decimal.RequireFromString("9.99")), Unit: "un", CategoryID: &cat,
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgProductExists, domain.Message(err))

	got, err := s.products.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("4.20").Equal(got.Price))
	assert.Equal(t, "kg", got.Unit)
	require.NotNil(t, got.CategoryName)
	assert.Equal(t, "Frutas", *got.CategoryName)
}

func TestUpdateProduct_SinCamposDevuelveSinCambios(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	created, err := s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Arroz", Price: ptr(decimal.RequireFromString("22.90")), Unit: "kg", Stock: 12,
	})
	require.NoError(t, err)
	before, err := s.products.GetByID(ctx, created.ID)
	require.NoError(t, err)

	after, err := s.products.Update(ctx, created.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, []string{entity.EventProductCreated}, s.events.types())
}

func TestUpdateProduct_Parcial(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	created, err := s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Arroz", Price: ptr(decimal.RequireFromString("22.90")), Unit: "kg", Stock: 12,
	})
	require.NoError(t, err)

	got, err := s.products.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, got.Stock)
	assert.Equal(t, "Arroz", got.Name)
	assert.Equal(t, []string{entity.EventProductCreated, entity.EventProductUpdated}, s.events.types())
}

func TestUpdateProduct_Errores(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	cat := mustCategory(t, s, "Grãos")
	a, err := s.products.Create(ctx, dto.CreateProductRequest{Name: "Arroz", Price: ptr(decimal.NewFromInt(1)), Unit: "kg", CategoryID: &cat})
	require.NoError(t, err)
	b, err := s.products.Create(ctx, dto.CreateProductRequest{Name: "Feijão", Price: ptr(decimal.NewFromInt(1)), Unit: "kg", CategoryID: &cat})
	require.NoError(t, err)

	_, err = s.products.Update(ctx, 12345, dto.UpdateProductRequest{Stock: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgProductNotFound, domain.Message(err))

	_, err = s.products.Update(ctx, b.ID, dto.UpdateProductRequest{Name: ptr("Arroz")})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgProductNameTaken, domain.Message(err))

	_, err = s.products.Update(ctx, a.ID, dto.UpdateProductRequest{CategoryID: ptr(int64(777))})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgCategoryNotFound, domain.Message(err))

	_, err = s.products.Update(ctx, a.ID, dto.UpdateProductRequest{Stock: ptr(-1)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteProduct(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	err := s.products.Delete(ctx, 42)
	require.ErrorIs(t, err, domain.ErrNotFound)

	created, err := s.products.Create(ctx, dto.CreateProductRequest{Name: "Sal", Price: ptr(decimal.NewFromInt(2)), Unit: "un"})
	require.NoError(t, err)
	require.NoError(t, s.products.Delete(ctx, created.ID))

	_, err = s.products.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{entity.EventProductCreated, entity.EventProductDeleted}, s.events.types())
}

func TestCreateProduct_Validaciones(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	cases := []dto.CreateProductRequest{
		{Name: " ", Price: ptr(decimal.NewFromInt(1)), Unit: "kg"},
		{Name: "X", Price: ptr(decimal.NewFromInt(-1)), Unit: "kg"},
		{Name: "X", Price: ptr(decimal.NewFromInt(1)), Unit: ""},
		{Name: "X", Price: ptr(decimal.NewFromInt(1)), Unit: "kg", Stock: -3},
	}
	for _, in := range cases {
		_, err := s.products.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation, "%+v", in)
	}
}

func TestCreateProduct_PrecoObrigatorio(t *testing.T) {
	s := newServices()
	_, err := s.products.Create(context.Background(), dto.CreateProductRequest{Name: "Arroz", Unit: "kg"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "preco é obrigatório", domain.Message(err))

	list, err := s.products.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, s.events.types())
}

func TestProduct_LimitesDePrecoYEstoque(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	rejected := []struct {
		price string
		stock int
		msg   string
	}{
		{"1.005", 1, "preco aceita no máximo 2 casas decimais"},
		{"0.001", 1, "preco aceita no máximo 2 casas decimais"},
		{"10000000000", 1, "preco excede o máximo permitido"},
		{"1", math.MaxInt32 + 1, "estoque excede o máximo permitido"},
	}
	for _, tc := range rejected {
		_, err := s.products.Create(ctx, dto.CreateProductRequest{
			Name: "Arroz", Price: ptr(decimal.RequireFromString(tc.price)), Unit: "kg", Stock: tc.stock,
		})
		require.ErrorIs(t, err, domain.ErrValidation, tc.price)
		assert.Equal(t, tc.msg, domain.Message(err))
	}

	// los extremos que la columna guarda sin redondear se aceptan
	created, err := s.products.Create(ctx, dto.CreateProductRequest{
		Name: "Arroz", Price: ptr(decimal.RequireFromString("9999999999.99")), Unit: "kg", Stock: math.MaxInt32,
	})
	require.NoError(t, err)
	got, err := s.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9999999999.99", got.Price.String())
	assert.Equal(t, math.MaxInt32, got.Stock)

	// ceros a la derecha no cuentan como decimales extra
	_, err = s.products.Update(ctx, created.ID, dto.UpdateProductRequest{Price: ptr(decimal.RequireFromString("1.500"))})
	require.NoError(t, err)

	_, err = s.products.Update(ctx, created.ID, dto.UpdateProductRequest{Price: ptr(decimal.RequireFromString("1.005"))})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = s.products.Update(ctx, created.ID, dto.UpdateProductRequest{Stock: ptr(math.MaxInt32 + 1)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err = s.products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1.5", got.Price.String())
	assert.Equal(t, math.MaxInt32, got.Stock)
}

func TestCategory_CrearListarBorrar(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	mustCategory(t, s, "Games")
	acc := mustCategory(t, s, "Acessórios")

	_, err := s.categories.Create(ctx, dto.CreateCategoryRequest{Name: "Games"})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgCategoryExists, domain.Message(err))

	list, err := s.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Acessórios", list[0].Name)

	_, err = s.products.Create(ctx, dto.CreateProductRequest{Name: "Cabo", Price: ptr(decimal.NewFromInt(10)), Unit: "un", CategoryID: &acc})
	require.NoError(t, err)
	err = s.categories.Delete(ctx, acc)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgCategoryInUse, domain.Message(err))

	assert.ErrorIs(t, s.categories.Delete(ctx, 9999), domain.ErrNotFound)
}

func TestCustomer_VendedorInexistenteYEmailDuplicado(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	_, err := s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Ana", Email: "ana@ex.com", VendorID: ptr(int64(5))})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usecase.MsgVendorNotFound, domain.Message(err))

	_, err = s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Ana", Email: "ana@ex.com"})
	require.NoError(t, err)
	_, err = s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Outra Ana", Email: "ANA@ex.com"})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, usecase.MsgEmailTaken, domain.Message(err))

	_, err = s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Bia", Email: "não-é-email"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCustomer_SenhaSeGuardaHasheada(t *testing.T) {
	s := newServices()
	ctx := context.Background()
	out, err := s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Caio", Email: "caio@ex.com", Password: "senha123"})
	require.NoError(t, err)

	c, err := s.store.Repositories().Customers.GetByID(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, c.PasswordHash)
	assert.NotEqual(t, "senha123", c.PasswordHash)

	_, err = s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Dani", Email: "dani@ex.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVendorManager_Jerarquia(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	mgr, err := s.managers.Create(ctx, dto.CreateManagerRequest{Name: "Gil", Email: "gil@ex.com"})
	require.NoError(t, err)
	v, err := s.vendors.Create(ctx, dto.CreateVendorRequest{Name: "Vera", Email: "vera@ex.com", ManagerID: &mgr.ID})
	require.NoError(t, err)
	c, err := s.customers.Create(ctx, dto.CreateCustomerRequest{Name: "Caio", Email: "caio@ex.com", VendorID: &v.ID})
	require.NoError(t, err)

	_, err = s.vendors.Create(ctx, dto.CreateVendorRequest{Name: "X", Email: "x@ex.com", ManagerID: ptr(int64(404))})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// borrar el vendedor deja al cliente sin vendedor
	require.NoError(t, s.vendors.Delete(ctx, v.ID))
	got, err := s.customers.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.VendorID)

	upd, err := s.managers.Update(ctx, mgr.ID, dto.UpdateManagerRequest{Name: ptr("Gilberto")})
	require.NoError(t, err)
	assert.Equal(t, "Gilberto", upd.Name)
	assert.Equal(t, "gil@ex.com", upd.Email)

	require.NoError(t, s.managers.Delete(ctx, mgr.ID))
	assert.ErrorIs(t, s.managers.Delete(ctx, mgr.ID), domain.ErrNotFound)
}

func TestAdmins(t *testing.T) {
	s := newServices()
	ctx := context.Background()

	root, err := s.admins.Create(ctx, dto.CreateAdminRequest{Username: "root", Password: "segredo1"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, root.Role)
	other, err := s.admins.Create(ctx, dto.CreateAdminRequest{Username: "ops", Password: "segredo1"})
	require.NoError(t, err)

	_, err = s.admins.Create(ctx, dto.CreateAdminRequest{Username: "root", Password: "segredo2"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	list, err := s.admins.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	assert.ErrorIs(t, s.admins.Delete(ctx, root.ID, root.ID), domain.ErrConflict)
	require.NoError(t, s.admins.Delete(ctx, other.ID, root.ID))
	assert.ErrorIs(t, s.admins.Delete(ctx, other.ID, root.ID), domain.ErrNotFound)
}
