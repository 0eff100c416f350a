package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/repository"
)

func TestStore_RunRollbackDescartaCambios(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Categories.Create(ctx, "Frutas"); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := s.Repositories().Categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_RunCommit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		_, err := repos.Categories.Create(ctx, "Frutas")
		return err
	}))

	list, err := s.Repositories().Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Frutas", list[0].Name)
}

func TestCategoryDelete_RestrictConProductos(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()

	catID, err := repos.Categories.Create(ctx, "Frutas")
	require.NoError(t, err)
	_, err = repos.Products.Create(ctx, &entity.Product{Name: "Banana", Price: decimal.NewFromInt(5), Unit: "kg", CategoryID: &catID})
	require.NoError(t, err)

	_, err = repos.Categories.Delete(ctx, catID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductUnique_NullCategoriaNoColisiona(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()

	_, err := repos.Products.Create(ctx, &entity.Product{Name: "Sal", Unit: "un"})
	require.NoError(t, err)
	_, err = repos.Products.Create(ctx, &entity.Product{Name: "Sal", Unit: "un"})
	assert.NoError(t, err)
}

func TestInventoryStats(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	repos := s.Repositories()

	_, _ = repos.Products.Create(ctx, &entity.Product{Name: "A", Price: decimal.RequireFromString("2.50"), Unit: "un", Stock: 4})
	_, _ = repos.Products.Create(ctx, &entity.Product{Name: "B", Price: decimal.RequireFromString("1.00"), Unit: "un", Stock: 20})

	stats, err := s.GetInventoryStats(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStock)
	assert.True(t, decimal.RequireFromString("30").Equal(stats.InventoryValue))
}
