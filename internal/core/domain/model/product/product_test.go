package product_test

import (
	"testing"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/product"
	"seller/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price, err := kernel.MoneyFromString("3.20")
	require.NoError(t, err)

	t.Run("should create product", func(t *testing.T) {
		p, err := product.NewProduct(" p-1 ", "Tea", price, 5, product.StatusUp)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "p-1", p.ID())
		assert.Equal(t, "3.20", p.Price().String())
		assert.Equal(t, 5, p.Stock())
		assert.Equal(t, "Up", p.Status().String())
	})

	t.Run("should collect every invalid field", func(t *testing.T) {
		p, err := product.NewProduct("", "Tea", kernel.Money{}, -1, product.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		assert.Contains(t, err.Error(), "-1 is negative")
		assert.Contains(t, err.Error(), "product status")
	})
}

func TestProduct_IsOnSale(t *testing.T) {
	price, _ := kernel.MoneyFromString("1")

	up, _ := product.NewProduct("p", "Tea", price, 1, product.StatusUp)
	down, _ := product.NewProduct("p", "Tea", price, 1, product.StatusDown)

	assert.True(t, up.IsOnSale())
	assert.False(t, down.IsOnSale())
	assert.ErrorIs(t, product.ErrProductOffSale, product.ErrProductNotFound)
}

func TestProduct_ApplyStockDelta(t *testing.T) {
	price, _ := kernel.MoneyFromString("1")

	t.Run("should decrease and increase", func(t *testing.T) {
		p, _ := product.NewProduct("p", "Tea", price, 5, product.StatusUp)

		require.NoError(t, p.ApplyStockDelta(-5))
		assert.Equal(t, 0, p.Stock())
		require.NoError(t, p.ApplyStockDelta(3))
		assert.Equal(t, 3, p.Stock())
	})

	t.Run("should refuse to go negative", func(t *testing.T) {
		p, _ := product.NewProduct("p", "Tea", price, 2, product.StatusUp)

		err := p.ApplyStockDelta(-3)

		require.ErrorIs(t, err, product.ErrProductStockInsufficient)
		assert.Contains(t, err.Error(), "has 2, requested 3")
		assert.Equal(t, 2, p.Stock())
	})
}
