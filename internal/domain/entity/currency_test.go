package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	t.Run("formats THB with grouping and two decimals", func(t *testing.T) {
		got, err := FormatAmount("THB", decimal.NewFromInt(400800))
		require.NoError(t, err)
		assert.Equal(t, "THB 400,800.00", got)
	})

	t.Run("formats USD", func(t *testing.T) {
		got, err := FormatAmount("USD", decimal.NewFromInt(80))
		require.NoError(t, err)
		assert.Equal(t, "USD 80.00", got)
	})

	t.Run("formats fractional amounts", func(t *testing.T) {
		got, err := FormatAmount("THB", decimal.RequireFromString("28056"))
		require.NoError(t, err)
		assert.Equal(t, "THB 28,056.00", got)
	})

	t.Run("fails on unknown code", func(t *testing.T) {
		_, err := FormatAmount("EUR", decimal.NewFromInt(1))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedCurrency)
	})
}

func TestSupportedCurrencies(t *testing.T) {
	codes := SupportedCurrencies()
	assert.Contains(t, codes, "THB")
	assert.Contains(t, codes, "USD")

	assert.True(t, CurrencySupported("THB"))
	assert.False(t, CurrencySupported("BTC"))
}
