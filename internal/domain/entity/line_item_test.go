package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricedLineItem(t *testing.T) {
	inv := NewInvoice(nil)

	t.Run("computes total from price and amount", func(t *testing.T) {
		item := inv.CreatePricedLineItem("Scrum master", "80", "10")
		assert.True(t, item.Total().Equal(decimal.NewFromInt(800)))

		total, err := item.FormattedTotal()
		require.NoError(t, err)
		assert.Equal(t, "THB 800.00", total)
	})

	t.Run("formats unit price in the owner currency", func(t *testing.T) {
		item := inv.CreatePricedLineItem("Scrum master", "80", "10")
		price, err := item.FormattedPrice()
		require.NoError(t, err)
		assert.Equal(t, "THB 80.00", price)
	})

	t.Run("empty price shows as empty string", func(t *testing.T) {
		item := inv.CreatePricedLineItem("draft row", "", "10")
		price, err := item.FormattedPrice()
		require.NoError(t, err)
		assert.Equal(t, "", price)
	})

	t.Run("malformed numeric text counts as zero", func(t *testing.T) {
		item := inv.CreatePricedLineItem("typo", "eighty", "10")
		assert.True(t, item.Total().IsZero())

		item = inv.CreatePricedLineItem("typo", "80", "1O")
		assert.True(t, item.Total().IsZero())
	})
}

func TestDerivedLineItems(t *testing.T) {
	inv := NewInvoice(&DocumentData{
		Items: []LineItemEntry{
			{Name: "Consultant", Price: "20000", Amount: "20"},
			{Name: "Scrum master", Price: "80", Amount: "10"},
		},
	})

	t.Run("derived rows have no unit price", func(t *testing.T) {
		items := inv.GetItems()
		for _, item := range items[len(items)-3:] {
			price, err := item.FormattedPrice()
			require.NoError(t, err)
			assert.Equal(t, "", price)
		}
	})

	t.Run("tax is seven percent of the document total", func(t *testing.T) {
		items := inv.GetItems()
		tax := items[len(items)-2]
		assert.True(t, tax.Total().Equal(decimal.RequireFromString("28056")))
	})

	t.Run("empty document derives zero rows", func(t *testing.T) {
		empty := NewQuotation(nil)
		items := empty.GetItems()
		require.Len(t, items, 3)
		for _, item := range items {
			assert.True(t, item.Total().IsZero())
		}
	})
}
