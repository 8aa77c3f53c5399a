package entity

import "github.com/shopspring/decimal"

// TaxRate is the VAT rate applied to every document total.
var TaxRate = decimal.RequireFromString("0.07")

// LineItem is a single row on a printed document: either a user-entered
// priced row or one of the derived aggregate rows (Total, VAT, Grand Total).
type LineItem interface {
	// Entry returns the raw name/price/amount texts. Derived rows carry only
	// a label.
	Entry() LineItemEntry
	// FormattedPrice returns the unit price in the owning document's
	// currency, or "" for rows without one.
	FormattedPrice() (string, error)
	// FormattedTotal returns the row total in the owning document's currency.
	FormattedTotal() (string, error)
	// Total is the raw numeric row total.
	Total() decimal.Decimal
}

// parseDecimal treats empty or malformed numeric text as zero. Price and
// amount are free text while a document is being edited, so entry errors are
// tolerated at this layer rather than raised.
func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PricedLineItem is a user-entered row. Price and Amount are stored as
// decimal text and parsed only at computation time. The owner reference
// exists so totals format in the document's current currency; it is never
// serialized.
type PricedLineItem struct {
	owner  *BillingDocument
	Name   string
	Price  string
	Amount string
}

func (li *PricedLineItem) Entry() LineItemEntry {
	return LineItemEntry{Name: li.Name, Price: li.Price, Amount: li.Amount}
}

func (li *PricedLineItem) FormattedPrice() (string, error) {
	if li.Price == "" {
		return "", nil
	}
	return li.owner.FormatMoney(parseDecimal(li.Price))
}

func (li *PricedLineItem) FormattedTotal() (string, error) {
	return li.owner.FormatMoney(li.Total())
}

func (li *PricedLineItem) Total() decimal.Decimal {
	return parseDecimal(li.Price).Mul(parseDecimal(li.Amount))
}

// derivedLineItem carries no state of its own: its value is the owning
// document's current total scaled by a fixed factor, recomputed on every
// read so there is no staleness window.
type derivedLineItem struct {
	owner  *BillingDocument
	name   string
	factor decimal.Decimal
}

func (li *derivedLineItem) Entry() LineItemEntry {
	return LineItemEntry{Name: li.name}
}

// FormattedPrice is empty for aggregate rows; presentation relies on this to
// hide the price column.
func (li *derivedLineItem) FormattedPrice() (string, error) {
	return "", nil
}

func (li *derivedLineItem) FormattedTotal() (string, error) {
	return li.owner.FormatMoney(li.Total())
}

func (li *derivedLineItem) Total() decimal.Decimal {
	return li.owner.Total().Mul(li.factor)
}

// TotalLineItem is the sum of all priced rows.
type TotalLineItem struct{ derivedLineItem }

// TaxLineItem is the document total times TaxRate.
type TaxLineItem struct{ derivedLineItem }

// GrandTotalLineItem is the document total including tax.
type GrandTotalLineItem struct{ derivedLineItem }

func newTotalLineItem(name string, owner *BillingDocument) *TotalLineItem {
	return &TotalLineItem{derivedLineItem{owner: owner, name: name, factor: decimal.NewFromInt(1)}}
}

func newTaxLineItem(name string, owner *BillingDocument) *TaxLineItem {
	return &TaxLineItem{derivedLineItem{owner: owner, name: name, factor: TaxRate}}
}

func newGrandTotalLineItem(name string, owner *BillingDocument) *GrandTotalLineItem {
	return &GrandTotalLineItem{derivedLineItem{owner: owner, name: name, factor: decimal.NewFromInt(1).Add(TaxRate)}}
}
