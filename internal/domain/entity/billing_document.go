package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed whenever a document carries no currency code.
const DefaultCurrency = "THB"

// Document is the capability set a billing document variant provides on top
// of the shared BillingDocument state: its type label and which fields act
// as the user-visible number and the document date. Everything else is
// inherited from the base unmodified; adding a variant means declaring these
// capabilities and nothing more.
type Document interface {
	DocumentType() string
	Number() string
	SetNumber(string)
	Date() string
	SetDate(string)
	SetDateToday()

	// FilenameNumber is the number as it appears in export filenames.
	// Most variants file under the number verbatim.
	FilenameNumber() string

	// Reference-field flags consumed by presentation.
	HasQuotationNumber() bool
	HasInvoiceNumber() bool
	HasReceiptNumber() bool

	// CreateDTO projects the document into its acyclic storage shape.
	CreateDTO() *DocumentData

	Base() *BillingDocument
}

// Title is one printed rendition of a document (original, copy).
type Title struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	CSS   string `json:"css"`
}

// BillingDocument holds the state and behavior shared by every document
// variant. Variants embed it and register themselves through init so the
// base can reach the variant's number and type label.
//
// A document owns its item sequence exclusively; it is not safe for
// concurrent mutation. Reads recompute from current state on every call.
type BillingDocument struct {
	doc Document // the embedding variant
	now func() time.Time

	ID            string
	CompanySlug   string
	FromCompany   Company
	TargetCompany Company
	ProjectName   string
	Remark        string
	Payment       string
	Deleted       bool
	Items         []*PricedLineItem

	// currency is kept verbatim from input and only defaulted at read time.
	currency string
}

// init wires the variant self-reference and defaults. Every variant
// constructor must call it before parsing data.
func (b *BillingDocument) init(doc Document) {
	b.doc = doc
	b.now = time.Now
	b.FromCompany = Company{}
	b.TargetCompany = Company{}
	b.Items = []*PricedLineItem{}
}

// parse fills the shared fields from stored data. Absent optional fields
// default rather than error.
func (b *BillingDocument) parse(data *DocumentData) {
	b.ID = data.ID
	b.CompanySlug = data.CompanySlug
	b.FromCompany = data.FromCompany
	b.TargetCompany = data.TargetCompany
	b.ProjectName = data.ProjectName
	b.Remark = data.Remark
	b.currency = data.Currency
	b.Payment = data.Payment
	b.Deleted = data.Deleted
	if data.Items == nil {
		return
	}
	b.Items = make([]*PricedLineItem, 0, len(data.Items))
	for _, it := range data.Items {
		b.Items = append(b.Items, b.CreatePricedLineItem(it.Name, it.Price, it.Amount))
	}
}

func (b *BillingDocument) Base() *BillingDocument { return b }

// SetClock overrides the time source used for deletion timestamps and
// today's date.
func (b *BillingDocument) SetClock(now func() time.Time) { b.now = now }

// Currency returns the document's currency code, defaulting when unset.
func (b *BillingDocument) Currency() string {
	if b.currency == "" {
		return DefaultCurrency
	}
	return b.currency
}

func (b *BillingDocument) SetCurrency(code string) { b.currency = code }

// Currencies lists the codes a document can be displayed in.
func (b *BillingDocument) Currencies() []string { return SupportedCurrencies() }

// FormatMoney renders an amount in the document's current currency.
func (b *BillingDocument) FormatMoney(amount decimal.Decimal) (string, error) {
	return FormatAmount(b.Currency(), amount)
}

// CreatePricedLineItem builds an item bound to this document.
func (b *BillingDocument) CreatePricedLineItem(name, price, amount string) *PricedLineItem {
	return &PricedLineItem{owner: b, Name: name, Price: price, Amount: amount}
}

// GetItems returns the priced items in insertion order followed by the
// Total, VAT and Grand Total rows, in that fixed order. Callers index the
// three trailing rows by position.
func (b *BillingDocument) GetItems() []LineItem {
	items := make([]LineItem, 0, len(b.Items)+3)
	for _, it := range b.Items {
		items = append(items, it)
	}
	return append(items,
		newTotalLineItem("Total", b),
		newTaxLineItem("VAT 7%", b),
		newGrandTotalLineItem("Grand Total", b),
	)
}

// Total sums the priced items. Zero for an empty document.
func (b *BillingDocument) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range b.Items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// AddItemBefore inserts a blank item immediately before the given one, or
// appends when the anchor is not in the sequence. This is the only way new
// rows enter a document.
func (b *BillingDocument) AddItemBefore(item *PricedLineItem) {
	i := b.indexOf(item)
	if i < 0 {
		i = len(b.Items)
	}
	blank := b.CreatePricedLineItem("", "", "")
	b.Items = append(b.Items, nil)
	copy(b.Items[i+1:], b.Items[i:])
	b.Items[i] = blank
}

// RemoveItem deletes the item by identity. Removing an absent item is a
// no-op so delete actions stay idempotent.
func (b *BillingDocument) RemoveItem(item *PricedLineItem) {
	i := b.indexOf(item)
	if i < 0 {
		return
	}
	b.Items = append(b.Items[:i], b.Items[i+1:]...)
}

func (b *BillingDocument) indexOf(item *PricedLineItem) int {
	for i, it := range b.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// MarkAsDeleted soft-deletes the document. The number is rewritten with a
// cancellation suffix so the original number can be reused by a new active
// document while the stored record stays unique.
func (b *BillingDocument) MarkAsDeleted() {
	b.Deleted = true
	b.doc.SetNumber(fmt.Sprintf("%s-cancelled-%d", b.doc.Number(), b.currentTimestamp()))
}

func (b *BillingDocument) currentTimestamp() int64 {
	return b.now().UnixMilli()
}

// SetDateToday stamps the variant's date field with the current date.
func (b *BillingDocument) SetDateToday() {
	b.doc.SetDate(b.FormatDate(b.now()))
}

// FormatDate renders a date the way documents store it.
func (b *BillingDocument) FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewDocumentNumber returns the month prefix new numbers are built from.
func (b *BillingDocument) NewDocumentNumber(t time.Time) string {
	return t.Format("200601") + "-"
}

// FilenameNumber defaults to the number itself; variants with a different
// filing convention override it.
func (b *BillingDocument) FilenameNumber() string {
	return b.doc.Number()
}

// Filename names the exported PDF for this document.
func (b *BillingDocument) Filename() string {
	return fmt.Sprintf("%s_%s_%s_%s",
		b.doc.FilenameNumber(),
		strings.ToUpper(b.doc.DocumentType()),
		b.TargetCompany.Name,
		b.ProjectName,
	)
}

func (b *BillingDocument) URL() string {
	return fmt.Sprintf("/%s/%s", strings.ToLower(b.doc.DocumentType()), b.doc.Number())
}

func (b *BillingDocument) DuplicationURL() string { return b.URL() + "/duplicate" }

func (b *BillingDocument) EditionURL() string { return b.URL() + "/edit" }

// GetTitles returns the printed renditions: the original shows on screen and
// paper, the copy on paper only.
func (b *BillingDocument) GetTitles() []Title {
	return []Title{
		{ID: 1, Title: b.doc.DocumentType() + " (original)", CSS: ""},
		{ID: 2, Title: b.doc.DocumentType() + " (copy)", CSS: "print-only"},
	}
}

// ItemClass shrinks rows once the table would overflow a single page.
func (b *BillingDocument) ItemClass() string {
	if len(b.Items) > 3 {
		return "small"
	}
	return ""
}

// TargetCompanyNameClass shrinks long receiver names on the printed page.
func (b *BillingDocument) TargetCompanyNameClass() string {
	if utf8.RuneCountInString(b.TargetCompany.Name) > 40 {
		return "small"
	}
	return ""
}

// TablePaddingClass tightens the layout when a payment note needs room.
func (b *BillingDocument) TablePaddingClass() string {
	if b.Payment != "" {
		return "dense"
	}
	return ""
}

// createDTO projects the shared state. The variant's CreateDTO adds its own
// number and date fields on top. The result carries the resolved currency
// and plain item entries with no reference back to this document, so it is
// safe to hand to storage.
func (b *BillingDocument) createDTO() *DocumentData {
	dto := &DocumentData{
		ID:            b.ID,
		CompanySlug:   b.CompanySlug,
		FromCompany:   b.FromCompany,
		TargetCompany: b.TargetCompany,
		ProjectName:   b.ProjectName,
		Remark:        b.Remark,
		Currency:      b.Currency(),
		Payment:       b.Payment,
		Deleted:       b.Deleted,
		Items:         make([]LineItemEntry, 0, len(b.Items)),
	}
	for _, it := range b.Items {
		dto.Items = append(dto.Items, it.Entry())
	}
	return dto
}
