package entity

// Invoice bills a customer for delivered work. Beyond the shared fields it
// references the quotation it fulfils and the customer's purchase order.
type Invoice struct {
	BillingDocument

	InvoiceNumber       string
	InvoiceDate         string
	QuotationNumber     string
	PurchaseOrderNumber string
}

func NewInvoice(data *DocumentData) *Invoice {
	inv := &Invoice{}
	inv.init(inv)
	if data == nil {
		return inv
	}
	inv.parse(data)
	inv.InvoiceNumber = data.InvoiceNumber
	inv.InvoiceDate = data.InvoiceDate
	inv.QuotationNumber = data.QuotationNumber
	inv.PurchaseOrderNumber = data.PurchaseOrderNumber
	return inv
}

func (i *Invoice) DocumentType() string { return "Invoice" }

func (i *Invoice) Number() string     { return i.InvoiceNumber }
func (i *Invoice) SetNumber(v string) { i.InvoiceNumber = v }

func (i *Invoice) Date() string     { return i.InvoiceDate }
func (i *Invoice) SetDate(v string) { i.InvoiceDate = v }

func (i *Invoice) HasQuotationNumber() bool { return true }
func (i *Invoice) HasInvoiceNumber() bool   { return true }
func (i *Invoice) HasReceiptNumber() bool   { return false }

func (i *Invoice) CreateDTO() *DocumentData {
	dto := i.createDTO()
	dto.InvoiceNumber = i.InvoiceNumber
	dto.InvoiceDate = i.InvoiceDate
	dto.QuotationNumber = i.QuotationNumber
	dto.PurchaseOrderNumber = i.PurchaseOrderNumber
	return dto
}

func (i *Invoice) String() string { return i.InvoiceNumber }
