package entity

// Receipt acknowledges payment of an invoice; it keeps a reference to the
// invoice it settles.
type Receipt struct {
	BillingDocument

	ReceiptNumber string
	ReceiptDate   string
	InvoiceNumber string
}

func NewReceipt(data *DocumentData) *Receipt {
	r := &Receipt{}
	r.init(r)
	if data == nil {
		return r
	}
	r.parse(data)
	r.ReceiptNumber = data.ReceiptNumber
	r.ReceiptDate = data.ReceiptDate
	r.InvoiceNumber = data.InvoiceNumber
	return r
}

func (r *Receipt) DocumentType() string { return "Receipt" }

func (r *Receipt) Number() string     { return r.ReceiptNumber }
func (r *Receipt) SetNumber(v string) { r.ReceiptNumber = v }

func (r *Receipt) Date() string     { return r.ReceiptDate }
func (r *Receipt) SetDate(v string) { r.ReceiptDate = v }

func (r *Receipt) HasQuotationNumber() bool { return false }
func (r *Receipt) HasInvoiceNumber() bool   { return true }
func (r *Receipt) HasReceiptNumber() bool   { return true }

func (r *Receipt) CreateDTO() *DocumentData {
	dto := r.createDTO()
	dto.ReceiptNumber = r.ReceiptNumber
	dto.ReceiptDate = r.ReceiptDate
	dto.InvoiceNumber = r.InvoiceNumber
	return dto
}

func (r *Receipt) String() string { return r.ReceiptNumber }
