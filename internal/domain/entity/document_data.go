package entity

import "fmt"

// Kind names a billing document variant.
type Kind string

const (
	KindInvoice   Kind = "Invoice"
	KindQuotation Kind = "Quotation"
	KindReceipt   Kind = "Receipt"
)

// LineItemEntry is the persisted shape of a line item: plain texts, no
// reference back to the owning document.
type LineItemEntry struct {
	Name   string `json:"name"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
}

// DocumentData is the acyclic projection of a billing document used for
// storage and transport. It is a tree, never a graph: items are plain
// entries and no formatter state is carried. The variant-specific number
// and date fields are flat here; each variant reads and writes its own.
type DocumentData struct {
	ID          string `json:"id,omitempty"`
	CompanySlug string `json:"companySlug,omitempty"`

	InvoiceNumber       string `json:"invoiceNumber,omitempty"`
	InvoiceDate         string `json:"invoiceDate,omitempty"`
	QuotationNumber     string `json:"quotationNumber,omitempty"`
	QuotationDate       string `json:"quotationDate,omitempty"`
	PurchaseOrderNumber string `json:"purchaseOrderNumber,omitempty"`
	ReceiptNumber       string `json:"receiptNumber,omitempty"`
	ReceiptDate         string `json:"receiptDate,omitempty"`

	FromCompany   Company `json:"fromCompany"`
	TargetCompany Company `json:"targetCompany"`
	ProjectName   string  `json:"projectName,omitempty"`
	Remark        string  `json:"remark,omitempty"`
	Currency      string  `json:"currency"`
	Payment       string  `json:"payment,omitempty"`
	Deleted       bool    `json:"deleted"`

	Items []LineItemEntry `json:"items"`
}

// NewDocument materializes a document of the given kind from stored data.
// A nil data builds an empty document.
func NewDocument(kind Kind, data *DocumentData) (Document, error) {
	switch kind {
	case KindInvoice:
		return NewInvoice(data), nil
	case KindQuotation:
		return NewQuotation(data), nil
	case KindReceipt:
		return NewReceipt(data), nil
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}
