package entity

import "strings"

// Quotation offers priced work to a customer before an invoice exists.
type Quotation struct {
	BillingDocument

	QuotationNumber string
	QuotationDate   string
}

func NewQuotation(data *DocumentData) *Quotation {
	q := &Quotation{}
	q.init(q)
	if data == nil {
		return q
	}
	q.parse(data)
	q.QuotationNumber = data.QuotationNumber
	q.QuotationDate = data.QuotationDate
	return q
}

func (q *Quotation) DocumentType() string { return "Quotation" }

func (q *Quotation) Number() string     { return q.QuotationNumber }
func (q *Quotation) SetNumber(v string) { q.QuotationNumber = v }

func (q *Quotation) Date() string     { return q.QuotationDate }
func (q *Quotation) SetDate(v string) { q.QuotationDate = v }

func (q *Quotation) HasQuotationNumber() bool { return true }
func (q *Quotation) HasInvoiceNumber() bool   { return false }
func (q *Quotation) HasReceiptNumber() bool   { return false }

// FilenameNumber files quotations by sequence first: "YYYYMM-SEQ" becomes
// "SEQ-MMYYYY". Numbers in any other shape file verbatim.
func (q *Quotation) FilenameNumber() string {
	parts := strings.SplitN(q.QuotationNumber, "-", 2)
	if len(parts) != 2 || len(parts[0]) != 6 {
		return q.QuotationNumber
	}
	yearMonth := parts[0]
	return parts[1] + "-" + yearMonth[4:] + yearMonth[:4]
}

func (q *Quotation) CreateDTO() *DocumentData {
	dto := q.createDTO()
	dto.QuotationNumber = q.QuotationNumber
	dto.QuotationDate = q.QuotationDate
	return dto
}

func (q *Quotation) String() string { return q.QuotationNumber }
