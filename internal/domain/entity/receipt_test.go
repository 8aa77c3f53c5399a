package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func receiptData() *DocumentData {
	return &DocumentData{
		ID:            "Wq0WJx0mPzYKV8nQ",
		ReceiptNumber: "R202001-004",
		ReceiptDate:   "2020-01-31",
		InvoiceNumber: "I202001-001",
		ProjectName:   "React",
		TargetCompany: Company{Name: "Bluebook HQ"},
		Items: []LineItemEntry{
			{Name: "Consultant", Price: "20000", Amount: "20"},
		},
	}
}

func TestReceiptParsing(t *testing.T) {
	r := NewReceipt(receiptData())

	assert.Equal(t, "R202001-004", r.ReceiptNumber)
	assert.Equal(t, "2020-01-31", r.ReceiptDate)
	assert.Equal(t, "I202001-001", r.InvoiceNumber)

	t.Run("capability set", func(t *testing.T) {
		assert.Equal(t, "Receipt", r.DocumentType())
		assert.Equal(t, "R202001-004", r.Number())
		assert.Equal(t, "2020-01-31", r.Date())
		assert.False(t, r.HasQuotationNumber())
		assert.True(t, r.HasInvoiceNumber())
		assert.True(t, r.HasReceiptNumber())
	})
}

func TestReceiptDTO(t *testing.T) {
	r := NewReceipt(receiptData())
	dto := r.CreateDTO()

	assert.Equal(t, "R202001-004", dto.ReceiptNumber)
	assert.Equal(t, "2020-01-31", dto.ReceiptDate)
	assert.Equal(t, "I202001-001", dto.InvoiceNumber)
	assert.Empty(t, dto.QuotationNumber)
	assert.Equal(t, dto, NewReceipt(dto).CreateDTO())
}

func TestReceiptSoftDelete(t *testing.T) {
	r := NewReceipt(receiptData())
	r.SetClock(func() time.Time { return time.UnixMilli(1610194022999) })

	r.MarkAsDeleted()

	assert.True(t, r.Deleted)
	assert.Equal(t, "R202001-004-cancelled-1610194022999", r.ReceiptNumber)
}

func TestReceiptFilename(t *testing.T) {
	r := NewReceipt(receiptData())
	assert.Equal(t, "R202001-004_RECEIPT_Bluebook HQ_React", r.Filename())
}

func TestNewDocumentDispatch(t *testing.T) {
	t.Run("builds the matching variant", func(t *testing.T) {
		doc, err := NewDocument(KindInvoice, invoiceData())
		assert.NoError(t, err)
		assert.Equal(t, "Invoice", doc.DocumentType())

		doc, err = NewDocument(KindQuotation, quotationData())
		assert.NoError(t, err)
		assert.Equal(t, "Quotation", doc.DocumentType())

		doc, err = NewDocument(KindReceipt, receiptData())
		assert.NoError(t, err)
		assert.Equal(t, "Receipt", doc.DocumentType())
	})

	t.Run("rejects unknown kinds", func(t *testing.T) {
		_, err := NewDocument("memo", invoiceData())
		assert.Error(t, err)
	})

	t.Run("date stamping works through the interface", func(t *testing.T) {
		for _, kind := range []Kind{KindInvoice, KindQuotation, KindReceipt} {
			doc, err := NewDocument(kind, nil)
			assert.NoError(t, err)

			doc.Base().SetClock(func() time.Time { return time.Date(2021, 1, 13, 0, 0, 0, 0, time.UTC) })
			doc.SetDateToday()
			assert.Equal(t, "2021-01-13", doc.Date(), string(kind))
		}
	})
}
