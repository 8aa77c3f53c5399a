// Package pdf renders a billing document into its printable A4 form. One
// page is produced per title rendition (original, copy), laid out with the
// document's own hints: long receiver names and crowded tables shrink, the
// signature block tightens when a payment note needs room.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/oddbill/billing-api/internal/domain/entity"
)

const (
	pageLeft  = 15.0
	rowHeight = 8.0
)

// Render produces the PDF bytes for a document.
func Render(doc entity.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)

	for _, title := range doc.Base().GetTitles() {
		if err := renderPage(pdf, doc, title); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.Base().Filename(), err)
	}
	return buf.Bytes(), nil
}

func renderPage(pdf *gofpdf.Fpdf, doc entity.Document, title entity.Title) error {
	base := doc.Base()
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(120, 10, title.Title)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(60, 10, fmt.Sprintf("%s  %s", doc.Number(), doc.Date()), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	renderCompany(pdf, "From", base.FromCompany, 10)
	nameSize := 10.0
	if base.TargetCompanyNameClass() == "small" {
		nameSize = 8
	}
	renderCompany(pdf, "To", base.TargetCompany, nameSize)

	if base.ProjectName != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "Project: "+base.ProjectName, "", 1, "", false, 0, "")
	}
	if doc.HasQuotationNumber() || doc.HasInvoiceNumber() {
		renderReferences(pdf, doc)
	}
	pdf.Ln(4)

	if err := renderItems(pdf, doc); err != nil {
		return err
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 9)
	if base.Remark != "" {
		pdf.CellFormat(0, 5, "Remark: "+base.Remark, "", 1, "", false, 0, "")
	}
	if base.Payment != "" {
		pdf.CellFormat(0, 5, "Payment: "+base.Payment, "", 1, "", false, 0, "")
	}

	signatureGap := 20.0
	if base.TablePaddingClass() == "dense" {
		signatureGap = 10
	}
	pdf.Ln(signatureGap)
	pdf.CellFormat(80, 6, "Authorized signature", "T", 0, "C", false, 0, "")
	return nil
}

func renderCompany(pdf *gofpdf.Fpdf, label string, company entity.Company, nameSize float64) {
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 4, label, "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "B", nameSize)
	pdf.CellFormat(0, 6, company.Name, "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	if company.Address != "" {
		pdf.CellFormat(0, 5, company.Address, "", 1, "", false, 0, "")
	}
	if company.TaxID != "" {
		pdf.CellFormat(0, 5, "Tax ID: "+company.TaxID, "", 1, "", false, 0, "")
	}
	if company.Tel != "" {
		pdf.CellFormat(0, 5, "Tel: "+company.Tel, "", 1, "", false, 0, "")
	}
	pdf.Ln(2)
}

func renderReferences(pdf *gofpdf.Fpdf, doc entity.Document) {
	pdf.SetFont("Arial", "", 9)
	dto := doc.CreateDTO()
	if doc.HasQuotationNumber() && doc.DocumentType() != "Quotation" && dto.QuotationNumber != "" {
		pdf.CellFormat(0, 5, "Quotation: "+dto.QuotationNumber, "", 1, "", false, 0, "")
	}
	if doc.HasInvoiceNumber() && doc.DocumentType() != "Invoice" && dto.InvoiceNumber != "" {
		pdf.CellFormat(0, 5, "Invoice: "+dto.InvoiceNumber, "", 1, "", false, 0, "")
	}
	if dto.PurchaseOrderNumber != "" {
		pdf.CellFormat(0, 5, "PO: "+dto.PurchaseOrderNumber, "", 1, "", false, 0, "")
	}
}

func renderItems(pdf *gofpdf.Fpdf, doc entity.Document) error {
	base := doc.Base()
	fontSize := 10.0
	if base.ItemClass() == "small" {
		fontSize = 8
	}

	pdf.SetFont("Arial", "B", fontSize)
	pdf.SetX(pageLeft)
	pdf.CellFormat(80, rowHeight, "Description", "1", 0, "", false, 0, "")
	pdf.CellFormat(35, rowHeight, "Unit Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, rowHeight, "Amount", "1", 0, "R", false, 0, "")
	pdf.CellFormat(45, rowHeight, "Total", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", fontSize)
	for _, item := range doc.Base().GetItems() {
		price, err := item.FormattedPrice()
		if err != nil {
			return err
		}
		total, err := item.FormattedTotal()
		if err != nil {
			return err
		}
		entry := item.Entry()

		pdf.SetX(pageLeft)
		pdf.CellFormat(80, rowHeight, entry.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(35, rowHeight, price, "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, rowHeight, entry.Amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, rowHeight, total, "1", 1, "R", false, 0, "")
	}
	return nil
}
