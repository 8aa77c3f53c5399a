package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oddbill/billing-api/internal/application/service"
	"github.com/oddbill/billing-api/internal/domain/entity"
	"github.com/oddbill/billing-api/internal/presentation/http/dto/response"
	"github.com/oddbill/billing-api/pkg/pagination"
	"github.com/oddbill/billing-api/pkg/pdf"
)

// DocumentHandler exposes one billing document type over HTTP. The same
// handler serves invoices, quotations and receipts; the service it wraps
// fixes the kind.
type DocumentHandler struct {
	documentService *service.DocumentService
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// List returns the documents issued in a year
// GET /invoices/:year
func (h *DocumentHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.documentService.ListByYear(c.Request.Context(), c.Param("year"), &params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, http.StatusOK, "Documents retrieved", result)
}

// Get returns one document by its number
// GET /invoice/:number
func (h *DocumentHandler) Get(c *gin.Context) {
	data, err := h.documentService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document retrieved", data)
}

// Create stores a new document
// POST /invoices
func (h *DocumentHandler) Create(c *gin.Context) {
	var data entity.DocumentData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, "Invalid document payload")
		return
	}

	created, err := h.documentService.Create(c.Request.Context(), &data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Document created", created)
}

// Update overwrites a document
// PUT /invoice/:number
func (h *DocumentHandler) Update(c *gin.Context) {
	var data entity.DocumentData
	if err := c.ShouldBindJSON(&data); err != nil {
		response.BadRequest(c, "Invalid document payload")
		return
	}

	updated, err := h.documentService.Update(c.Request.Context(), c.Param("number"), &data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document updated", updated)
}

// Delete soft-deletes a document
// DELETE /invoice/:number
func (h *DocumentHandler) Delete(c *gin.Context) {
	deleted, err := h.documentService.Delete(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Document deleted", deleted)
}

// Duplicate copies a document under a fresh number dated today
// POST /invoice/:number/duplicate
func (h *DocumentHandler) Duplicate(c *gin.Context) {
	created, err := h.documentService.Duplicate(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Document duplicated", created)
}

// PDF renders the printable document
// GET /invoice/:number/pdf
func (h *DocumentHandler) PDF(c *gin.Context) {
	data, err := h.documentService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := entity.NewDocument(h.documentService.Kind(), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	content, err := pdf.Render(doc)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Base().Filename()+".pdf"))
	c.Data(http.StatusOK, "application/pdf", content)
}
