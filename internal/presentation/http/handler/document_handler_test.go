package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oddbill/billing-api/internal/application/service"
	"github.com/oddbill/billing-api/internal/domain/entity"
	infraRepo "github.com/oddbill/billing-api/internal/infrastructure/repository"
)

func newInvoiceRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&infraRepo.DocumentRecord{}))

	h := NewDocumentHandler(service.NewDocumentService(entity.KindInvoice, infraRepo.NewDocumentRepository(db)))

	r := gin.New()
	r.GET("/invoices/:year", h.List)
	r.POST("/invoices", h.Create)
	r.GET("/invoice/:number", h.Get)
	r.PUT("/invoice/:number", h.Update)
	r.DELETE("/invoice/:number", h.Delete)
	r.POST("/invoice/:number/duplicate", h.Duplicate)
	r.GET("/invoice/:number/pdf", h.PDF)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func invoiceBody(number string) map[string]any {
	return map[string]any{
		"invoiceNumber": number,
		"invoiceDate":   "2020-01-03",
		"projectName":   "React",
		"targetCompany": map[string]any{"name": "Bluebook HQ"},
		"items": []map[string]any{
			{"name": "Consultant", "price": "20000", "amount": "20"},
		},
	}
}

func documentFromResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestDocumentHandlerLifecycle(t *testing.T) {
	router := newInvoiceRouter(t)

	t.Run("create", func(t *testing.T) {
		w := postJSON(t, router, "/invoices", invoiceBody("I202001-001"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		doc := documentFromResponse(t, w)
		assert.Equal(t, "I202001-001", doc["invoiceNumber"])
		assert.Equal(t, "THB", doc["currency"])
		assert.NotEmpty(t, doc["id"])
	})

	t.Run("creating the same number again conflicts", func(t *testing.T) {
		w := postJSON(t, router, "/invoices", invoiceBody("I202001-001"))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/I202001-001", nil))
		require.Equal(t, http.StatusOK, w.Code)

		doc := documentFromResponse(t, w)
		assert.Equal(t, "React", doc["projectName"])
	})

	t.Run("get unknown number is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		body := invoiceBody("I202001-001")
		body["remark"] = "Jan 2020"
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/invoice/I202001-001", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := documentFromResponse(t, w)
		assert.Equal(t, "Jan 2020", doc["remark"])
	})

	t.Run("unsupported currency is a 400", func(t *testing.T) {
		body := invoiceBody("I202001-009")
		body["currency"] = "EUR"
		w := postJSON(t, router, "/invoices", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate issues a fresh number", func(t *testing.T) {
		w := postJSON(t, router, "/invoice/I202001-001/duplicate", nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		doc := documentFromResponse(t, w)
		assert.NotEqual(t, "I202001-001", doc["invoiceNumber"])
		assert.Equal(t, "React", doc["projectName"])
	})

	t.Run("pdf download", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/I202001-001/pdf", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "INVOICE")
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	})

	t.Run("delete frees the number", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/invoice/I202001-001", nil))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := documentFromResponse(t, w)
		assert.Equal(t, true, doc["deleted"])
		assert.Contains(t, doc["invoiceNumber"], "-cancelled-")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoice/I202001-001", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list by year excludes deleted", func(t *testing.T) {
		w := postJSON(t, router, "/invoices", invoiceBody("202003-001"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/2020", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data struct {
				Items []map[string]any `json:"items"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		require.Len(t, envelope.Data.Items, 1)
		assert.Equal(t, "202003-001", envelope.Data.Items[0]["invoiceNumber"])
	})
}
