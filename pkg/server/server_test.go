package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilingual-invoicing/pkg/fonts"
	"github.com/bilingual-invoicing/pkg/invoice"
)

func testServer() *Server {
	return New(nil, fonts.Static{})
}

func sampleBody(t *testing.T) *bytes.Reader {
	t.Helper()
	inv := invoice.Invoice{
		InvoiceNumber: "INV-42",
		Date:          "2024-05-01",
		ClientName:    "Acme Electric Co.",
		Items: []invoice.LineItem{
			{Description: "Widget", Quantity: 2, UnitPrice: decimal.RequireFromString("50")},
			{Description: "Cable", Quantity: 1, UnitPrice: decimal.RequireFromString("100")},
		},
		ShippingCost: decimal.RequireFromString("10"),
		TaxAmount:    decimal.RequireFromString("15"),
		Discount:     decimal.RequireFromString("5"),
	}
	data, err := json.Marshal(inv)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func generate(t *testing.T, query string, body *bytes.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-invoice"+query, body)
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)
	return rec
}

func TestGenerateDownload(t *testing.T) {
	rec := generate(t, "?lang=en&action=download", sampleBody(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=invoice-INV-42.pdf", rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("Content-Length"))
	assert.Equal(t, "true", rec.Header().Get("X-Font-Fallback"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGenerateOpenInline(t *testing.T) {
	rec := generate(t, "?lang=ar&action=open", sampleBody(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "inline; filename=invoice-INV-42.pdf", rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestGeneratePrintPage(t *testing.T) {
	rec := generate(t, "?lang=both&action=print", sampleBody(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "data:application/pdf;base64,")
	assert.Contains(t, rec.Body.String(), "invoice-INV-42.pdf")
}

func TestGenerateDefaultsToEnglishDownload(t *testing.T) {
	rec := generate(t, "", sampleBody(t))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Disposition"), "attachment;"))
}

func TestGenerateRejectsUnknownLanguage(t *testing.T) {
	rec := generate(t, "?lang=fr", sampleBody(t))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "unknown language selection")
}

func TestGenerateRejectsUnknownAction(t *testing.T) {
	rec := generate(t, "?action=email", sampleBody(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRejectsBadPayload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/generate-invoice", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexPage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invoice Generator")
}

func TestRequestIDHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	testServer().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
