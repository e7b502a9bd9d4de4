package server

import (
	"encoding/base64"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/bilingual-invoicing/pkg/builder"
	"github.com/bilingual-invoicing/pkg/i18n"
	"github.com/bilingual-invoicing/pkg/invoice"
	"github.com/bilingual-invoicing/pkg/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

type printPage struct {
	FileName string
	DataURI  template.URL
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.ExecuteTemplate(w, "index.html", nil); err != nil {
		s.logger.Error("index template failed", zap.Error(err))
	}
}

// generateInvoice builds and renders an invoice PDF.
//
// @Summary      Generate an invoice document
// @Description  Builds an invoice PDF from the posted data. lang selects Arabic, English, or a bilingual document with a page break between the two; action controls delivery only, never document content.
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Param        lang     query  string           false  "Document language"  Enums(ar, en, both)  default(en)
// @Param        action   query  string           false  "Dispatch action"    Enums(download, print, open)  default(download)
// @Param        invoice  body   invoice.Invoice  true   "Invoice data"
// @Success      200  {file}    file
// @Failure      400  {object}  server.errorResponse
// @Failure      500  {object}  server.errorResponse
// @Router       /generate-invoice [post]
func (s *Server) generateInvoice(w http.ResponseWriter, r *http.Request) {
	var inv invoice.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid invoice payload: "+err.Error())
		return
	}
	sel, err := i18n.ParseSelection(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	action, err := render.ParseAction(r.URL.Query().Get("action"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := builder.Assemble(inv, sel)
	if err != nil {
		s.logger.Error("invoice assembly failed",
			zap.String("invoice", inv.InvoiceNumber), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not assemble invoice document")
		return
	}

	bundle := s.fonts.Load(r.Context())
	data, result, err := render.PDF(doc, bundle)
	if err != nil {
		s.logger.Error("invoice render failed",
			zap.String("invoice", inv.InvoiceNumber), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not render invoice document")
		return
	}
	if result.UsedFallbackFont {
		w.Header().Set("X-Font-Fallback", "true")
	}

	name := render.Filename(inv.InvoiceNumber)
	switch action {
	case render.ActionDownload, render.ActionOpen:
		disposition := "attachment"
		if action == render.ActionOpen {
			disposition = "inline"
		}
		w.Header().Set("Content-Disposition", disposition+"; filename="+name)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Write(data)
	case render.ActionPrint:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := printPage{
			FileName: name,
			DataURI:  template.URL("data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data)),
		}
		if err := pages.ExecuteTemplate(w, "print.html", page); err != nil {
			s.logger.Error("print template failed", zap.Error(err))
		}
	}

	s.logger.Info("invoice generated",
		zap.String("invoice", inv.InvoiceNumber),
		zap.String("action", string(action)),
		zap.Int("bytes", len(data)),
		zap.Bool("fallbackFont", result.UsedFallbackFont),
	)
}
