// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"slidepress/internal/cache"
	"slidepress/internal/export"
	"slidepress/internal/layout"
	"slidepress/internal/middleware"
	"slidepress/internal/models"
	"slidepress/internal/storage"
	"slidepress/internal/store"
)

const pptxContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// Export groups the download handlers. Exports are built on demand from
// the cached presentation; when an S3 archive is configured, each
// download is also uploaded there, best effort.
type Export struct {
	pdf     *export.PDFExporter
	pptx    *export.PPTXBuilder
	cache   *cache.PresentationCache
	history *store.HistoryStore
	archive *storage.Client // nil when no archive is configured
}

// NewExport creates the Export handler group. archive may be nil.
func NewExport(pdf *export.PDFExporter, pptx *export.PPTXBuilder, pcache *cache.PresentationCache, history *store.HistoryStore, archive *storage.Client) *Export {
	return &Export{
		pdf:     pdf,
		pptx:    pptx,
		cache:   pcache,
		history: history,
		archive: archive,
	}
}

// PDF streams the presentation as a landscape PDF download.
func (e *Export) PDF(w http.ResponseWriter, r *http.Request) {
	p := e.lookup(w, r)
	if p == nil {
		return
	}

	data, err := e.pdf.Export(r.Context(), p)
	if err != nil {
		slog.Error("pdf export failed", "id", p.ID, "error", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}

	e.serve(w, r, p, data, "application/pdf", layout.ExportFileName(p.Topic, "pdf"))
}

// PPTX streams the presentation as a PowerPoint download.
func (e *Export) PPTX(w http.ResponseWriter, r *http.Request) {
	p := e.lookup(w, r)
	if p == nil {
		return
	}

	data, err := e.pptx.Build(r.Context(), p)
	if err != nil {
		slog.Error("pptx export failed", "id", p.ID, "error", err)
		http.Error(w, "Export failed", http.StatusInternalServerError)
		return
	}

	e.serve(w, r, p, data, pptxContentType, layout.ExportFileName(p.Topic, "pptx"))
}

// serve writes the download response and archives a copy when storage
// is configured. Archive failures never fail the download.
func (e *Export) serve(w http.ResponseWriter, r *http.Request, p *models.Presentation, data []byte, contentType, filename string) {
	if e.archive != nil {
		key := p.ID.String() + "/" + filename
		if err := e.archive.Upload(r.Context(), key, contentType, data); err != nil {
			slog.Error("export archive failed", "id", p.ID, "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// lookup resolves the {id} URL parameter, writing a 404 when it cannot.
func (e *Export) lookup(w http.ResponseWriter, r *http.Request) *models.Presentation {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil
	}

	sess := middleware.SessionFromCtx(r.Context())
	p := findPresentation(r.Context(), id, sess, e.cache, e.history)
	if p == nil {
		http.NotFound(w, r)
		return nil
	}
	return p
}
