// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"slidepress/internal/models"
	"slidepress/internal/render"
)

// pdfTimeout bounds a single Chrome print run, including remote image
// loads inside the page.
const pdfTimeout = 60 * time.Second

// PDFExporter rasterizes the print page of a presentation with headless
// Chrome. Using the same HTML the browser shows keeps the PDF faithful
// to the preview.
type PDFExporter struct {
	renderer *render.Renderer
}

// NewPDFExporter returns a PDF exporter backed by the given renderer.
func NewPDFExporter(renderer *render.Renderer) *PDFExporter {
	return &PDFExporter{renderer: renderer}
}

// Export renders the presentation to a landscape letter PDF, one page
// per slide.
func (e *PDFExporter) Export(ctx context.Context, p *models.Presentation) ([]byte, error) {
	var html bytes.Buffer
	if err := e.renderer.Print(&html, p); err != nil {
		return nil, fmt.Errorf("render print page: %w", err)
	}

	// Chrome needs a file URL; data URLs choke on large documents.
	tmp, err := os.CreateTemp("", "slidepress-*.html")
	if err != nil {
		return nil, fmt.Errorf("create temp html: %w", err)
	}
	htmlPath := tmp.Name()
	defer os.Remove(htmlPath)

	if _, err := tmp.Write(html.Bytes()); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp html: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp html: %w", err)
	}

	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()
	chromeCtx, cancel = context.WithTimeout(chromeCtx, pdfTimeout)
	defer cancel()

	absPath, err := filepath.Abs(htmlPath)
	if err != nil {
		return nil, err
	}

	var pdf []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("file://"+absPath),
		// Give remote slide images a moment to arrive before printing.
		chromedp.Sleep(2*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithLandscape(true).
				WithPaperWidth(11).
				WithPaperHeight(8.5).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}

	return pdf, nil
}
