package export

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Heykelog/PenSH/pkg/metrics"
	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/render"
)

// ErrUnknownFormat rejects format selectors outside pdf/xlsx/docx.
var ErrUnknownFormat = errors.New("export: unknown format")

// Format selects the output container.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
	FormatDOCX Format = "docx"
)

// ParseFormat normalizes a user-supplied format selector.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatPDF, FormatXLSX, FormatDOCX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string { return string(f) }

// MediaType returns the content type served with the document.
func (f Format) MediaType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}

// Branding carries the fixed page-decoration strings of the PDF
// header and footer.
type Branding struct {
	Organization    string
	Badge           string
	Copyright       string
	Confidentiality string
}

// DefaultBranding returns the stock decoration.
func DefaultBranding() Branding {
	return Branding{
		Organization:    "PENSH GÜVENLİK",
		Badge:           "PENTEST",
		Copyright:       "© 2026 PenSH - Tüm hakları saklıdır",
		Confidentiality: "GİZLİ BELGE",
	}
}

// Options configures an Exporter. The zero value works; Now defaults
// to the wall clock at export time.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Collector
	Branding Branding
	Now      func() time.Time

	// IncludeLogo embeds the report's uploaded logo on the PDF cover.
	IncludeLogo bool
}

// Document is one finished export.
type Document struct {
	Data      []byte
	Filename  string
	MediaType string

	// Disposition is the ready-to-send Content-Disposition value.
	Disposition string
}

// Exporter renders reports into downloadable documents. It holds no
// per-render state; concurrent Export calls are safe.
type Exporter struct {
	opts Options
}

// New creates an Exporter. Zero-value branding falls back to the
// defaults.
func New(opts Options) *Exporter {
	if opts.Branding == (Branding{}) {
		opts.Branding = DefaultBranding()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Exporter{opts: opts}
}

// Export validates the input, composes the block list and hands it to
// the requested backend. Input-shape problems fail before any bytes
// are produced; a backend failure surfaces as a single wrapped error
// with no partial document.
func (e *Exporter) Export(r *model.Report, findings []*model.Finding, format Format) (*Document, error) {
	start := time.Now()
	doc, err := e.export(r, findings, format)

	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	e.opts.Metrics.ObserveExport(string(format), status, time.Since(start))

	if err != nil {
		e.logger().Error("export failed", "format", format, "error", err)
		return nil, err
	}
	e.logger().Info("export finished",
		"format", format,
		"report_id", r.ID,
		"findings", len(findings),
		"bytes", len(doc.Data),
		"elapsed", time.Since(start))
	return doc, nil
}

func (e *Exporter) export(r *model.Report, findings []*model.Finding, format Format) (*Document, error) {
	format, err := ParseFormat(string(format))
	if err != nil {
		return nil, err
	}
	if err := model.ValidateAll(r, findings); err != nil {
		return nil, err
	}

	ordered := model.SortedFindings(findings)
	blocks := render.Compose(r, ordered, render.Options{
		Now:         e.opts.Now(),
		IncludeLogo: e.opts.IncludeLogo,
	})

	var data []byte
	switch format {
	case FormatPDF:
		data, err = e.renderPDF(r, blocks)
	case FormatXLSX:
		data, err = e.renderXLSX(r, ordered)
	case FormatDOCX:
		data, err = renderDOCX(blocks)
	}
	if err != nil {
		return nil, err
	}

	filename := DownloadFilename(r.Title, format)
	return &Document{
		Data:        data,
		Filename:    filename,
		MediaType:   format.MediaType(),
		Disposition: ContentDisposition(filename, format),
	}, nil
}

func (e *Exporter) logger() *slog.Logger {
	if e.opts.Logger != nil {
		return e.opts.Logger
	}
	return slog.Default()
}
