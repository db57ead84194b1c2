package export

import (
	"bytes"
	"fmt"
	"log/slog"

	gofpdf "github.com/go-pdf/fpdf"

	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/render"
)

// Page geometry in millimeters.
const (
	pdfMarginLeft   = 14.0
	pdfMarginTop    = 32.0
	pdfMarginRight  = 14.0
	pdfMarginBottom = 28.0
	pdfHeaderHeight = 24.0
	pdfFooterY      = 272.0

	// Points to millimeters, for image boxes sized in points.
	ptToMM = 25.4 / 72.0
)

// pdfRenderer drives one render call. A fresh instance per call keeps
// concurrent exports isolated.
type pdfRenderer struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	links    map[string]int
	branding Branding
	log      *slog.Logger
}

func (e *Exporter) renderPDF(r *model.Report, blocks []render.Block) ([]byte, error) {
	pr := &pdfRenderer{
		links:    make(map[string]int),
		branding: e.opts.Branding,
		log:      e.logger(),
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pr.pdf = pdf
	pr.tr = pdf.UnicodeTranslatorFromDescriptor("cp1254")

	pdf.SetTitle(r.Title, true)
	pdf.SetAuthor(fallbackStr(r.TesterName, "PenSH"), true)
	pdf.SetCreator("PenSH - Penetrasyon Testi Rapor Yönetim Sistemi", true)
	pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	pdf.SetAutoPageBreak(true, pdfMarginBottom)
	pdf.SetHeaderFuncMode(pr.header, true)
	pdf.SetFooterFunc(pr.footer)
	pdf.AddPage()

	for _, b := range blocks {
		pr.renderBlock(b)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("pdf: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (pr *pdfRenderer) header() {
	pdf := pr.pdf
	pageW, _ := pdf.GetPageSize()

	pdf.SetFillColor(int(render.ColorLightGray.R), int(render.ColorLightGray.G), int(render.ColorLightGray.B))
	pdf.Rect(0, 0, pageW, pdfHeaderHeight, "F")

	pdf.SetTextColor(int(render.ColorPrimary.R), int(render.ColorPrimary.G), int(render.ColorPrimary.B))
	pdf.SetFont("Helvetica", "B", 15)
	pdf.Text(pdfMarginLeft, 15, pr.tr(pr.branding.Organization))

	// Report type badge, right-aligned.
	badgeW := 34.0
	pdf.SetFillColor(int(render.ColorBadgeBlue.R), int(render.ColorBadgeBlue.G), int(render.ColorBadgeBlue.B))
	pdf.Rect(pageW-pdfMarginRight-badgeW, 7, badgeW, 9, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(pageW-pdfMarginRight-badgeW+5, 13.5, pr.tr(pr.branding.Badge))

	pdf.SetDrawColor(int(render.ColorSecondary.R), int(render.ColorSecondary.G), int(render.ColorSecondary.B))
	pdf.SetLineWidth(0.6)
	pdf.Line(pdfMarginLeft, pdfHeaderHeight, pageW-pdfMarginRight, pdfHeaderHeight)
}

func (pr *pdfRenderer) footer() {
	pdf := pr.pdf
	pageW, _ := pdf.GetPageSize()

	pdf.SetDrawColor(int(render.ColorSecondary.R), int(render.ColorSecondary.G), int(render.ColorSecondary.B))
	pdf.SetLineWidth(0.3)
	pdf.Line(pdfMarginLeft, pdfFooterY, pageW-pdfMarginRight, pdfFooterY)

	pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(pdfMarginLeft, pdfFooterY+6, pr.tr(pr.branding.Copyright))

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(int(render.ColorPrimary.R), int(render.ColorPrimary.G), int(render.ColorPrimary.B))
	notice := pr.tr(pr.branding.Confidentiality)
	pdf.Text((pageW-pdf.GetStringWidth(notice))/2, pdfFooterY+6, notice)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
	page := fmt.Sprintf("Sayfa %d", pdf.PageNo())
	pdf.Text(pageW-pdfMarginRight-pdf.GetStringWidth(page), pdfFooterY+6, page)
}

// linkID returns the internal link id for an anchor, creating it on
// first use so forward references from the contents page work.
func (pr *pdfRenderer) linkID(anchor string) int {
	if id, ok := pr.links[anchor]; ok {
		return id
	}
	id := pr.pdf.AddLink()
	pr.links[anchor] = id
	return id
}

func (pr *pdfRenderer) contentWidth() float64 {
	pageW, _ := pr.pdf.GetPageSize()
	return pageW - pdfMarginLeft - pdfMarginRight
}

func (pr *pdfRenderer) renderBlock(b render.Block) {
	switch b.Kind {
	case render.KindHeading:
		pr.renderHeading(b)
	case render.KindParagraph:
		pr.renderParagraph(b)
	case render.KindTable:
		pr.renderTable(b.Table)
	case render.KindImage:
		pr.renderImage(b)
	case render.KindCodeBlock:
		pr.renderCode(b)
	case render.KindPageBreak:
		pr.pdf.AddPage()
	}
}

func (pr *pdfRenderer) renderHeading(b render.Block) {
	pdf := pr.pdf
	if b.Anchor != "" {
		pdf.SetLink(pr.linkID(b.Anchor), -1, -1)
	}

	align := "L"
	if b.Center {
		align = "C"
	}

	switch b.Level {
	case 0:
		pdf.SetFont("Helvetica", "B", 24)
		pdf.SetTextColor(int(render.ColorPrimary.R), int(render.ColorPrimary.G), int(render.ColorPrimary.B))
		pdf.MultiCell(0, 11, pr.tr(b.Text), "", align, false)
		pdf.Ln(4)
	case 1:
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 15)
		pdf.SetTextColor(int(render.ColorPrimary.R), int(render.ColorPrimary.G), int(render.ColorPrimary.B))
		pdf.SetFillColor(int(render.ColorLightGray.R), int(render.ColorLightGray.G), int(render.ColorLightGray.B))
		pdf.MultiCell(0, 10, pr.tr(b.Text), "", align, true)
		pdf.Ln(3)
	case 2:
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
		pdf.MultiCell(0, 7, pr.tr(b.Text), "", align, false)
		pdf.Ln(1)
	default:
		pdf.Ln(1)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
		pdf.MultiCell(0, 6, pr.tr(b.Text), "", align, false)
	}
}

func (pr *pdfRenderer) renderParagraph(b render.Block) {
	pdf := pr.pdf

	if b.Badge != "" {
		pr.renderBadge(b)
		return
	}

	style := ""
	if b.Bold {
		style = "B"
	}
	if b.Italic {
		style += "I"
	}
	pdf.SetFont("Helvetica", style, 10)

	switch {
	case b.Boxed:
		pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
		pdf.SetFillColor(int(render.ColorLightGray.R), int(render.ColorLightGray.G), int(render.ColorLightGray.B))
		pdf.SetDrawColor(int(render.ColorSecondary.R), int(render.ColorSecondary.G), int(render.ColorSecondary.B))
		pdf.MultiCell(0, 5.5, pr.tr(b.Text), "1", "L", true)
		pdf.Ln(2)
	case b.LinkTo != "":
		if b.Indent {
			pdf.SetX(pdfMarginLeft + 8)
			pdf.SetFont("Helvetica", "", 10)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(0, 6.5, pr.tr(b.Text), "", 1, "L", false, pr.linkID(b.LinkTo), "")
	default:
		pdf.SetTextColor(0, 0, 0)
		align := "L"
		if b.Center {
			align = "C"
		}
		pdf.MultiCell(0, 5.5, pr.tr(b.Text), "", align, false)
		pdf.Ln(1)
	}
}

func (pr *pdfRenderer) renderBadge(b render.Block) {
	pdf := pr.pdf
	style := render.StyleFor(b.Badge)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(int(style.Fill.R), int(style.Fill.G), int(style.Fill.B))
	pdf.SetTextColor(int(style.Text.R), int(style.Text.G), int(style.Text.B))
	w := pdf.GetStringWidth(pr.tr(b.Text)) + 8
	pdf.CellFormat(w, 7, pr.tr(b.Text), "", 1, "C", true, 0, "")
	pdf.Ln(2)
}

func themeColor(theme render.TableTheme) render.RGB {
	switch theme {
	case render.ThemeSecondary:
		return render.ColorSecondary
	case render.ThemeAccent:
		return render.ColorAccent
	default:
		return render.ColorPrimary
	}
}

func (pr *pdfRenderer) renderTable(t *render.Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}
	pdf := pr.pdf

	widths := pr.columnWidths(t)
	head := themeColor(t.Theme)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(int(head.R), int(head.G), int(head.B))
	pdf.SetTextColor(255, 255, 255)
	for i, h := range t.Header {
		pdf.CellFormat(widths[i], 8, pr.tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for rowIdx, row := range t.Rows {
		if rowIdx%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(int(render.ColorLightGray.R), int(render.ColorLightGray.G), int(render.ColorLightGray.B))
		}
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pr.renderCell(cell, widths[i])
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
}

func (pr *pdfRenderer) renderCell(c render.Cell, w float64) {
	pdf := pr.pdf
	text := pr.tr(truncateCell(c.Text, w))

	switch {
	case c.Badge != "":
		style := render.StyleFor(c.Badge)
		pdf.SetFillColor(int(style.Fill.R), int(style.Fill.G), int(style.Fill.B))
		pdf.SetTextColor(int(style.Text.R), int(style.Text.G), int(style.Text.B))
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(w, 7, text, "1", 0, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	case c.LinkTo != "":
		pdf.SetTextColor(int(render.ColorBadgeBlue.R), int(render.ColorBadgeBlue.G), int(render.ColorBadgeBlue.B))
		pdf.CellFormat(w, 7, text, "1", 0, "L", true, pr.linkID(c.LinkTo), "")
	default:
		pdf.SetTextColor(60, 60, 60)
		pdf.CellFormat(w, 7, text, "1", 0, "L", true, 0, "")
	}
	pdf.SetTextColor(60, 60, 60)
}

func (pr *pdfRenderer) columnWidths(t *render.Table) []float64 {
	n := len(t.Header)
	widths := make([]float64, n)
	content := pr.contentWidth()

	if len(t.Widths) != n {
		for i := range widths {
			widths[i] = content / float64(n)
		}
		return widths
	}

	var total float64
	for _, w := range t.Widths {
		total += w
	}
	for i, w := range t.Widths {
		widths[i] = content * w / total
	}
	return widths
}

// truncateCell keeps single-line table cells from overflowing their
// column; width drives a rough character budget.
func truncateCell(s string, w float64) string {
	budget := int(w / 1.8)
	if budget < 4 {
		budget = 4
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget-3]) + "..."
}

func (pr *pdfRenderer) renderImage(b render.Block) {
	pdf := pr.pdf
	img := b.Image
	if img == nil {
		return
	}

	wPt, hPt, err := render.FitFile(img.Path, img.MaxWidth, img.MaxHeight)
	if err != nil {
		pr.log.Warn("image could not be embedded", "image", img.Name, "path", img.Path, "error", err)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
		pdf.MultiCell(0, 5.5, pr.tr("Resim yüklenemedi: "+img.Name), "", "L", false)
		pdf.Ln(1)
		return
	}

	wMM, hMM := wPt*ptToMM, hPt*ptToMM
	if max := pr.contentWidth(); wMM > max {
		hMM = hMM * max / wMM
		wMM = max
	}

	x := pdfMarginLeft
	if b.Center {
		x = pdfMarginLeft + (pr.contentWidth()-wMM)/2
	}
	pdf.ImageOptions(img.Path, x, pdf.GetY()+1, wMM, hMM, true, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	pdf.Ln(2)

	if img.Caption != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(int(render.ColorDarkGray.R), int(render.ColorDarkGray.G), int(render.ColorDarkGray.B))
		pdf.MultiCell(0, 5, pr.tr(img.Caption), "", "L", false)
		pdf.Ln(1)
	}
}

func (pr *pdfRenderer) renderCode(b render.Block) {
	pdf := pr.pdf

	if b.Label != "" {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(0x1f, 0x29, 0x37)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(0, 6.5, pr.tr("> "+b.Label), "", 1, "L", true, 0, "")
	}

	pdf.SetFont("Courier", "", 8)
	pdf.SetFillColor(0xf9, 0xfa, 0xfb)
	pdf.SetTextColor(0x1f, 0x29, 0x37)
	pdf.SetDrawColor(0xe5, 0xe7, 0xeb)
	pdf.MultiCell(0, 4, pr.tr(b.Text), "1", "L", true)
	pdf.Ln(2)
}

func fallbackStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
