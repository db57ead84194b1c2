package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/Heykelog/PenSH/pkg/render"
)

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>`

const docxRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const docxDocumentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>`

const docxStyles = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"/><w:sz w:val="22"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Title">
    <w:name w:val="Title"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="240" w:after="240"/><w:jc w:val="center"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="48"/><w:color w:val="006633"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="32"/><w:color w:val="006633"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading2">
    <w:name w:val="heading 2"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="200" w:after="100"/><w:outlineLvl w:val="1"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="26"/><w:color w:val="424242"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading3">
    <w:name w:val="heading 3"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="160" w:after="80"/><w:outlineLvl w:val="2"/></w:pPr>
    <w:rPr><w:b/><w:sz w:val="24"/><w:color w:val="424242"/></w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="NoSpacing">
    <w:name w:val="No Spacing"/>
    <w:basedOn w:val="Normal"/>
    <w:pPr><w:spacing w:before="0" w:after="0"/></w:pPr>
    <w:rPr><w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="16"/></w:rPr>
  </w:style>
  <w:style w:type="table" w:styleId="TableGrid">
    <w:name w:val="Table Grid"/>
    <w:tblPr>
      <w:tblBorders>
        <w:top w:val="single" w:sz="4" w:color="999999"/>
        <w:left w:val="single" w:sz="4" w:color="999999"/>
        <w:bottom w:val="single" w:sz="4" w:color="999999"/>
        <w:right w:val="single" w:sz="4" w:color="999999"/>
        <w:insideH w:val="single" w:sz="4" w:color="999999"/>
        <w:insideV w:val="single" w:sz="4" w:color="999999"/>
      </w:tblBorders>
    </w:tblPr>
  </w:style>
</w:styles>`

// renderDOCX assembles a minimal WordprocessingML package from the
// composed block list, so its content tracks the other formats by
// construction.
func renderDOCX(blocks []render.Block) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRootRels},
		{"word/_rels/document.xml.rels", docxDocumentRels},
		{"word/styles.xml", docxStyles},
		{"word/document.xml", buildDocumentXML(blocks)},
	}
	for _, p := range parts {
		w, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("docx: %w", err)
		}
		if _, err := w.Write([]byte(p.body)); err != nil {
			return nil, fmt.Errorf("docx: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx: %w", err)
	}
	return buf.Bytes(), nil
}

func buildDocumentXML(blocks []render.Block) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)

	for _, b := range blocks {
		switch b.Kind {
		case render.KindHeading:
			writeHeadingXML(&sb, b)
		case render.KindParagraph:
			writeParagraphXML(&sb, b)
		case render.KindTable:
			writeTableXML(&sb, b.Table)
		case render.KindCodeBlock:
			writeCodeXML(&sb, b)
		case render.KindImage:
			writeImageXML(&sb, b)
		case render.KindPageBreak:
			sb.WriteString(`<w:p><w:r><w:br w:type="page"/></w:r></w:p>`)
		}
	}

	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/><w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)
	return sb.String()
}

func headingStyleID(level int) string {
	switch level {
	case 0:
		return "Title"
	case 1:
		return "Heading1"
	case 2:
		return "Heading2"
	default:
		return "Heading3"
	}
}

func writeHeadingXML(sb *strings.Builder, b render.Block) {
	sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="` + headingStyleID(b.Level) + `"/>`)
	if b.Center && b.Level != 0 {
		sb.WriteString(`<w:jc w:val="center"/>`)
	}
	sb.WriteString(`</w:pPr>`)
	writeRunsXML(sb, b.Text, runProps{})
	sb.WriteString(`</w:p>`)
}

type runProps struct {
	bold   bool
	italic bool
	color  string
}

func (p runProps) xml() string {
	if !p.bold && !p.italic && p.color == "" {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<w:rPr>`)
	if p.bold {
		sb.WriteString(`<w:b/>`)
	}
	if p.italic {
		sb.WriteString(`<w:i/>`)
	}
	if p.color != "" {
		sb.WriteString(`<w:color w:val="` + p.color + `"/>`)
	}
	sb.WriteString(`</w:rPr>`)
	return sb.String()
}

// writeRunsXML emits one run per line, separated by soft line breaks.
func writeRunsXML(sb *strings.Builder, text string, props runProps) {
	lines := strings.Split(text, "\n")
	rpr := props.xml()
	for i, line := range lines {
		if i > 0 {
			sb.WriteString(`<w:r>` + rpr + `<w:br/></w:r>`)
		}
		sb.WriteString(`<w:r>` + rpr + `<w:t xml:space="preserve">` + xmlEscape(line) + `</w:t></w:r>`)
	}
}

func writeParagraphXML(sb *strings.Builder, b render.Block) {
	props := runProps{bold: b.Bold, italic: b.Italic}
	if b.Badge != "" {
		fill := render.StyleFor(b.Badge).Fill
		props.bold = true
		props.color = fmt.Sprintf("%02X%02X%02X", fill.R, fill.G, fill.B)
	}

	sb.WriteString(`<w:p>`)
	var ppr strings.Builder
	if b.Center {
		ppr.WriteString(`<w:jc w:val="center"/>`)
	}
	if b.Indent {
		ppr.WriteString(`<w:ind w:left="420"/>`)
	}
	if b.Boxed {
		ppr.WriteString(`<w:pBdr><w:top w:val="single" w:sz="4" w:color="00A651"/><w:left w:val="single" w:sz="4" w:color="00A651"/><w:bottom w:val="single" w:sz="4" w:color="00A651"/><w:right w:val="single" w:sz="4" w:color="00A651"/></w:pBdr><w:shd w:val="clear" w:fill="F5F5F5"/>`)
	}
	if s := ppr.String(); s != "" {
		sb.WriteString(`<w:pPr>` + s + `</w:pPr>`)
	}
	writeRunsXML(sb, b.Text, props)
	sb.WriteString(`</w:p>`)
}

func writeTableXML(sb *strings.Builder, t *render.Table) {
	if t == nil || len(t.Header) == 0 {
		return
	}
	head := fmt.Sprintf("%02X%02X%02X", 0, 0x66, 0x33)
	if t.Theme == render.ThemeSecondary {
		head = "00A651"
	} else if t.Theme == render.ThemeAccent {
		head = "D32F2F"
	}

	sb.WriteString(`<w:tbl><w:tblPr><w:tblStyle w:val="TableGrid"/><w:tblW w:w="5000" w:type="pct"/></w:tblPr>`)

	sb.WriteString(`<w:tr>`)
	for _, h := range t.Header {
		sb.WriteString(`<w:tc><w:tcPr><w:shd w:val="clear" w:fill="` + head + `"/></w:tcPr><w:p>`)
		writeRunsXML(sb, h, runProps{bold: true, color: "FFFFFF"})
		sb.WriteString(`</w:p></w:tc>`)
	}
	sb.WriteString(`</w:tr>`)

	for _, row := range t.Rows {
		sb.WriteString(`<w:tr>`)
		for _, cell := range row {
			props := runProps{}
			if cell.Badge != "" {
				fill := render.StyleFor(cell.Badge).Fill
				props.bold = true
				props.color = fmt.Sprintf("%02X%02X%02X", fill.R, fill.G, fill.B)
			}
			sb.WriteString(`<w:tc><w:p>`)
			writeRunsXML(sb, cell.Text, props)
			sb.WriteString(`</w:p></w:tc>`)
		}
		sb.WriteString(`</w:tr>`)
	}
	sb.WriteString(`</w:tbl><w:p/>`)
}

func writeCodeXML(sb *strings.Builder, b render.Block) {
	if b.Label != "" {
		sb.WriteString(`<w:p>`)
		writeRunsXML(sb, b.Label, runProps{bold: true, color: "1F2937"})
		sb.WriteString(`</w:p>`)
	}
	for _, line := range strings.Split(b.Text, "\n") {
		sb.WriteString(`<w:p><w:pPr><w:pStyle w:val="NoSpacing"/></w:pPr>`)
		sb.WriteString(`<w:r><w:t xml:space="preserve">` + xmlEscape(line) + `</w:t></w:r>`)
		sb.WriteString(`</w:p>`)
	}
	sb.WriteString(`<w:p/>`)
}

// Embedded media is out of scope for the Word output; a placeholder
// keeps the figure position and name visible.
func writeImageXML(sb *strings.Builder, b render.Block) {
	if b.Image == nil {
		return
	}
	sb.WriteString(`<w:p>`)
	writeRunsXML(sb, "[Şekil: "+b.Image.Name+"]", runProps{italic: true})
	sb.WriteString(`</w:p>`)
	if b.Image.Caption != "" {
		sb.WriteString(`<w:p>`)
		writeRunsXML(sb, b.Image.Caption, runProps{italic: true})
		sb.WriteString(`</w:p>`)
	}
}

func xmlEscape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		case '\t':
			sb.WriteString("  ")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
