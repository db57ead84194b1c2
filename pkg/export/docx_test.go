package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heykelog/PenSH/pkg/model"
)

func docxPart(t *testing.T, raw []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}
	t.Fatalf("part %q not found in package", name)
	return ""
}

func TestDOCXPackageStructure(t *testing.T) {
	doc, err := testExporter().Export(testReport(), testFindings(), FormatDOCX)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/_rels/document.xml.rels")
	assert.Contains(t, names, "word/styles.xml")
	assert.Contains(t, names, "word/document.xml")
}

func TestDOCXDocumentContent(t *testing.T) {
	doc, err := testExporter().Export(testReport(), testFindings(), FormatDOCX)
	require.NoError(t, err)
	body := docxPart(t, doc.Data, "word/document.xml")

	for _, want := range []string{
		"Acme Web Uygulaması Sızma Testi",
		"İÇİNDEKİLER",
		"YÖNETİCİ ÖZETİ",
		"SQL Enjeksiyonu",
		"Eksik Güvenlik Başlıkları",
		"METODOLOJİ",
		"ÖNERİLER VE SONUÇLAR",
	} {
		assert.Contains(t, body, want)
	}

	// Section order follows the composed block order.
	assert.Less(t,
		strings.Index(body, "YÖNETİCİ ÖZETİ"),
		strings.Index(body, "SQL Enjeksiyonu"))
	assert.Less(t,
		strings.Index(body, "SQL Enjeksiyonu"),
		strings.Index(body, "METODOLOJİ"))

	assert.Contains(t, body, `<w:br w:type="page"/>`)

	styles := docxPart(t, doc.Data, "word/styles.xml")
	assert.Contains(t, styles, `w:styleId="Heading1"`)
	assert.Contains(t, styles, `w:styleId="TableGrid"`)
}

func TestDOCXEscapesMarkup(t *testing.T) {
	findings := testFindings()
	findings[0].Description = `Payload: <script>alert("x & y")</script>`

	doc, err := testExporter().Export(testReport(), findings, FormatDOCX)
	require.NoError(t, err)
	body := docxPart(t, doc.Data, "word/document.xml")

	assert.Contains(t, body, "&lt;script&gt;alert(&quot;x &amp; y&quot;)&lt;/script&gt;")
	assert.NotContains(t, body, "<script>")
}

func TestDOCXImagePlaceholders(t *testing.T) {
	findings := testFindings()
	findings[0].POCImages = []*model.POCImage{
		{ID: 1, FindingID: 7, Filename: "abc.png", OriginalFilename: "poc.png", FilePath: "/uploads/abc.png"},
	}

	doc, err := testExporter().Export(testReport(), findings, FormatDOCX)
	require.NoError(t, err)
	body := docxPart(t, doc.Data, "word/document.xml")

	assert.Contains(t, body, "[Şekil: poc.png]")
	assert.Contains(t, body, "Şekil 1.1: POC Ekran Görüntüsü")
}

func TestDOCXNoFindingsNotice(t *testing.T) {
	doc, err := testExporter().Export(testReport(), nil, FormatDOCX)
	require.NoError(t, err)
	body := docxPart(t, doc.Data, "word/document.xml")

	assert.Contains(t, body, "bulgusu tespit edilmemiştir")
}

func TestDOCXTablesUseGridStyle(t *testing.T) {
	doc, err := testExporter().Export(testReport(), testFindings(), FormatDOCX)
	require.NoError(t, err)
	body := docxPart(t, doc.Data, "word/document.xml")

	assert.Contains(t, body, `<w:tblStyle w:val="TableGrid"/>`)
	assert.Contains(t, body, "Risk Seviyesi")
}
