package render

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heykelog/PenSH/pkg/model"
)

func testReport() *model.Report {
	return &model.Report{
		ID:         1,
		Title:      "Acme Web Uygulaması Sızma Testi",
		ClientName: "Acme A.Ş.",
		TestDate:   "12-16 Mayıs 2025",
		TesterName: "Deniz Yılmaz",
		Scope:      "https://app.acme.example",
	}
}

func testFindings() []*model.Finding {
	return []*model.Finding{
		{
			ID: 7, ReportID: 1, Title: "SQL Enjeksiyonu", Description: "Login formu filtrelenmiyor.",
			RiskLevel: model.RiskCritical, OwaspCategory: model.Injection, DisplayOrder: 1,
			Solution: "Prepared statement kullanın.", CVSSScore: "9.8", CWEID: "CWE-89",
		},
		{
			ID: 3, ReportID: 1, Title: "Eksik Güvenlik Başlıkları", Description: "CSP yok.",
			RiskLevel: model.RiskLow, DisplayOrder: 2,
		},
	}
}

func composeOpts() Options {
	return Options{Now: time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)}
}

func blocksOfKind(blocks []Block, kind Kind) []Block {
	var out []Block
	for _, b := range blocks {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

func findTable(t *testing.T, blocks []Block, header0 string) *Table {
	t.Helper()
	for _, b := range blocksOfKind(blocks, KindTable) {
		if len(b.Table.Header) > 0 && b.Table.Header[0] == header0 {
			return b.Table
		}
	}
	t.Fatalf("no table with first header %q", header0)
	return nil
}

func TestComposeIsDeterministic(t *testing.T) {
	report := testReport()
	findings := testFindings()

	first := Compose(report, findings, composeOpts())
	second := Compose(report, findings, composeOpts())
	assert.Equal(t, first, second)
}

func TestComposeDoesNotMutateInput(t *testing.T) {
	findings := []*model.Finding{
		{ID: 2, Title: "B", Description: "d", RiskLevel: model.RiskLow, DisplayOrder: 5},
		{ID: 1, Title: "A", Description: "d", RiskLevel: model.RiskHigh, DisplayOrder: 1},
	}
	Compose(testReport(), findings, composeOpts())
	assert.Equal(t, 2, findings[0].ID, "caller's slice order must survive")
}

func TestFindingsSummaryCanonicalOrder(t *testing.T) {
	findings := []*model.Finding{
		{ID: 9, Title: "Üçüncü", Description: "d", RiskLevel: model.RiskLow, DisplayOrder: 2},
		{ID: 5, Title: "İkinci", Description: "d", RiskLevel: model.RiskMedium, DisplayOrder: 1},
		{ID: 2, Title: "Birinci", Description: "d", RiskLevel: model.RiskHigh, DisplayOrder: 1},
	}
	blocks := Compose(testReport(), findings, composeOpts())

	table := findTable(t, blocks, "#")
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Birinci", table.Rows[0][1].Text)
	assert.Equal(t, "İkinci", table.Rows[1][1].Text)
	assert.Equal(t, "Üçüncü", table.Rows[2][1].Text)

	// Title cells link at the detailed entries.
	assert.Equal(t, FindingAnchor(2), table.Rows[0][1].LinkTo)
	assert.Equal(t, "HIGH", table.Rows[0][2].Text)
	assert.Equal(t, model.RiskHigh, table.Rows[0][2].Badge)
}

func TestHistogramAllLevelsListed(t *testing.T) {
	rows := BuildHistogram(testFindings())
	require.Len(t, rows, 5)

	assert.Equal(t, model.RiskCritical, rows[0].Level)
	assert.Equal(t, 1, rows[0].Count)
	assert.InDelta(t, 50.0, rows[0].Percent, 0.001)

	assert.Equal(t, model.RiskHigh, rows[1].Level)
	assert.Equal(t, 0, rows[1].Count)
	assert.Equal(t, 0.0, rows[1].Percent)
}

func TestComposeZeroFindings(t *testing.T) {
	blocks := Compose(testReport(), nil, composeOpts())

	table := findTable(t, blocks, "Risk Seviyesi")
	require.Len(t, table.Rows, 5)
	for _, row := range table.Rows {
		assert.Equal(t, "0", row[1].Text)
		assert.Equal(t, "0.0%", row[2].Text)
	}

	var notices int
	for _, b := range blocksOfKind(blocks, KindParagraph) {
		if b.Text == noFindingsNotice {
			notices++
		}
	}
	assert.Equal(t, 2, notices, "summary and detailed sections both carry the notice")
}

func TestContentsListsFindingSubEntries(t *testing.T) {
	findings := testFindings()
	blocks := Compose(testReport(), findings, composeOpts())

	var subEntries []Block
	for _, b := range blocks {
		if b.Indent {
			subEntries = append(subEntries, b)
		}
	}
	require.Len(t, subEntries, 2)
	assert.Equal(t, "3.1 SQL Enjeksiyonu", subEntries[0].Text)
	assert.Equal(t, FindingAnchor(7), subEntries[0].LinkTo)
	assert.Equal(t, "3.2 Eksik Güvenlik Başlıkları", subEntries[1].Text)

	// No findings, no sub-entries.
	for _, b := range Compose(testReport(), nil, composeOpts()) {
		assert.False(t, b.Indent)
	}
}

func TestDetailedFindingSubsections(t *testing.T) {
	full := &model.Finding{
		ID: 1, Title: "Tam Bulgu", Description: "açıklama", AffectedArea: "alan",
		Impact: "etki", StepsToReproduce: "adım bir", Solution: "çözüm",
		RiskLevel: model.RiskHigh, OwaspCategory: model.SSRF,
		CVSSScore: "8.1", CWEID: "CWE-918", Refs: "https://ref.example",
		Request: "GET / HTTP/1.1", Response: "HTTP/1.1 200 OK",
	}
	sparse := &model.Finding{
		ID: 2, Title: "Asgari Bulgu", Description: "sadece açıklama", RiskLevel: model.RiskInfo,
	}

	labels := func(f *model.Finding) map[string]bool {
		out := make(map[string]bool)
		for _, b := range oneFindingBlocks(1, f) {
			if b.Kind == KindParagraph && b.Bold && !b.Boxed {
				out[b.Text] = true
			}
		}
		return out
	}

	fullLabels := labels(full)
	for _, want := range []string{
		"Açıklama:", "Etkilenen Alan:", "Etki:", "Adım Adım (Step-by-Step):",
		"Çözüm Önerisi:", "Teknik Detaylar:", "OWASP Referans Bilgileri:",
		"Ek Referanslar:", "Request/Response Örneği:",
	} {
		assert.True(t, fullLabels[want], "missing subsection %q", want)
	}

	sparseLabels := labels(sparse)
	assert.True(t, sparseLabels["Açıklama:"])
	assert.False(t, sparseLabels["Etki:"])
	assert.False(t, sparseLabels["Request/Response Örneği:"])
	assert.False(t, sparseLabels["OWASP Referans Bilgileri:"])

	// Request and response render as labeled code blocks.
	var codeLabels []string
	for _, b := range blocksOfKind(oneFindingBlocks(1, full), KindCodeBlock) {
		codeLabels = append(codeLabels, b.Label)
	}
	assert.Equal(t, []string{"REQUEST", "RESPONSE"}, codeLabels)
}

func TestGallerySkipsImagesReferencedInSteps(t *testing.T) {
	finding := &model.Finding{
		ID: 1, Title: "Bulgu", Description: "d", RiskLevel: model.RiskMedium,
		StepsToReproduce: "Adım bir\na.png",
		POCImages: []*model.POCImage{
			{ID: 1, OriginalFilename: "a.png", FilePath: "/uploads/a.png"},
			{ID: 2, OriginalFilename: "b.png", FilePath: "/uploads/b.png"},
		},
	}

	blocks := oneFindingBlocks(1, finding)
	var gallery []string
	for _, b := range blocksOfKind(blocks, KindImage) {
		if b.Image.Caption != "" {
			gallery = append(gallery, b.Image.Name)
		}
	}
	assert.Equal(t, []string{"b.png"}, gallery)

	// The referenced image still appears inline, without a caption.
	var inline []string
	for _, b := range blocksOfKind(blocks, KindImage) {
		if b.Image.Caption == "" {
			inline = append(inline, b.Image.Name)
		}
	}
	assert.Equal(t, []string{"a.png"}, inline)
}

func TestGalleryOmittedWhenAllImagesReferenced(t *testing.T) {
	finding := &model.Finding{
		ID: 1, Title: "Bulgu", Description: "d", RiskLevel: model.RiskMedium,
		StepsToReproduce: "a.png",
		POCImages: []*model.POCImage{
			{ID: 1, OriginalFilename: "a.png", FilePath: "/uploads/a.png"},
		},
	}
	for _, b := range oneFindingBlocks(1, finding) {
		assert.NotEqual(t, "POC Ekran Görüntüleri:", b.Text)
	}
}

func TestPageBreakBetweenFindingsOnly(t *testing.T) {
	findings := testFindings()
	blocks := detailedFindingBlocks(model.SortedFindings(findings))

	breaks := blocksOfKind(blocks, KindPageBreak)
	assert.Len(t, breaks, len(findings)-1)
}

func TestMethodologyDefaultsWhenUnset(t *testing.T) {
	report := testReport()
	blocks := methodologyBlocks(report)
	assert.Greater(t, len(blocksOfKind(blocks, KindTable)), 2, "default methodology carries reference tables")

	report.Methodology = "Black-box test uygulandı."
	custom := methodologyBlocks(report)
	assert.Empty(t, blocksOfKind(custom, KindTable))
	assert.Equal(t, "Black-box test uygulandı.", custom[1].Text)
}

func TestStyleForFallsBackToInfo(t *testing.T) {
	assert.Equal(t, "CRITICAL", StyleFor(model.RiskCritical).Label)
	assert.Equal(t, StyleFor(model.RiskInfo), StyleFor("garbage"))
}

func TestFindingAnchor(t *testing.T) {
	assert.Equal(t, "finding_42", FindingAnchor(42))
	assert.Equal(t, fmt.Sprintf("finding_%d", 7), FindingAnchor(7))
}
