package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/owasp"
)

// Section anchor names, shared across all backends.
const (
	AnchorExecutiveSummary = "executive_summary"
	AnchorFindingsSummary  = "findings_summary"
	AnchorDetailedFindings = "detailed_findings"
	AnchorMethodology      = "methodology"
	AnchorRecommendations  = "recommendations"
)

// FindingAnchor names the link target of one detailed finding.
func FindingAnchor(id int) string {
	return fmt.Sprintf("finding_%d", id)
}

// Options tunes a single composition. Now stamps the cover page so
// repeated runs over the same input stay byte-identical when the
// caller pins it.
type Options struct {
	Now         time.Time
	IncludeLogo bool
}

// Bounding boxes for embedded images, in points.
const (
	logoMaxWidth     = 180
	logoMaxHeight    = 72
	inlineMaxWidth   = 432
	inlineMaxHeight  = 520
	galleryMaxWidth  = 489
	galleryMaxHeight = 576
)

const unspecified = "Belirtilmemiş"

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return unspecified
	}
	return s
}

// Compose builds the full ordered block list for one report. It is a
// pure function of its arguments: no filesystem access, no global
// state beyond the static lookup tables.
func Compose(r *model.Report, findings []*model.Finding, opts Options) []Block {
	ordered := model.SortedFindings(findings)

	var blocks []Block
	blocks = append(blocks, coverBlocks(r, ordered, opts)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, contentsBlocks(ordered)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, executiveSummaryBlocks(r, ordered)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, findingsSummaryBlocks(ordered)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, detailedFindingBlocks(ordered)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, methodologyBlocks(r)...)
	blocks = append(blocks, pageBreak())
	blocks = append(blocks, recommendationBlocks()...)
	return blocks
}

func coverBlocks(r *model.Report, findings []*model.Finding, opts Options) []Block {
	var blocks []Block

	if opts.IncludeLogo && r.LogoPath != "" {
		blocks = append(blocks, Block{
			Kind:   KindImage,
			Center: true,
			Image: &Image{
				Path:      r.LogoPath,
				Name:      "logo",
				MaxWidth:  logoMaxWidth,
				MaxHeight: logoMaxHeight,
			},
		})
	}

	title := heading(0, r.Title, "")
	title.Center = true
	blocks = append(blocks, title)

	subtitle := para("Penetrasyon Testi Raporu\n" + fallback(r.ClientName, "Müşteri"))
	subtitle.Center = true
	blocks = append(blocks, subtitle)

	info := fmt.Sprintf(
		"Rapor Bilgileri:\nMüşteri: %s\nTest Tarihi: %s\nTest Uzmanı: %s\nRapor Tarihi: %s\nToplam Bulgu: %d adet",
		orUnspecified(r.ClientName),
		orUnspecified(r.TestDate),
		orUnspecified(r.TesterName),
		opts.Now.Format("02/01/2006"),
		len(findings),
	)
	blocks = append(blocks, Block{Kind: KindParagraph, Text: info, Boxed: true})
	return blocks
}

func contentsBlocks(findings []*model.Finding) []Block {
	blocks := []Block{heading(1, "İÇİNDEKİLER", "")}

	sections := []struct {
		title  string
		anchor string
	}{
		{"1. YÖNETİCİ ÖZETİ", AnchorExecutiveSummary},
		{"2. BULGULAR ÖZETİ", AnchorFindingsSummary},
		{"3. DETAYLI BULGULAR", AnchorDetailedFindings},
		{"4. TEST METODOLOJİSİ", AnchorMethodology},
		{"5. ÖNERİLER VE SONUÇLAR", AnchorRecommendations},
	}

	for _, s := range sections {
		blocks = append(blocks, Block{Kind: KindParagraph, Text: s.title, Bold: true, LinkTo: s.anchor})
		if s.anchor == AnchorDetailedFindings {
			for i, f := range findings {
				blocks = append(blocks, Block{
					Kind:   KindParagraph,
					Text:   fmt.Sprintf("3.%d %s", i+1, f.Title),
					LinkTo: FindingAnchor(f.ID),
					Indent: true,
				})
			}
		}
	}
	return blocks
}

// RiskCount is one row of the executive-summary histogram.
type RiskCount struct {
	Level   model.RiskLevel
	Count   int
	Percent float64
}

// BuildHistogram counts findings per risk level. Every level appears
// in severity order even when its count is zero; an empty finding set
// yields all-zero percentages.
func BuildHistogram(findings []*model.Finding) []RiskCount {
	counts := make(map[model.RiskLevel]int)
	for _, f := range findings {
		counts[f.RiskLevel]++
	}

	total := len(findings)
	rows := make([]RiskCount, 0, len(model.OrderedRiskLevels()))
	for _, level := range model.OrderedRiskLevels() {
		row := RiskCount{Level: level, Count: counts[level]}
		if total > 0 {
			row.Percent = float64(row.Count) / float64(total) * 100
		}
		rows = append(rows, row)
	}
	return rows
}

func executiveSummaryBlocks(r *model.Report, findings []*model.Finding) []Block {
	blocks := []Block{heading(1, "YÖNETİCİ ÖZETİ", AnchorExecutiveSummary)}

	hist := BuildHistogram(findings)
	rows := make([][]Cell, 0, len(hist))
	for _, h := range hist {
		rows = append(rows, []Cell{
			{Text: h.Level.Label(), Badge: h.Level},
			{Text: fmt.Sprintf("%d", h.Count)},
			{Text: fmt.Sprintf("%.1f%%", h.Percent)},
			{Text: StatusLabel(h.Level)},
		})
	}
	blocks = append(blocks, Block{Kind: KindTable, Table: &Table{
		Theme:  ThemePrimary,
		Header: []string{"Risk Seviyesi", "Adet", "Yüzde", "Durum"},
		Widths: []float64{1.5, 0.8, 0.8, 1.2},
		Rows:   rows,
	}})

	narrative := fmt.Sprintf(
		"Rapor Özeti:\n\nBu rapor, %s tarafından talep edilen penetrasyon testi kapsamında gerçekleştirilen "+
			"güvenlik değerlendirmesi sonuçlarını içermektedir. Test sürecinde toplam %d adet güvenlik açığı "+
			"tespit edilmiştir.\n\nTest Tarihi: %s\nTest Uzmanı: %s\nTest Kapsamı: %s\n\n"+
			"Tespit edilen güvenlik açıkları risk seviyelerine göre kategorize edilmiş olup, kritik ve yüksek "+
			"riskli açıkların acil olarak giderilmesi önerilmektedir.",
		fallback(r.ClientName, "Müşteri"),
		len(findings),
		orUnspecified(r.TestDate),
		orUnspecified(r.TesterName),
		orUnspecified(r.Scope),
	)
	blocks = append(blocks, para(narrative))
	return blocks
}

func findingsSummaryBlocks(findings []*model.Finding) []Block {
	blocks := []Block{heading(1, "BULGULAR ÖZETİ", AnchorFindingsSummary)}

	if len(findings) == 0 {
		return append(blocks, para(noFindingsNotice))
	}

	rows := make([][]Cell, 0, len(findings))
	for i, f := range findings {
		rows = append(rows, []Cell{
			{Text: fmt.Sprintf("%d", i+1)},
			{Text: f.Title, LinkTo: FindingAnchor(f.ID)},
			{Text: f.RiskLevel.Label(), Badge: f.RiskLevel},
			{Text: owasp.FormatCategory(string(f.OwaspCategory))},
		})
	}
	blocks = append(blocks, Block{Kind: KindTable, Table: &Table{
		Theme:  ThemePrimary,
		Header: []string{"#", "Bulgu Başlığı", "Risk Seviyesi", "OWASP Kategorisi"},
		Widths: []float64{0.5, 4.5, 1.2, 1.8},
		Rows:   rows,
	}})
	return blocks
}

func detailedFindingBlocks(findings []*model.Finding) []Block {
	blocks := []Block{heading(1, "DETAYLI BULGULAR", AnchorDetailedFindings)}

	if len(findings) == 0 {
		return append(blocks, para(noFindingsNotice))
	}

	for i, f := range findings {
		blocks = append(blocks, oneFindingBlocks(i+1, f)...)
		if i < len(findings)-1 {
			blocks = append(blocks, pageBreak())
		}
	}
	return blocks
}

func oneFindingBlocks(index int, f *model.Finding) []Block {
	blocks := []Block{heading(2, fmt.Sprintf("%d. %s", index, f.Title), FindingAnchor(f.ID))}

	blocks = append(blocks, Block{
		Kind:  KindParagraph,
		Text:  "Risk Seviyesi: " + f.RiskLevel.Label(),
		Badge: f.RiskLevel,
		Bold:  true,
	})

	appendText := func(label, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		blocks = append(blocks, boldPara(label))
		blocks = append(blocks, para(text))
	}

	appendText("Açıklama:", f.Description)
	appendText("Etkilenen Alan:", f.AffectedArea)
	appendText("Etki:", f.Impact)

	if strings.TrimSpace(f.StepsToReproduce) != "" {
		blocks = append(blocks, boldPara("Adım Adım (Step-by-Step):"))
		blocks = append(blocks, stepBlocks(f)...)
	}

	appendText("Çözüm Önerisi:", f.Solution)

	if tech := technicalDetails(f); tech != "" {
		blocks = append(blocks, boldPara("Teknik Detaylar:"))
		blocks = append(blocks, Block{Kind: KindParagraph, Text: tech, Boxed: true})
	}

	if ref := referenceDetails(f); ref != "" {
		blocks = append(blocks, boldPara("OWASP Referans Bilgileri:"))
		blocks = append(blocks, Block{Kind: KindParagraph, Text: ref, Boxed: true})
	}

	appendText("Ek Referanslar:", f.Refs)

	if f.Request != "" || f.Response != "" {
		blocks = append(blocks, boldPara("Request/Response Örneği:"))
		if f.Request != "" {
			blocks = append(blocks, Block{Kind: KindCodeBlock, Label: "REQUEST", Text: strings.ReplaceAll(f.Request, "\t", "  ")})
		}
		if f.Response != "" {
			blocks = append(blocks, Block{Kind: KindCodeBlock, Label: "RESPONSE", Text: strings.ReplaceAll(f.Response, "\t", "  ")})
		}
	}

	blocks = append(blocks, galleryBlocks(index, f)...)
	return blocks
}

// stepBlocks renders the steps-to-reproduce text, embedding any image
// a line references.
func stepBlocks(f *model.Finding) []Block {
	segments := SplitSteps(f.StepsToReproduce, imageLocators(f))
	blocks := make([]Block, 0, len(segments))
	for _, seg := range segments {
		if seg.IsImage() {
			blocks = append(blocks, Block{Kind: KindImage, Image: &Image{
				Path:      seg.ImagePath,
				Name:      seg.ImageName,
				MaxWidth:  inlineMaxWidth,
				MaxHeight: inlineMaxHeight,
			}})
			continue
		}
		blocks = append(blocks, para(seg.Text))
	}
	return blocks
}

// galleryBlocks lists the finding's attached screenshots that the
// steps text did not already place inline.
func galleryBlocks(index int, f *model.Finding) []Block {
	if len(f.POCImages) == 0 {
		return nil
	}

	referenced := ReferencedImages(f.StepsToReproduce)
	var unplaced []*model.POCImage
	for _, img := range f.POCImages {
		if !referenced[img.OriginalFilename] {
			unplaced = append(unplaced, img)
		}
	}
	if len(unplaced) == 0 {
		return nil
	}

	blocks := []Block{boldPara("POC Ekran Görüntüleri:")}
	for j, img := range unplaced {
		blocks = append(blocks, Block{Kind: KindImage, Image: &Image{
			Path:      img.FilePath,
			Name:      img.OriginalFilename,
			Caption:   fmt.Sprintf("Şekil %d.%d: POC Ekran Görüntüsü", index, j+1),
			MaxWidth:  galleryMaxWidth,
			MaxHeight: galleryMaxHeight,
		}})
	}
	return blocks
}

func technicalDetails(f *model.Finding) string {
	var parts []string
	if f.OwaspCategory != "" {
		parts = append(parts, "OWASP Kategorisi: "+owasp.Label(f.OwaspCategory))
	}
	if f.CVSSScore != "" {
		parts = append(parts, "CVSS Skoru: "+f.CVSSScore)
	}
	if f.CWEID != "" {
		parts = append(parts, "CWE ID: "+f.CWEID)
	}
	return strings.Join(parts, "\n")
}

func referenceDetails(f *model.Finding) string {
	if f.OwaspCategory == "" {
		return ""
	}
	ref := owasp.References(f.OwaspCategory)
	if ref.IsZero() {
		return ""
	}

	var parts []string
	if len(ref.CWEIDs) > 0 {
		parts = append(parts, "CWE ID'leri: "+strings.Join(ref.CWEIDs, ", "))
	}
	if ref.CVSSVector != "" {
		parts = append(parts, "CVSS Vector: "+ref.CVSSVector)
	}
	var links []string
	if ref.OwaspURL != "" {
		links = append(links, "OWASP: "+ref.OwaspURL)
	}
	if len(ref.CWEURLs) > 0 {
		links = append(links, "CWE: "+ref.CWEURLs[0])
	}
	if len(links) > 0 {
		parts = append(parts, "Referanslar: "+strings.Join(links, " | "))
	}
	return strings.Join(parts, "\n")
}

func methodologyBlocks(r *model.Report) []Block {
	blocks := []Block{heading(1, "TEST METODOLOJİSİ", AnchorMethodology)}

	if strings.TrimSpace(r.Methodology) != "" {
		return append(blocks, para(r.Methodology))
	}

	blocks = append(blocks, heading(3, "Test Yaklaşımı", ""))
	blocks = append(blocks, para(methodologyApproach))
	blocks = append(blocks, heading(3, "Kullanılan Standartlar", ""))
	blocks = append(blocks, Block{Kind: KindTable, Table: standardsTable()})
	blocks = append(blocks, heading(3, "Test Aşamaları", ""))
	blocks = append(blocks, Block{Kind: KindTable, Table: phasesTable()})
	blocks = append(blocks, heading(3, "Kullanılan Araçlar", ""))
	blocks = append(blocks, Block{Kind: KindTable, Table: toolsTable()})
	return blocks
}

func recommendationBlocks() []Block {
	return []Block{
		heading(1, "ÖNERİLER VE SONUÇLAR", AnchorRecommendations),
		para(recommendationsText),
	}
}

// imageLocators maps a finding's user-facing image filenames, with and
// without a leading slash, to their storage paths.
func imageLocators(f *model.Finding) map[string]string {
	if len(f.POCImages) == 0 {
		return nil
	}
	m := make(map[string]string, len(f.POCImages)*2)
	for _, img := range f.POCImages {
		m[img.OriginalFilename] = img.FilePath
		m["/"+img.OriginalFilename] = img.FilePath
	}
	return m
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
