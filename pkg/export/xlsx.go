package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/owasp"
)

const (
	sheetSummary     = "Rapor Özeti"
	sheetScope       = "Kapsam & Metodoloji"
	sheetFindings    = "Bulgular"
	sheetVulnImport  = "VULNERABILITIES"
	xlsxDateFormat   = "02/01/2006 15:04"
	importDateFormat = "2006-01-02 15:04"
)

var findingsHeader = []string{
	"ID", "Başlık", "Risk Seviyesi", "OWASP Kategorisi", "Etkilenen Alan",
	"Açıklama", "Çözüm Önerisi", "Tekrarlama Adımları", "Etki",
	"CVSS Skoru", "CWE ID", "Referanslar", "Oluşturulma",
}

var findingsWidths = []float64{8, 40, 14, 30, 30, 80, 80, 80, 40, 12, 12, 40, 20}

// Column schema of the vulnerability import sheet. Consumed by an
// external tracking tool, so names and order are fixed.
var vulnImportHeader = []string{
	"Name (Required)", "IP (Required)", "Hostname", "Virtual Host",
	"Description (Required)", "Solution", "Owasp",
	"Date(yyyy-MM-dd HH:mm)", "Vulnerability Description",
}

func (e *Exporter) renderXLSX(r *model.Report, ordered []*model.Finding) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "1F4E79"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EDF2FF"}},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	if err := writeSummarySheet(f, r, len(ordered), headerStyle); err != nil {
		return nil, err
	}
	if err := writeScopeSheet(f, r, headerStyle, wrapStyle); err != nil {
		return nil, err
	}
	if err := writeFindingsSheet(f, ordered, headerStyle, wrapStyle); err != nil {
		return nil, err
	}
	if err := writeVulnImportSheet(f, ordered, headerStyle); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, r *model.Report, total int, headerStyle int) error {
	rows := [][]any{
		{"Alan", "Değer"},
		{"Rapor Başlığı", r.Title},
		{"Müşteri", r.ClientName},
		{"Test Tarihi", r.TestDate},
		{"Test Uzmanı", r.TesterName},
		{"Oluşturulma", r.CreatedAt.Format(xlsxDateFormat)},
		{},
		{"Toplam Bulgu", total},
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	if err := f.SetCellStyle(sheetSummary, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetColWidth(sheetSummary, "A", "A", 22); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetColWidth(sheetSummary, "B", "B", 60); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return nil
}

func writeScopeSheet(f *excelize.File, r *model.Report, headerStyle, wrapStyle int) error {
	if _, err := f.NewSheet(sheetScope); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	steps := []struct {
		cell  string
		value string
		style int
	}{
		{"A1", "Kapsam", headerStyle},
		{"A2", r.Scope, wrapStyle},
		{"A4", "Metodoloji", headerStyle},
		{"A5", r.Methodology, wrapStyle},
	}
	for _, s := range steps {
		if err := f.SetCellStr(sheetScope, s.cell, s.value); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetCellStyle(sheetScope, s.cell, s.cell, s.style); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	if err := f.SetColWidth(sheetScope, "A", "A", 110); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return nil
}

func writeFindingsSheet(f *excelize.File, ordered []*model.Finding, headerStyle, wrapStyle int) error {
	if _, err := f.NewSheet(sheetFindings); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	header := make([]any, len(findingsHeader))
	for i, h := range findingsHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetFindings, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(findingsHeader))
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetCellStyle(sheetFindings, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	if len(ordered) == 0 {
		if err := f.SetCellStr(sheetFindings, "A2", "Bu test kapsamında herhangi bir güvenlik bulgusu tespit edilmemiştir."); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	for i, fd := range ordered {
		row := []any{
			fd.ID,
			fd.Title,
			fd.RiskLevel.Label(),
			owasp.FormatCategory(string(fd.OwaspCategory)),
			fd.AffectedArea,
			fd.Description,
			fd.Solution,
			fd.StepsToReproduce,
			fd.Impact,
			fd.CVSSScore,
			fd.CWEID,
			fd.Refs,
			fd.CreatedAt.Format(xlsxDateFormat),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheetFindings, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}

	for i, w := range findingsWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetColWidth(sheetFindings, col, col, w); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	if n := len(ordered); n > 0 {
		if err := f.SetCellStyle(sheetFindings, "A2", lastCol+strconv.Itoa(n+1), wrapStyle); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	return nil
}

func writeVulnImportSheet(f *excelize.File, ordered []*model.Finding, headerStyle int) error {
	if _, err := f.NewSheet(sheetVulnImport); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	header := make([]any, len(vulnImportHeader))
	for i, h := range vulnImportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetVulnImport, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(vulnImportHeader))
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	if err := f.SetCellStyle(sheetVulnImport, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	for i, fd := range ordered {
		vulnDesc := fd.Impact
		if vulnDesc == "" {
			vulnDesc = fd.Description
		}
		row := []any{
			fd.Title,
			"",
			"",
			fd.AffectedArea,
			fd.Description,
			fd.Solution,
			string(fd.OwaspCategory),
			fd.CreatedAt.Format(importDateFormat),
			vulnDesc,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheetVulnImport, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}

	for i := range vulnImportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := f.SetColWidth(sheetVulnImport, col, col, 35); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	return nil
}
