package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Heykelog/PenSH/pkg/model"
	"github.com/Heykelog/PenSH/pkg/owasp"
	"github.com/Heykelog/PenSH/pkg/render"
	"github.com/Heykelog/PenSH/pkg/store"
	"github.com/Heykelog/PenSH/pkg/ui"
)

func runList() {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(os.Args[2:])

	_, s := common.setup()
	defer s.Close()

	reports, err := s.ListReports()
	if err != nil {
		fatal(err)
	}
	if len(reports) == 0 {
		ui.PrintInfo("kayıtlı rapor yok")
		return
	}

	ui.PrintSection("Raporlar")
	for _, r := range reports {
		findings, err := s.ListFindings(r.ID)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("  %-4d %-45s %-20s %d bulgu\n",
			r.ID, truncate(r.Title, 45), truncate(r.ClientName, 20), len(findings))
	}
}

func runShow() {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	id := fs.Int("id", 0, "Report id")
	fs.Parse(os.Args[2:])

	_, s := common.setup()
	defer s.Close()

	r, err := s.GetReport(*id)
	if err != nil {
		fatal(err)
	}
	findings, err := s.ListFindings(*id)
	if err != nil {
		fatal(err)
	}

	ui.PrintTitle(r.Title)
	ui.PrintConfigLine("Müşteri", r.ClientName)
	ui.PrintConfigLine("Test Tarihi", r.TestDate)
	ui.PrintConfigLine("Test Uzmanı", r.TesterName)
	ui.PrintConfigLine("Kapsam", r.Scope)

	for _, rc := range render.BuildHistogram(findings) {
		if rc.Count == 0 {
			continue
		}
		fmt.Printf("  %s %d\n", ui.RiskStyle(rc.Level).Render(rc.Level.Label()), rc.Count)
	}

	for _, f := range findings {
		fmt.Printf("\n  %s %s\n", ui.RiskStyle(f.RiskLevel).Render(f.RiskLevel.Label()), f.Title)
		if f.OwaspCategory != "" {
			fmt.Printf("      %s\n", owasp.FormatCategory(string(f.OwaspCategory)))
		}
		if f.AffectedArea != "" {
			fmt.Printf("      %s\n", f.AffectedArea)
		}
	}
}

func runSearch() {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	query := fs.String("q", "", "Search text")
	fs.Parse(os.Args[2:])

	if strings.TrimSpace(*query) == "" {
		fatal(fmt.Errorf("search: -q is required"))
	}

	_, s := common.setup()
	defer s.Close()

	reports, err := s.SearchReports(*query)
	if err != nil {
		fatal(err)
	}
	findings, err := s.SearchFindings(*query)
	if err != nil {
		fatal(err)
	}

	ui.PrintSection(fmt.Sprintf("Arama: %q", *query))
	for _, r := range reports {
		fmt.Printf("  rapor %-4d %s\n", r.ID, r.Title)
	}
	for _, f := range findings {
		fmt.Printf("  bulgu %-4d %s %s\n",
			f.ID, ui.RiskStyle(f.RiskLevel).Render(f.RiskLevel.Label()), f.Title)
	}
	if len(reports)+len(findings) == 0 {
		ui.PrintInfo("eşleşme yok")
	}
}

func runStats() {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	fs.Parse(os.Args[2:])

	_, s := common.setup()
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		fatal(err)
	}

	ui.PrintSection("İstatistikler")
	ui.PrintConfigLine("Raporlar", fmt.Sprintf("%d", stats.Reports))
	ui.PrintConfigLine("Bulgular", fmt.Sprintf("%d", stats.Findings))
	ui.PrintConfigLine("Müşteriler", fmt.Sprintf("%d", stats.Customers))
	ui.PrintConfigLine("Şablonlar", fmt.Sprintf("%d", stats.Templates))

	for _, level := range model.OrderedRiskLevels() {
		fmt.Printf("  %s %d\n", ui.RiskStyle(level).Render(level.Label()), stats.ByRisk[level])
	}
}

func runSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	var common commonFlags
	common.register(fs)
	title := fs.String("title", "Örnek Sızma Testi Raporu", "Report title")
	client := fs.String("client", "Örnek Müşteri A.Ş.", "Client name")
	fs.Parse(os.Args[2:])

	_, s := common.setup()
	defer s.Close()

	ui.PrintBanner()

	tester, err := s.CreateTester(&model.Tester{
		Name: "Deniz Yılmaz", Title: "Kıdemli Güvenlik Uzmanı", IsDefault: true,
	})
	if err != nil {
		fatal(err)
	}
	customer, err := s.CreateCustomer(&model.Customer{Name: *client, IsDefault: true})
	if err != nil {
		fatal(err)
	}

	r, err := s.CreateReport(&model.Report{
		Title:      *title,
		Scope:      "https://app.example.com\nhttps://api.example.com",
		TestDate:   "12-16 Mayıs 2025",
		CustomerID: customer.ID,
		TesterID:   tester.ID,
	})
	if err != nil {
		fatal(err)
	}

	seeded := []struct {
		category model.OwaspCategory
		area     string
	}{
		{model.Injection, "/login"},
		{model.BrokenAccessControl, "/api/v1/users"},
		{model.SecurityMisconfiguration, "https://app.example.com"},
	}
	for _, sf := range seeded {
		if _, err := s.CreateFindingFromOwasp(r.ID, sf.category, store.TemplateOverrides{AffectedArea: sf.area}); err != nil {
			fatal(err)
		}
	}

	ui.PrintSuccess(fmt.Sprintf("rapor %d oluşturuldu (%d bulgu)", r.ID, len(seeded)))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
