package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heykelog/PenSH/pkg/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedReport(t *testing.T, s *Store) *model.Report {
	t.Helper()
	r, err := s.CreateReport(&model.Report{
		Title:      "Acme Sızma Testi",
		ClientName: "Acme A.Ş.",
		Scope:      "https://app.acme.example",
	})
	require.NoError(t, err)
	return r
}

func seedFinding(t *testing.T, s *Store, reportID int, title string, level model.RiskLevel) *model.Finding {
	t.Helper()
	f, err := s.CreateFinding(&model.Finding{
		ReportID:    reportID,
		Title:       title,
		Description: "Açıklama",
		RiskLevel:   level,
	})
	require.NoError(t, err)
	return f
}

func TestReportLifecycle(t *testing.T) {
	s := newTestStore(t)

	r := seedReport(t, s)
	assert.Equal(t, 1, r.ID)
	assert.False(t, r.CreatedAt.IsZero())

	got, err := s.GetReport(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Sızma Testi", got.Title)

	got.Scope = "https://api.acme.example"
	updated, err := s.UpdateReport(got)
	require.NoError(t, err)
	assert.Equal(t, "https://api.acme.example", updated.Scope)
	assert.Equal(t, r.CreatedAt, updated.CreatedAt, "creation time is immutable")

	require.NoError(t, s.DeleteReport(r.ID))
	_, err = s.GetReport(r.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCreateReportRejectsEmptyTitle(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateReport(&model.Report{Title: "  "})
	assert.ErrorIs(t, err, model.ErrEmptyTitle)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	r := seedReport(t, s)
	seedFinding(t, s, r.ID, "XSS", model.RiskHigh)
	require.NoError(t, s.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	got, err := reopened.GetReport(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Title, got.Title)

	findings, err := reopened.ListFindings(r.ID)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "XSS", findings[0].Title)

	// Another create continues the id sequence instead of reusing ids.
	second, err := reopened.CreateReport(&model.Report{Title: "İkinci"})
	require.NoError(t, err)
	assert.Equal(t, r.ID+1, second.ID)
}

func TestFindingDisplayOrderAppends(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)

	first := seedFinding(t, s, r.ID, "Birinci", model.RiskHigh)
	second := seedFinding(t, s, r.ID, "İkinci", model.RiskLow)

	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)
}

func TestCreateFindingRequiresReport(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateFinding(&model.Finding{
		ReportID: 99, Title: "X", Description: "d", RiskLevel: model.RiskLow,
	})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReorderFindings(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	a := seedFinding(t, s, r.ID, "A", model.RiskHigh)
	b := seedFinding(t, s, r.ID, "B", model.RiskLow)
	c := seedFinding(t, s, r.ID, "C", model.RiskMedium)

	require.NoError(t, s.ReorderFindings(r.ID, []int{c.ID, a.ID, b.ID}))

	findings, err := s.ListFindings(r.ID)
	require.NoError(t, err)
	require.Len(t, findings, 3)
	assert.Equal(t, "C", findings[0].Title)
	assert.Equal(t, "A", findings[1].Title)
	assert.Equal(t, "B", findings[2].Title)
}

func TestReorderRejectsForeignFinding(t *testing.T) {
	s := newTestStore(t)
	r1 := seedReport(t, s)
	r2, err := s.CreateReport(&model.Report{Title: "Diğer"})
	require.NoError(t, err)
	foreign := seedFinding(t, s, r2.ID, "Yabancı", model.RiskLow)

	err = s.ReorderFindings(r1.ID, []int{foreign.ID})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestAttachAndDeleteImage(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "SQLi", model.RiskCritical)

	img, err := s.AttachImage(f.ID, "poc ekran.png", "image/png", []byte("fake-png"))
	require.NoError(t, err)
	assert.Equal(t, "poc ekran.png", img.OriginalFilename)
	assert.NotEqual(t, img.OriginalFilename, img.Filename, "stored name is unique")
	assert.Equal(t, ".png", filepath.Ext(img.Filename))
	assert.Equal(t, int64(8), img.FileSize)
	assert.FileExists(t, img.FilePath)

	got, err := s.GetFinding(f.ID)
	require.NoError(t, err)
	require.Len(t, got.POCImages, 1)

	require.NoError(t, s.DeleteImage(img.ID))
	assert.NoFileExists(t, img.FilePath)

	got, err = s.GetFinding(f.ID)
	require.NoError(t, err)
	assert.Empty(t, got.POCImages)
}

func TestDeleteFindingRemovesImageFiles(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "SQLi", model.RiskCritical)
	img, err := s.AttachImage(f.ID, "poc.png", "image/png", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteFinding(f.ID))
	assert.NoFileExists(t, img.FilePath)
}

func TestCreateFindingFromOwaspTemplate(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)

	f, err := s.CreateFindingFromOwasp(r.ID, model.Injection, TemplateOverrides{AffectedArea: "/login"})
	require.NoError(t, err)
	assert.Equal(t, model.Injection, f.OwaspCategory)
	assert.Equal(t, "/login", f.AffectedArea)
	assert.NotEmpty(t, f.Description)
	assert.Equal(t, model.RiskCritical, f.RiskLevel)
}

func TestKnowledgeBaseRoundTrip(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "Zayıf Parola Politikası", model.RiskMedium)

	tpl, err := s.SaveFindingToKB(f.ID)
	require.NoError(t, err)
	assert.True(t, tpl.FromFinding)
	assert.Equal(t, f.ID, tpl.FindingID)

	clone, err := s.CreateFindingFromTemplate(r.ID, tpl.ID, TemplateOverrides{Title: "Parola Politikası (API)"})
	require.NoError(t, err)
	assert.Equal(t, "Parola Politikası (API)", clone.Title)
	assert.Equal(t, f.Description, clone.Description)
	assert.NotEqual(t, f.ID, clone.ID)
}

func TestTemplateCRUD(t *testing.T) {
	s := newTestStore(t)

	tpl, err := s.CreateTemplate(&model.KnowledgeBaseTemplate{
		Title: "Açık Dizin Listeleme", RiskLevel: model.RiskLow,
	})
	require.NoError(t, err)
	assert.False(t, tpl.FromFinding)

	tpl.Solution = "Dizin listelemeyi kapatın."
	updated, err := s.UpdateTemplate(tpl)
	require.NoError(t, err)
	assert.Equal(t, "Dizin listelemeyi kapatın.", updated.Solution)

	got, err := s.GetTemplate(tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Solution, got.Solution)

	require.NoError(t, s.DeleteTemplate(tpl.ID))
	_, err = s.GetTemplate(tpl.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeletingFindingDetachesTemplates(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "CSRF", model.RiskMedium)
	tpl, err := s.SaveFindingToKB(f.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteFinding(f.ID))

	templates, err := s.ListTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, tpl.ID, templates[0].ID)
	assert.Zero(t, templates[0].FindingID, "link cleared, template kept")
}

func TestCustomerNameFallback(t *testing.T) {
	s := newTestStore(t)
	cust, err := s.CreateCustomer(&model.Customer{Name: "Acme A.Ş."})
	require.NoError(t, err)

	r, err := s.CreateReport(&model.Report{Title: "Rapor", CustomerID: cust.ID})
	require.NoError(t, err)

	got, err := s.GetReport(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme A.Ş.", got.ClientName)
}

func TestDuplicateCustomerRejected(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateCustomer(&model.Customer{Name: "Acme"})
	require.NoError(t, err)
	_, err = s.CreateCustomer(&model.Customer{Name: "acme"})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDefaultTesterIsExclusive(t *testing.T) {
	s := newTestStore(t)
	first, err := s.CreateTester(&model.Tester{Name: "Deniz", IsDefault: true})
	require.NoError(t, err)
	_, err = s.CreateTester(&model.Tester{Name: "Ece", IsDefault: true})
	require.NoError(t, err)

	got, err := s.GetTester(first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDefault)
}

func TestDeleteCustomerSnapshotsName(t *testing.T) {
	s := newTestStore(t)
	cust, err := s.CreateCustomer(&model.Customer{Name: "Acme A.Ş."})
	require.NoError(t, err)
	r, err := s.CreateReport(&model.Report{Title: "Rapor", CustomerID: cust.ID})
	require.NoError(t, err)

	require.NoError(t, s.DeleteCustomer(cust.ID))

	got, err := s.GetReport(r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme A.Ş.", got.ClientName)
	assert.Zero(t, got.CustomerID)
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	seedFinding(t, s, r.ID, "SQL Enjeksiyonu", model.RiskCritical)
	seedFinding(t, s, r.ID, "Eksik Başlıklar", model.RiskLow)

	findings, err := s.SearchFindings("enjeksiyon")
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, "SQL Enjeksiyonu", findings[0].Title)

	reports, err := s.SearchReports("acme")
	require.NoError(t, err)
	assert.Len(t, reports, 1)

	none, err := s.SearchFindings("")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "SQLi", model.RiskCritical)
	f.OwaspCategory = model.Injection
	_, err := s.UpdateFinding(f)
	require.NoError(t, err)
	seedFinding(t, s, r.ID, "Bilgi", model.RiskInfo)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Reports)
	assert.Equal(t, 2, stats.Findings)
	assert.Equal(t, 1, stats.ByRisk[model.RiskCritical])
	assert.Equal(t, 0, stats.ByRisk[model.RiskMedium], "zero levels still present")
	assert.Equal(t, 1, stats.ByOwasp[model.Injection])
	assert.Len(t, stats.ByRisk, 5)
	assert.Len(t, stats.ByOwasp, 10)
}

func TestDeleteReportCascades(t *testing.T) {
	s := newTestStore(t)
	r := seedReport(t, s)
	f := seedFinding(t, s, r.ID, "SQLi", model.RiskCritical)
	img, err := s.AttachImage(f.ID, "poc.png", "image/png", []byte("data"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteReport(r.ID))

	_, err = s.GetFinding(f.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.NoFileExists(t, img.FilePath)
}

func TestIndexFileIsWellFormed(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	seedReport(t, s)

	data, err := os.ReadFile(filepath.Join(dir, "index.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"reports"`)
	assert.Contains(t, string(data), `"last_id"`)
}
