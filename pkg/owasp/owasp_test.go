package owasp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Heykelog/PenSH/pkg/model"
)

func TestLabelKnownCategories(t *testing.T) {
	for _, c := range model.AllOwaspCategories() {
		assert.NotEqual(t, Unspecified, Label(c), "category %s should have a label", c)
	}
	assert.Equal(t, "A01:2021 - Erişim Kontrolünün Kötüye Kullanımı", Label(model.BrokenAccessControl))
	assert.Equal(t, "A10:2021 - Sunucu Taraflı İstek Sahteciliği", Label(model.SSRF))
}

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty is unspecified", in: "", want: Unspecified},
		{name: "known key uses label", in: "injection", want: "A03:2021 - Enjeksiyon"},
		{name: "legacy alias maps to label", in: "identification_failures", want: "A07:2021 - Kimlik Doğrulama Hataları"},
		{name: "unknown key is title cased", in: "api_abuse", want: "Api Abuse"},
		{name: "unknown single word", in: "custom", want: "Custom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCategory(tt.in))
		})
	}
}

func TestReferences(t *testing.T) {
	ref := References(model.Injection)
	require.False(t, ref.IsZero())
	assert.Contains(t, ref.CWEIDs, "CWE-89")
	assert.NotEmpty(t, ref.CVSSVector)
	assert.NotEmpty(t, ref.OwaspURL)
	assert.NotEmpty(t, ref.CWEURLs)

	assert.True(t, References("nonexistent").IsZero())
}

func TestTemplatesCoverAllCategories(t *testing.T) {
	all := Templates()
	require.Len(t, all, len(model.AllOwaspCategories()))
	seen := make(map[model.OwaspCategory]bool)
	for _, tpl := range all {
		assert.NotEmpty(t, tpl.Title)
		assert.NotEmpty(t, tpl.Description)
		assert.NotEmpty(t, tpl.Impact)
		assert.NotEmpty(t, tpl.Solution)
		assert.True(t, tpl.RiskLevel.IsValid(), "template %s must carry a valid risk level", tpl.Category)
		seen[tpl.Category] = true
	}
	assert.Len(t, seen, len(all), "templates must not repeat categories")
}

func TestTemplateRiskSeeding(t *testing.T) {
	bac, ok := TemplateFor(model.BrokenAccessControl)
	require.True(t, ok)
	assert.Equal(t, model.RiskCritical, bac.RiskLevel)

	logmon, ok := TemplateFor(model.LoggingMonitoringFailures)
	require.True(t, ok)
	assert.Equal(t, model.RiskMedium, logmon.RiskLevel)

	_, ok = TemplateFor("nope")
	assert.False(t, ok)
}
