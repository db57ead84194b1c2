package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Heykelog/PenSH/pkg/model"
)

func TestRiskStyleCoversAllLevels(t *testing.T) {
	for _, level := range model.OrderedRiskLevels() {
		style := RiskStyle(level)
		assert.True(t, style.GetBold(), "badge for %s is bold", level)
	}
}

func TestRiskStyleUnknownLevel(t *testing.T) {
	style := RiskStyle(model.RiskLevel("unknown"))
	assert.True(t, style.GetBold())
}

func TestTitleAndPathStyles(t *testing.T) {
	assert.True(t, TitleStyle.GetBold())
	assert.Equal(t, Primary, TitleStyle.GetBackground())
	assert.True(t, PathStyle.GetUnderline())
	assert.Equal(t, Secondary, PathStyle.GetForeground())
}

func TestSilentMode(t *testing.T) {
	SetSilent(true)
	assert.True(t, IsSilent())
	SetSilent(false)
	assert.False(t, IsSilent())
}
