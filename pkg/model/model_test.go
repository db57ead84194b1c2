package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortFindingsCanonicalOrder(t *testing.T) {
	findings := []*Finding{
		{ID: 4, DisplayOrder: 2},
		{ID: 1, DisplayOrder: 0},
		{ID: 3, DisplayOrder: 1},
		{ID: 2, DisplayOrder: 1},
	}

	SortFindings(findings)

	got := make([]int, 0, len(findings))
	for _, f := range findings {
		got = append(got, f.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestSortFindingsDuplicateOrderBrokenByID(t *testing.T) {
	findings := []*Finding{
		{ID: 9, DisplayOrder: 5},
		{ID: 2, DisplayOrder: 5},
		{ID: 7, DisplayOrder: 5},
	}

	SortFindings(findings)

	assert.Equal(t, 2, findings[0].ID)
	assert.Equal(t, 7, findings[1].ID)
	assert.Equal(t, 9, findings[2].ID)
}

func TestSortedFindingsDoesNotMutateInput(t *testing.T) {
	in := []*Finding{
		{ID: 2, DisplayOrder: 1},
		{ID: 1, DisplayOrder: 0},
	}

	out := SortedFindings(in)

	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, in[0].ID, "input order must be preserved")
}

func TestRiskLevelScoreOrdering(t *testing.T) {
	levels := OrderedRiskLevels()
	for i := 1; i < len(levels); i++ {
		assert.Greater(t, levels[i-1].Score(), levels[i].Score(),
			"%s should outrank %s", levels[i-1], levels[i])
	}
	assert.Equal(t, 0, RiskLevel("bogus").Score())
}

func TestRiskLevelLabel(t *testing.T) {
	assert.Equal(t, "CRITICAL", RiskCritical.Label())
	assert.Equal(t, "INFO", RiskInfo.Label())
}

func TestParseRiskLevel(t *testing.T) {
	assert.Equal(t, RiskHigh, ParseRiskLevel(" HIGH "))
	assert.False(t, ParseRiskLevel("unknown").IsValid())
}

func TestOwaspCategoryValidity(t *testing.T) {
	for _, c := range AllOwaspCategories() {
		assert.True(t, c.IsValid(), "%s", c)
	}
	assert.False(t, OwaspCategory("xss").IsValid())
}

func TestReportValidate(t *testing.T) {
	r := &Report{Title: "  "}
	err := r.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyTitle))

	r.Title = "Q1 Pentest"
	assert.NoError(t, r.Validate())
}

func TestFindingValidate(t *testing.T) {
	tests := []struct {
		name    string
		finding Finding
		wantErr error
	}{
		{
			name:    "valid minimal",
			finding: Finding{ID: 1, Title: "SQLi", Description: "injectable", RiskLevel: RiskCritical},
		},
		{
			name:    "missing title",
			finding: Finding{ID: 2, Description: "x", RiskLevel: RiskLow},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "missing description",
			finding: Finding{ID: 3, Title: "x", RiskLevel: RiskLow},
			wantErr: ErrMissingDescription,
		},
		{
			name:    "bad risk level",
			finding: Finding{ID: 4, Title: "x", Description: "y", RiskLevel: "severe"},
			wantErr: ErrInvalidRiskLevel,
		},
		{
			name:    "bad owasp category",
			finding: Finding{ID: 5, Title: "x", Description: "y", RiskLevel: RiskInfo, OwaspCategory: "a99"},
			wantErr: ErrInvalidOwaspCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.finding.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestValidateAllFailsFast(t *testing.T) {
	rep := &Report{Title: "ok"}
	findings := []*Finding{
		{ID: 1, Title: "a", Description: "b", RiskLevel: RiskHigh},
		{ID: 2, Title: "", Description: "b", RiskLevel: RiskHigh},
	}
	err := ValidateAll(rep, findings)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyTitle))
}
