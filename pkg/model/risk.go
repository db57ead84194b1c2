package model

import "strings"

// RiskLevel represents the severity classification of a finding.
// All values are lowercase strings matching the stored representation.
type RiskLevel string

const (
	// RiskCritical represents immediate system compromise (RCE, auth bypass).
	RiskCritical RiskLevel = "critical"

	// RiskHigh represents significant impact requiring prompt fix.
	RiskHigh RiskLevel = "high"

	// RiskMedium represents moderate impact.
	RiskMedium RiskLevel = "medium"

	// RiskLow represents limited impact.
	RiskLow RiskLevel = "low"

	// RiskInfo represents informational findings with no direct security impact.
	RiskInfo RiskLevel = "info"
)

// OrderedRiskLevels lists all risk levels from most to least severe.
// The order is relied on by the executive-summary histogram, which
// always renders one row per level.
func OrderedRiskLevels() []RiskLevel {
	return []RiskLevel{RiskCritical, RiskHigh, RiskMedium, RiskLow, RiskInfo}
}

// IsValid reports whether r is a recognized risk level.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow, RiskInfo:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// Critical=5, High=4, Medium=3, Low=2, Info=1, Unknown=0.
func (r RiskLevel) Score() int {
	switch r {
	case RiskCritical:
		return 5
	case RiskHigh:
		return 4
	case RiskMedium:
		return 3
	case RiskLow:
		return 2
	case RiskInfo:
		return 1
	default:
		return 0
	}
}

// Label returns the upper-cased display form used in report badges.
func (r RiskLevel) Label() string {
	return strings.ToUpper(string(r))
}

// String returns the risk level as a string.
func (r RiskLevel) String() string {
	return string(r)
}

// ParseRiskLevel normalizes s to a RiskLevel. Unrecognized values
// come back as-is so callers can decide how to degrade; styling code
// falls back to the info style for them.
func ParseRiskLevel(s string) RiskLevel {
	return RiskLevel(strings.ToLower(strings.TrimSpace(s)))
}
