package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Heykelog/PenSH/pkg/model"
)

// Color palette matching the report brand colors
var (
	// Brand colors
	Primary   = lipgloss.Color("#006633") // Deep green - brand color
	Secondary = lipgloss.Color("#00A651") // Light green

	// Severity colors (matching the PDF risk badges)
	Critical = lipgloss.Color("#D32F2F")
	High     = lipgloss.Color("#DC2626")
	Medium   = lipgloss.Color("#F57C00")
	Low      = lipgloss.Color("#2E7D32")
	Info     = lipgloss.Color("#1976D2")

	// Status colors
	Success = lipgloss.Color("#00D26A")
	Warning = lipgloss.Color("#FFB800")
	Error   = lipgloss.Color("#FF3838")
	Muted   = lipgloss.Color("#6B7280")
)

// Pre-configured styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(Primary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)
)

// RiskStyle returns the badge style for a risk level.
func RiskStyle(level model.RiskLevel) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF"))
	switch level {
	case model.RiskCritical:
		return base.Background(Critical)
	case model.RiskHigh:
		return base.Background(High)
	case model.RiskMedium:
		return base.Background(Medium)
	case model.RiskLow:
		return base.Background(Low)
	case model.RiskInfo:
		return base.Background(Info)
	default:
		return base.UnsetBackground().Foreground(Muted)
	}
}
