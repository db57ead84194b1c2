// Package ui provides terminal styling for the pensh CLI.
package ui

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - overridable at build time via ldflags:
// go build -ldflags "-X github.com/Heykelog/PenSH/pkg/ui.Version=1.0.0"
var (
	Version   = "1.2.0"
	BuildDate = "2026-08-30"
	Commit    = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses the banner and
// informational output).
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled.
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output.
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled.
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

const bannerArt = `
    ____             _____ __  __
   / __ \___  ____  / ___// / / /
  / /_/ / _ \/ __ \ \__ \/ /_/ /
 / ____/  __/ / / /___/ / __  /
/_/    \___/_/ /_//____/_/ /_/
`

// PrintBanner writes the startup banner to stderr unless silent mode
// is on.
func PrintBanner() {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, BannerStyle.Render(bannerArt))
	fmt.Fprintf(os.Stderr, "  %s %s\n\n",
		SubtitleStyle.Render("Penetrasyon Testi Rapor Yönetimi"),
		VersionStyle.Render("v"+Version))
}
