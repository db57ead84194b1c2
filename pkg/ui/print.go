package ui

import (
	"fmt"
	"os"
	"strings"
)

// PrintDivider prints a horizontal rule (to stderr)
func PrintDivider() {
	divider := strings.Repeat("-", 70)
	fmt.Fprintln(os.Stderr, HelpStyle.Render(divider))
}

// PrintTitle prints a highlighted title banner (to stderr)
func PrintTitle(title string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, TitleStyle.Render(title))
}

// PrintSection prints a section header (to stderr)
func PrintSection(title string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, SectionStyle.Render("> "+title))
	PrintDivider()
}

// PrintConfigLine prints a single label/value line
func PrintConfigLine(key, value string) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		LabelStyle.Render(key+":"),
		ValueStyle.Render(value))
}

// PrintSuccess prints a success message (to stderr)
func PrintSuccess(message string) {
	fmt.Fprintln(os.Stderr, SuccessStyle.Render("  [+] "+message))
}

// PrintError prints an error message (to stderr)
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("  [X] "+message))
}

// PrintPath prints a filesystem path with its label (to stderr)
func PrintPath(label, path string) {
	fmt.Fprintf(os.Stderr, "  %s %s\n",
		LabelStyle.Render(label+":"),
		PathStyle.Render(path))
}

// PrintInfo prints an informational message (to stderr)
func PrintInfo(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, HelpStyle.Render("  [i] "+message))
}
