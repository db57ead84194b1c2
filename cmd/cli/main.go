// Command pensh manages penetration test reports: create and seed
// data, inspect findings, and export PDF/XLSX/DOCX documents.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Heykelog/PenSH/pkg/config"
	"github.com/Heykelog/PenSH/pkg/store"
	"github.com/Heykelog/PenSH/pkg/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		runSeed()
	case "list", "ls":
		runList()
	case "show":
		runShow()
	case "search":
		runSearch()
	case "stats":
		runStats()
	case "export":
		runExport()
	case "-v", "--version", "version":
		fmt.Printf("pensh v%s (%s, %s)\n", ui.Version, ui.Commit, ui.BuildDate)
	case "-h", "--help", "help":
		printUsage()
	default:
		ui.PrintError(fmt.Sprintf("unknown command %q", os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `pensh - penetrasyon testi rapor yönetimi

Usage:
  pensh <command> [flags]

Commands:
  seed      Create a demo report with template findings
  list      List stored reports
  show      Show one report with its findings
  search    Search reports and findings by text
  stats     Show aggregate statistics
  export    Render a report to pdf, xlsx or docx
  version   Print version information

Common flags (every command):
  -config   Path to YAML config file
  -data     Data directory (overrides config)
  -silent   Suppress banner and informational output
  -no-color Disable colored output

Run 'pensh <command> -h' for command flags.`)
}

// commonFlags is read after each command's flag set parses.
type commonFlags struct {
	configPath string
	dataDir    string
	silent     bool
	noColor    bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "Path to YAML config file")
	fs.StringVar(&c.dataDir, "data", "", "Data directory (overrides config)")
	fs.BoolVar(&c.silent, "silent", false, "Suppress banner output")
	fs.BoolVar(&c.noColor, "no-color", false, "Disable colored output")
}

// setup applies the common flags and opens the store.
func (c *commonFlags) setup() (*config.Config, *store.Store) {
	ui.SetSilent(c.silent)
	ui.SetNoColor(c.noColor)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		fatal(err)
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}

	s, err := store.NewStore(cfg.DataDir)
	if err != nil {
		fatal(err)
	}
	return cfg, s
}

func fatal(err error) {
	ui.PrintError(err.Error())
	os.Exit(1)
}
