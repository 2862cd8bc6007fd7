package main

import (
	"encoding/json"
	"fmt"
	"os"

	"chipbar/internal/filterbar"
	"chipbar/internal/model"
	"chipbar/internal/sidebar"
	"chipbar/internal/tui"
	"chipbar/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "riboseqorg",
		Repository: "chipbar",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/riboseqorg/chipbar/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: chipbar [options]\n\n")
		fmt.Fprintf(os.Stderr, "chipbar renders the query string of a URL as a bar of removable filter chips.\n")
		fmt.Fprintf(os.Stderr, "Sidebar links whose text matches an active filter value are highlighted.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chipbar --url '/samples?tag=a&tag=b'               # Browse in the TUI\n")
		fmt.Fprintf(os.Stderr, "  chipbar -r --url '/samples?tag=a&tag=b'            # Print a report\n")
		fmt.Fprintf(os.Stderr, "  chipbar --url '/samples?tag=a&tag=b' --remove tag=a # Print the removal target\n")
		fmt.Fprintf(os.Stderr, "  chipbar --web --sidebar facets.txt                 # Serve the listing page\n")
	}

	urlFlag := pflag.StringP("url", "U", "/samples", "URL to render: /path?k=v, a full URL, or a bare k=v&... query")
	sidebarFlag := pflag.StringP("sidebar", "s", "", "Sidebar file: one key=value per line, optional ' | Label'")
	chipFormatFlag := pflag.String("chip-format", "rich", "Filter container format: rich or plain")
	matchByFlag := pflag.String("match-by", "identifier", "How a clicked chip is matched on removal: identifier or text")
	navigationFlag := pflag.String("navigation", "replace", "Where removal navigates: replace or open-new")
	removeFlag := pflag.String("remove", "", "Print where removing this key=value chip navigates to")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the rendering (or removal target) as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print a filter bar report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include link targets, options and removal targets in the report")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	addrFlag := pflag.String("addr", ":8080", "Listen address for Web Mode")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("chipbar version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	opts, err := model.ParseOptions(*chipFormatFlag, *matchByFlag, *navigationFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *webFlag {
		web.StartServer(web.Config{
			Addr:        *addrFlag,
			Options:     opts,
			SidebarPath: *sidebarFlag,
		})
		return
	}

	links := sidebar.Default()
	if *sidebarFlag != "" {
		links, err = sidebar.Load(*sidebarFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	ctrl := filterbar.NewController(opts)

	if *removeFlag != "" {
		runRemoveMode(ctrl, *urlFlag, *removeFlag, *jsonFlag)
		return
	}

	if *reportFlag {
		runReportMode(ctrl, *urlFlag, links, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(ctrl, *urlFlag, links)
		return
	}

	// Default: TUI
	runTuiMode(ctrl, *urlFlag, links)
}

func runRemoveMode(ctrl *filterbar.Controller, rawURL, id string, asJSON bool) {
	nav, err := ctrl.Remove(rawURL, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if asJSON {
		writeJSON(nav)
		return
	}
	fmt.Println(nav.URL)
}

func runReportMode(ctrl *filterbar.Controller, rawURL string, links []model.Link, outputFile string, verbose bool) {
	report := ctrl.Report(rawURL, links, verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(ctrl *filterbar.Controller, rawURL string, links []model.Link) {
	r := ctrl.Render(rawURL, links)
	chips, err := filterbar.HTML(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	writeJSON(struct {
		model.Rendering
		HTML string `json:"HTML"`
	}{
		Rendering: r,
		HTML:      string(chips),
	})
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTuiMode(ctrl *filterbar.Controller, rawURL string, links []model.Link) {
	m := tui.InitialModel(ctrl, rawURL, links)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
