//go:build ignore

// Validate-selectors checks saved admin console pages against the DOM
// contract the flows drive. The selectors are an external-system
// contract: a firmware update can move or rename any control without
// notice. Save the console pages from the browser (File > Save Page As,
// or the DevTools "Copy outerHTML" on <html>) and run this tool to see
// whether the contract still holds before blaming the pipeline.
//
// Usage:
//
//	go run tools/validate-selectors.go <directory-or-file>
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Import the selector contract
	"github.com/muurk/radioctl/internal/console"
)

// marker is one element of the contract and the check that proves a
// saved page still carries it.
type marker struct {
	Name    string
	Present func(doc string) bool
}

// pageKind groups the markers expected on one console page.
type pageKind struct {
	Name    string
	Markers []marker
}

// fileReport records the classification of one dump.
type fileReport struct {
	File    string
	Kind    string
	Matched int
	Total   int
	Missing []string
}

// Statistics tracks validation results
type Statistics struct {
	TotalFiles   int
	Classified   map[string]int
	CleanFiles   int
	Unrecognized []string
	Issues       []fileReport
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: validate-selectors <directory-or-file>")
		fmt.Println("Example: validate-selectors dumps/")
		fmt.Println("         validate-selectors adv_index.html")
		os.Exit(1)
	}

	path := os.Args[1]

	stats := Statistics{
		Classified: make(map[string]int),
	}

	// Check if path is directory or file
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error accessing path: %v\n", err)
		os.Exit(1)
	}

	var files []string
	if info.IsDir() {
		// Find all HTML files in directory
		for _, pattern := range []string{"*.html", "*.htm"} {
			matches, err := filepath.Glob(filepath.Join(path, pattern))
			if err != nil {
				fmt.Printf("Error finding HTML files: %v\n", err)
				os.Exit(1)
			}
			files = append(files, matches...)
		}
		if len(files) == 0 {
			fmt.Printf("No HTML files found in %s\n", path)
			os.Exit(1)
		}
	} else {
		// Single file
		files = []string{path}
	}

	kinds := contractPages(console.DefaultSelectors())

	fmt.Printf("=== Console Selector Validator ===\n")
	fmt.Printf("Files to process: %d\n\n", len(files))

	// Process each file
	for _, file := range files {
		processFile(file, kinds, &stats)
	}

	// Print results
	printStatistics(&stats)

	if len(stats.Issues) > 0 || len(stats.Unrecognized) > 0 {
		os.Exit(1)
	}
}

// contractPages derives the per-page marker sets from the selector
// contract the flows use.
func contractPages(sel console.Selectors) []pageKind {
	return []pageKind{
		{
			Name: "certificate warning",
			Markers: []marker{
				textMarker("warning text ("+sel.InterstitialMarker+")", sel.InterstitialMarker),
				idMarker("details button ("+sel.DetailsButton+")", strings.TrimPrefix(sel.DetailsButton, "#")),
				idMarker("proceed link ("+sel.ProceedLink+")", strings.TrimPrefix(sel.ProceedLink, "#")),
			},
		},
		{
			Name: "login page",
			Markers: []marker{
				attrMarker("username field ("+sel.UsernameField+")", "name", "username"),
				attrMarker("password field ("+sel.PasswordField+")", "name", "password"),
				attrMarker("login control ("+sel.LoginButton+")", "onclick", "login"),
			},
		},
		{
			Name: "concurrent-session page",
			Markers: []marker{
				idMarker("takeover confirm ("+sel.TakeoverYes+")", strings.TrimPrefix(sel.TakeoverYes, "#")),
			},
		},
		{
			Name: "advanced status page",
			Markers: []marker{
				idMarker("advanced button ("+sel.AdvancedButton+")", strings.TrimPrefix(sel.AdvancedButton, "#")),
				idMarker("content pane ("+sel.ContentPane+")", strings.TrimPrefix(sel.ContentPane, "#")),
				idMarker("2.4GHz section (#title_bgn)", "title_bgn"),
				badgeMarker(sel),
				idMarker("wireless menu ("+sel.WirelessMenu+")", strings.TrimPrefix(sel.WirelessMenu, "#")),
				attrMarker("settings frame ("+sel.ConfigFrame+")", "name", sel.ConfigFrame),
			},
		},
		{
			Name: "wireless settings form",
			Markers: []marker{
				idMarker("radio checkbox ("+sel.RadioCheckbox+")", strings.TrimPrefix(sel.RadioCheckbox, "#")),
				attrMarker("checkbox label ("+sel.RadioLabel+")", "for", strings.TrimPrefix(sel.RadioCheckbox, "#")),
				idMarker("apply button ("+sel.ApplyButton+")", strings.TrimPrefix(sel.ApplyButton, "#")),
			},
		},
	}
}

func idMarker(name, id string) marker {
	return attrMarker(name, "id", id)
}

func attrMarker(name, attr, fragment string) marker {
	return marker{
		Name: name,
		Present: func(doc string) bool {
			return attrContains(doc, attr, strings.ToLower(fragment))
		},
	}
}

func textMarker(name, text string) marker {
	return marker{
		Name: name,
		Present: func(doc string) bool {
			return strings.Contains(doc, strings.ToLower(text))
		},
	}
}

// badgeMarker accepts any of the known status badge classes; a live page
// always shows exactly one of them.
func badgeMarker(sel console.Selectors) marker {
	classes := append([]string{sel.StatusOnClass}, sel.StatusOffClasses...)
	return marker{
		Name: "status badge (" + strings.Join(classes, "|") + ")",
		Present: func(doc string) bool {
			for _, c := range classes {
				if attrContains(doc, "class", strings.ToLower(c)) {
					return true
				}
			}
			return false
		},
	}
}

// attrContains reports whether any attr="..." value in doc contains
// fragment. Handles double-quoted, single-quoted, and bare attribute
// values; doc must already be lower-cased.
func attrContains(doc, attr, fragment string) bool {
	needle := attr + "="
	for i := 0; i < len(doc); {
		j := strings.Index(doc[i:], needle)
		if j < 0 {
			return false
		}
		i += j + len(needle)
		if i >= len(doc) {
			return false
		}

		switch doc[i] {
		case '"', '\'':
			quote := doc[i]
			end := strings.IndexByte(doc[i+1:], quote)
			if end < 0 {
				return false
			}
			if strings.Contains(doc[i+1:i+1+end], fragment) {
				return true
			}
			i += end + 2
		default:
			end := strings.IndexAny(doc[i:], " \t\n>")
			if end < 0 {
				end = len(doc) - i
			}
			if strings.Contains(doc[i:i+end], fragment) {
				return true
			}
			i += end
		}
	}
	return false
}

func processFile(filename string, kinds []pageKind, stats *Statistics) {
	stats.TotalFiles++

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file %s: %v\n", filename, err)
		stats.Unrecognized = append(stats.Unrecognized, filename)
		return
	}

	// Attribute names and id values on these pages are matched
	// case-insensitively, like the browser does.
	doc := strings.ToLower(string(data))

	// Classify: the page kind with the most matched markers wins.
	best := fileReport{File: filename}
	for _, kind := range kinds {
		report := fileReport{File: filename, Kind: kind.Name, Total: len(kind.Markers)}
		for _, m := range kind.Markers {
			if m.Present(doc) {
				report.Matched++
			} else {
				report.Missing = append(report.Missing, m.Name)
			}
		}
		if report.Matched > best.Matched {
			best = report
		}
	}

	if best.Matched == 0 {
		fmt.Printf("%s: no known console page markers found\n", filename)
		stats.Unrecognized = append(stats.Unrecognized, filename)
		return
	}

	stats.Classified[best.Kind]++
	fmt.Printf("%s: %s (%d/%d markers)\n", filename, best.Kind, best.Matched, best.Total)

	if len(best.Missing) == 0 {
		stats.CleanFiles++
		return
	}

	for _, name := range best.Missing {
		fmt.Printf("  missing: %s\n", name)
	}
	stats.Issues = append(stats.Issues, best)
}

func printStatistics(stats *Statistics) {
	fmt.Printf("\n========================================\n")
	fmt.Printf("VALIDATION RESULTS\n")
	fmt.Printf("========================================\n\n")

	fmt.Printf("Files Processed:    %d\n", stats.TotalFiles)
	fmt.Printf("Complete Contract:  %d\n", stats.CleanFiles)
	fmt.Printf("Missing Markers:    %d\n", len(stats.Issues))
	fmt.Printf("Unrecognized:       %d\n", len(stats.Unrecognized))

	if len(stats.Classified) > 0 {
		fmt.Printf("\n----------------------------------------\n")
		fmt.Printf("PAGE KINDS\n")
		fmt.Printf("----------------------------------------\n")
		for kind, count := range stats.Classified {
			fmt.Printf("%-24s %d file(s)\n", kind, count)
		}
	}

	fmt.Printf("\n========================================\n")
	if len(stats.Issues) == 0 && len(stats.Unrecognized) == 0 {
		fmt.Printf("✅ SUCCESS: The selector contract holds on every page\n")
	} else {
		fmt.Printf("⚠️  ISSUES FOUND: the console markup has drifted from the contract\n")
		fmt.Printf("Update internal/console/selectors.go to match the new markup\n")
	}
	fmt.Printf("========================================\n")
}
