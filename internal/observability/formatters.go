// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-pdf/internal/compose"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintTheme outputs the overrides a theme applies
func (p *Printer) PrintTheme(theme types.Theme) {
	var sb strings.Builder

	if theme.TitleColor != "" {
		sb.WriteString(fmt.Sprintf("Title color:   %s\n", theme.TitleColor))
	}
	if theme.SectionColor != "" {
		sb.WriteString(fmt.Sprintf("Section color: %s\n", theme.SectionColor))
	}

	roles := make(map[string]bool)
	for role := range theme.FontSizes {
		roles[role] = true
	}
	for role := range theme.FontStyles {
		roles[role] = true
	}
	names := make([]string, 0, len(roles))
	for role := range roles {
		names = append(names, role)
	}
	sort.Strings(names)

	for _, role := range names {
		sb.WriteString(fmt.Sprintf("  • %s:", role))
		if font := theme.FontStyles[role]; font != "" {
			sb.WriteString(" " + font)
		}
		if size := theme.FontSizes[role]; size > 0 {
			sb.WriteString(fmt.Sprintf(" %gpt", size))
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("(no overrides)")
	}

	p.printBox("THEME: "+strings.ToUpper(theme.Name), sb.String())
}

// PrintOutline outputs the composed sections and, when doc is set, the pages they landed on
func (p *Printer) PrintOutline(outline *compose.Outline, doc *layout.Document) {
	if outline == nil {
		return
	}

	var sb strings.Builder
	for _, s := range outline.Sections {
		sb.WriteString(fmt.Sprintf("%-24s %3d elements", sectionLabel(s), s.Len()))
		if s.Entries > 0 {
			sb.WriteString(fmt.Sprintf(", %d entries", s.Entries))
		}
		if first, last, ok := pageRange(doc, s); ok {
			if first == last {
				sb.WriteString(fmt.Sprintf(", page %d", first))
			} else {
				sb.WriteString(fmt.Sprintf(", pages %d-%d", first, last))
			}
		}
		sb.WriteString("\n")
	}

	p.printBox("COMPOSED SECTIONS", sb.String())
}

func sectionLabel(s compose.Section) string {
	if s.Title != "" {
		return s.Title
	}
	return string(s.Kind)
}

func pageRange(doc *layout.Document, s compose.Section) (int, int, bool) {
	if doc == nil || s.Len() == 0 || s.End > len(doc.Placements) {
		return 0, 0, false
	}
	first := doc.Placements[s.Start].Page
	last := first
	for _, pl := range doc.Placements[s.Start:s.End] {
		if pl.Page > last {
			last = pl.Page
		}
	}
	return first, last, true
}

// PrintDocument outputs page counts and the first lines of each page
func (p *Printer) PrintDocument(doc *layout.Document, size int) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Pages: %d  (%gx%gpt)\n", len(doc.Pages), doc.PageWidth, doc.PageHeight))
	sb.WriteString(fmt.Sprintf("Elements: %d\n", len(doc.Placements)))
	if size > 0 {
		sb.WriteString(fmt.Sprintf("Size: %d bytes\n", size))
	}

	for _, page := range doc.Pages {
		lines := page.TextLines()
		sb.WriteString(fmt.Sprintf("\nPage %d (%d text segments):\n", page.Number, len(lines)))
		count := min(len(lines), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s\n", lines[i]))
		}
		if len(lines) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lines)-maxItemsToShow))
		}
	}

	p.printBox("LAID-OUT DOCUMENT", sb.String())
}

// PrintTemplates outputs template names and, per template, its theme names
func (p *Printer) PrintTemplates(catalogs map[string][]string) {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		sb.WriteString(name + "\n")
		for _, theme := range catalogs[name] {
			sb.WriteString(fmt.Sprintf("  • %s\n", theme))
		}
	}
	if len(names) == 0 {
		sb.WriteString("(no templates)")
	}

	p.printBox("TEMPLATES", sb.String())
}
