// Package renderer turns collection views and reports into markdown, ready
// for the terminal (through glamour) or any other markdown consumer.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/bondbook"
)

//go:embed templates/*.md
var templates embed.FS

// List is the data behind the bond list view.
type List struct {
	// Query is the active substring filter, empty for the full view.
	Query string
	// Bonds is the filtered view, in collection order.
	Bonds []bondbook.Identifier
	// Total is the size of the whole collection.
	Total int
}

// ListMarkdown renders the bond list view to a markdown string.
func ListMarkdown(l *List) string {
	partials := map[string]string{
		"list_table": "list_table.md",
	}
	return renderTemplate("list", "list.md", partials, l)
}

// DrawReport is the data behind the draw check report.
type DrawReport struct {
	// Source is where the results were fetched from.
	Source string
	// Winners is the full published winner list.
	Winners []bondbook.Identifier
	// Hits are the user's bonds found among the winners.
	Hits []bondbook.Identifier
	// Held is the size of the user's collection.
	Held int
}

// DrawMarkdown renders the draw check report to a markdown string.
func DrawMarkdown(r *DrawReport) string {
	partials := map[string]string{
		"draw_hits": "draw_hits.md",
	}
	return renderTemplate("draw", "draw.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
