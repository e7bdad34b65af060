// Command export_deck renders a stored presentation document to a .pptx file
// without a running server.
//
//	go run ./cmd/export_deck -in deck.json -out deck.pptx
package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"lms-presentation-be/pkg/document"
	"lms-presentation-be/pkg/export"
	"lms-presentation-be/pkg/grid"
	"lms-presentation-be/pkg/layout"
	"lms-presentation-be/pkg/transform"

	"github.com/fatih/color"
)

func main() {
	in := flag.String("in", "", "presentation JSON document ({presentation, slides})")
	out := flag.String("out", "", "output .pptx path (defaults to the input name)")
	width := flag.Float64("width", 10, "canvas width in inches")
	height := flag.Float64("height", 5.625, "canvas height in inches")
	flag.Parse()

	if *in == "" {
		color.Red("Missing -in")
		flag.Usage()
		os.Exit(2)
	}
	if *out == "" {
		*out = strings.TrimSuffix(*in, filepath.Ext(*in)) + ".pptx"
	}

	raw, err := os.ReadFile(*in)
	if err != nil {
		color.Red("Failed to read %s: %v", *in, err)
		os.Exit(1)
	}

	p, err := document.Hydrate(raw)
	if err != nil {
		color.Red("Invalid document: %v", err)
		os.Exit(1)
	}

	catalog := layout.NewCatalog()
	exporter := export.NewExporter(export.NewPptxWriter(grid.NewInchCanvas(*width, *height)), catalog)

	color.Cyan("Rendering %q (%d slides)", p.Title, len(p.Slides))
	for i, s := range transform.TransformPresentation(*p, catalog) {
		color.Yellow("  %2d. %-24s %d elements", i+1, s.Layout.Id, len(s.Elements))
	}

	data, err := exporter.ExportBytes(*p)
	if err != nil {
		color.Red("Export failed: %v", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		color.Red("Failed to write %s: %v", *out, err)
		os.Exit(1)
	}

	color.Green("✅ Wrote %s (%d bytes)", *out, len(data))
}
