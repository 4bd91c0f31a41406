package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/ledgewood/auditexpr/internal/catalog"
)

// Renders docs/expression-language.md to HTML, appending a field reference
// table generated from the built-in catalog so the docs never drift from the
// code.
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <out-dir>\n", os.Args[0])
		os.Exit(1)
	}
	outDir := os.Args[1]
	outPath := filepath.Join(outDir, "expression-language.html")

	source, err := os.ReadFile(filepath.Join("docs", "expression-language.md"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading expression-language.md: %v\n", err)
		os.Exit(1)
	}

	combined := string(source) + "\n" + fieldReferenceMarkdown()

	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.NoEmptyLineBeforeBlock
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(combined))

	htmlFlags := html.CommonFlags | html.HrefTargetBlank
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	body := markdown.Render(doc, renderer)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}
	f, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outPath, err)
		os.Exit(1)
	}

	writeHeader(f)
	if _, err := f.Write(body); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}
	writeFooter(f)
	f.Close()

	fmt.Fprintf(os.Stderr, "Generated %s\n", outPath)
}

// fieldReferenceMarkdown renders the built-in catalog as a markdown section.
func fieldReferenceMarkdown() string {
	var sb strings.Builder
	sb.WriteString("## Field reference\n\n")
	sb.WriteString("| Field | Type | Description | Common values |\n")
	sb.WriteString("|-------|------|-------------|---------------|\n")
	for _, f := range catalog.Default().Fields() {
		values := "—"
		if len(f.CommonValues) > 0 {
			escaped := make([]string, 0, len(f.CommonValues))
			for _, v := range f.CommonValues {
				escaped = append(escaped, "`"+v+"`")
			}
			values = strings.Join(escaped, ", ")
		}
		sb.WriteString(fmt.Sprintf("| `%s` | %s | %s | %s |\n", f.Name, f.Type, f.Description, values))
	}

	sb.WriteString("\n### Examples\n\n")
	for _, f := range catalog.Default().Fields() {
		for _, ex := range f.Examples {
			sb.WriteString(fmt.Sprintf("- `%s`\n", ex))
		}
	}
	return sb.String()
}

func writeHeader(w io.Writer) {
	fmt.Fprint(w, `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>auditexpr - Expression Language</title>
  <style>
    body { font-family: system-ui, -apple-system, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; line-height: 1.6; color: #333; }
    code { background: #f4f4f4; padding: 2px 5px; border-radius: 3px; font-size: 0.9em; }
    pre { background: #f4f4f4; padding: 15px; border-radius: 5px; overflow-x: auto; }
    pre code { background: none; padding: 0; }
    table { border-collapse: collapse; width: 100%; margin: 1em 0; }
    th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
    th { background: #f4f4f4; }
    h1, h2, h3 { color: #111; }
  </style>
</head>
<body>
`)
}

func writeFooter(w io.Writer) {
	fmt.Fprint(w, `
</body>
</html>
`)
}
