package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders the markdown report body for embedding in the HTML page.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("github"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

const htmlPageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Pain Point Analysis Report</title>
  <style>
    :root { --fg: #1f2328; --muted: #59636e; --accent: #0969da; --border: #d1d9e0; }
    body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; color: var(--fg);
           max-width: 860px; margin: 0 auto; padding: 2rem 1.5rem; line-height: 1.6; }
    h1 { border-bottom: 1px solid var(--border); padding-bottom: .4rem; }
    h3 { color: var(--accent); }
    li { margin: .15rem 0; }
    strong { color: var(--muted); }
  </style>
</head>
<body>
<article>
{{.Content}}
</article>
</body>
</html>`

var htmlTmpl = template.Must(template.New("page").Parse(htmlPageTemplate))

func writeHTML(w io.Writer, r *Report) error {
	var body bytes.Buffer
	if err := writeMarkdown(&body, r); err != nil {
		return err
	}

	var rendered bytes.Buffer
	if err := md.Convert(body.Bytes(), &rendered); err != nil {
		return fmt.Errorf("rendering report HTML: %w", err)
	}

	return htmlTmpl.Execute(w, struct{ Content template.HTML }{template.HTML(rendered.String())})
}
