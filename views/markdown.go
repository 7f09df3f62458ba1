package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Markdown returns a templ.Component rendering content as HTML. Raw HTML in
// the source is not passed through.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			// Fall back to the escaped source rather than failing the page.
			return renderEscaped(w, content)
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderEscaped(w io.Writer, s string) error {
	_, err := io.WriteString(w, "<pre>"+esc(s)+"</pre>")
	return err
}
