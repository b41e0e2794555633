package demo

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PageParams is the content of the sample preview screen.
type PageParams struct {
	Title      string
	Author     string
	Email      string
	AvatarURL  string
	CoverURL   string
	Published  string
	Paragraphs []string
	Keywords   []string
	Accent     string
	QRCode     string
	Kinds      []string
}

// DefaultPage renders the sample screen as a self-contained HTML document.
func DefaultPage(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		esc := templ.EscapeString[string]

		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		fmt.Fprintf(&b, "<title>%s</title>", esc(p.Title))
		fmt.Fprintf(&b, "<style>body{font-family:system-ui,sans-serif;max-width:46rem;margin:2rem auto;padding:0 1rem}"+
			"header{border-left:.4rem solid %s;padding-left:1rem}"+
			".tag{display:inline-block;margin:.1rem;padding:.1rem .5rem;border-radius:1rem;background:%s;color:#fff}"+
			"img.avatar{border-radius:50%%;vertical-align:middle}</style></head><body>", esc(p.Accent), esc(p.Accent))

		b.WriteString("<header>")
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(p.Title))
		fmt.Fprintf(&b, "<p><img class=\"avatar\" src=\"%s\" width=\"48\" height=\"48\" alt=\"\"> %s &lt;%s&gt; &middot; <time>%s</time></p>",
			esc(p.AvatarURL), esc(p.Author), esc(p.Email), esc(p.Published))
		b.WriteString("</header>")

		if p.CoverURL != "" {
			fmt.Fprintf(&b, "<img src=\"%s\" alt=\"\" style=\"width:100%%\">", esc(p.CoverURL))
		}
		for _, para := range p.Paragraphs {
			fmt.Fprintf(&b, "<p>%s</p>", esc(para))
		}

		b.WriteString("<p>")
		for _, k := range p.Keywords {
			fmt.Fprintf(&b, "<span class=\"tag\">%s</span>", esc(k))
		}
		b.WriteString("</p>")

		if p.QRCode != "" {
			fmt.Fprintf(&b, "<p><img src=\"%s\" width=\"128\" height=\"128\" alt=\"QR code\"></p>", esc(p.QRCode))
		}

		if len(p.Kinds) > 0 {
			b.WriteString("<footer><p>API:")
			for _, k := range p.Kinds {
				fmt.Fprintf(&b, " <a href=\"/api/%s\">%s</a>", esc(k), esc(k))
			}
			b.WriteString("</p></footer>")
		}
		b.WriteString("</body></html>")

		_, err := io.WriteString(w, b.String())
		return err
	})
}
