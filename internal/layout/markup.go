package layout

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/atom"
	nethtml "golang.org/x/net/html"
)

// Hyperlink returns inline markup rendering text as a link to url.
// An empty url yields plain text; an empty text shows the url.
func Hyperlink(url, text string) string {
	if text == "" {
		text = url
	}
	if url == "" {
		return EscapeText(text)
	}
	return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(url), EscapeText(text))
}

// EscapeText escapes text so it is never interpreted as markup
func EscapeText(text string) string {
	return html.EscapeString(text)
}

// ParseMarkup splits content into runs. Only <a href> is meaningful; any
// other tag contributes its text.
func ParseMarkup(content string) []Run {
	if !strings.ContainsAny(content, "<&") {
		if content == "" {
			return nil
		}
		return []Run{{Text: content}}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return []Run{{Text: content}}
	}

	var runs []Run
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		runs = collectRuns(s, "", runs)
	})
	return mergeRuns(runs)
}

func collectRuns(s *goquery.Selection, href string, runs []Run) []Run {
	node := s.Get(0)
	switch node.Type {
	case nethtml.TextNode:
		return append(runs, Run{Text: node.Data, Href: href})
	case nethtml.ElementNode:
		if node.DataAtom == atom.A {
			if h, ok := s.Attr("href"); ok && strings.TrimSpace(h) != "" {
				href = strings.TrimSpace(h)
			}
		}
		if node.DataAtom == atom.Br {
			return append(runs, Run{Text: "\n", Href: href})
		}
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			runs = collectRuns(child, href, runs)
		})
	}
	return runs
}

func mergeRuns(runs []Run) []Run {
	out := runs[:0]
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Href == r.Href {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
