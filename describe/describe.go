// Package describe turns puzzle pages into markdown.
package describe

import (
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

const PartTwoMarker = "--- Part Two ---"

// Markdown converts every puzzle description on the page (the
// article.day-desc elements) to markdown. Relative links are resolved against
// baseURL.
func Markdown(htmlContent string, baseURL string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	articles := FindAll(doc, "article", "day-desc")
	logrus.WithField("articles", len(articles)).Debug("converting description")

	r := &renderer{base: base}
	for _, article := range articles {
		r.walk(article)
		r.flush()
	}
	if len(r.blocks) == 0 {
		return "", nil
	}
	return strings.Join(r.blocks, "\n\n") + "\n", nil
}

// ArticleText returns the text of the first <article> on the page with
// whitespace collapsed, or "" if there is none.
func ArticleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	articles := FindAll(doc, "article", "")
	if len(articles) == 0 {
		return ""
	}
	return collapse(TextContent(articles[0]))
}

// FindAll returns every element named tag that carries class, in document
// order. An empty class matches any element named tag.
func FindAll(n *html.Node, tag string, class string) []*html.Node {
	found := []*html.Node{}
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag && (class == "" || HasClass(n, class)) {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return found
}

func HasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates every text node below n.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

type renderer struct {
	base   *url.URL
	blocks []string
	inline strings.Builder
}

// flush ends the current paragraph.
func (r *renderer) flush() {
	if text := collapse(r.inline.String()); text != "" {
		r.blocks = append(r.blocks, text)
	}
	r.inline.Reset()
}

// renderInline renders the children of n on their own and returns the
// collapsed text.
func (r *renderer) renderInline(n *html.Node) string {
	sub := &renderer{base: r.base}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sub.walk(c)
	}
	sub.flush()
	return strings.Join(sub.blocks, " ")
}

func (r *renderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.inline.WriteString(n.Data)
		return
	case html.ElementNode:
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.walk(c)
		}
		return
	}

	switch n.Data {
	case "script", "style", "noscript":
		return
	case "h2":
		r.flush()
		r.blocks = append(r.blocks, "## "+r.renderInline(n))
		return
	case "p":
		r.flush()
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			r.walk(c)
		}
		r.flush()
		return
	case "pre":
		r.flush()
		code := strings.TrimRight(TextContent(n), "\n")
		r.blocks = append(r.blocks, "```\n"+code+"\n```")
		return
	case "ul", "ol":
		r.flush()
		items := []string{}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "li" {
				items = append(items, "- "+r.renderInline(c))
			}
		}
		if len(items) > 0 {
			r.blocks = append(r.blocks, strings.Join(items, "\n"))
		}
		return
	case "code":
		r.inline.WriteString("`" + TextContent(n) + "`")
		return
	case "em", "strong", "b":
		r.inline.WriteString("**" + r.renderInline(n) + "**")
		return
	case "a":
		text := r.renderInline(n)
		href := getAttr(n, "href")
		if href == "" {
			r.inline.WriteString(text)
			return
		}
		r.inline.WriteString("[" + text + "](" + r.resolve(href) + ")")
		return
	case "br":
		r.inline.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}

func (r *renderer) resolve(href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return r.base.ResolveReference(ref).String()
}
