package extract

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Text returns the visible text of s with surrounding whitespace trimmed,
// inner whitespace runs collapsed to one space and non-printables removed.
func Text(s *goquery.Selection) string {
	if s == nil || s.Length() == 0 {
		return ""
	}
	return clean(s.Text())
}

// Attr returns the trimmed value of attribute name on the first node of s.
func Attr(s *goquery.Selection, name string) (string, bool) {
	if s == nil || s.Length() == 0 {
		return "", false
	}
	val, ok := s.Attr(name)
	return strings.TrimSpace(val), ok
}

func clean(raw string) string {
	collapsed := strings.Join(strings.Fields(raw), " ")
	var b strings.Builder
	for _, r := range collapsed {
		if unicode.IsPrint(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// textNodes returns the cleaned content of every non-empty text node below
// the nodes of s, in document order.
func textNodes(s *goquery.Selection) []string {
	var out []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := clean(n.Data); t != "" {
				out = append(out, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range s.Nodes {
		walk(n)
	}
	return out
}

// pathSegments splits an href path into its non-empty segments, ignoring
// any query or fragment.
func pathSegments(href string) []string {
	if i := strings.IndexAny(href, "?#"); i >= 0 {
		href = href[:i]
	}
	var segs []string
	for _, seg := range strings.Split(href, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func absolute(base, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return strings.TrimRight(base, "/") + href
}
