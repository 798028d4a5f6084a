package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selector names one page element by tag, class and an optional attribute
// constraint. Empty fields do not constrain the match.
type Selector struct {
	Tag       string
	Class     string
	Attr      string
	Contains  string
	HasPrefix string
}

// Matches reports whether the first node of s satisfies the selector.
func (sel Selector) Matches(s *goquery.Selection) bool {
	if s == nil || s.Length() == 0 {
		return false
	}
	node := s.First()
	if sel.Tag != "" && goquery.NodeName(node) != sel.Tag {
		return false
	}
	if sel.Class != "" && !node.HasClass(sel.Class) {
		return false
	}
	if sel.Attr == "" {
		return true
	}
	val, ok := node.Attr(sel.Attr)
	if !ok {
		return false
	}
	if sel.Contains != "" && !strings.Contains(val, sel.Contains) {
		return false
	}
	if sel.HasPrefix != "" && !strings.HasPrefix(val, sel.HasPrefix) {
		return false
	}
	return true
}

// All returns every descendant of root matching the selector, in document order.
func (sel Selector) All(root *goquery.Selection) *goquery.Selection {
	if root == nil {
		return &goquery.Selection{}
	}
	tag := sel.Tag
	if tag == "" {
		tag = "*"
	}
	return root.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return sel.Matches(s)
	})
}

// First returns the first descendant of root matching the selector. The
// result is empty, never nil, when nothing matches.
func (sel Selector) First(root *goquery.Selection) *goquery.Selection {
	return sel.All(root).First()
}

func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Tag)
	if sel.Class != "" {
		b.WriteString(".")
		b.WriteString(sel.Class)
	}
	if sel.Attr != "" {
		b.WriteString("[")
		b.WriteString(sel.Attr)
		switch {
		case sel.Contains != "":
			b.WriteString(`*="` + sel.Contains + `"`)
		case sel.HasPrefix != "":
			b.WriteString(`^="` + sel.HasPrefix + `"`)
		}
		b.WriteString("]")
	}
	return b.String()
}
