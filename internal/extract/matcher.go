package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Matcher decides whether an element is a verse candidate.
type Matcher interface {
	Name() string
	Match(el *goquery.Selection) bool
}

// ClassContains matches when the class attribute contains Substr, ignoring
// case.
type ClassContains struct {
	Substr string
}

func (m ClassContains) Name() string { return "class~" + m.Substr }

func (m ClassContains) Match(el *goquery.Selection) bool {
	class, ok := el.Attr("class")
	if !ok || class == "" {
		return false
	}

	return strings.Contains(strings.ToLower(class), strings.ToLower(m.Substr))
}

// ClassToken matches when one of the element classes equals Class exactly.
type ClassToken struct {
	Class string
}

func (m ClassToken) Name() string { return "class=" + m.Class }

func (m ClassToken) Match(el *goquery.Selection) bool {
	return el.HasClass(m.Class)
}

// AnyOf tries its matchers in order and accepts on the first hit.
type AnyOf []Matcher

func (m AnyOf) Name() string {
	names := make([]string, len(m))
	for i, sub := range m {
		names[i] = sub.Name()
	}

	return strings.Join(names, "|")
}

func (m AnyOf) Match(el *goquery.Selection) bool {
	for _, sub := range m {
		if sub.Match(el) {
			return true
		}
	}

	return false
}
