package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one link of the fallback chain. clean may be nil.
type Strategy interface {
	Name() string
	Extract(container *goquery.Selection, clean func(string) string) []string
}

// Elements selects Tags below the container, keeps those accepted by Match
// (all of them when Match is nil) and returns their text once the Strip
// selectors have been removed from each element.
type Elements struct {
	Label  string
	Tags   []string
	Match  Matcher
	Strip  []string
	MinLen int
}

func (s Elements) Name() string {
	if s.Label != "" {
		return s.Label
	}
	if s.Match != nil {
		return strings.Join(s.Tags, ",") + "[" + s.Match.Name() + "]"
	}

	return strings.Join(s.Tags, ",")
}

func (s Elements) Extract(container *goquery.Selection, _ func(string) string) []string {
	sel := container.Find(strings.Join(s.Tags, ", "))
	if s.Match != nil {
		sel = sel.FilterFunction(func(_ int, el *goquery.Selection) bool {
			return s.Match.Match(el)
		})
	}

	strip := strings.Join(s.Strip, ", ")

	var out []string
	sel.Each(func(_ int, el *goquery.Selection) {
		if strip != "" {
			el.Find(strip).Remove()
		}

		text := strings.TrimSpace(el.Text())
		if longerThan(text, s.MinLen) {
			out = append(out, text)
		}
	})

	return out
}

// TextLines takes the whole container text, cleans it as one block and
// keeps the lines longer than MinLine. Blocks not longer than MinBlock
// after cleaning yield nothing.
type TextLines struct {
	MinLine  int
	MinBlock int
}

func (s TextLines) Name() string { return "text-lines" }

func (s TextLines) Extract(container *goquery.Selection, clean func(string) string) []string {
	text := container.Text()
	if clean != nil {
		text = clean(text)
	}
	if !longerThan(text, s.MinBlock) {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if longerThan(line, s.MinLine) {
			out = append(out, line)
		}
	}

	return out
}

// WholeText returns the full text of the first element matching Selector
// as a single fragment.
type WholeText struct {
	Selector string
}

func (s WholeText) Name() string { return "whole:" + s.Selector }

func (s WholeText) Extract(container *goquery.Selection, _ func(string) string) []string {
	sel := container.Find(s.Selector).First()
	if sel.Length() == 0 {
		return nil
	}

	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return nil
	}

	return []string{text}
}

func longerThan(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > n
}
