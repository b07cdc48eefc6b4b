package chapters

import (
	"strconv"
	"strings"
)

// The Gospel of John has a fixed chapter count.
const (
	First = 1
	Last  = 21
)

const placeholder = "{n}"

type Chapter struct {
	Number int
	URL    string
}

// All returns every chapter of the book, in order, with its URL built from
// template by substituting the {n} placeholder.
func All(template string) []Chapter {
	out := make([]Chapter, 0, Last-First+1)
	for n := First; n <= Last; n++ {
		out = append(out, Chapter{Number: n, URL: BuildURL(template, n)})
	}

	return out
}

func BuildURL(template string, n int) string {
	return strings.ReplaceAll(template, placeholder, strconv.Itoa(n))
}

func (c Chapter) Title() string {
	return "CAPÍTULO " + strconv.Itoa(c.Number)
}

// Header renders the two-line chapter heading written before its verses.
func (c Chapter) Header() []string {
	return []string{c.Title(), strings.Repeat("-", 40)}
}
