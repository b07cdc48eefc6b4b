package extract

import (
	"errors"
	"io"

	"github.com/PuerkitoBio/goquery"
)

var (
	ErrNoContainer = errors.New("content container not found")
	ErrNoFragments = errors.New("no verse fragments found")
)

// Extractor locates the content container and runs the strategy chain on
// it. An empty Container selects the whole document.
type Extractor struct {
	Container  string
	Strategies []Strategy
	Clean      func(string) string
}

type Result struct {
	Fragments []string
	Strategy  string
	Container bool
}

// Err reports why a result is empty, or nil when it holds fragments.
func (r Result) Err() error {
	switch {
	case !r.Container:
		return ErrNoContainer
	case len(r.Fragments) == 0:
		return ErrNoFragments
	default:
		return nil
	}
}

func (e Extractor) FromReader(r io.Reader) (Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Result{}, err
	}

	return e.Extract(doc), nil
}

func (e Extractor) Extract(doc *goquery.Document) Result {
	container := doc.Selection
	if e.Container != "" {
		container = doc.Find(e.Container).First()
	}
	if container.Length() == 0 {
		return Result{Fragments: []string{}}
	}

	for _, s := range e.Strategies {
		if frags := s.Extract(container, e.Clean); len(frags) > 0 {
			return Result{Fragments: frags, Strategy: s.Name(), Container: true}
		}
	}

	return Result{Fragments: []string{}, Container: true}
}
