// Package cleaner strips site boilerplate from extracted verse text and
// normalizes its whitespace.
package cleaner

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

func NewRule(name, expr string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(expr)}
}

var (
	reBlankRuns = regexp.MustCompile(`\n[\s\p{Zs}]*\n[\s\p{Zs}]*\n+`)
	reSpaceRuns = regexp.MustCompile(` +`)
)

type Cleaner struct {
	rules []Rule
}

func New(rules ...Rule) *Cleaner {
	return &Cleaner{rules: rules}
}

// Boilerplate returns the cleaner for pages served through the IntraText
// template. Rule order matters: the block rules must run before the
// standalone leftovers they contain.
func Boilerplate() *Cleaner {
	return New(
		NewRule("site-header", `(?s)El libro del Pueblo de Dios - IntraText.*?concordancias`),
		NewRule("navigation", `(?s)Anterior - Siguiente.*?Vaticana`),
		NewRule("copyright", `Copyright © Libreria Editrice Vaticana`),
		NewRule("help-link", `Pulse aquí para activar.*?concordancias`),
		NewRule("help-bar", `AyudaBibliaIntraText.*?Testamento`),
		NewRule("old-testament", `El Antiguo Testamento`),
		NewRule("new-testament", `El Nuevo Testamento`),
		NewRule("psalm-number", `SALMOS?\d+`),
		NewRule("psalm-number-spaced", `SALMO \d+`),
		NewRule("psalms-number-spaced", `SALMOS \d+`),
		NewRule("nav-leftover", `Anterior - Siguiente`),
		NewRule("text-leftover", `IntraText - Texto`),
		NewRule("help-leftover", `Ayuda.*?Texto`),
	)
}

// Whitespace returns a cleaner that only normalizes spacing.
func Whitespace() *Cleaner {
	return New()
}

// Fired names the rules that match s, in rule order.
func (c *Cleaner) Fired(s string) []string {
	var names []string
	for _, r := range c.rules {
		if r.Pattern.MatchString(s) {
			names = append(names, r.Name)
		}
	}

	return names
}

// Clean removes every rule match and normalizes whitespace. The pass is
// repeated until the text stops changing, so a removal that joins two
// halves of a boilerplate phrase is caught too. Every change shortens the
// text, which bounds the loop.
func (c *Cleaner) Clean(s string) string {
	s = norm.NFC.String(s)
	for {
		next := c.pass(s)
		if next == s {
			return next
		}
		s = next
	}
}

func (c *Cleaner) pass(s string) string {
	for _, r := range c.rules {
		s = r.Pattern.ReplaceAllString(s, "")
	}

	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	s = reSpaceRuns.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}
