package sources

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/brogergvhs/evangelio/internal/cleaner"
	"github.com/brogergvhs/evangelio/internal/extract"
)

// Profile describes one site the gospel can be downloaded from. Everything
// that depends on the site layout lives here so a layout change is a data
// edit.
type Profile struct {
	Name        string
	Title       []string
	URLTemplate string
	Headers     map[string]string
	Timeout     time.Duration
	Delay       time.Duration
	FileName    string
	Extractor   extract.Extractor
	Cleaner     *cleaner.Cleaner
}

var registry = map[string]func() Profile{}

func register(name string, build func() Profile) {
	registry[name] = build
}

// Lookup returns a fresh copy of the named profile.
func Lookup(name string) (Profile, error) {
	build, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("unknown source %q (available: %s)", name, strings.Join(Names(), ", "))
	}

	return build(), nil
}

func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Clean runs the profile cleaner, or returns s unchanged when there is none.
func (p Profile) Clean(s string) string {
	if p.Cleaner == nil {
		return s
	}

	return p.Cleaner.Clean(s)
}
