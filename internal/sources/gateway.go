package sources

import (
	"time"

	"github.com/brogergvhs/evangelio/internal/cleaner"
	"github.com/brogergvhs/evangelio/internal/extract"
)

const (
	Gateway     = "gateway"
	GatewayFile = "evangelio_juan_jerusalen.txt"

	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// annotations inject verse numbers, cross references and section headings.
var annotations = []string{"sup", "h3", "h4"}

func init() {
	register(Gateway, gatewayProfile)
}

func gatewayProfile() Profile {
	c := cleaner.Boilerplate()

	return Profile{
		Name: Gateway,
		Title: []string{
			"EVANGELIO SEGÚN SAN JUAN",
			"Biblia de Jerusalén - Versión Católica",
		},
		URLTemplate: "https://www.biblegateway.com/passage/?search=Juan+{n}&version=RVR1960",
		Headers: map[string]string{
			"User-Agent":      desktopUA,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Accept-Language": "es-ES,es;q=0.9",
		},
		Timeout:  20 * time.Second,
		Delay:    2 * time.Second,
		FileName: GatewayFile,
		Extractor: extract.Extractor{
			Container: "div.passage-content",
			Strategies: []extract.Strategy{
				extract.Elements{
					Label: "verse-class",
					Tags:  []string{"span", "p"},
					Match: extract.AnyOf{
						extract.ClassContains{Substr: "text"},
						extract.ClassContains{Substr: "verse"},
					},
					Strip:  annotations,
					MinLen: 10,
				},
				extract.Elements{
					Label:  "paragraphs",
					Tags:   []string{"p"},
					Strip:  annotations,
					MinLen: 10,
				},
				extract.TextLines{MinLine: 15, MinBlock: 50},
			},
			Clean: c.Clean,
		},
		Cleaner: c,
	}
}
