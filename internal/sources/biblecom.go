package sources

import (
	"time"

	"github.com/brogergvhs/evangelio/internal/cleaner"
	"github.com/brogergvhs/evangelio/internal/extract"
)

const (
	BibleCom     = "biblecom"
	BibleComFile = "evangelio_juan.txt"
)

func init() {
	register(BibleCom, bibleComProfile)
}

// bibleComProfile has no boilerplate rules; verses are only trimmed and
// whitespace-normalized.
func bibleComProfile() Profile {
	return Profile{
		Name: BibleCom,
		Title: []string{
			"EVANGELIO SEGÚN SAN JUAN",
			"Reina Valera 1960 (Versión Católica Aceptada)",
		},
		URLTemplate: "https://www.bible.com/es/bible/149/JHN.{n}.RVR1960",
		Headers: map[string]string{
			"User-Agent": "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36",
		},
		Timeout:  15 * time.Second,
		Delay:    3 * time.Second,
		FileName: BibleComFile,
		Extractor: extract.Extractor{
			Strategies: []extract.Strategy{
				extract.Elements{
					Label: "verse-token",
					Tags:  []string{"span"},
					Match: extract.ClassToken{Class: "verse"},
				},
				extract.WholeText{Selector: "div.chapter"},
			},
		},
		Cleaner: cleaner.Whitespace(),
	}
}
