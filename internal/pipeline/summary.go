package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/brogergvhs/evangelio/internal/util"
)

// MinFragments is the count below which a run is assumed to have been blocked
// by the remote site.
const MinFragments = 50

const ManualDownloadURL = "https://www.bibliacatolica.com.ar/libro-del-pueblo-de-dios/juan/"

type Summary struct {
	Source           string
	Path             string
	Chapters         int
	ChaptersWithText int
	Fragments        int
	Lines            int
	Failed           []int
	Bytes            int64
	Elapsed          time.Duration
	Cancelled        bool

	Success       bool
	LikelyBlocked bool
}

func (s *Summary) finalize() {
	s.Success = s.ChaptersWithText > 0
	s.LikelyBlocked = s.Fragments < MinFragments
}

// Report prints the end-of-run summary, including the manual download hint
// when the output looks incomplete.
func (s Summary) Report(w io.Writer) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "✓ Evangelio de Juan descargado en: %s\n", s.Path)
	_, _ = fmt.Fprintf(w, "Fragmentos: %d (capítulos con texto: %d/%d)\n", s.Fragments, s.ChaptersWithText, s.Chapters)
	_, _ = fmt.Fprintf(w, "Total de líneas: %d\n", s.Lines)
	_, _ = fmt.Fprintf(w, "Datos:      %s\n", util.Human(s.Bytes))
	_, _ = fmt.Fprintf(w, "Tiempo:     %s\n", s.Elapsed.Round(time.Second))
	if len(s.Failed) > 0 {
		_, _ = fmt.Fprintf(w, "Capítulos fallidos: %v\n", s.Failed)
	}

	switch {
	case s.LikelyBlocked:
		_, _ = fmt.Fprintln(w, "\n⚠ ADVERTENCIA: El archivo parece estar vacío o incompleto.")
		_, _ = fmt.Fprintln(w, "El sitio web puede estar bloqueando el acceso automatizado.")
		_, _ = fmt.Fprintln(w, "\nAlternativa: Puedes descargar manualmente desde:")
		_, _ = fmt.Fprintln(w, ManualDownloadURL)
	case s.Success:
		_, _ = fmt.Fprintln(w, "✓ Descarga completada exitosamente!")
	}
}
