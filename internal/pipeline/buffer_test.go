package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brogergvhs/evangelio/internal/chapters"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Layout(t *testing.T) {
	b := NewBuffer([]string{"EVANGELIO SEGÚN SAN JUAN", "Reina Valera 1960"})
	b.Chapter(chapters.Chapter{Number: 1})
	b.Fragment("En el principio era el Verbo.")
	b.Separator()

	want := "EVANGELIO SEGÚN SAN JUAN\n" +
		"Reina Valera 1960\n" +
		strings.Repeat("=", 60) + "\n\n" +
		"\nCAPÍTULO 1\n" +
		strings.Repeat("-", 40) + "\n\n" +
		"En el principio era el Verbo.\n" +
		"\n"

	assert.Equal(t, want, b.String())

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, b.Flush(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestBuffer_LinesIsACopy(t *testing.T) {
	b := NewBuffer(nil)
	lines := b.Lines()
	lines[0] = "changed"

	assert.Equal(t, strings.Repeat("=", 60), b.Lines()[0])
	assert.Equal(t, 2, b.Len())
}

func TestSummary_Report(t *testing.T) {
	s := Summary{Path: "evangelio_juan.txt", Chapters: 21, ChaptersWithText: 21, Fragments: 400, Failed: []int{}}
	s.finalize()

	var sb strings.Builder
	s.Report(&sb)

	assert.True(t, s.Success)
	assert.False(t, s.LikelyBlocked)
	assert.Contains(t, sb.String(), "evangelio_juan.txt")
	assert.Contains(t, sb.String(), "exitosamente")
	assert.NotContains(t, sb.String(), ManualDownloadURL)

	empty := Summary{}
	empty.finalize()
	assert.False(t, empty.Success)
	assert.True(t, empty.LikelyBlocked)
}
