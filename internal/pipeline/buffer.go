package pipeline

import (
	"strings"

	"github.com/brogergvhs/evangelio/internal/chapters"
	"github.com/brogergvhs/evangelio/internal/util"
)

// Buffer accumulates the output file line by line. It is owned by a single
// run and flushed once at the end.
type Buffer struct {
	lines []string
}

func NewBuffer(title []string) *Buffer {
	b := &Buffer{}
	b.lines = append(b.lines, title...)
	b.lines = append(b.lines, strings.Repeat("=", 60), "")
	return b
}

func (b *Buffer) Chapter(ch chapters.Chapter) {
	b.lines = append(b.lines, "")
	b.lines = append(b.lines, ch.Header()...)
	b.lines = append(b.lines, "")
}

func (b *Buffer) Fragment(text string) {
	b.lines = append(b.lines, text)
}

func (b *Buffer) Separator() {
	b.lines = append(b.lines, "")
}

func (b *Buffer) Len() int {
	return len(b.lines)
}

func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Buffer) Flush(path string) error {
	return util.WriteText(path, b.lines)
}
