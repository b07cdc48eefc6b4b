package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brogergvhs/evangelio/internal/chapters"
	"github.com/brogergvhs/evangelio/internal/sources"
	"github.com/brogergvhs/evangelio/internal/ui"
	"github.com/brogergvhs/evangelio/internal/util"
)

// errMessageRunes bounds how much of a per-chapter error reaches the log.
const errMessageRunes = 100

type Pipeline struct {
	profile  sources.Profile
	fetcher  *Fetcher
	log      *ui.Logger
	progress ui.Progress
	sleep    func(context.Context, time.Duration) error
}

func New(profile sources.Profile, fetcher *Fetcher, log *ui.Logger, progress ui.Progress) *Pipeline {
	if progress == nil {
		progress = ui.NopProgress{}
	}

	return &Pipeline{
		profile:  profile,
		fetcher:  fetcher,
		log:      log,
		progress: progress,
		sleep:    sleepCtx,
	}
}

// Run downloads chs strictly in order, one request at a time, waiting the
// profile delay between consecutive chapters. A failing chapter is logged
// and skipped. The buffer is written to outputPath at the end, also when
// ctx is cancelled, in which case ErrCancelled is returned. A failed write
// is returned as is, with Summary.Cancelled telling the two cases apart.
func (p *Pipeline) Run(ctx context.Context, chs []chapters.Chapter, outputPath string) (Summary, error) {
	start := time.Now()

	if n := util.CleanupUnfinishedTemp(outputPath); n > 0 {
		p.log.Debugf("Removed %d unfinished temp files next to %s\n", n, outputPath)
	}

	buf := NewBuffer(p.profile.Title)
	stats := &ui.Stats{}
	sum := Summary{Source: p.profile.Name, Path: outputPath}

	p.progress.SetTotal(len(chs))

	for i, ch := range chs {
		if ctx.Err() != nil {
			sum.Cancelled = true
			break
		}

		p.log.Infof("Descargando Juan capítulo %d...", ch.Number)
		sum.Chapters++

		n, size, err := p.chapter(ctx, ch, buf)
		stats.TotalBytes.Add(size)
		p.progress.Advance(size)

		if ctx.Err() != nil {
			sum.Cancelled = true
			break
		}

		if err != nil {
			sum.Failed = append(sum.Failed, ch.Number)
			p.logFailure(ch, err)
		}

		if n > 0 {
			stats.TotalFragments.Add(int64(n))
			sum.ChaptersWithText++
		}

		if i < len(chs)-1 {
			if err := p.sleep(ctx, p.profile.Delay); err != nil {
				sum.Cancelled = true
				break
			}
		}
	}

	p.progress.MarkDone()

	sum.Fragments = int(stats.TotalFragments.Load())
	sum.Bytes = stats.TotalBytes.Load()
	sum.Lines = buf.Len()
	sum.finalize()

	flushErr := buf.Flush(outputPath)
	sum.Elapsed = time.Since(start)

	if flushErr != nil {
		return sum, flushErr
	}
	if sum.Cancelled {
		return sum, ErrCancelled
	}

	return sum, nil
}

// chapter fetches, extracts and cleans one chapter into buf. The header is
// emitted as soon as the page arrived with 200 OK, so a chapter whose
// page holds no verses still shows up, empty, in the output. A panic while
// parsing or cleaning fails this chapter only.
func (p *Pipeline) chapter(ctx context.Context, ch chapters.Chapter, buf *Buffer) (n int, size int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("chapter %d: panic: %v", ch.Number, r)
		}
	}()

	resp, err := p.fetcher.Fetch(ctx, ch)
	if err != nil {
		return 0, int64(len(resp.Body)), err
	}

	size = int64(len(resp.Body))
	if !resp.OK() {
		return 0, size, &HTTPStatusError{Chapter: ch.Number, Status: resp.Status}
	}

	buf.Chapter(ch)
	defer buf.Separator()

	res, err := p.profile.Extractor.FromReader(bytes.NewReader(resp.Body))
	if err != nil {
		return 0, size, fmt.Errorf("parse chapter %d: %w", ch.Number, err)
	}

	if err := res.Err(); err != nil {
		p.log.Warnf("⚠ No se encontró contenido en capítulo %d (%v)", ch.Number, err)
		return 0, size, nil
	}

	p.log.Debugf("Chapter %d: %d candidates via %s\n", ch.Number, len(res.Fragments), res.Strategy)

	for _, frag := range res.Fragments {
		if p.log.Debug && p.profile.Cleaner != nil {
			if fired := p.profile.Cleaner.Fired(frag); len(fired) > 0 {
				p.log.Debugf("Chapter %d: removed %s\n", ch.Number, strings.Join(fired, ", "))
			}
		}

		cleaned := p.profile.Clean(frag)
		if cleaned == "" {
			continue
		}
		buf.Fragment(cleaned)
		n++
	}

	return n, size, nil
}

func (p *Pipeline) logFailure(ch chapters.Chapter, err error) {
	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		p.log.Errorf("⚠ Error HTTP %d en capítulo %d", statusErr.Status, ch.Number)
		return
	}

	p.log.Errorf("⚠ Error en capítulo %d: %s", ch.Number, util.Truncate(err.Error(), errMessageRunes))
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
