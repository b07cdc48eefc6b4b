package pipeline

import (
	"context"
	"io"
	"net/http"

	"github.com/brogergvhs/evangelio/internal/chapters"
	"github.com/brogergvhs/evangelio/internal/ui"
)

const maxBodyBytes = 16 << 20

type RawResponse struct {
	Status int
	Body   []byte
}

func (r RawResponse) OK() bool {
	return r.Status == http.StatusOK
}

// Fetcher issues one GET per chapter. Headers and timeout come from the
// client, see util.NewHTTPClient.
type Fetcher struct {
	client *http.Client
	log    *ui.Logger
}

func NewFetcher(c *http.Client, log *ui.Logger) *Fetcher {
	return &Fetcher{client: c, log: log}
}

// Fetch returns the response whatever its status. Only transport failures
// and timeouts are errors.
func (f *Fetcher) Fetch(ctx context.Context, ch chapters.Chapter) (RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ch.URL, nil)
	if err != nil {
		return RawResponse{}, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return RawResponse{}, &NetworkError{Chapter: ch.Number, Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			f.log.Debugf("Warning: failed to close response body for %s: %v\n", ch.URL, cerr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return RawResponse{Status: resp.StatusCode}, &NetworkError{Chapter: ch.Number, Err: err}
	}

	f.log.Debugf("Chapter %d: HTTP %d, %d bytes\n", ch.Number, resp.StatusCode, len(body))

	return RawResponse{Status: resp.StatusCode, Body: body}, nil
}
