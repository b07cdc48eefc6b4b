package pipeline

import (
	"errors"
	"fmt"
	"net"
)

// ErrCancelled is returned by Run when the context is cancelled before all
// chapters were processed. Partial output has been flushed by then.
var ErrCancelled = errors.New("download cancelled")

// NetworkError wraps connection failures and timeouts of one chapter request.
type NetworkError struct {
	Chapter int
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("chapter %d: %v", e.Chapter, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

// HTTPStatusError is returned for any response other than 200 OK.
type HTTPStatusError struct {
	Chapter int
	Status  int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("chapter %d: HTTP %d", e.Chapter, e.Status)
}
