package ingest

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/triagehq/logtriage/internal/store"
)

// StdinSource reads newline-delimited log lines from an arbitrary reader,
// typically os.Stdin, until it hits EOF or ctx is cancelled. It needs
// nothing beyond the standard library: there is no protocol to speak and
// no reconnect logic, just a scanner over whatever is piped in.
type StdinSource struct {
	Reader   io.Reader
	Producer string
}

func (s *StdinSource) Run(ctx context.Context, st *store.Store) error {
	producer := s.Producer
	if producer == "" {
		producer = "stdin"
	}

	lines := make(chan string)
	errs := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(s.Reader)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		for sc.Scan() {
			lines <- sc.Text()
		}
		errs <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-errs
			}
			st.Push(Normalize(store.Stdin, producer, line, time.Now(), nil))
		}
	}
}
