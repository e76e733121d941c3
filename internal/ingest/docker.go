package ingest

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	log "github.com/sirupsen/logrus"

	"github.com/triagehq/logtriage/internal/store"
)

// DockerSource streams stdout/stderr from a set of running containers,
// one goroutine per container, following eviltik-docker-tui's LogBroker
// shape: a per-container stream loop that reconnects on error rather than
// tearing down the whole source.
type DockerSource struct {
	Client     *client.Client
	Containers []string // container IDs to follow; empty means "all running"
	Tail       string   // passed to ContainerLogs as Tail, e.g. "50"

	log *log.Entry
}

// Run streams logs for every configured container until ctx is cancelled.
// Each container gets its own reconnect loop; a stream error on one
// container never stops the others.
func (d *DockerSource) Run(ctx context.Context, s *store.Store) error {
	d.log = log.WithField("component", "ingest.docker")

	ids := d.Containers
	if len(ids) == 0 {
		list, err := d.Client.ContainerList(ctx, container.ListOptions{})
		if err != nil {
			return err
		}
		for _, c := range list {
			ids = append(ids, c.ID)
		}
	}

	done := make(chan struct{}, len(ids))
	for _, id := range ids {
		id := id
		go func() {
			d.streamContainer(ctx, s, id)
			done <- struct{}{}
		}()
	}
	for range ids {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (d *DockerSource) streamContainer(ctx context.Context, s *store.Store, id string) {
	tail := d.Tail
	if tail == "" {
		tail = "50"
	}
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		reader, err := d.Client.ContainerLogs(ctx, id, container.LogsOptions{
			ShowStdout: true,
			ShowStderr: true,
			Follow:     true,
			Tail:       tail,
		})
		if err != nil {
			d.log.WithError(err).WithField("container", id).Debug("containerlogs failed, retrying")
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
				continue
			}
		}
		tail = "0" // only the first connection replays history

		outR, outW := io.Pipe()
		errR, errW := io.Pipe()
		go func() {
			_, _ = stdcopy.StdCopy(outW, errW, reader)
			outW.Close()
			errW.Close()
			reader.Close()
		}()
		go scanLines(s, store.Docker, id, outR)
		scanLines(s, store.Docker, id, errR)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

func scanLines(s *store.Store, feed store.FeedKind, producer string, r io.Reader) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		s.Push(Normalize(feed, producer, sc.Text(), time.Now(), nil))
	}
}
