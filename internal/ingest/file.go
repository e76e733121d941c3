package ingest

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/triagehq/logtriage/internal/store"
)

// FileSource tails a single log file, following rotation (truncate or
// rename-and-recreate) the way the teacher's own config loader follows
// its config file with fsnotify, the only other place in the teacher's
// dependency surface that watches a path for changes.
type FileSource struct {
	Path string

	log     *log.Entry
	partial string // unterminated trailing line, held until its newline arrives
}

func (f *FileSource) Run(ctx context.Context, s *store.Store) error {
	f.log = log.WithField("component", "ingest.file").WithField("path", f.Path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(f.Path); err != nil {
		return err
	}

	file, offset, err := f.openAtEnd()
	if err != nil {
		return err
	}
	defer file.Close()

	reader := bufio.NewReader(file)

	for {
		offset = f.drain(s, reader, offset)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				file.Close()
				newFile, newOffset, err := f.reopen(watcher)
				if err != nil {
					f.log.WithError(err).Debug("reopen after rotation failed, retrying")
					continue
				}
				file = newFile
				offset = newOffset
				reader = bufio.NewReader(file)
				continue
			}
			if ev.Op&fsnotify.Write != 0 {
				if info, err := file.Stat(); err == nil && info.Size() < offset {
					// truncated in place: the write shrank the file, seek to start
					offset, _ = file.Seek(0, io.SeekStart)
					reader = bufio.NewReader(file)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			f.log.WithError(err).Debug("watcher error")
		}
	}
}

func (f *FileSource) openAtEnd() (*os.File, int64, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, 0, err
	}
	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		file.Close()
		return nil, 0, err
	}
	return file, offset, nil
}

func (f *FileSource) reopen(watcher *fsnotify.Watcher) (*os.File, int64, error) {
	watcher.Remove(f.Path)
	var file *os.File
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		file, err = os.Open(f.Path)
		if err == nil {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}
	if err != nil {
		return nil, 0, err
	}
	if err := watcher.Add(f.Path); err != nil {
		file.Close()
		return nil, 0, err
	}
	return file, 0, nil
}

// drain reads whatever whole lines are currently available from reader and
// pushes them, returning the file offset after the bytes read. A trailing
// partial line is kept back and completed by a later drain.
func (f *FileSource) drain(s *store.Store, reader *bufio.Reader, offset int64) int64 {
	for {
		chunk, err := reader.ReadString('\n')
		offset += int64(len(chunk))
		if err != nil {
			f.partial += chunk
			return offset
		}
		s.Push(Normalize(store.File, f.Path, f.partial+chunk, time.Now(), nil))
		f.partial = ""
	}
}
