// Package logfeed follows the gallery's own slog file and turns it into
// parsed entries for the activity log page. The UI writes its logs to a file
// because stdout belongs to the terminal renderer; this package closes the
// loop by reading that file back.
package logfeed

import (
	"errors"
	"io"
	"log/slog"

	"github.com/nxadm/tail"
)

var errFollowLog = errors.New("failed to follow log file")

const entryBuffer = 256

// Feed tails a structured log file and emits parsed entries.
type Feed struct {
	tail    *tail.Tail
	stop    chan bool
	entries chan Entry
}

func New() *Feed {
	return &Feed{
		stop:    make(chan bool),
		entries: make(chan Entry, entryBuffer),
	}
}

// Entries returns the parsed entry stream.
func (f *Feed) Entries() <-chan Entry {
	return f.entries
}

// Open begins following the file, replacing any previous tail. The whole
// file is read from the start so the page includes everything logged since
// launch; the logger truncates it on startup, so there is no stale backlog.
func (f *Feed) Open(filePath string) error {
	if f.tail != nil && f.tail.Filename == filePath {
		return nil
	}

	tailConfig := tail.Config{
		Location: &tail.SeekInfo{
			Offset: 0,
			Whence: io.SeekStart,
		},
		// Ensure we don't see the tail messages in stdout and mangle the ui
		Logger:    tail.DiscardingLogger,
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
	}

	tailFile, errTail := tail.TailFile(filePath, tailConfig)
	if errTail != nil {
		return errors.Join(errTail, errFollowLog)
	}

	if f.tail != nil {
		f.stop <- true
	}

	f.tail = tailFile
	go f.start()

	return nil
}

func (f *Feed) start() {
	for {
		select {
		case line := <-f.tail.Lines:
			if line == nil {
				continue
			}

			entry, err := Parse(line.Text)
			if err != nil {
				// Not a structured line; surface it raw rather than drop it.
				entry = Entry{Message: line.Text, Raw: line.Text}
			}

			select {
			case f.entries <- entry:
			default:
				// The page fell behind; dropping old lines beats blocking the
				// tailer.
				<-f.entries
				f.entries <- entry
			}
		case <-f.stop:
			if errStop := f.tail.Stop(); errStop != nil {
				slog.Error("Failed to stop tailing log cleanly", slog.String("error", errStop.Error()))
			}

			return
		}
	}
}

// Close stops the running tail, if any.
func (f *Feed) Close() {
	if f.tail != nil {
		f.stop <- true
		f.tail = nil
	}
}
