package shard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Opener provides shard file handles. dir is the two-letter directory name
// relative to the output root; name is the file name within it.
type Opener interface {
	Open(dir, name string) (io.WriteCloser, error)
}

// OSOpener opens real shard files under Root, creating directories as
// needed. Files are opened in append mode, matching the historical behavior
// of extraction runs into a pre-existing directory.
type OSOpener struct {
	Root string
}

func (o OSOpener) Open(dir, name string) (io.WriteCloser, error) {
	path := filepath.Join(o.Root, dir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("create shard directory %q: %w", path, err)
	}
	file, err := os.OpenFile(filepath.Join(path, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open shard file: %w", err)
	}
	return file, nil
}

// Record summarizes one closed shard file.
type Record struct {
	Dir       string
	FileIndex int
	Path      string // relative to the output root
	Docs      int
	FirstID   int
	LastID    int
}

// Writer appends wrapped documents to the current shard and rotates to the
// next coordinate when the per-file maximum is reached. Not safe for
// concurrent use; the pipeline is single-threaded by design.
type Writer struct {
	layout  Layout
	opener  Opener
	observe func(Record) error

	file        io.WriteCloser
	fileCounter int
	current     Record
}

// NewWriter constructs a Writer. observe, if non-nil, is invoked with a
// Record each time a shard file is closed (on rotation and on Close).
func NewWriter(layout Layout, opener Opener, observe func(Record) error) *Writer {
	return &Writer{layout: layout, opener: opener, observe: observe}
}

// Open creates the first shard file. The first shard exists even for a run
// that accepts no documents.
func (w *Writer) Open() error {
	if w.file != nil {
		return nil
	}
	return w.openNext()
}

// Write appends one wrapped document under the given id. A full shard is
// closed immediately; the next coordinate is opened by the write that needs
// it, so a run that fills its last file exactly leaves no empty successor.
func (w *Writer) Write(lines []string, id int) error {
	if w.file == nil {
		if err := w.openNext(); err != nil {
			return err
		}
	}
	if err := writeDoc(w.file, lines, id); err != nil {
		return fmt.Errorf("write document %d to %s: %w", id, w.current.Path, err)
	}
	if w.current.Docs == 0 {
		w.current.FirstID = id
	}
	w.current.Docs++
	w.current.LastID = id
	if w.current.Docs >= w.layout.DocsPerFile {
		return w.closeCurrent()
	}
	return nil
}

// Close closes the open shard file, reporting it to the observer. It is a
// no-op when nothing is open.
func (w *Writer) Close() error {
	if w.file == nil {
		return nil
	}
	return w.closeCurrent()
}

func (w *Writer) openNext() error {
	dir, index, err := w.layout.Coordinate(w.fileCounter)
	if err != nil {
		return err
	}
	name := w.layout.FileName(index)
	file, err := w.opener.Open(dir, name)
	if err != nil {
		return err
	}
	w.file = file
	w.fileCounter++
	w.current = Record{Dir: dir, FileIndex: index, Path: dir + "/" + name}
	return nil
}

func (w *Writer) closeCurrent() error {
	err := w.file.Close()
	w.file = nil
	if err != nil {
		return fmt.Errorf("close shard %s: %w", w.current.Path, err)
	}
	if w.observe != nil {
		if err := w.observe(w.current); err != nil {
			return fmt.Errorf("record shard %s: %w", w.current.Path, err)
		}
	}
	return nil
}

// writeDoc emits the exact wrapping consumed downstream:
//
//	<doc id="7" url="" title="cc100_7">
//	...lines...
//	</doc>
func writeDoc(w io.Writer, lines []string, id int) error {
	if _, err := fmt.Fprintf(w, "<doc id=\"%d\" url=\"\" title=\"cc100_%d\">\n", id, id); err != nil {
		return err
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</doc>\n")
	return err
}
