package shard

import (
	"errors"
	"fmt"
	"strings"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// dirCount is the number of two-letter directory names, "AA" through "ZZ".
const dirCount = len(letters) * len(letters)

// ErrSequenceExhausted is returned once every (directory, file index)
// coordinate has been used.
var ErrSequenceExhausted = errors.New("shard sequence exhausted")

// Layout describes the output naming scheme.
type Layout struct {
	// DocsPerFile is the maximum number of documents per shard file.
	DocsPerFile int
	// FilesPerDir is the number of file indices per directory (at most 100,
	// the two-digit naming limit).
	FilesPerDir int
	// FilePrefix precedes the zero-padded file index, e.g. "wiki_".
	FilePrefix string
}

// DefaultLayout matches the wikiextractor conventions consumed downstream.
func DefaultLayout() Layout {
	return Layout{DocsPerFile: 1000, FilesPerDir: 100, FilePrefix: "wiki_"}
}

// Coordinate maps a zero-based file counter to its directory name and file
// index within that directory.
func (l Layout) Coordinate(fileCounter int) (dir string, fileIndex int, err error) {
	if fileCounter < 0 {
		return "", 0, fmt.Errorf("negative file counter %d", fileCounter)
	}
	dirIdx := fileCounter / l.FilesPerDir
	if dirIdx >= dirCount {
		return "", 0, ErrSequenceExhausted
	}
	return dirName(dirIdx), fileCounter % l.FilesPerDir, nil
}

// FileName renders the shard file name for an index, e.g. "wiki_07".
func (l Layout) FileName(fileIndex int) string {
	return fmt.Sprintf("%s%02d", l.FilePrefix, fileIndex)
}

func dirName(i int) string {
	var b strings.Builder
	b.WriteByte(letters[i/len(letters)])
	b.WriteByte(letters[i%len(letters)])
	return b.String()
}
