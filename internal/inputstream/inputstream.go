// Package inputstream opens corpus files for reading, transparently
// decompressing by file extension. CC-100 dumps ship as .xz; .zst, .gz,
// .bz2, and plain text are accepted as well.
package inputstream

import (
	"bufio"
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Open returns a reader over the decompressed contents of path. Closing the
// returned ReadCloser releases the decoder and the underlying file.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		r, err := xz.NewReader(bufio.NewReaderSize(file, 1<<20))
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return &stream{Reader: r, close: file.Close}, nil
	case ".zst":
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return &stream{Reader: dec, close: func() error {
			dec.Close()
			return file.Close()
		}}, nil
	case ".gz":
		zr, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &stream{Reader: zr, close: func() error {
			if err := zr.Close(); err != nil {
				_ = file.Close()
				return err
			}
			return file.Close()
		}}, nil
	case ".bz2":
		return &stream{Reader: bzip2.NewReader(file), close: file.Close}, nil
	default:
		return file, nil
	}
}

type stream struct {
	io.Reader
	close func() error
}

func (s *stream) Close() error { return s.close() }
