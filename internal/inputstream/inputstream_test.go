package inputstream_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"docshard/internal/inputstream"
)

const sample = "一行目\n\n二行目\n"

func readAll(t *testing.T, path string) string {
	t.Helper()
	r, err := inputstream.Open(path)
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return string(data)
}

func TestOpenPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, path); got != sample {
		t.Fatalf("got %q", got)
	}
}

func TestOpenXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.xz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := xz.NewWriter(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, sample); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, path); got != sample {
		t.Fatalf("got %q", got)
	}
}

func TestOpenZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.zst")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w, err := zstd.NewWriter(file)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.WriteString(w, sample); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, path); got != sample {
		t.Fatalf("got %q", got)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.gz")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(file)
	if _, err := io.WriteString(w, sample); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, path); got != sample {
		t.Fatalf("got %q", got)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := inputstream.Open(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenCorruptXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt.xz")
	if err := os.WriteFile(path, []byte("not an xz archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := inputstream.Open(path); err == nil {
		t.Fatal("expected error for corrupt archive")
	}
}
