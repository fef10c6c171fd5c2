package u

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// io.ReadCloser over os.File wrapped with a decompressing io.Reader.
// io.Closer goes to os.File, io.Reader goes to the wrapping reader
type readerWrappedFile struct {
	f *os.File
	r io.Reader
}

func (rc *readerWrappedFile) Close() error {
	return rc.f.Close()
}

func (rc *readerWrappedFile) Read(p []byte) (int, error) {
	return rc.r.Read(p)
}

func wrapInReadCloser(f *os.File, r io.Reader, err error) (io.ReadCloser, error) {
	if err != nil {
		f.Close()
		return nil, err
	}
	return &readerWrappedFile{
		f: f,
		r: r,
	}, nil
}

// OpenFileMaybeCompressed opens a file that might be compressed with
// gzip or zstd or brotli, picked by extension. Backups written with a
// compression option read back through this.
func OpenFileMaybeCompressed(path string) (io.ReadCloser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch ext {
	case ".gz":
		r, err := gzip.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".zst":
		r, err := zstd.NewReader(f)
		return wrapInReadCloser(f, r, err)
	case ".br":
		r := brotli.NewReader(f)
		return wrapInReadCloser(f, r, nil)
	}
	return f, nil
}

// ReadFileMaybeCompressed reads a file, decompressing by extension.
func ReadFileMaybeCompressed(path string) ([]byte, error) {
	r, err := OpenFileMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// WriteFileCompressed writes data to path, compressing according to
// the path extension (.gz, .zst, .br). Any other extension writes the
// bytes as-is.
func WriteFileCompressed(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	case ".zst":
		w, err = zstd.NewWriter(f)
	case ".br":
		w = brotli.NewWriter(f)
	default:
		w = nil
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if w == nil {
		_, err = f.Write(data)
	} else {
		_, err = w.Write(data)
		if err == nil {
			err = w.Close()
		}
	}
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	err = f.Close()
	if err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
