// Package stream opens the input and output of the preprocessor, decoding
// and encoding the common compression envelopes by path suffix. The literal
// paths "<stdin>" and "<stdout>" select the standard streams and are never
// compressed.
package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

const (
	Stdin  = "<stdin>"
	Stdout = "<stdout>"
)

// reader closes the decompressor (when it has a Close) and the file under it.
type reader struct {
	io.Reader
	closers []io.Closer
}

func (r *reader) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type writer struct {
	io.Writer
	closers []io.Closer
}

func (w *writer) Close() error {
	var first error
	for _, c := range w.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open returns a reader for path, transparently decoding .bz2, .gz and .xz
// files. Stdin selects the standard input.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := Decode(file, path)
	if err != nil {
		file.Close()
		return nil, err
	}
	return r, nil
}

// Decode wraps f with the decompressor selected by path's suffix. The
// returned closer also closes f.
func Decode(f io.ReadCloser, path string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".bz2"):
		z, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, fmt.Errorf("open bzip2 stream: %w", err)
		}
		return &reader{Reader: z, closers: []io.Closer{z, f}}, nil
	case strings.HasSuffix(path, ".gz"):
		z, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return &reader{Reader: z, closers: []io.Closer{z, f}}, nil
	case strings.HasSuffix(path, ".xz"):
		z, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz stream: %w", err)
		}
		return &reader{Reader: z, closers: []io.Closer{f}}, nil
	default:
		return f, nil
	}
}

// Create returns a writer for path, transparently encoding .bz2, .gz and .xz
// files. Stdout selects the standard output. Closing the writer flushes the
// envelope before closing the file.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdout {
		return nopWriteCloser{os.Stdout}, nil
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w, err := Encode(file, path)
	if err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// Encode wraps f with the compressor selected by path's suffix. The returned
// closer finalizes the envelope and then closes f.
func Encode(f io.WriteCloser, path string) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(path, ".bz2"):
		z, err := bzip2.NewWriter(f, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
		if err != nil {
			return nil, fmt.Errorf("create bzip2 stream: %w", err)
		}
		return &writer{Writer: z, closers: []io.Closer{z, f}}, nil
	case strings.HasSuffix(path, ".gz"):
		z := gzip.NewWriter(f)
		return &writer{Writer: z, closers: []io.Closer{z, f}}, nil
	case strings.HasSuffix(path, ".xz"):
		z, err := xz.NewWriter(f)
		if err != nil {
			return nil, fmt.Errorf("create xz stream: %w", err)
		}
		return &writer{Writer: z, closers: []io.Closer{z, f}}, nil
	default:
		return f, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
