package source

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/xi2/xz"
)

// Source is an open byte stream ready for counting. It remembers the
// underlying file size when one is known so callers can show progress.
type Source struct {
	r       io.Reader
	file    *os.File
	size    int64
	name    string
	closers []io.Closer
}

// Open opens path for reading. The path "-" selects standard input. With
// decompress set the stream is unwrapped according to its filename suffix
// (.gz, .zst or .xz); other suffixes are read as they are.
func Open(path string, decompress bool) (*Source, error) {
	if path == "-" {
		return &Source{r: os.Stdin, size: -1, name: "stdin"}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not stat %s: %w", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	src := &Source{r: f, file: f, size: info.Size(), name: path}

	if decompress {
		if err := src.wrap(path); err != nil {
			f.Close()
			return nil, err
		}
	}

	return src, nil
}

// wrap inserts a decompressor chosen by filename suffix. The size becomes
// unknown since only the compressed length is on disk.
func (s *Source) wrap(path string) error {
	if strings.HasSuffix(path, ".gz") {
		reader, err := gzip.NewReader(s.r)
		if err != nil {
			return fmt.Errorf("could not read gzip stream %s: %w", path, err)
		}

		s.r = reader
		s.closers = append(s.closers, reader)
		s.size = -1
	} else if strings.HasSuffix(path, ".zst") {
		reader, err := zstd.NewReader(s.r)
		if err != nil {
			return fmt.Errorf("could not read zstd stream %s: %w", path, err)
		}

		rc := reader.IOReadCloser()

		s.r = rc
		s.closers = append(s.closers, rc)
		s.size = -1
	} else if strings.HasSuffix(path, ".xz") {
		reader, err := xz.NewReader(s.r, xz.DefaultDictMax)
		if err != nil {
			return fmt.Errorf("could not read xz stream %s: %w", path, err)
		}

		s.r = reader
		s.size = -1
	}

	return nil
}

// Read implements io.Reader over the possibly decompressed stream.
func (s *Source) Read(p []byte) (int, error) { return s.r.Read(p) }

// Size returns the byte length of the underlying file, or -1 when it is
// unknown. Standard input and decompressed streams have no known length.
func (s *Source) Size() int64 { return s.size }

// Name returns the display name of the source.
func (s *Source) Name() string { return s.name }

// Close releases the source. Decompressors close before the file they wrap.
// Standard input is left open.
func (s *Source) Close() error {
	var firstErr error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if s.file != nil {
		if err := s.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

var (
	_ io.ReadCloser = &Source{}
)
