package density

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/mmap"
)

// Source hands out input lines, in order, without their line terminators.
type Source interface {
	Lines(fn func(line string) error) error
	Close() error
}

// NewSource picks the cheapest way to read r. A regular file (stdin
// redirected from disk) is mapped into memory; anything else goes through a
// buffered reader.
func NewSource(r io.Reader) Source {
	if f, ok := r.(*os.File); ok {
		if s, err := openMapped(f); err == nil {
			return s
		}
	}
	return &bufferedSource{br: bufio.NewReader(r)}
}

type bufferedSource struct {
	br *bufio.Reader
}

func (s *bufferedSource) Lines(fn func(string) error) error {
	for {
		line, err := s.br.ReadString('\n')
		if line != "" && (err == nil || err == io.EOF) {
			if ferr := fn(trimEOL(line)); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func (s *bufferedSource) Close() error { return nil }

var errNotRegular = errors.New("not a regular file")

type mappedSource struct {
	r   *mmap.ReaderAt
	off int64 // where the file position was when we took over
}

func openMapped(f *os.File) (*mappedSource, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, errNotRegular
	}
	off, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	r, err := mmap.Open(f.Name())
	if err != nil {
		return nil, err
	}
	return &mappedSource{r: r, off: off}, nil
}

func (s *mappedSource) Lines(fn func(string) error) error {
	length := int64(s.r.Len()) - s.off
	if length <= 0 {
		return nil
	}
	buf := make([]byte, length)
	if _, err := s.r.ReadAt(buf, s.off); err != nil && err != io.EOF {
		return fmt.Errorf("read input: %w", err)
	}
	for len(buf) > 0 {
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i == -1 {
			line, buf = buf, nil
		} else {
			line, buf = buf[:i], buf[i+1:]
		}
		if err := fn(strings.TrimSuffix(string(line), "\r")); err != nil {
			return err
		}
	}
	return nil
}

func (s *mappedSource) Close() error { return s.r.Close() }

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
