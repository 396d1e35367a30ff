package elf

import (
	"fmt"
	"io"
)

// Source is the byte source abstraction (§4.1): a random-access reader
// providing positioned, non-partial reads and absolute seeks. Any
// collaborator satisfying this contract may be plugged in — a file handle,
// a buffered stream, or an in-memory cursor.
type Source interface {
	// ReadExact fills buf completely or returns an error. No partial reads.
	ReadExact(buf []byte) error

	// Seek repositions to an absolute byte offset from the start.
	Seek(offset int64) error
}

// ReaderSource adapts any io.ReadSeeker to the Source contract.
type ReaderSource struct {
	r io.ReadSeeker
}

// NewReaderSource wraps an io.ReadSeeker (an open file, a bytes.Reader, a
// buffered stream) as a Source.
func NewReaderSource(r io.ReadSeeker) *ReaderSource {
	return &ReaderSource{r: r}
}

func (s *ReaderSource) ReadExact(buf []byte) error {
	_, err := io.ReadFull(s.r, buf)
	if err != nil {
		return fmt.Errorf("elf: read failed: %w", err)
	}
	return nil
}

func (s *ReaderSource) Seek(offset int64) error {
	_, err := s.r.Seek(offset, io.SeekStart)
	if err != nil {
		return fmt.Errorf("elf: seek failed: %w", err)
	}
	return nil
}
