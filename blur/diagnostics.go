package blur

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Diagnostics opens one timing sink per worker.
type Diagnostics interface {
	// Open is called by the worker itself, on its own thread, before it
	// computes its first pixel. worker is 0-based.
	Open(worker int) (Sink, error)
}

// Sink receives one record per computed pixel. A sink is owned by a single
// worker and closed by it when the worker finishes, even if it fails.
type Sink interface {
	Record(worker int, elapsed time.Duration) error
	Close() error
}

// NopDiagnostics records nothing.
type NopDiagnostics struct{}

// Open returns a sink that discards every record.
func (NopDiagnostics) Open(int) (Sink, error) { return nopSink{}, nil }

type nopSink struct{}

func (nopSink) Record(int, time.Duration) error { return nil }
func (nopSink) Close() error                    { return nil }

// FileDiagnostics writes each worker's records to Dir/thread<N>.txt, N being
// the 1-based worker number. Existing files are truncated.
//
// Each record is a line holding the 1-based worker number and the
// milliseconds elapsed since the batch started, separated by a tab:
//
//	2\t13.0421
type FileDiagnostics struct {
	Dir string
}

// Open creates the worker's log file.
func (d FileDiagnostics) Open(worker int) (Sink, error) {
	path := filepath.Join(d.Dir, fmt.Sprintf("thread%d.txt", worker+1))
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileSink{f: f, w: bufio.NewWriter(f)}, nil
}

type fileSink struct {
	f   *os.File
	w   *bufio.Writer
	buf []byte
}

func (s *fileSink) Record(worker int, elapsed time.Duration) error {
	s.buf = strconv.AppendInt(s.buf[:0], int64(worker+1), 10)
	s.buf = append(s.buf, '\t')
	s.buf = strconv.AppendFloat(s.buf, float64(elapsed)/float64(time.Millisecond), 'f', -1, 64)
	s.buf = append(s.buf, '\n')
	_, err := s.w.Write(s.buf)
	return err
}

func (s *fileSink) Close() error {
	return errors.Join(s.w.Flush(), s.f.Close())
}
