// Package csvlog writes benchmark measurements to timestamped CSV files.
//
// A log file carries one header row and one row per measurement, with the
// measurement label, an element count and the elapsed wall time in seconds.
// Loggers are safe for concurrent use.
package csvlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global logger with key 'forest'.
func tracer() tracing.Trace {
	return tracing.Select("forest")
}

// DefaultDir is the directory new log files are created in by OpenDefault.
const DefaultDir = "test-works/logs"

var header = []string{"test_func_name", "count", "time_usage"}

// ErrClosed is returned when appending to or flushing a closed logger.
var ErrClosed = errors.New("csvlog: logger is closed")

// Logger appends measurement rows to a CSV file.
type Logger struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	writer *csv.Writer
	closed bool
}

// OpenDefault creates a log file named after the current local time below
// DefaultDir, creating the directory if necessary.
func OpenDefault() (*Logger, error) {
	return OpenAt(DefaultDir)
}

// OpenAt creates a timestamped log file below dir, creating dir if
// necessary.
func OpenAt(dir string) (*Logger, error) {
	name := time.Now().Format("20060102_150405") + ".csv"
	return OpenFile(filepath.Join(dir, name))
}

// OpenFile creates a log file at path, truncating any previous file, and
// writes the header row.
func OpenFile(path string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("csvlog: cannot create log directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csvlog: cannot create log file: %w", err)
	}
	l := &Logger{path: path, file: f, writer: csv.NewWriter(f)}
	if err := l.writer.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("csvlog: cannot write header: %w", err)
	}
	tracer().Infof("csv log opened at %s", path)
	return l, nil
}

// Path returns the location of the log file.
func (l *Logger) Path() string {
	return l.path
}

// Append writes one measurement row. seconds is formatted with nine
// fractional digits.
func (l *Logger) Append(label string, count uint64, seconds float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	row := []string{
		label,
		strconv.FormatUint(count, 10),
		strconv.FormatFloat(seconds, 'f', 9, 64),
	}
	if err := l.writer.Write(row); err != nil {
		return fmt.Errorf("csvlog: cannot append row: %w", err)
	}
	return nil
}

// Flush forces buffered rows out to the file.
func (l *Logger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.writer.Flush()
	return l.writer.Error()
}

// Close flushes buffered rows and closes the file. Close is idempotent.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	l.writer.Flush()
	err := l.writer.Error()
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	tracer().Infof("csv log closed at %s", l.path)
	return err
}

var _ io.Closer = (*Logger)(nil)
