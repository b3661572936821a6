package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const logDateLayout = "2006-01-02_15-04-05"

// LogFile tees pipeline logging into a per-run file under the log directory
// next to the console output.
type LogFile struct {
	Filename string
	Logger   zerolog.Logger

	file *os.File
}

// NewLogFile creates the per-run log file and returns a logger writing to
// both the console and the file. The filename embeds the prefix and the
// current time, so concurrent runs never collide.
func NewLogFile(logDir, prefix string) (*LogFile, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}

	filename := filepath.Join(logDir, fmt.Sprintf("%v-%v.log", sanitizeLogPrefix(prefix), time.Now().Format(logDateLayout)))

	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	fileWriter := zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
	logger := zerolog.New(zerolog.MultiLevelWriter(console, fileWriter)).With().Timestamp().Logger()

	return &LogFile{
		Filename: filename,
		Logger:   logger,
		file:     file,
	}, nil
}

// Close flushes and closes the underlying file.
func (l *LogFile) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil

	return err
}

// Remove discards the log file; used when the run turns out to be a no-op.
func (l *LogFile) Remove() error {
	if err := l.Close(); err != nil {
		return err
	}

	return os.Remove(l.Filename)
}

func sanitizeLogPrefix(prefix string) string {
	return strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '-'
		}
		return r
	}, prefix)
}
