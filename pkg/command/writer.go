package command

import (
	"bytes"

	"github.com/rs/zerolog"
)

// logLineWriter forwards writes to the logger one line at a time, buffering
// partial lines across writes so interleaved stdout/stderr chunks still log
// as whole lines.
type logLineWriter struct {
	logger zerolog.Logger
	buffer bytes.Buffer
}

func newLogLineWriter(logger zerolog.Logger) *logLineWriter {
	return &logLineWriter{
		logger: logger,
	}
}

func (w *logLineWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.buffer.Write(p)

	for {
		data := w.buffer.Bytes()
		index := bytes.IndexByte(data, '\n')
		if index < 0 {
			return
		}
		line := string(bytes.TrimRight(data[:index], "\r"))
		w.buffer.Next(index + 1)
		w.logger.Info().Msg(line)
	}
}

// Flush logs any trailing output that did not end in a newline.
func (w *logLineWriter) Flush() {
	if w.buffer.Len() > 0 {
		w.logger.Info().Msg(w.buffer.String())
		w.buffer.Reset()
	}
}
