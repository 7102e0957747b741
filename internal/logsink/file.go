package logsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/neodefaults/neodefaults-installer/internal/messages"
)

// FileName is the current log inside the log directory.
const FileName = "log.txt"

// rawField marks entries written verbatim (dividers, blank lines, the header).
const rawField = "raw"

// Options configures a FileSink.
type Options struct {
	// Dir holds log.txt and at most one rotated previous log.
	Dir string
	// Version is recorded in the log header.
	Version string
	// Echo, when set, also receives every line (used by --verbose).
	Echo io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
}

// FileSink writes the install log through logrus into a lumberjack-managed file.
type FileSink struct {
	logger *logrus.Logger
	file   *lumberjack.Logger
	runID  string
}

// Open creates the log directory, rotates an existing non-empty log so exactly
// one previous run is kept, and writes the header.
func Open(opts Options) (*FileSink, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf(messages.LogCreateDirFmt, opts.Dir, err)
	}
	path := filepath.Join(opts.Dir, FileName)
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 1,
	}
	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		if err := file.Rotate(); err != nil {
			return nil, fmt.Errorf(messages.LogRotateFmt, path, err)
		}
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var out io.Writer = file
	if opts.Echo != nil {
		out = io.MultiWriter(file, opts.Echo)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&lineFormatter{timestampFormat: "15:04:05.000"})

	sink := &FileSink{logger: logger, file: file, runID: uuid.NewString()}
	sink.raw(
		"Logfile initialized on: "+now().Format(time.RFC1123),
		"Version "+opts.Version,
		"Run "+sink.runID,
		"",
	)
	return sink, nil
}

// Path returns the current log file path.
func (s *FileSink) Path() string {
	return s.file.Filename
}

// RunID identifies this run in the log header.
func (s *FileSink) RunID() string {
	return s.runID
}

// Write appends lines at info level.
func (s *FileSink) Write(lines ...string) {
	if len(lines) == 0 {
		s.raw("")
		return
	}
	for _, line := range lines {
		s.logger.Info(line)
	}
}

// WriteError appends lines at error level between dividers.
func (s *FileSink) WriteError(lines ...string) {
	s.WriteDivider()
	for i, line := range lines {
		if i == 0 {
			line = "Error: " + line
		}
		s.logger.Error(line)
	}
	s.WriteDivider()
}

// WriteDivider appends the divider line.
func (s *FileSink) WriteDivider() {
	s.raw(Divider)
}

// Close flushes and closes the log file.
func (s *FileSink) Close() error {
	return s.file.Close()
}

func (s *FileSink) raw(lines ...string) {
	for _, line := range lines {
		s.logger.WithField(rawField, true).Info(line)
	}
}

// lineFormatter renders "time LEVEL message" lines, or the bare message for raw entries.
type lineFormatter struct {
	timestampFormat string
}

func (f *lineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if _, ok := entry.Data[rawField]; ok {
		return []byte(entry.Message + "\n"), nil
	}
	level := strings.ToUpper(entry.Level.String())
	return []byte(fmt.Sprintf("%s %-5s %s\n", entry.Time.Format(f.timestampFormat), level, entry.Message)), nil
}
