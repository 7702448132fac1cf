package logger

import (
	"io"
	"os"

	"github.com/remiges-tech/logharbour/logharbour"
)

// LoadLogger creates a LogHarbour logger for appName writing to w.
// A nil writer logs to stdout.
func LoadLogger(appName string, w io.Writer) *logharbour.Logger {
	if w == nil {
		w = os.Stdout
	}
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	return logharbour.NewLogger(lctx, appName, w)
}

// LoadLoggerFromFile is LoadLogger writing to the file at path instead of stdout.
// The returned closer must be closed when the logger is no longer used.
func LoadLoggerFromFile(appName, path string) (*logharbour.Logger, io.Closer, error) {
	f, err := FileWriter(path)
	if err != nil {
		return nil, nil, err
	}
	return LoadLogger(appName, f), f, nil
}
