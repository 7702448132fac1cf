package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/remiges-tech/logharbour/logharbour"
)

// Logger is an interface that represents a logger.
type Logger interface {
	Log(message string) error
}

// LogHarbour adapts a *logharbour.Logger to Logger. Messages are written as
// activity logs.
type LogHarbour struct {
	*logharbour.Logger
}

func (lh *LogHarbour) Log(message string) error {
	lh.Info().LogActivity(message, nil)
	return nil
}

// FileWriter opens path for appending log entries, creating it if needed.
func FileWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return nil, fmt.Errorf("FilePath cannot be empty")
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
