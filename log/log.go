package log

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
}

// base is shared by every module logger so level and hooks apply everywhere.
var base = newBase()

func newBase() *log.Logger {
	b := log.New()
	b.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})
	b.SetOutput(os.Stderr)
	b.SetLevel(log.WarnLevel)
	return b
}

func NewLogger(module string) *Logger {
	return &Logger{base.WithFields(log.Fields{
		"name": module,
	})}
}

// SetLevel parses names like "debug" or "trace".
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	base.SetLevel(lvl)
	return nil
}

func SetOutput(w io.Writer) {
	base.SetOutput(w)
}
