package log

import (
	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
)

// AddTracer mirrors trace and debug entries to path.trace and warnings
// and above to path.warn, as JSON.
func AddTracer(path string) {
	pathMap := lfshook.PathMap{
		log.TraceLevel: path + ".trace",
		log.DebugLevel: path + ".trace",
		log.WarnLevel:  path + ".warn",
		log.ErrorLevel: path + ".warn",
	}
	hook := lfshook.NewHook(
		pathMap,
		&log.JSONFormatter{
			TimestampFormat: "Jan _2 2006 15:04:05.000000",
		},
	)
	base.Hooks.Add(hook)
}
