package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the shared logger for the given app environment.
func Init(env string) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(env, "production") {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
		return
	}

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetLevel(logrus.DebugLevel)
}

// Logger returns the underlying logrus instance.
func Logger() *logrus.Logger {
	return log
}

func Debug(msg string, kv ...any) {
	log.WithFields(fields(kv)).Debug(msg)
}

func Info(msg string, kv ...any) {
	log.WithFields(fields(kv)).Info(msg)
}

func Warn(msg string, kv ...any) {
	log.WithFields(fields(kv)).Warn(msg)
}

func Error(msg string, kv ...any) {
	log.WithFields(fields(kv)).Error(msg)
}

func Fatal(msg string, kv ...any) {
	log.WithFields(fields(kv)).Fatal(msg)
}

// fields turns "key", value pairs into logrus fields. A lone error is logged
// under "error", any other dangling value under "arg<i>".
func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i < len(kv); i++ {
		key, ok := kv[i].(string)
		if !ok || i+1 >= len(kv) {
			if err, isErr := kv[i].(error); isErr {
				f[logrus.ErrorKey] = err
				continue
			}
			f[fmt.Sprintf("arg%d", i)] = kv[i]
			continue
		}
		f[key] = kv[i+1]
		i++
	}
	return f
}
