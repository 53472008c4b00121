package logger

import (
	"io"
	"os"
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with a rotating file plus stdout.
func Setup(archivo, nivel string) {
	// 1) Lumberjack for file rotation
	rotator := &lumberjack.Logger{
		Filename:   archivo,
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	// 2) Configure Logrus to write to rotating file and stdout
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	parsed, err := logrus.ParseLevel(nivel)
	if err != nil {
		parsed = logrus.DebugLevel
	}
	logrus.SetLevel(parsed)
}

// L returns the standard Logrus logger.
func L() *logrus.Logger {
	return logrus.StandardLogger()
}
